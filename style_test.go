package approach

import (
	"testing"
)

func TestParseStyleScalar(t *testing.T) {
	d, ok := ParseStyle("width", "10px", "50px", true)
	if !ok {
		t.Fatal("ParseStyle failed")
	}
	if d.Kind != KindScalar {
		t.Errorf("Kind = %v, want scalar", d.Kind)
	}
	if d.From != 10 || d.To != 50 || d.Unit != "px" {
		t.Errorf("got from=%v to=%v unit=%q, want 10 50 px", d.From, d.To, d.Unit)
	}
}

func TestParseStyleRelative(t *testing.T) {
	tests := []struct {
		current, target string
		want            float64
	}{
		{"10px", "+=5px", 15},
		{"10px", "-=5px", 5},
		{"1.5em", "+=.5em", 2},
		{"-4px", "-=4px", -8},
	}
	for _, tt := range tests {
		d, ok := ParseStyle("margin-left", tt.current, tt.target, false)
		if !ok {
			t.Errorf("ParseStyle(%q, %q) failed", tt.current, tt.target)
			continue
		}
		if d.To != tt.want {
			t.Errorf("ParseStyle(%q, %q).To = %v, want %v", tt.current, tt.target, d.To, tt.want)
		}
	}
}

func TestParseStyleUnitPreference(t *testing.T) {
	d, _ := ParseStyle("font-size", "1px", "2em", false)
	if d.Unit != "em" {
		t.Errorf("Unit = %q, want target unit em", d.Unit)
	}

	d, _ = ParseStyle("width", "10px", "50", false)
	if d.Unit != "px" {
		t.Errorf("Unit = %q, want current unit px when target has none", d.Unit)
	}

	d, _ = ParseStyle("opacity", "0.5", "1", false)
	if d.Unit != "" {
		t.Errorf("Unit = %q, want empty", d.Unit)
	}
}

func TestParseStyleNumericTarget(t *testing.T) {
	d, ok := ParseStyle("opacity", "0.25", 1.0, false)
	if !ok || d.To != 1 {
		t.Errorf("float target: got %+v, %v", d, ok)
	}
	d, ok = ParseStyle("z-index", "1", 10, false)
	if !ok || d.To != 10 {
		t.Errorf("int target: got %+v, %v", d, ok)
	}
}

func TestParseStyleUnparseable(t *testing.T) {
	tests := []struct {
		name, current string
		target        any
	}{
		{"width", "10px", "auto"},
		{"width", "auto", "50px"},
		{"width", "", "50px"},
		{"width", "10px", []int{1, 2, 3}},
		{"background-color", "red", "notacolor"},
		{"background-color", "notacolor", "red"},
	}
	for _, tt := range tests {
		if d, ok := ParseStyle(tt.name, tt.current, tt.target, true); ok {
			t.Errorf("ParseStyle(%q, %q, %v) = %+v, want failure", tt.name, tt.current, tt.target, d)
		}
	}
}

func TestParseStyleColor(t *testing.T) {
	d, ok := ParseStyle("background-color", "rgb(0,0,0)", "#ff8000", true)
	if !ok {
		t.Fatal("ParseStyle failed")
	}
	if d.Kind != KindColor {
		t.Fatalf("Kind = %v, want color", d.Kind)
	}
	if d.FromRGB != (RGB{0, 0, 0}) || d.ToRGB != (RGB{255, 128, 0}) {
		t.Errorf("from=%v to=%v", d.FromRGB, d.ToRGB)
	}
	if d.Unit != "" {
		t.Errorf("Unit = %q, want empty", d.Unit)
	}

	d, ok = ParseStyle("borderTopColor", "white", RGB{1, 2, 3}, true)
	if !ok || d.ToRGB != (RGB{1, 2, 3}) {
		t.Errorf("camelCase with RGB target: got %+v, %v", d, ok)
	}
}

func TestParseStyleColorWithoutColorAnimation(t *testing.T) {
	// Without color support, color properties take the scalar path and
	// named colors do not parse.
	if _, ok := ParseStyle("color", "black", "red", false); ok {
		t.Error("expected color names to fail on the scalar path")
	}
}

func TestIsColorProperty(t *testing.T) {
	for _, name := range []string{"background-color", "color", "outline-color", "border-left-color", "backgroundColor"} {
		if !IsColorProperty(name) {
			t.Errorf("IsColorProperty(%q) = false", name)
		}
	}
	for _, name := range []string{"width", "border-color", "fill"} {
		if IsColorProperty(name) {
			t.Errorf("IsColorProperty(%q) = true", name)
		}
	}
}

func TestParseStylesDropsAndKeepsOrder(t *testing.T) {
	current := map[string]string{
		"width":            "10px",
		"height":           "20px",
		"background-color": "black",
	}
	decls := []Declaration{
		{Property: "width", Value: "50px"},
		{Property: "display", Value: "auto"},
		{Property: "height", Value: "auto"},
		{Property: "background-color", Value: "red"},
	}
	descs := ParseStyles(decls, func(p string) string { return current[p] }, true, nil)
	if len(descs) != 2 {
		t.Fatalf("len = %d, want 2", len(descs))
	}
	if descs[0].Name != "width" || descs[1].Name != "background-color" {
		t.Errorf("order = [%s %s], want [width background-color]", descs[0].Name, descs[1].Name)
	}
}
