package approach

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a color triple with channels nominally in [0, 255]. Channels are
// floats because the percentage form (rgb(50%,50%,50%)) scales to fractional
// values.
type RGB [3]float64

// String formats the color as rgb(r,g,b) using the shortest exact
// representation of each channel.
func (c RGB) String() string {
	var b strings.Builder
	b.WriteString("rgb(")
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// Color converts c to an image color, clamping out of range channels.
func (c RGB) Color() color.Color {
	return c.toColorful()
}

// RGB255 returns the clamped channels as bytes.
func (c RGB) RGB255() (r, g, b uint8) {
	return c.toColorful().RGB255()
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: c[0] / 255, G: c[1] / 255, B: c[2] / 255}.Clamped()
}

// Patterns are compiled once; they are unanchored so a color embedded in a
// longer computed value still resolves.
var (
	reRGBInt   = regexp.MustCompile(`rgb\(\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*\)`)
	reRGBFloat = regexp.MustCompile(`rgb\(\s*([0-9]+(?:\.[0-9]+)?)%\s*,\s*([0-9]+(?:\.[0-9]+)?)%\s*,\s*([0-9]+(?:\.[0-9]+)?)%\s*\)`)
	reHex6     = regexp.MustCompile(`#([a-fA-F0-9]{2})([a-fA-F0-9]{2})([a-fA-F0-9]{2})`)
	reHex3     = regexp.MustCompile(`#([a-fA-F0-9])([a-fA-F0-9])([a-fA-F0-9])`)
	reZeroRGBA = regexp.MustCompile(`rgba\(\s*0\s*,\s*0\s*,\s*0\s*,\s*0\s*\)`)
)

// ResolveRGB converts a color value to an RGB triple. v may be an RGB, a
// three element int or float64 slice or array, or a string understood by
// ParseRGB.
func ResolveRGB(v any) (RGB, bool) {
	switch c := v.(type) {
	case RGB:
		return c, true
	case [3]float64:
		return RGB(c), true
	case [3]int:
		return RGB{float64(c[0]), float64(c[1]), float64(c[2])}, true
	case []float64:
		if len(c) == 3 {
			return RGB{c[0], c[1], c[2]}, true
		}
	case []int:
		if len(c) == 3 {
			return RGB{float64(c[0]), float64(c[1]), float64(c[2])}, true
		}
	case string:
		return ParseRGB(c)
	}
	return RGB{}, false
}

// ParseRGB parses a CSS-like color string. Recognized forms, tried in order:
// rgb(n,n,n), rgb(n%,n%,n%), #rrggbb, #rgb, the fully transparent
// rgba(0, 0, 0, 0) with any spacing (reported as white), and the names in the color table.
func ParseRGB(s string) (RGB, bool) {
	if m := reRGBInt.FindStringSubmatch(s); m != nil {
		return RGB{atof(m[1]), atof(m[2]), atof(m[3])}, true
	}
	if m := reRGBFloat.FindStringSubmatch(s); m != nil {
		return RGB{percent(m[1]), percent(m[2]), percent(m[3])}, true
	}
	if m := reHex6.FindStringSubmatch(s); m != nil {
		return RGB{hex(m[1]), hex(m[2]), hex(m[3])}, true
	}
	if m := reHex3.FindStringSubmatch(s); m != nil {
		return RGB{hex(m[1] + m[1]), hex(m[2] + m[2]), hex(m[3] + m[3])}, true
	}
	if reZeroRGBA.MatchString(s) {
		return namedColors["transparent"], true
	}
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// atof and hex only see strings already validated by a pattern.
func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// percent scales a percentage to [0, 255]. Multiplying before dividing keeps
// 50% exactly 127.5.
func percent(s string) float64 {
	return atof(s) * 255 / 100
}

func hex(s string) float64 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return float64(v)
}

// namedColors is the lowercase color name table. transparent maps to white.
var namedColors = map[string]RGB{
	"aqua":           {0, 255, 255},
	"azure":          {240, 255, 255},
	"beige":          {245, 245, 220},
	"black":          {0, 0, 0},
	"blue":           {0, 0, 255},
	"brown":          {165, 42, 42},
	"cyan":           {0, 255, 255},
	"darkblue":       {0, 0, 139},
	"darkcyan":       {0, 139, 139},
	"darkgrey":       {169, 169, 169},
	"darkgreen":      {0, 100, 0},
	"darkkhaki":      {189, 183, 107},
	"darkmagenta":    {139, 0, 139},
	"darkolivegreen": {85, 107, 47},
	"darkorange":     {255, 140, 0},
	"darkorchid":     {153, 50, 204},
	"darkred":        {139, 0, 0},
	"darksalmon":     {233, 150, 122},
	"darkviolet":     {148, 0, 211},
	"fuchsia":        {255, 0, 255},
	"gold":           {255, 215, 0},
	"green":          {0, 128, 0},
	"indigo":         {75, 0, 130},
	"khaki":          {240, 230, 140},
	"lightblue":      {173, 216, 230},
	"lightcyan":      {224, 255, 255},
	"lightgreen":     {144, 238, 144},
	"lightgrey":      {211, 211, 211},
	"lightpink":      {255, 182, 193},
	"lightyellow":    {255, 255, 224},
	"lime":           {0, 255, 0},
	"magenta":        {255, 0, 255},
	"maroon":         {128, 0, 0},
	"navy":           {0, 0, 128},
	"olive":          {128, 128, 0},
	"orange":         {255, 165, 0},
	"pink":           {255, 192, 203},
	"purple":         {128, 0, 128},
	"violet":         {128, 0, 128},
	"red":            {255, 0, 0},
	"silver":         {192, 192, 192},
	"white":          {255, 255, 255},
	"yellow":         {255, 255, 0},
	"transparent":    {255, 255, 255},
}
