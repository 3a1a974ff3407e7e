package approach

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// StyleDescriptor is the interpolation-ready form of one animated property.
// Kind selects which pair of endpoints is meaningful: From/To for
// KindScalar, FromRGB/ToRGB for KindColor. Unit is empty for colors.
type StyleDescriptor struct {
	Name    string
	Kind    Kind
	From    float64
	To      float64
	FromRGB RGB
	ToRGB   RGB
	Unit    string
}

// colorProperties lists the properties animated as colors when the animator
// supports color animation. Both CSS and camelCase spellings are accepted.
var colorProperties = map[string]struct{}{
	"background-color":    {},
	"border-bottom-color": {},
	"border-left-color":   {},
	"border-right-color":  {},
	"border-top-color":    {},
	"color":               {},
	"outline-color":       {},
	"backgroundColor":     {},
	"borderBottomColor":   {},
	"borderLeftColor":     {},
	"borderRightColor":    {},
	"borderTopColor":      {},
	"outlineColor":        {},
}

// IsColorProperty reports whether name is one of the color-valued properties.
func IsColorProperty(name string) bool {
	_, ok := colorProperties[name]
	return ok
}

// reScalar splits "[+=|-=]<number><unit>".
var reScalar = regexp.MustCompile(`^([+-]=)?([+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)(.*)$`)

type scalarParts struct {
	relative string
	number   float64
	unit     string
}

func parseScalar(s string) (scalarParts, bool) {
	m := reScalar.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return scalarParts{}, false
	}
	n, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return scalarParts{}, false
	}
	return scalarParts{relative: m[1], number: n, unit: strings.TrimSpace(m[3])}, true
}

// ParseStyle builds the descriptor for one property from its current
// computed value and the requested target. It reports false when either
// endpoint cannot be parsed; such properties are skipped, not errors.
//
// Color properties are parsed as colors only when colorAnimation is set.
// Otherwise they go through the scalar path like any other property.
func ParseStyle(name, current string, target any, colorAnimation bool) (StyleDescriptor, bool) {
	if colorAnimation && IsColorProperty(name) {
		from, ok := ParseRGB(current)
		if !ok {
			return StyleDescriptor{}, false
		}
		to, ok := ResolveRGB(target)
		if !ok {
			return StyleDescriptor{}, false
		}
		return StyleDescriptor{Name: name, Kind: KindColor, FromRGB: from, ToRGB: to}, true
	}

	var ts string
	switch t := target.(type) {
	case string:
		ts = t
	case float64:
		ts = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		ts = strconv.Itoa(t)
	default:
		return StyleDescriptor{}, false
	}

	from, ok := parseScalar(current)
	if !ok {
		return StyleDescriptor{}, false
	}
	to, ok := parseScalar(ts)
	if !ok {
		return StyleDescriptor{}, false
	}

	switch to.relative {
	case "+=":
		to.number = from.number + to.number
	case "-=":
		to.number = from.number - to.number
	}

	unit := to.unit
	if unit == "" {
		unit = from.unit
	}
	return StyleDescriptor{Name: name, Kind: KindScalar, From: from.number, To: to.number, Unit: unit}, true
}

// ParseStyles parses every declaration against the element's current values,
// preserving declaration order. Properties that fail to parse are dropped and
// logged at debug level.
func ParseStyles(decls []Declaration, current func(property string) string, colorAnimation bool, log *zap.Logger) []StyleDescriptor {
	if log == nil {
		log = zap.NewNop()
	}
	descs := make([]StyleDescriptor, 0, len(decls))
	for _, d := range decls {
		cur := current(d.Property)
		desc, ok := ParseStyle(d.Property, cur, d.Value, colorAnimation)
		if !ok {
			log.Debug("Style dropped",
				zap.String("property", d.Property),
				zap.String("current", cur),
				zap.Any("target", d.Value))
			continue
		}
		descs = append(descs, desc)
	}
	return descs
}
