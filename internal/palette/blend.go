package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse understands #rgb, #rrggbb and CSS named colours.
func Parse(value string) (colorful.Color, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return colorful.Color{}, false
	}
	if strings.HasPrefix(trimmed, "#") {
		if len(trimmed) != 4 && len(trimmed) != 7 {
			return colorful.Color{}, false
		}
		c, err := colorful.Hex(strings.ToLower(trimmed))
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}
	named, ok := colornames.Map[strings.ToLower(trimmed)]
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.MakeColor(named)
}

// Lighten moves the HSL lightness of value towards white by amount (0..1).
// Invalid input is returned unchanged.
func Lighten(value string, amount float64) string {
	c, ok := Parse(value)
	if !ok {
		return value
	}
	h, s, l := c.Hsl()
	l += (1 - l) * clampUnit(amount)
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// Darken moves the HSL lightness of value towards black by amount (0..1).
// Invalid input is returned unchanged.
func Darken(value string, amount float64) string {
	c, ok := Parse(value)
	if !ok {
		return value
	}
	h, s, l := c.Hsl()
	l *= 1 - clampUnit(amount)
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// Lightness returns the CIE L* of value in the range 0..1.
func Lightness(value string) (float64, bool) {
	c, ok := Parse(value)
	if !ok {
		return 0, false
	}
	l, _, _ := c.Lab()
	return l, true
}

// IsLight reports whether text on top of value should be dark.
func IsLight(value string) bool {
	l, ok := Lightness(value)
	return ok && l > 0.6
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
