// Package color holds the 8-bit RGB value type used across steep along with
// its hex formatter and the two-colour blender.
package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// ErrPercentRange is returned when a blend weight falls outside [0,100].
var ErrPercentRange = errors.New("percentage out of range")

// Percent is a blend weight in the closed range [0,100]. The zero value is 0%.
type Percent struct {
	v uint8
}

// NewPercent validates v and returns it as a Percent.
func NewPercent(v int) (Percent, error) {
	if v < 0 || v > 100 {
		return Percent{}, fmt.Errorf("%w: %d (want 0-100)", ErrPercentRange, v)
	}
	return Percent{v: uint8(v)}, nil
}

// MustPercent is NewPercent for package-level constants. It panics on an
// out-of-range value.
func MustPercent(v int) Percent {
	p, err := NewPercent(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Int returns the weight as an integer percentage.
func (p Percent) Int() int { return int(p.v) }

func (p Percent) String() string { return fmt.Sprintf("%d%%", p.v) }

// Hex formats c as six uppercase hex digits without a leading '#',
// e.g. RGB{10, 0, 0} -> "0A0000".
func Hex(c RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex reads "#rrggbb" or "rrggbb" (any case) into an RGB.
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Colorful converts c to a go-colorful value for perceptual calculations.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Mix blends a toward b. weight is the share of b in the result, so a weight
// of 0% returns a and 100% returns b.
//
// Each channel is computed in integer arithmetic as
// (a*(100-w) + b*w) / 100, rounded half up. The result is always within
// [0,255] because it is a convex combination of two 8-bit values.
func Mix(a, b RGB, weight Percent) RGB {
	w := int(weight.v)
	return RGB{
		R: mixChannel(a.R, b.R, w),
		G: mixChannel(a.G, b.G, w),
		B: mixChannel(a.B, b.B, w),
	}
}

func mixChannel(a, b uint8, w int) uint8 {
	sum := int(a)*(100-w) + int(b)*w
	return uint8((sum + 50) / 100)
}
