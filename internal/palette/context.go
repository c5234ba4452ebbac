package palette

import (
	catppuccin "github.com/catppuccin/go"

	"github.com/thisguymartin/steep/internal/color"
)

// Blend weights toward base for the derived red/green variants.
var (
	variantWeight1 = color.MustPercent(20)
	variantWeight2 = color.MustPercent(40)
)

// Context is the flat record a template is rendered against. Every field
// except Flavour is a six-digit uppercase hex string.
type Context struct {
	Flavour   string
	Text      string
	Base      string
	Mantle    string
	Crust     string
	Rosewater string
	Mauve     string
	Blue      string
	Sky       string
	Teal      string
	Peach     string
	Green     string
	Green1    string
	Green2    string
	Yellow    string
	Pink      string
	Red       string
	Red1      string
	Red2      string
	Maroon    string
	Surface0  string
	Surface1  string
	Surface2  string
	Overlay0  string
}

// Fields lists the placeholder names in the order they are declared on Context.
func Fields() []string {
	return []string{
		"flavour",
		"text", "base", "mantle", "crust",
		"rosewater", "mauve", "blue", "sky", "teal", "peach",
		"green", "green1", "green2",
		"yellow", "pink",
		"red", "red1", "red2",
		"maroon",
		"surface0", "surface1", "surface2",
		"overlay0",
	}
}

// Build derives the render context for f. The result depends only on f.
func Build(f Flavour) Context {
	p := f.colours()

	base := rgb(p.Base())
	red := rgb(p.Red())
	green := rgb(p.Green())

	return Context{
		Flavour:   f.String(),
		Text:      hex(p.Text()),
		Base:      color.Hex(base),
		Mantle:    hex(p.Mantle()),
		Crust:     hex(p.Crust()),
		Rosewater: hex(p.Rosewater()),
		Mauve:     hex(p.Mauve()),
		Blue:      hex(p.Blue()),
		Sky:       hex(p.Sky()),
		Teal:      hex(p.Teal()),
		Peach:     hex(p.Peach()),
		Green:     color.Hex(green),
		Green1:    color.Hex(color.Mix(green, base, variantWeight1)),
		Green2:    color.Hex(color.Mix(green, base, variantWeight2)),
		Yellow:    hex(p.Yellow()),
		Pink:      hex(p.Pink()),
		Red:       color.Hex(red),
		Red1:      color.Hex(color.Mix(red, base, variantWeight1)),
		Red2:      color.Hex(color.Mix(red, base, variantWeight2)),
		Maroon:    hex(p.Maroon()),
		Surface0:  hex(p.Surface0()),
		Surface1:  hex(p.Surface1()),
		Surface2:  hex(p.Surface2()),
		Overlay0:  hex(p.Overlay0()),
	}
}

// Map exposes the context keyed by placeholder name.
func (c Context) Map() map[string]string {
	return map[string]string{
		"flavour":   c.Flavour,
		"text":      c.Text,
		"base":      c.Base,
		"mantle":    c.Mantle,
		"crust":     c.Crust,
		"rosewater": c.Rosewater,
		"mauve":     c.Mauve,
		"blue":      c.Blue,
		"sky":       c.Sky,
		"teal":      c.Teal,
		"peach":     c.Peach,
		"green":     c.Green,
		"green1":    c.Green1,
		"green2":    c.Green2,
		"yellow":    c.Yellow,
		"pink":      c.Pink,
		"red":       c.Red,
		"red1":      c.Red1,
		"red2":      c.Red2,
		"maroon":    c.Maroon,
		"surface0":  c.Surface0,
		"surface1":  c.Surface1,
		"surface2":  c.Surface2,
		"overlay0":  c.Overlay0,
	}
}

func rgb(c catppuccin.Color) color.RGB {
	return color.RGB{R: uint8(c.RGB[0]), G: uint8(c.RGB[1]), B: uint8(c.RGB[2])}
}

func hex(c catppuccin.Color) string {
	return color.Hex(rgb(c))
}
