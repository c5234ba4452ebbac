package palette

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	catppuccin "github.com/catppuccin/go"

	"github.com/thisguymartin/steep/internal/color"
)

var hexPattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

func TestParseFlavour(t *testing.T) {
	cases := []struct {
		input string
		want  Flavour
	}{
		{"latte", Latte},
		{"Frappe", Frappe},
		{"frappé", Frappe},
		{"MACCHIATO", Macchiato},
		{"mocha", Mocha},
		{" mocha ", Mocha},
	}
	for _, tc := range cases {
		got, err := ParseFlavour(tc.input)
		if err != nil {
			t.Errorf("ParseFlavour(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFlavour(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseFlavour_Invalid(t *testing.T) {
	for _, input := range []string{"espresso", "", "mochaa", "latte mocha"} {
		_, err := ParseFlavour(input)
		if !errors.Is(err, ErrInvalidFlavour) {
			t.Errorf("ParseFlavour(%q) error = %v; want ErrInvalidFlavour", input, err)
			continue
		}
		var ife *InvalidFlavourError
		if !errors.As(err, &ife) || ife.Value != input {
			t.Errorf("ParseFlavour(%q) error does not carry the input value: %v", input, err)
		}
		if !strings.Contains(err.Error(), "latte, frappe, macchiato, mocha") {
			t.Errorf("error message %q does not list valid flavours", err.Error())
		}
	}
}

func TestSlugRoundTrip(t *testing.T) {
	for _, f := range All() {
		got, err := ParseFlavour(f.Slug())
		if err != nil || got != f {
			t.Errorf("ParseFlavour(%q) = %v, %v; want %v", f.Slug(), got, err, f)
		}
		if !strings.EqualFold(f.colours().Name(), f.Slug()) {
			t.Errorf("%v maps to upstream palette %q", f, f.colours().Name())
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	for _, f := range All() {
		if Build(f) != Build(f) {
			t.Errorf("Build(%v) is not deterministic", f)
		}
	}
}

func TestBuild_AllFieldsPopulated(t *testing.T) {
	for _, f := range All() {
		m := Build(f).Map()
		if len(m) != len(Fields()) {
			t.Fatalf("Build(%v).Map() has %d keys; want %d", f, len(m), len(Fields()))
		}
		for _, name := range Fields() {
			v, ok := m[name]
			if !ok {
				t.Errorf("%v: field %q missing from Map()", f, name)
				continue
			}
			if name == "flavour" {
				if v != f.String() {
					t.Errorf("%v: flavour = %q; want %q", f, v, f.String())
				}
				continue
			}
			if !hexPattern.MatchString(v) {
				t.Errorf("%v: %s = %q; want six uppercase hex digits", f, name, v)
			}
		}
	}
}

func TestBuild_DerivedVariants(t *testing.T) {
	up := func(c catppuccin.Color) color.RGB {
		return color.RGB{R: uint8(c.RGB[0]), G: uint8(c.RGB[1]), B: uint8(c.RGB[2])}
	}
	for _, f := range All() {
		p := f.colours()
		base, red, green := up(p.Base()), up(p.Red()), up(p.Green())
		ctx := Build(f)

		checks := []struct {
			name string
			got  string
			want string
		}{
			{"red1", ctx.Red1, color.Hex(color.Mix(red, base, color.MustPercent(20)))},
			{"red2", ctx.Red2, color.Hex(color.Mix(red, base, color.MustPercent(40)))},
			{"green1", ctx.Green1, color.Hex(color.Mix(green, base, color.MustPercent(20)))},
			{"green2", ctx.Green2, color.Hex(color.Mix(green, base, color.MustPercent(40)))},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%v: %s = %s; want %s", f, c.name, c.got, c.want)
			}
		}
	}
}

func TestBuild_MatchesUpstreamHex(t *testing.T) {
	for _, f := range All() {
		p := f.colours()
		ctx := Build(f)
		pairs := []struct {
			got string
			up  catppuccin.Color
		}{
			{ctx.Text, p.Text()}, {ctx.Base, p.Base()}, {ctx.Crust, p.Crust()},
			{ctx.Red, p.Red()}, {ctx.Green, p.Green()}, {ctx.Overlay0, p.Overlay0()},
		}
		for _, pair := range pairs {
			want := strings.ToUpper(strings.TrimPrefix(pair.up.Hex, "#"))
			if pair.got != want {
				t.Errorf("%v: got %s; upstream hex %s", f, pair.got, want)
			}
		}
	}
}

func TestBuild_MochaKnownValues(t *testing.T) {
	ctx := Build(Mocha)
	if ctx.Flavour != "Mocha" {
		t.Errorf("Flavour = %q; want %q", ctx.Flavour, "Mocha")
	}
	if ctx.Base != "1E1E2E" {
		t.Errorf("Base = %q; want %q", ctx.Base, "1E1E2E")
	}
	if ctx.Red != "F38BA8" {
		t.Errorf("Red = %q; want %q", ctx.Red, "F38BA8")
	}
	if ctx.Red1 != "C87590" {
		t.Errorf("Red1 = %q; want %q", ctx.Red1, "C87590")
	}
	if ctx.Red2 != "9E5F77" {
		t.Errorf("Red2 = %q; want %q", ctx.Red2, "9E5F77")
	}
}

func TestFlavourDisplayNames(t *testing.T) {
	want := map[Flavour]string{Latte: "Latte", Frappe: "Frappé", Macchiato: "Macchiato", Mocha: "Mocha"}
	for f, name := range want {
		if f.String() != name {
			t.Errorf("%d.String() = %q; want %q", int(f), f.String(), name)
		}
	}
}
