// Package palette turns one of the four Catppuccin flavours into the flat set
// of hex strings that templates render against.
package palette

import (
	"errors"
	"fmt"
	"strings"

	catppuccin "github.com/catppuccin/go"
)

// Flavour is one of the four Catppuccin palettes.
type Flavour int

const (
	Latte Flavour = iota
	Frappe
	Macchiato
	Mocha
)

// ErrInvalidFlavour is matched by errors.Is for any InvalidFlavourError.
var ErrInvalidFlavour = errors.New("invalid flavour")

// InvalidFlavourError reports a flavour name outside the closed set.
type InvalidFlavourError struct {
	Value string
}

func (e *InvalidFlavourError) Error() string {
	return fmt.Sprintf("invalid flavour %q (want one of: %s)", e.Value, strings.Join(Slugs(), ", "))
}

func (e *InvalidFlavourError) Is(target error) bool { return target == ErrInvalidFlavour }

// All returns every flavour, lightest first.
func All() []Flavour {
	return []Flavour{Latte, Frappe, Macchiato, Mocha}
}

// Slugs returns the lowercase identifiers accepted on the command line.
func Slugs() []string {
	all := All()
	out := make([]string, len(all))
	for i, f := range all {
		out[i] = f.Slug()
	}
	return out
}

// ParseFlavour matches s case-insensitively against the flavour slugs.
// "frappé" is accepted as an alias for frappe.
func ParseFlavour(s string) (Flavour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latte":
		return Latte, nil
	case "frappe", "frappé":
		return Frappe, nil
	case "macchiato":
		return Macchiato, nil
	case "mocha":
		return Mocha, nil
	}
	return 0, &InvalidFlavourError{Value: s}
}

// Slug is the lowercase command-line identifier.
func (f Flavour) Slug() string {
	switch f {
	case Latte:
		return "latte"
	case Frappe:
		return "frappe"
	case Macchiato:
		return "macchiato"
	case Mocha:
		return "mocha"
	}
	return fmt.Sprintf("flavour(%d)", int(f))
}

// String returns the display name, e.g. "Mocha".
func (f Flavour) String() string {
	switch f {
	case Latte:
		return "Latte"
	case Frappe:
		return "Frappé"
	case Macchiato:
		return "Macchiato"
	case Mocha:
		return "Mocha"
	}
	return fmt.Sprintf("Flavour(%d)", int(f))
}

// colours returns the upstream palette for f. It panics on a value outside the
// enum; every exported constructor yields one of the four constants.
func (f Flavour) colours() catppuccin.Flavour {
	switch f {
	case Latte:
		return catppuccin.Latte
	case Frappe:
		return catppuccin.Frappe
	case Macchiato:
		return catppuccin.Macchiato
	case Mocha:
		return catppuccin.Mocha
	}
	panic(fmt.Sprintf("palette: unknown flavour %d", int(f)))
}
