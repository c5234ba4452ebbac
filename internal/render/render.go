// Package render fills Handlebars templates from a palette context.
//
// Rendering is strict: a placeholder that names anything other than a context
// field or a registered helper fails the whole render instead of producing an
// empty string. The only helper is titlecase, which takes one string.
package render

import (
	"github.com/aymerick/raymond"
	"github.com/aymerick/raymond/parser"

	"github.com/thisguymartin/steep/internal/palette"
)

// Renderer renders templates with a fixed helper table.
type Renderer struct {
	helpers map[string]func(string) string
}

// New returns a Renderer with the titlecase helper registered.
func New() *Renderer {
	return &Renderer{
		helpers: map[string]func(string) string{
			"titlecase": TitleCase,
		},
	}
}

// Render resolves every placeholder in text against ctx. Text outside
// placeholders is copied through unchanged. Nothing is returned on failure.
func (r *Renderer) Render(text string, ctx palette.Context) (string, error) {
	data := ctx.Map()

	prog, err := parser.Parse(text)
	if err != nil {
		return "", parseError(err)
	}

	arity := make(map[string]int, len(r.helpers))
	for name := range r.helpers {
		arity[name] = 1
	}
	c := &checker{fields: data, helpers: arity}
	if err := c.node(prog); err != nil {
		return "", err
	}

	tpl, err := raymond.Parse(text)
	if err != nil {
		return "", parseError(err)
	}
	for name, fn := range r.helpers {
		tpl.RegisterHelper(name, fn)
	}

	out, err := tpl.Exec(data)
	if err != nil {
		return "", &Error{Kind: KindHelper, Err: err}
	}
	return out, nil
}
