package render

import (
	"errors"
	"fmt"

	"github.com/aymerick/raymond/ast"
)

// checker walks a parsed template and rejects anything the context cannot
// satisfy before the engine runs. The engine itself renders unknown names as
// empty strings, so this pass is what makes rendering strict.
type checker struct {
	fields  map[string]string
	helpers map[string]int // name -> arity
}

// Block helpers that keep the current context, so names inside them resolve
// against the same fields.
var conditionalBlocks = map[string]bool{
	"if":     true,
	"unless": true,
}

func (c *checker) node(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Program:
		if n == nil {
			return nil
		}
		for _, stmt := range n.Body {
			if err := c.node(stmt); err != nil {
				return err
			}
		}
	case *ast.MustacheStatement:
		return c.expression(n.Expression)
	case *ast.BlockStatement:
		return c.block(n)
	case *ast.PartialStatement:
		return &Error{Kind: KindParse, Line: n.Location().Line, Err: errors.New("partials are not supported")}
	case *ast.ContentStatement, *ast.CommentStatement:
	}
	return nil
}

func (c *checker) block(b *ast.BlockStatement) error {
	e := b.Expression
	line := b.Location().Line

	name := calleeName(e)
	if !conditionalBlocks[name] {
		return &Error{Kind: KindHelper, Name: name, Line: line, Err: errors.New("unsupported block helper")}
	}
	if len(e.Params) != 1 || e.Hash != nil {
		return &Error{Kind: KindHelper, Name: name, Line: line,
			Err: fmt.Errorf("expects exactly one argument, got %d", len(e.Params))}
	}
	if err := c.condition(e.Params[0]); err != nil {
		return err
	}
	if b.Program != nil {
		if err := c.node(b.Program); err != nil {
			return err
		}
	}
	if b.Inverse != nil {
		return c.node(b.Inverse)
	}
	return nil
}

func (c *checker) expression(e *ast.Expression) error {
	path, ok := e.Path.(*ast.PathExpression)
	if !ok {
		return &Error{Kind: KindUndefinedField, Name: e.Path.String(), Line: e.Location().Line}
	}

	if arity, ok := c.helper(path); ok {
		if len(e.Params) != arity || e.Hash != nil {
			return &Error{Kind: KindHelper, Name: path.Original, Line: path.Location().Line,
				Err: fmt.Errorf("expects exactly %d argument, got %d", arity, len(e.Params))}
		}
		for _, p := range e.Params {
			if err := c.stringArg(path.Original, p); err != nil {
				return err
			}
		}
		return nil
	}

	if len(e.Params) > 0 || e.Hash != nil {
		return &Error{Kind: KindHelper, Name: path.Original, Line: path.Location().Line,
			Err: errors.New("unknown helper")}
	}
	return c.path(path)
}

// stringArg accepts any argument that evaluates to a string.
func (c *checker) stringArg(helper string, n ast.Node) error {
	switch n := n.(type) {
	case *ast.PathExpression:
		return c.path(n)
	case *ast.StringLiteral:
		return nil
	case *ast.SubExpression:
		return c.subExpression(n)
	}
	return &Error{Kind: KindHelper, Name: helper, Line: n.Location().Line,
		Err: fmt.Errorf("expects a string argument, got %s", n.String())}
}

func (c *checker) condition(n ast.Node) error {
	switch n := n.(type) {
	case *ast.PathExpression:
		return c.path(n)
	case *ast.SubExpression:
		return c.subExpression(n)
	}
	return nil
}

// subExpression requires a helper call; a bare field has nothing to invoke.
func (c *checker) subExpression(s *ast.SubExpression) error {
	path, ok := s.Expression.Path.(*ast.PathExpression)
	if !ok {
		return &Error{Kind: KindHelper, Name: s.Expression.Path.String(), Line: s.Location().Line,
			Err: errors.New("not a helper")}
	}
	if _, ok := c.helper(path); !ok {
		return &Error{Kind: KindHelper, Name: path.Original, Line: path.Location().Line,
			Err: errors.New("unknown helper")}
	}
	return c.expression(s.Expression)
}

func (c *checker) helper(p *ast.PathExpression) (int, bool) {
	if p.Data || p.Depth > 0 || len(p.Parts) != 1 {
		return 0, false
	}
	arity, ok := c.helpers[p.Parts[0]]
	return arity, ok
}

func (c *checker) path(p *ast.PathExpression) error {
	undefined := &Error{Kind: KindUndefinedField, Name: p.Original, Line: p.Location().Line}
	if p.Data || p.Depth > 0 || len(p.Parts) != 1 {
		return undefined
	}
	if _, ok := c.fields[p.Parts[0]]; !ok {
		return undefined
	}
	return nil
}

func calleeName(e *ast.Expression) string {
	if p, ok := e.Path.(*ast.PathExpression); ok {
		return p.Original
	}
	return e.Path.String()
}
