package render

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Kind classifies a render failure.
type Kind int

const (
	KindParse Kind = iota + 1
	KindUndefinedField
	KindHelper
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindUndefinedField:
		return "undefined field"
	case KindHelper:
		return "helper error"
	}
	return "render error"
}

// Sentinels for errors.Is against an *Error of the matching Kind.
var (
	ErrParse          = errors.New("template parse error")
	ErrUndefinedField = errors.New("undefined field")
	ErrHelper         = errors.New("helper error")
)

// Error is returned by Renderer.Render. Line is 1-based and zero when the
// location is unknown. Name is the offending field or helper, if any.
type Error struct {
	Kind Kind
	Name string
	Line int
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindUndefinedField:
		msg = fmt.Sprintf("undefined field %q", e.Name)
	case KindHelper:
		msg = fmt.Sprintf("helper %q", e.Name)
	default:
		msg = e.Kind.String()
	}
	if e.Line > 0 {
		msg += " on line " + strconv.Itoa(e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrParse:
		return e.Kind == KindParse
	case ErrUndefinedField:
		return e.Kind == KindUndefinedField
	case ErrHelper:
		return e.Kind == KindHelper
	}
	return false
}

// FileError reports a template that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to read template file from %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

var parseLine = regexp.MustCompile(`(?i)\bline (\d+)`)

func parseError(err error) *Error {
	e := &Error{Kind: KindParse, Err: err}
	if m := parseLine.FindStringSubmatch(err.Error()); m != nil {
		e.Line, _ = strconv.Atoi(m[1])
	}
	return e
}
