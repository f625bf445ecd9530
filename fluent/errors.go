package fluent

import (
	"errors"
	"fmt"
)

// Syntax errors. All of them reject the whole resource at parse time.
var (
	ErrDuplicateMessage   = errors.New("duplicate message key")
	ErrNoDefaultVariant   = errors.New("select expression has no default (*) variant")
	ErrUnterminatedSelect = errors.New("unterminated select expression")
	ErrBadPlaceable       = errors.New("malformed placeable")
	ErrBadVariant         = errors.New("malformed variant")
	ErrBadEntry           = errors.New("expected `key = value` entry")
)

// ParseError locates a syntax error within a resource.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(path string, line int, sentinel error, format string, args ...any) error {
	if format == "" {
		return &ParseError{Path: path, Line: line, Err: sentinel}
	}
	return &ParseError{
		Path: path,
		Line: line,
		Err:  fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}
