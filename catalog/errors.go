package catalog

import "errors"

// Render-time errors. Malformed resources never get this far; they are
// rejected when the file is parsed.
var (
	ErrLocaleNotFound  = errors.New("locale not found")
	ErrKeyNotFound     = errors.New("message key not found")
	ErrMissingArgument = errors.New("missing argument")
)
