package loader

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *SyntaxError through errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is returned when a parser rejects a file's content.
// It unwraps to the parser's own error.
type SyntaxError struct {
	Format string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed %s: %v", e.Format, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// FormatError is returned when no parser is registered for a file.
type FormatError struct {
	Path      string
	Available []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("no parser for %s\nSupported suffixes: %v", e.Path, e.Available)
}

// IsSyntaxError reports whether err is a parse failure from any format.
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrSyntax)
}
