package lookml

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *ParseError through errors.Is.
var ErrSyntax = errors.New("lookml syntax error")

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Is reports whether target is ErrSyntax.
func (e *ParseError) Is(target error) bool {
	return target == ErrSyntax
}

// Common error messages
const (
	ErrUnexpectedToken        = "unexpected %s, expected %s"
	ErrUnterminatedString     = "unterminated string literal"
	ErrUnterminatedExpression = "unterminated expression, expected ;;"
	ErrDuplicateKey           = "duplicate key %q"
)
