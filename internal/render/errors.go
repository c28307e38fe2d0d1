package render

import (
	"errors"
	"fmt"
)

// ErrEngineNotFound is returned when the Graphviz engine binary is not on PATH.
var ErrEngineNotFound = errors.New("graphviz engine not found")

// RenderError is a failure to produce the output at Path.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
