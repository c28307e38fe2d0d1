package manifest

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/lookgraph/internal/loader"
)

var (
	// ErrNoInputFound is returned by Build when discovery matched no files.
	ErrNoInputFound = errors.New("no model files found")

	// ErrMalformedModel is returned when a parsed tree lacks required structure.
	ErrMalformedModel = errors.New("malformed model")
)

// FileError ties a failure to the model file that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IsMalformedConfig reports whether err is a syntax failure of a model file.
func IsMalformedConfig(err error) bool {
	return loader.IsSyntaxError(err)
}

// IsMalformedModel reports whether err is a structural failure of a model file.
func IsMalformedModel(err error) bool {
	return errors.Is(err, ErrMalformedModel)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedModel, fmt.Sprintf(format, args...))
}
