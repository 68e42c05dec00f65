package inspect

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input file is not a readable pptx package.
var ErrInvalidFormat = errors.New("invalid pptx format")

// SlideError represents an error while reading one slide part.
type SlideError struct {
	Index int    // 1-based slide number
	Part  string // zip entry name
	Err   error
}

func (e *SlideError) Error() string {
	return fmt.Sprintf("slide %d (%s): %v", e.Index, e.Part, e.Err)
}

func (e *SlideError) Unwrap() error {
	return e.Err
}
