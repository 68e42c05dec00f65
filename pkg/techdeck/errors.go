package techdeck

import (
	"errors"
	"fmt"
)

// ErrNoOutput indicates the options resolve to an empty output file name.
var ErrNoOutput = errors.New("no output file configured")

// ErrConfigNotFound indicates an explicitly requested config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// BuildError represents an error while assembling or saving the deck.
type BuildError struct {
	Slide     int    // 1-based slide number, 0 when not tied to a slide
	Component string // "image", "save"
	Err       error
}

func (e *BuildError) Error() string {
	if e.Slide == 0 {
		return fmt.Sprintf("build error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("build error on slide %d (%s): %v", e.Slide, e.Component, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(slide int, component string, err error) *BuildError {
	return &BuildError{
		Slide:     slide,
		Component: component,
		Err:       err,
	}
}
