package progression

import "errors"

var (
	ErrInvalidProgression     = errors.New("progression: invalid progression order")
	ErrUnsupportedProgression = errors.New("progression: unsupported progression order")
	ErrInvalidBounds          = errors.New("progression: invalid iteration bounds")
	ErrInvalidGeometry        = errors.New("progression: invalid tile geometry")
	ErrExhausted              = errors.New("progression: iterator exhausted")
)
