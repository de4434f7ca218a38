package renderer

import "errors"

var (
	ErrInvalidConfig      = errors.New("renderer: invalid configuration")
	ErrInvalidRunLimit    = errors.New("renderer: run limit must set exactly one of iterations or duration")
	ErrNoWorkersUsed      = errors.New("renderer: no worker completed an iteration")
	ErrInterrupted        = errors.New("renderer: interrupted while rendering")
	ErrResolutionMismatch = errors.New("renderer: framebuffer resolutions differ")
)
