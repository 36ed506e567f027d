package sim

import "errors"

// Error kinds surfaced by the model facade. Callers branch with errors.Is:
// ErrValidation means the inputs were bad and can be corrected, while
// ErrNotImplemented marks a permanent capability gap no input will satisfy.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotImplemented = errors.New("not implemented")
)
