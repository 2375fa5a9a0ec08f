package lifecycle

import "errors"

// Error kinds shared by every moderated content type. Handlers map these to
// HTTP status codes; services wrap them with context via fmt.Errorf and %w.
var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)
