// Package domain holds the house and person models, their request and
// response shapes, and the error constructors shared by the service layer.
package domain

import (
	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
)

// NotFound reports a missing entity of the given kind.
func NotFound(kind string, id uuid.UUID) error {
	return errors.WithContext(
		errors.Newf(errors.CodeNotFound, "%s with uuid %s is not found", kind, id),
		"uuid", id.String(),
	)
}

// InvalidInput reports a request that cannot be applied.
func InvalidInput(format string, args ...any) error {
	return errors.Newf(errors.CodeInvalidInput, format, args...)
}

// IsNotFound reports whether err carries the not-found code.
func IsNotFound(err error) bool {
	return errors.GetCode(err) == errors.CodeNotFound
}
