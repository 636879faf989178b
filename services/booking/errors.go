package booking

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when a request names an email other than the
// session's own.
var ErrForbidden = errors.New("forbidden")

// OwnershipError records which email a session tried to act for.
type OwnershipError struct {
	Owner     string
	Requested interface{}
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("forbidden: session %s cannot act for %v", e.Owner, e.Requested)
}

func (e *OwnershipError) Unwrap() error {
	return ErrForbidden
}

func NewOwnershipError(owner string, requested interface{}) error {
	return &OwnershipError{Owner: owner, Requested: requested}
}
