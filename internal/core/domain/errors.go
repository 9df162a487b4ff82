package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidMode indicates the requested whitelist mode is not one of add, remove or list.
	ErrInvalidMode = fmt.Errorf("%w: unrecognised mode", ErrInvalidInput)

	// Configuration Errors.

	// ErrMissingConfig indicates a required Adyen setting has no value in any scope.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrDecrypt indicates an encrypted value could not be decrypted.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrMalformedResponse indicates the remote API answered with a body we cannot read.
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError reports a request that never produced an HTTP status:
// dial failures, timeouts, cancelled contexts or unreadable bodies.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError checks if the error chain contains a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
