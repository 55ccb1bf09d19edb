package errors

import "errors"

var (
	ErrInvalidAccountInput = errors.New("email and password are required")

	// ErrDuplicateEmail surfaces the store's email uniqueness constraint.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrWrongCredentials is returned for both an unknown email and a wrong
	// password so the endpoint cannot be used as an email-existence oracle.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrUnauthorized covers every token failure: undecodable, bad signature,
	// expired, or not yet valid.
	ErrUnauthorized = errors.New("invalid or expired session token")
)
