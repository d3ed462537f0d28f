package domain

import "errors"

// Request-scoped failures. Handlers map these onto the HTTP error envelope:
// not-found → 404, credential/ownership failures → 401, uniqueness → 409.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdNotFound         = errors.New("ad not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOwner           = errors.New("only the ad owner can perform this action")
	ErrLoginTaken         = errors.New("login already taken")
)
