package service

import "errors"

// Service errors callers check with errors.Is. The API layer maps them to status codes.
var (
	// ErrForbidden indicates the caller may not act on the resource.
	// API layer should map this to HTTP 403 Forbidden.
	ErrForbidden = errors.New("operation not allowed for this user")

	// ErrCommentLimit indicates the user already commented this animal today.
	// API layer should map this to HTTP 409 Conflict.
	ErrCommentLimit = errors.New("only one comment per animal per day")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
