package domain

import "errors"

var (
	// ErrUserNotFound is returned when a user lookup by id finds nothing
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a registration or update collides
	// with an already registered email
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrArticleNotFound is returned when an article lookup by id finds nothing
	ErrArticleNotFound = errors.New("article not found")
	// ErrForbidden is returned when a mutating article operation is attempted
	// by someone who is neither the author nor an admin
	ErrForbidden = errors.New("operation not permitted")
	// ErrInvalidCredentials is returned on login for both unknown email and
	// password mismatch, deliberately indistinguishable
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for mis-signed, malformed or expired tokens
	ErrInvalidToken = errors.New("invalid token")
)
