package app

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUsernameExists    = errors.New("username already exists")
	ErrEmailExists       = errors.New("email already exists")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrArticleNotFound   = errors.New("article not found")
	ErrForbidden         = errors.New("not the owner of this resource")
	ErrConstraint        = errors.New("constraint violation")
)

// ValidationError aggregates every violated rule of one request so the
// client gets them all at once, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid data: " + strings.Join(e.Violations, "; ")
}
