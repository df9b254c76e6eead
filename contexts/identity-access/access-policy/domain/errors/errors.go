package errors

import "errors"

var (
	ErrUnauthorized    = errors.New("caller is not an administrator")
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrInvalidRole     = errors.New("invalid role")
	ErrNotFound        = errors.New("access policy record not found")
)
