package errors

import "errors"

var (
	ErrUnauthorized  = errors.New("caller is not an administrator")
	ErrUnknownLevel  = errors.New("experience level is not in the salary table")
	ErrInvalidLevel  = errors.New("experience level is invalid")
	ErrInvalidSalary = errors.New("salary must be strictly positive")
)
