package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrValidation      = errors.New("validation failed")
)
