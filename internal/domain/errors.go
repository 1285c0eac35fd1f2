package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidAction   = errors.New("invalid action")
	ErrInvalidCategory = errors.New("invalid category")
)
