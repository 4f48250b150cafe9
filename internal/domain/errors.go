package domain

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrConflict        = errors.New("slot_overlapped")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadCredentials  = errors.New("invalid email or password")
)
