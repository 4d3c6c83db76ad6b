package services

import "errors"

var (
	ErrAccountExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateMealDate  = errors.New("meal already logged for this date")
)
