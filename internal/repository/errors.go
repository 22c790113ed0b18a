package repository

import "errors"

// Login outcomes. Every other failure is an *api.Error.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrServerUnavailable  = errors.New("server unavailable, try again later")
	ErrLoginFailed        = errors.New("login failed")
)
