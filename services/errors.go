package services

import "errors"

// Service errors. Controllers match these with errors.Is to pick the HTTP
// status; anything else is a store or gateway failure surfaced as a 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid id")
	ErrNotFound   = errors.New("not found")
	ErrGateway    = errors.New("payment gateway error")
)
