package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrMissingID       = errors.New("missing identifier")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrExceedsBalance  = errors.New("amount exceeds outstanding balance")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidBalance  = errors.New("invalid balance value")
)
