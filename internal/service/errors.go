package service

import "github.com/josh-kwaku/invoice-dashboard/internal/domain"

// FormError is a submission rejected locally. No request was sent.
type FormError struct {
	Message string
}

func (e *FormError) Error() string { return e.Message }

func (e *FormError) Unwrap() error { return domain.ErrValidation }

func invalid(msg string) error {
	return &FormError{Message: msg}
}

// SubmitError is a submission the API refused or never answered.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }

func (e *SubmitError) Unwrap() error { return e.Err }
