package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

// WithMessage returns a copy of e carrying msg.
func (e *AppError) WithMessage(msg string) *AppError {
	c := *e
	c.Message = msg
	return &c
}

var (
	ErrInvalidCredentials = &AppError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials"}
	ErrInvalidRequest     = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed   = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound   = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError      = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrInvoiceNotFound  = &AppError{http.StatusNotFound, "INVOICE_NOT_FOUND", "Invoice not found"}
	ErrCustomerNotFound = &AppError{http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found"}
	ErrUpstreamRejected = &AppError{http.StatusUnprocessableEntity, "UPSTREAM_REJECTED", "The invoice service rejected the request"}
	ErrUpstreamError    = &AppError{http.StatusBadGateway, "UPSTREAM_ERROR", "The invoice service is unavailable"}
)
