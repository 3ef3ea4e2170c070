package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/josh-kwaku/invoice-dashboard/internal/apiclient"
	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/service"
)

const LoginPath = "/login"

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Error:   nil,
	})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

func RespondValidationError(w http.ResponseWriter, fields []FieldError) {
	RespondAppError(w, ErrValidationFailed, fields)
}

// RedirectToLogin sends the client to the login route. Used whenever the
// session is missing or the invoice service has rejected it.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

// RespondError maps a failed fetch or submission. msg is the message
// already derived for display; notFound is used when the entity is gone.
func RespondError(w http.ResponseWriter, r *http.Request, err error, msg string, notFound *AppError) {
	if notFound == nil {
		notFound = ErrResourceNotFound
	}

	var (
		formErr *service.FormError
		apiErr  *apiclient.APIError
	)
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		RedirectToLogin(w, r)
	case errors.As(err, &formErr):
		RespondAppError(w, ErrValidationFailed.WithMessage(formErr.Message), nil)
	case errors.Is(err, domain.ErrMissingID):
		RespondAppError(w, ErrValidationFailed.WithMessage(msg), nil)
	case errors.Is(err, domain.ErrNotFound):
		RespondAppError(w, notFound, nil)
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		RespondAppError(w, ErrUpstreamRejected.WithMessage(msg), nil)
	default:
		RespondAppError(w, ErrUpstreamError.WithMessage(msg), nil)
	}
}
