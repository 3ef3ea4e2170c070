package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/josh-kwaku/invoice-dashboard/internal/apiclient"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/service"
)

type sessionService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
}

type SessionHandler struct {
	sessions sessionService
}

func NewSessionHandler(sessions sessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the credentials upstream and, on success, redirects to
// the dashboard.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	err := h.sessions.Login(r.Context(), req.Username, req.Password)
	var formErr *service.FormError
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.As(err, &formErr):
		RespondAppError(w, ErrValidationFailed.WithMessage(formErr.Message), nil)
	case errors.Is(err, apiclient.ErrUnauthorized):
		RespondAppError(w, ErrInvalidCredentials, nil)
	default:
		RespondAppError(w, ErrUpstreamError.WithMessage(err.Error()), nil)
	}
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		logging.FromContext(r.Context()).Error("logout failed", "error", err)
		RespondAppError(w, ErrInternalError, nil)
		return
	}
	RedirectToLogin(w, r)
}
