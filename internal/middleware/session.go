package middleware

import (
	"net/http"

	"github.com/josh-kwaku/invoice-dashboard/internal/auth"
	"github.com/josh-kwaku/invoice-dashboard/internal/handler"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/session"
)

// RequireSession redirects to the login route unless a credential is
// stored. Presence is all that is checked; the invoice service decides
// validity.
func RequireSession(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, ok := store.Get()
			if !ok {
				handler.RedirectToLogin(w, r)
				return
			}

			ctx := r.Context()
			if username, _, err := auth.ParseBasic(credential); err == nil {
				ctx = auth.ContextWithUsername(ctx, username)
				ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("username", username))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
