package auth

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/daouest/factureme/pkg/httpx"
	"github.com/daouest/factureme/pkg/logger"
)

const (
	sessionName      = "factureme_session"
	sessionUserIDKey = "user_id"
)

// RequireAuth resolves the session cookie to a user and attaches it to the
// request context. Requests without a valid session get 401.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			raw, ok := session.Values[sessionUserIDKey].(string)
			if !ok || raw == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				log.WarnContext(r.Context(), "invalid user_id in session", "user_id", raw, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			ctx := logger.WithUserID(WithUserID(r.Context(), userID), userID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Login starts an authenticated session for userID.
func Login(w http.ResponseWriter, r *http.Request, store sessions.Store, userID uuid.UUID) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	session.Values[sessionUserIDKey] = userID.String()
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout expires the session cookie and deletes the server-side session.
func Logout(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	delete(session.Values, sessionUserIDKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("expire session: %w", err)
	}
	return nil
}
