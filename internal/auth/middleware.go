package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"
)

type contextKey string

const UserContextKey contextKey = "user"

// UserFromContext returns the authenticated user set by RequireAuth, or nil.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(UserContextKey).(*User)
	return u
}

// Middleware guards routes on the session store's derived booleans.
type Middleware struct {
	sessions *scs.SessionManager
	auth     *Manager
}

func NewMiddleware(sm *scs.SessionManager, auth *Manager) *Middleware {
	return &Middleware{sessions: sm, auth: auth}
}

// RequireAuth rejects requests without a logged-in session. On success the
// *User is set on the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := ClientID(r.Context(), m.sessions)
		user := m.auth.For(r.Context(), clientID).Current()
		if user == nil {
			writeAuthError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
			return
		}
		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin requires an admin or sub-admin user. Must be used after
// RequireAuth.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "forbidden", "FORBIDDEN")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}
