package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionClientIDKey names the stable client identifier inside the scs
// session. It namespaces every key-value entry the client owns and, unlike
// the scs token, survives token rotation.
const SessionClientIDKey = "client_id"

// NewSessionManager creates an SCS session manager backed by the
// application DB. The driver parameter selects the appropriate store:
// "mysql", "postgres", or "sqlite3" (default).
func NewSessionManager(db *sqlx.DB, driver string, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secure
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// ClientID returns the session's stable client ID, minting one on first
// touch. Must be called inside the session manager's LoadAndSave
// middleware.
func ClientID(ctx context.Context, sm *scs.SessionManager) string {
	id := sm.GetString(ctx, SessionClientIDKey)
	if id == "" {
		id = uuid.New().String()
		sm.Put(ctx, SessionClientIDKey, id)
	}
	return id
}
