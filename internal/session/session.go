package session

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/yomu/bookshelf/internal/config"
)

// Session data keys
const (
	KeyTheme = "theme"
)

// Manager wraps scs.SessionManager with application-specific methods. The
// only session-scoped value is the visitor's theme selection.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a configured session manager.
// The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, cfg config.Sessions) (*Manager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime
	sm.IdleTimeout = cfg.Lifetime / 2 // Half of lifetime for inactivity

	// Configure cookie security
	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode // Lax: keep the theme on navigations in from other sites
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// Theme returns the visitor's stored theme selection, or "" when the session
// holds none.
func (sm *Manager) Theme(r *http.Request) string {
	return sm.GetString(r.Context(), KeyTheme)
}

// SetTheme stores name as the visitor's theme selection. Validation is the
// caller's job; this writes whatever it is given.
func (sm *Manager) SetTheme(r *http.Request, name string) {
	sm.Put(r.Context(), KeyTheme, name)
}

// GenerateSecret creates a random 32-byte hex secret for CSRF signing.
func GenerateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
