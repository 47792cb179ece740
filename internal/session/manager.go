package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"
)

// Config controls cookie and lifetime behavior of the session manager.
type Config struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

var sqliteSessionsDDL = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry)`,
}

// NewManager builds an scs session manager. With a SQLite database sessions are kept
// by sqlite3store, with any other gorm database by GormStore. A nil database leaves
// the in-memory store in place.
func NewManager(cfg Config, db *gorm.DB) (*scs.SessionManager, error) {
	sm := scs.New()
	sm.Lifetime = cfg.Lifetime
	sm.Cookie.Name = cfg.CookieName
	sm.Cookie.Domain = cfg.CookieDomain
	sm.Cookie.HttpOnly = true
	sm.Cookie.Persist = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.CookieSecure

	if db == nil {
		return sm, nil
	}

	if db.Dialector.Name() == "sqlite" {
		for _, stmt := range sqliteSessionsDDL {
			if err := db.Exec(stmt).Error; err != nil {
				return nil, fmt.Errorf("create sessions table: %w", err)
			}
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		sm.Store = sqlite3store.New(sqlDB)
		return sm, nil
	}

	store, err := NewGormStore(db, 5*time.Minute)
	if err != nil {
		return nil, err
	}
	sm.Store = store
	return sm, nil
}
