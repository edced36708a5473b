// Package session holds the per-browser-session state of the edit flows.
//
// The edit flows are two-step: a "load" action stages one record's fields,
// and a later "save" action reads them back. Staged state lives in an scs
// session backed by the same SQLite file as the rest of the data, so it is
// scoped to one browser session rather than to the process.
package session

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/rmaia/biblioteca/internal/config"
)

// Session data keys for the edit-staging state.
const (
	keyAuthorID   = "edit_author_id"
	keyAuthorName = "edit_author_name"

	keyBookID         = "edit_book_id"
	keyBookTitle      = "edit_book_title"
	keyBookAuthorID   = "edit_book_author_id"
	keyBookCategoryID = "edit_book_category_id"
	keyBookQuantity   = "edit_book_quantity"

	keyFlashInfo    = "flash_info"
	keyFlashWarning = "flash_warning"
)

// StagedAuthor is the author edit state between load and save.
type StagedAuthor struct {
	ID   uint
	Name string
}

// StagedBook is the book edit state between load and save.
type StagedBook struct {
	ID         uint
	Title      string
	AuthorID   uint
	CategoryID uint
	Quantity   int
}

// Manager wraps scs.SessionManager with application-specific methods.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a configured session manager on top of the given SQLite
// connection (the underlying *sql.DB from GORM).
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
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
	sm.IdleTimeout = cfg.Lifetime / 2

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// StageAuthor stores the author edit state, overwriting any previous one.
func (m *Manager) StageAuthor(r *http.Request, id uint, name string) {
	m.Put(r.Context(), keyAuthorID, int(id))
	m.Put(r.Context(), keyAuthorName, name)
}

// StagedAuthor returns the staged author edit state, if any. The state stays
// staged until overwritten by another load or the session expires; saving an
// author does not clear it.
func (m *Manager) StagedAuthor(r *http.Request) (StagedAuthor, bool) {
	if !m.Exists(r.Context(), keyAuthorID) {
		return StagedAuthor{}, false
	}
	return StagedAuthor{
		ID:   uint(m.GetInt(r.Context(), keyAuthorID)),
		Name: m.GetString(r.Context(), keyAuthorName),
	}, true
}

// StageBook stores the book edit state, overwriting any previous one.
func (m *Manager) StageBook(r *http.Request, book StagedBook) {
	m.Put(r.Context(), keyBookID, int(book.ID))
	m.Put(r.Context(), keyBookTitle, book.Title)
	m.Put(r.Context(), keyBookAuthorID, int(book.AuthorID))
	m.Put(r.Context(), keyBookCategoryID, int(book.CategoryID))
	m.Put(r.Context(), keyBookQuantity, book.Quantity)
}

// StagedBook returns the staged book edit state, if any.
func (m *Manager) StagedBook(r *http.Request) (StagedBook, bool) {
	if !m.Exists(r.Context(), keyBookID) {
		return StagedBook{}, false
	}
	return StagedBook{
		ID:         uint(m.GetInt(r.Context(), keyBookID)),
		Title:      m.GetString(r.Context(), keyBookTitle),
		AuthorID:   uint(m.GetInt(r.Context(), keyBookAuthorID)),
		CategoryID: uint(m.GetInt(r.Context(), keyBookCategoryID)),
		Quantity:   m.GetInt(r.Context(), keyBookQuantity),
	}, true
}

// ClearBook removes all staged book keys. Called after a book edit save.
func (m *Manager) ClearBook(r *http.Request) {
	m.Remove(r.Context(), keyBookID)
	m.Remove(r.Context(), keyBookTitle)
	m.Remove(r.Context(), keyBookAuthorID)
	m.Remove(r.Context(), keyBookCategoryID)
	m.Remove(r.Context(), keyBookQuantity)
}

// FlashInfo queues an informational message for the next page render.
func (m *Manager) FlashInfo(r *http.Request, msg string) {
	m.Put(r.Context(), keyFlashInfo, msg)
}

// FlashWarning queues a warning message for the next page render.
func (m *Manager) FlashWarning(r *http.Request, msg string) {
	m.Put(r.Context(), keyFlashWarning, msg)
}

// PopFlashes returns and clears the queued flash messages.
func (m *Manager) PopFlashes(r *http.Request) (info, warning string) {
	return m.PopString(r.Context(), keyFlashInfo), m.PopString(r.Context(), keyFlashWarning)
}

// GenerateSecret returns a random hex-encoded 32-byte secret, used for CSRF
// signing when SESSION_SECRET is not configured.
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
