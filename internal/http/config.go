package http

import (
	"github.com/rmaia/biblioteca/internal/database"
	"github.com/rmaia/biblioteca/internal/session"
)

// RouterConfig holds all dependencies needed to construct the router.
// Using a config struct instead of positional parameters improves
// testability and keeps NewRouter readable.
type RouterConfig struct {
	Database *database.Database

	Authors    AuthorStore
	Categories CategoryStore
	Books      BookStore
	Loans      LoanStore
	Reports    ReportStore

	Sessions *session.Manager

	TemplatesPath string
	StaticPath    string

	CSRFSecret    []byte
	SecureCookies bool

	Version string
}
