package http

import (
	"github.com/yomu/bookshelf/internal/database"
	"github.com/yomu/bookshelf/internal/session"
	"github.com/yomu/bookshelf/internal/themes"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	BooksStore      BooksStore
	CategoriesStore CategoriesStore
	Database        *database.Database

	// Theme selection
	ThemeResolver *themes.Resolver

	// Session handling (nil disables the session middleware, e.g. in tests
	// that exercise handlers without cookies)
	SessionManager *session.Manager

	// CSRF protection (empty secret disables the middleware)
	CSRFSecret    []byte
	SecureCookies bool

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}
