package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/yomu/bookshelf/internal/database/books"
	"github.com/yomu/bookshelf/internal/database/categories"
	"github.com/yomu/bookshelf/internal/http"
	"github.com/yomu/bookshelf/internal/session"
	"github.com/yomu/bookshelf/internal/themes"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BooksStore implementations
var _ http.BooksStore = (*books.Repository)(nil)

// CategoriesStore implementations
var _ http.CategoriesStore = (*categories.Repository)(nil)

// =============================================================================
// Sessions
// =============================================================================

// Theme selection implementations
var _ themes.Selection = (*session.Manager)(nil)
