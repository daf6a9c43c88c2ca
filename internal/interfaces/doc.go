// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// The application uses two categories of interfaces:
//
// ## Data Access Interfaces
//
//   - BooksStore: Catalog reads and writes (internal/http/books.go)
//   - CategoriesStore: Category lookups for the form dropdown (internal/http/books.go)
//
// ## Presentation Interfaces
//
//   - Selection: Per-session theme storage (internal/themes/resolver.go),
//     implemented by the session manager
//
// # Adding a New Theme
//
// Themes are template sets sharing one backend; adding one never touches a
// controller:
//
//  1. Register it in the allow-list in internal/themes/themes.go:
//
//     {Name: "kraft", Label: "Kraft"}
//
//  2. Create templates/kraft/ with list.html, view.html and form.html. Each
//     page receives the same data as every other theme's page; copy an
//     existing theme and restyle it.
//
//  3. The switcher control picks it up from themes.All() automatically.
//
// Theme-specific styling lives inline in the templates; static/ only carries
// the shared reset stylesheet.
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g. shelves):
//
//  1. Create sub-package: internal/database/shelves/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ ShelvesStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
