package themes

import (
	"net/http"
)

// Selection reads and writes the visitor's stored theme choice. Implemented
// by the session manager; the empty string means no choice has been made.
type Selection interface {
	Theme(r *http.Request) string
	SetTheme(r *http.Request, name string)
}

// Resolver turns logical page names into theme-qualified template paths
// based on the visitor's session.
type Resolver struct {
	selection Selection
	fallback  string
}

// NewResolver creates a resolver that consults selection and falls back to
// the given theme when the session holds none.
func NewResolver(selection Selection, fallback string) *Resolver {
	return &Resolver{selection: selection, fallback: fallback}
}

// Current returns the visitor's selected theme, or the fallback when the
// session holds no selection.
func (r *Resolver) Current(req *http.Request) string {
	if theme := r.selection.Theme(req); theme != "" {
		return theme
	}
	return r.fallback
}

// Resolve returns the template path for page under the visitor's current
// theme. The stored selection is not validated here; switching is the only
// guarded write, so a stale value surfaces as a missing-template render
// error rather than a silent fallback.
func (r *Resolver) Resolve(req *http.Request, page string) string {
	return TemplatePath(r.Current(req), page)
}

// Switch stores name as the visitor's selection and reports whether it was
// accepted. Names outside the supported set leave the selection unchanged.
func (r *Resolver) Switch(req *http.Request, name string) bool {
	if !IsSupported(name) {
		return false
	}
	r.selection.SetTheme(req, name)
	return true
}
