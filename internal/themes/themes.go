// Package themes maps logical page names to the template files of the
// visitor's selected theme.
//
// A theme is a self-contained directory of page templates under the
// templates root. All themes render the same handler data; only the markup
// and styling differ, so swapping a theme never touches the backend.
package themes

import (
	"fmt"
	"slices"
)

// Logical page names shared by every theme.
const (
	PageList = "list"
	PageView = "view"
	PageForm = "form"
)

// Theme identifies one bundled template set.
type Theme struct {
	Name  string // directory name under the templates root
	Label string // display name in the switcher control
}

// supportedThemes is the allow-list for the theme switcher. Each name must
// match a directory under the templates root containing all three pages.
var supportedThemes = []Theme{
	{Name: "generic", Label: "Generic"},
	{Name: "ui_toolkit", Label: "UI Toolkit"},
	{Name: "midnight", Label: "Midnight"},
	{Name: "paperback", Label: "Paperback"},
	{Name: "terminal", Label: "Terminal"},
	{Name: "sakura", Label: "Sakura"},
	{Name: "ocean", Label: "Ocean"},
	{Name: "newsprint", Label: "Newsprint"},
	{Name: "amber", Label: "Amber"},
	{Name: "slate", Label: "Slate"},
}

// All returns the supported themes in switcher display order.
func All() []Theme {
	return slices.Clone(supportedThemes)
}

// IsSupported reports whether name is one of the bundled themes.
func IsSupported(name string) bool {
	return slices.ContainsFunc(supportedThemes, func(t Theme) bool {
		return t.Name == name
	})
}

// TemplatePath returns the template name for a page within a theme,
// e.g. "generic/list.html". The result matches the names produced by
// LoadTemplates.
func TemplatePath(theme, page string) string {
	return fmt.Sprintf("%s/%s.html", theme, page)
}
