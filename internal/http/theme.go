package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yomu/bookshelf/internal/themes"
)

// ThemeController handles the theme switcher control rendered on every page.
type ThemeController struct {
	resolver *themes.Resolver
}

func NewThemeController(resolver *themes.Resolver) *ThemeController {
	return &ThemeController{resolver: resolver}
}

// SetTheme stores a supported theme name in the visitor's session and
// bounces back to the referring page (or the list when there is none).
// Unsupported names leave the stored selection unchanged.
// POST /set_theme
func (controller *ThemeController) SetTheme(c *gin.Context) {
	controller.resolver.Switch(c.Request, c.PostForm("theme"))
	c.Redirect(http.StatusFound, refererPath(c))
}
