package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yomu/bookshelf/internal/themes"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by CSRF's
	// request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.LoadSave())
	}

	// Load every theme's page templates, addressable by "<theme>/<page>.html"
	tmpl, err := themes.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BooksStore, cfg.CategoriesStore, cfg.ThemeResolver)
	themeController := NewThemeController(cfg.ThemeResolver)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog pages
	router.GET("/", booksController.ListPage)
	router.GET("/view/:id", booksController.ViewPage)
	router.GET("/add", booksController.AddForm)
	router.POST("/add", booksController.Add)
	router.GET("/edit/:id", booksController.EditForm)
	router.POST("/edit/:id", booksController.Edit)
	router.GET("/delete/:id", booksController.Delete)

	// Theme switching
	router.POST("/set_theme", themeController.SetTheme)

	return router, nil
}
