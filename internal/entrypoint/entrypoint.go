package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yomu/bookshelf/internal/config"
	"github.com/yomu/bookshelf/internal/database"
	"github.com/yomu/bookshelf/internal/database/books"
	"github.com/yomu/bookshelf/internal/database/categories"
	http_controllers "github.com/yomu/bookshelf/internal/http"
	"github.com/yomu/bookshelf/internal/session"
	"github.com/yomu/bookshelf/internal/themes"
)

// Serve runs the HTTP server until an interrupt arrives, then drains
// in-flight requests within the configured shutdown timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, draining requests for up to %v", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Get underlying SQL DB for the session store
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}

	sessionManager, err := session.NewManager(sqlDB, cfg.Sessions)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Generate or use configured CSRF secret
	var csrfSecret []byte
	if cfg.Sessions.Secret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Sessions.Secret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Sessions.Secret)
		}
	} else {
		secret, err := session.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set SESSION_SECRET to persist)")
	}

	resolver := themes.NewResolver(sessionManager, cfg.UI.DefaultTheme)

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		BooksStore:      books.NewRepository(db.DB),
		CategoriesStore: categories.NewRepository(db.DB),
		Database:        db,
		ThemeResolver:   resolver,
		SessionManager:  sessionManager,
		CSRFSecret:      csrfSecret,
		SecureCookies:   cfg.Sessions.SecureCookies,
		TemplatesPath:   cfg.UI.TemplatesPath,
		StaticPath:      cfg.UI.StaticPath,
		Version:         version,
	}

	router, err := http_controllers.NewRouter(routerCfg)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	Serve(router, cfg)
}
