package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yomu/bookshelf/internal/database"
)

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Status reports liveness plus a database ping. A nil database (tests,
// partial wiring) is reported but does not count against health.
func (h *HealthController) Status(c *gin.Context) {
	dbCheck, dbHealthy := h.databaseCheck()

	status, code := "healthy", http.StatusOK
	if !dbHealthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.IndentedJSON(code, HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  map[string]string{"database": dbCheck},
	})
}

func (h *HealthController) databaseCheck() (string, bool) {
	if h.db == nil {
		return "not configured", true
	}
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return "error: " + err.Error(), false
	}
	if err := sqlDB.Ping(); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}
