package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yomu/bookshelf/internal/database"
)

func setupHealthRouter(db *database.Database, version string) *gin.Engine {
	router := gin.New()
	controller := NewHealthController(db, version)
	router.GET("/health", controller.Status)
	return router
}

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	return health
}

func TestHealthStatus_Healthy(t *testing.T) {
	dbPath := "./test_health_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer func() {
		db.Close()
		os.Remove(dbPath)
	}()

	router := setupHealthRouter(db, "1.2.3")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	health := decodeHealth(t, w)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "ok", health.Checks["database"])
	assert.Equal(t, "1.2.3", health.Version)

	_, err = time.Parse(time.RFC3339, health.Time)
	assert.NoError(t, err, "health time must be RFC3339")
}

func TestHealthStatus_NoDatabase(t *testing.T) {
	router := setupHealthRouter(nil, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	health := decodeHealth(t, w)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "not configured", health.Checks["database"])
	assert.Empty(t, health.Version)
}

func TestHealthStatus_UnhealthyDatabase(t *testing.T) {
	dbPath := "./test_health_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer os.Remove(dbPath)

	require.NoError(t, db.Close())

	router := setupHealthRouter(db, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	health := decodeHealth(t, w)
	assert.Equal(t, "unhealthy", health.Status)
	assert.Contains(t, health.Checks["database"], "error")
}
