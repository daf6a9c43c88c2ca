package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseIDParam(t *testing.T) {
	t.Run("parses a numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		id, ok := parseIDParam(c, "id")

		assert.True(t, ok)
		assert.Equal(t, uint(42), id)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		_, ok := parseIDParam(c, "id")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid id")
	})

	t.Run("rejects a negative id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "-1"}}

		_, ok := parseIDParam(c, "id")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIsLocalPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"root", "/", true},
		{"plain path", "/view/7", true},
		{"path with query", "/books?page=2", true},
		{"empty", "", false},
		{"relative", "view/7", false},
		{"protocol relative", "//evil.example", false},
		{"absolute url", "https://evil.example/path", false},
		{"embedded scheme", "/redirect?to=https://evil.example", false},
		{"backslashes", "/path\\evil", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLocalPath(tt.path))
		})
	}
}

func TestRefererPath(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{"absent", "", "/"},
		{"local page", "http://localhost:5001/view/7", "/view/7"},
		{"local page with query", "http://localhost:5001/books?page=2", "/books?page=2"},
		{"off-site host is dropped", "https://elsewhere.example/books?page=2", "/books?page=2"},
		{"unparseable", ":", "/"},
		{"protocol-relative path", "http://evil.example//attacker.example", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/set_theme", nil)
			if tt.referer != "" {
				c.Request.Header.Set("Referer", tt.referer)
			}

			assert.Equal(t, tt.want, refererPath(c))
		})
	}
}
