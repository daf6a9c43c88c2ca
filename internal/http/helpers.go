package http

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for JSON errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, "internal server error")
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// --- Redirect Safety ---

// isLocalPath validates that a redirect path is local to prevent open redirect attacks.
// Returns true if the path is safe for redirect (local path only).
func isLocalPath(path string) bool {
	if path == "" {
		return false
	}

	// Must start with /
	if !strings.HasPrefix(path, "/") {
		return false
	}

	// Reject protocol-relative URLs (//evil.com)
	if strings.HasPrefix(path, "//") {
		return false
	}

	// Reject URLs with schemes
	if strings.Contains(path, "://") {
		return false
	}

	// Reject paths with backslashes (potential bypass attempts)
	if strings.Contains(path, "\\") {
		return false
	}

	return true
}

// refererPath extracts the local path of the request's Referer header for a
// bounce-back redirect, defaulting to "/" when the header is absent, not a
// parseable URL, or points off-site.
func refererPath(c *gin.Context) string {
	referer := c.Request.Referer()
	if referer == "" {
		return "/"
	}

	parsed, err := url.Parse(referer)
	if err != nil {
		return "/"
	}

	path := parsed.Path
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	if !isLocalPath(path) {
		return "/"
	}
	return path
}
