package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const csrfContextKey = "csrf_token"

// sessionExpiredPage is served when a form post fails CSRF validation and
// there is no referring page to bounce back to.
const sessionExpiredPage = `<!DOCTYPE html>
<html>
<head><title>Session Expired</title></head>
<body style="font-family: system-ui; max-width: 400px; margin: 100px auto; text-align: center;">
<h1>Session Expired</h1>
<p>Your session has expired or the form submission was invalid.</p>
<p><a href="javascript:history.back()">Go back and try again</a></p>
</body>
</html>`

// CSRFMiddleware guards the HTML form posts with gorilla/csrf. Safe methods
// (GET, HEAD, OPTIONS, TRACE) pass through and receive a token for their
// templates to embed.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	protect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(rejectCSRF)),
	)

	return func(c *gin.Context) {
		allowed := false
		handler := protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed = true
			c.Set(csrfContextKey, csrf.Token(r))
			// r carries gorilla's context; later middleware (sessions)
			// wraps this request, so the token survives the chain.
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)

		// On rejection rejectCSRF has already written the response and the
		// inner handler never ran; stop gin from running the route on top.
		if !allowed {
			c.Abort()
		}
	}
}

// rejectCSRF answers a failed validation. API-style clients get JSON;
// browsers are sent back to the page they came from so the form can be
// retried with a fresh token.
func rejectCSRF(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"CSRF token invalid or missing"}`))
		return
	}

	if referer := r.Referer(); referer != "" {
		separator := "?"
		if strings.Contains(referer, "?") {
			separator = "&"
		}
		http.Redirect(w, r, referer+separator+"error=Session+expired.+Please+try+again.", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(sessionExpiredPage))
}

// GetCSRFToken returns the per-request token stored by CSRFMiddleware, or ""
// when the middleware is disabled.
func GetCSRFToken(c *gin.Context) string {
	if token, exists := c.Get(csrfContextKey); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}
