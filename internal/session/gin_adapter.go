package session

import (
	"bufio"
	"net"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// committingWriter wraps the response writer so the session cookie is
// committed immediately before the first byte of the response goes out.
// Gin handlers write through c.Writer directly, so scs's own LoadAndSave
// wrapper cannot be used as-is.
type committingWriter struct {
	gin.ResponseWriter
	manager     *Manager
	request     *http.Request
	headersSent bool
	committed   bool
}

func (w *committingWriter) WriteHeader(code int) {
	w.commitSession()
	w.ResponseWriter.WriteHeader(code)
}

func (w *committingWriter) WriteHeaderNow() {
	w.commitSession()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *committingWriter) Write(b []byte) (int, error) {
	w.commitSession()
	return w.ResponseWriter.Write(b)
}

// commitSession persists the session and sets its cookie, once. An untouched
// session is left alone so anonymous page views issue no cookie at all.
func (w *committingWriter) commitSession() {
	if w.headersSent {
		return
	}
	w.headersSent = true
	if w.committed {
		return
	}
	w.committed = true

	ctx := w.request.Context()
	switch w.manager.Status(ctx) {
	case scs.Modified:
		token, expiry, err := w.manager.Commit(ctx)
		if err != nil {
			return
		}
		w.manager.WriteSessionCookie(ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.manager.WriteSessionCookie(ctx, w.ResponseWriter, "", time.Time{})
	}
}

func (w *committingWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.Hijack()
}

// LoadSave returns the Gin middleware that loads the visitor's session into
// the request context and commits it on the way out. It must run before any
// handler that reads or writes session values.
func (sm *Manager) LoadSave() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(sm.Cookie.Name); err == nil {
			token = cookie.Value
		}

		// An unknown or expired token loads as a fresh empty session.
		ctx, err := sm.Load(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(ctx)

		writer := &committingWriter{
			ResponseWriter: c.Writer,
			manager:        sm,
			request:        c.Request,
		}
		c.Writer = writer

		c.Next()

		// Bodyless responses never trigger the writer wrapper.
		if !writer.headersSent {
			writer.commitSession()
		}
	}
}
