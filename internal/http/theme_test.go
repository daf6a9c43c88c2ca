package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return w.Result().Cookies()
}

func postThemeWithReferer(router *gin.Engine, theme, referer string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	form := url.Values{"theme": {theme}}
	req, _ := http.NewRequest("POST", "/set_theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSetTheme(t *testing.T) {
	t.Run("stores the selection and redirects home", func(t *testing.T) {
		router, _, cleanup := setupTestApp(t)
		defer cleanup()

		w := postForm(router, "/set_theme", url.Values{"theme": {"midnight"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		require.NotEmpty(t, sessionCookies(w), "a theme switch must persist a session")

		list := getPage(router, "/", sessionCookies(w)...)
		assert.Contains(t, list.Body.String(), `<option value="midnight" selected>Midnight</option>`)
	})

	t.Run("defaults to generic without a session", func(t *testing.T) {
		router, _, cleanup := setupTestApp(t)
		defer cleanup()

		w := getPage(router, "/")

		assert.Contains(t, w.Body.String(), `<option value="generic" selected>Generic</option>`)
	})

	t.Run("keeps the previous theme when the name is unknown", func(t *testing.T) {
		router, _, cleanup := setupTestApp(t)
		defer cleanup()

		first := postForm(router, "/set_theme", url.Values{"theme": {"midnight"}})
		cookies := sessionCookies(first)
		require.NotEmpty(t, cookies)

		second := postForm(router, "/set_theme", url.Values{"theme": {"neon"}}, cookies...)
		assert.Equal(t, http.StatusFound, second.Code)

		list := getPage(router, "/", cookies...)
		assert.Contains(t, list.Body.String(), `<option value="midnight" selected>Midnight</option>`)
	})

	t.Run("redirects back to the referring page", func(t *testing.T) {
		router, _, cleanup := setupTestApp(t)
		defer cleanup()

		w := postThemeWithReferer(router, "ocean", "http://localhost:5001/view/7")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/view/7", w.Header().Get("Location"))
	})

	t.Run("redirects home without a referer", func(t *testing.T) {
		router, _, cleanup := setupTestApp(t)
		defer cleanup()

		w := postThemeWithReferer(router, "ocean", "")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("drops the host from an off-site referer", func(t *testing.T) {
		router, _, cleanup := setupTestApp(t)
		defer cleanup()

		w := postThemeWithReferer(router, "ocean", "https://elsewhere.example/books?page=2")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/books?page=2", w.Header().Get("Location"))
	})

	t.Run("every switcher option round-trips", func(t *testing.T) {
		router, _, cleanup := setupTestApp(t)
		defer cleanup()

		for _, theme := range []string{"paperback", "terminal", "sakura", "slate"} {
			w := postForm(router, "/set_theme", url.Values{"theme": {theme}})
			require.Equal(t, http.StatusFound, w.Code, theme)

			list := getPage(router, "/", sessionCookies(w)...)
			assert.Contains(t, list.Body.String(), `<option value="`+theme+`" selected>`, theme)
		}
	})
}
