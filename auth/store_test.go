// File: auth/store_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-campus-events/models"
)

// setupStoreTestRouter builds a router whose single handler exercises the
// store operation named by the path, carrying state between requests through
// the session cookie like a real browser would.
func setupStoreTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/save", func(c *gin.Context) {
		credentialStore := NewSessionStore(sessions.Default(c))
		if err := credentialStore.Save(c.Query("credential")); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "saved")
	})
	router.GET("/load", func(c *gin.Context) {
		credentialStore := NewSessionStore(sessions.Default(c))
		credential, ok := credentialStore.Load()
		if !ok {
			c.String(http.StatusNotFound, "absent")
			return
		}
		c.String(http.StatusOK, credential)
	})
	router.GET("/clear", func(c *gin.Context) {
		credentialStore := NewSessionStore(sessions.Default(c))
		if err := credentialStore.Clear(); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "cleared")
	})
	router.GET("/cache-roundtrip", func(c *gin.Context) {
		cache := NewSessionPrincipalCache(sessions.Default(c))
		principal := &models.Principal{ID: "u1", Name: "Asha", Role: models.RoleStudent}
		if err := cache.Put(principal); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		loaded, ok := cache.Get()
		if !ok || loaded.ID != principal.ID || loaded.Role != principal.Role {
			c.String(http.StatusInternalServerError, "cache mismatch")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	return router
}

// roundTrip performs a request, carrying over cookies from prior responses.
func roundTrip(t *testing.T, router *gin.Engine, path string, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		cookies = set
	}
	return w, cookies
}

// Test: a saved credential survives into the next request and loads back.
func TestSessionStore_SaveThenLoad(t *testing.T) {
	router := setupStoreTestRouter()

	_, cookies := roundTrip(t, router, "/save?credential=T", nil)
	w, _ := roundTrip(t, router, "/load", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "T", w.Body.String())
}

// Test: loading before any save reports absence.
func TestSessionStore_LoadAbsent(t *testing.T) {
	router := setupStoreTestRouter()

	w, _ := roundTrip(t, router, "/load", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Test: clear empties the store and clearing twice is still fine.
func TestSessionStore_ClearIdempotent(t *testing.T) {
	router := setupStoreTestRouter()

	_, cookies := roundTrip(t, router, "/save?credential=T", nil)
	_, cookies = roundTrip(t, router, "/clear", cookies)

	w, cookies := roundTrip(t, router, "/load", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code, "store must be empty after clear")

	w, cookies = roundTrip(t, router, "/clear", cookies)
	assert.Equal(t, http.StatusOK, w.Code, "second clear must not fail")

	w, _ = roundTrip(t, router, "/load", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Test: a new save overwrites the previous credential.
func TestSessionStore_SaveOverwrites(t *testing.T) {
	router := setupStoreTestRouter()

	_, cookies := roundTrip(t, router, "/save?credential=old", nil)
	_, cookies = roundTrip(t, router, "/save?credential=new", cookies)
	w, _ := roundTrip(t, router, "/load", cookies)

	assert.Equal(t, "new", w.Body.String())
}

// Test: the principal cache round-trips through its JSON encoding.
func TestSessionPrincipalCache_RoundTrip(t *testing.T) {
	router := setupStoreTestRouter()

	w, _ := roundTrip(t, router, "/cache-roundtrip", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
