//go:build unit

package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parking-system/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndClearAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CookieConfig{SameSite: "Strict", Secure: true}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	SetAccessToken(c, cfg, "token-value", time.Hour)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AccessTokenCookieName, cookies[0].Name)
	assert.Equal(t, "token-value", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)

	ClearAccessToken(c, cfg)

	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/spots", nil)
	assert.Empty(t, GetAccessToken(c))

	c.Request.AddCookie(&http.Cookie{Name: AccessTokenCookieName, Value: "abc"})
	assert.Equal(t, "abc", GetAccessToken(c))
}
