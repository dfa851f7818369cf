package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	sm := NewSessionManager("session", 24*time.Hour)

	res := httptest.NewRecorder()
	require.NoError(t, sm.Issue(res, SessionData{ID: 7, Username: "maria"}))

	cookies := res.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "session", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	data, err := sm.Read(req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.ID)
	assert.Equal(t, "maria", data.Username)
}

func TestSessionReadMissingCookie(t *testing.T) {
	sm := NewSessionManager("session", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)

	_, err := sm.Read(req)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionReadCorruptCookie(t *testing.T) {
	sm := NewSessionManager("session", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "not-json"})

	_, err := sm.Read(req)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionClearExpiresCookie(t *testing.T) {
	sm := NewSessionManager("session", time.Hour)
	res := httptest.NewRecorder()
	sm.Clear(res)

	cookies := res.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHasPermission(t *testing.T) {
	admin := Principal{Permissions: []string{"all"}}
	assert.True(t, admin.HasPermission("manage_users"))
	assert.True(t, admin.HasPermission("anything_at_all"))

	operador := Principal{Permissions: []string{"create_protocol", "view_protocol"}}
	assert.True(t, operador.HasPermission("create_protocol"))
	assert.False(t, operador.HasPermission("manage_users"))

	nobody := Principal{}
	assert.False(t, nobody.HasPermission("view_protocol"))
}
