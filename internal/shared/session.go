package shared

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// SessionData is the payload carried by the session cookie. The cookie is a
// plain JSON blob with no integrity protection; every privileged request
// re-reads the user row, so a forged id only ever resolves to a real user.
type SessionData struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// SessionManager issues and clears the session cookie.
type SessionManager struct {
	cookieName string
	ttl        time.Duration
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(cookieName string, ttl time.Duration) *SessionManager {
	return &SessionManager{cookieName: cookieName, ttl: ttl}
}

// CookieName returns the cookie identifier used for sessions.
func (sm *SessionManager) CookieName() string {
	return sm.cookieName
}

// TTL exposes the configured session lifetime.
func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}

// Issue writes the session cookie for the given identity.
func (sm *SessionManager) Issue(w http.ResponseWriter, data SessionData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(sm.ttl),
		MaxAge:   int(sm.ttl / time.Second),
	})
	return nil
}

// Clear expires the session cookie.
func (sm *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})
}

// Read parses the session cookie from the request. Returns ErrSessionInvalid
// when the cookie is absent or does not decode.
func (sm *SessionManager) Read(r *http.Request) (SessionData, error) {
	cookie, err := r.Cookie(sm.cookieName)
	if err != nil {
		return SessionData{}, ErrSessionInvalid
	}
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return SessionData{}, ErrSessionInvalid
	}
	var data SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return SessionData{}, ErrSessionInvalid
	}
	return data, nil
}
