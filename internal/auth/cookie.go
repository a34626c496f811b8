package auth

import (
	"net/http"
	"time"
)

// CookieName is the session cookie. The token inside is the sole
// session-carrying artifact.
const CookieName = "token"

// SetSessionCookie installs the session token as a host-only cookie,
// not script-readable, secure-channel-only. SameSite=None because the
// frontend is served from a different origin.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(SessionTTL),
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})
}
