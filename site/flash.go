package site

import (
	"encoding/base64"
	"net/http"
)

// One-shot notices ride a cookie across the redirect that follows them. The
// value is base64-encoded so punctuation survives the cookie grammar.
const flashCookieName = "inkwell_flash"

func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookieName,
		Value: base64.URLEncoding.EncodeToString([]byte(message)),
		Path:  "/",
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	message, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(message)
}
