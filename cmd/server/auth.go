package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	sessionCookieName = "dc_session"
	sessionDuration   = 24 * time.Hour
)

// authService gates the estimator behind a shared static PIN. A successful
// login sets a signed cookie carrying the issue time; sessions expire after
// sessionDuration.
type authService struct {
	pin           string
	sessionSecret []byte
	now           func() time.Time
}

func newAuthService(pin, sessionSecret string) *authService {
	return &authService{pin: pin, sessionSecret: []byte(sessionSecret), now: time.Now}
}

func (a *authService) checkPIN(candidate string) bool {
	if a.pin == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.pin), []byte(candidate)) == 1
}

func (a *authService) createSessionValue() string {
	issued := strconv.FormatInt(a.now().Unix(), 10)
	payload := base64.RawURLEncoding.EncodeToString([]byte(issued))
	mac := hmac.New(sha256.New, a.sessionSecret)
	_, _ = mac.Write([]byte(payload))
	signature := hex.EncodeToString(mac.Sum(nil))
	return payload + "." + signature
}

func (a *authService) verifySessionValue(value string) bool {
	parts := strings.Split(value, ".")
	if len(parts) != 2 {
		return false
	}

	payload := parts[0]
	signature := parts[1]

	mac := hmac.New(sha256.New, a.sessionSecret)
	_, _ = mac.Write([]byte(payload))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	if !hmac.Equal(provided, expected) {
		return false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return false
	}
	issued, err := strconv.ParseInt(string(decoded), 10, 64)
	if err != nil {
		return false
	}

	age := a.now().Sub(time.Unix(issued, 0))
	return age >= 0 && age < sessionDuration
}

func (a *authService) setSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    a.createSessionValue(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *authService) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func isAuthenticated(r *http.Request, auth *authService) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	return auth.verifySessionValue(cookie.Value)
}
