// Package session carries the signed consent reference cookie into the request context.
package session

import (
	"net/http"

	"oba/pkg/requestcontext"
)

// CookieConsent holds the signed consent reference issued at redirect entry.
const CookieConsent = "CONSENT"

// ConsentCookie copies the consent cookie value into the context when present.
func ConsentCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(CookieConsent); err == nil && c.Value != "" {
			r = r.WithContext(requestcontext.WithConsentCookie(r.Context(), c.Value))
		}
		next.ServeHTTP(w, r)
	})
}

// SetConsentCookie writes the consent reference cookie scoped to path.
func SetConsentCookie(w http.ResponseWriter, value, path string, maxAgeSeconds int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieConsent,
		Value:    value,
		Path:     path,
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
