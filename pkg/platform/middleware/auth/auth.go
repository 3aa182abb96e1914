package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"oba/pkg/requestcontext"
)

// CookieAccessToken carries the PSU bearer token between browser round trips.
const CookieAccessToken = "ACCESS_TOKEN"

// TokenValidator validates a PSU bearer token with the issuing service.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// Claims are the token facts the middleware places in the request context.
type Claims struct {
	Login string
	Role  string
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// BearerFromRequest returns the bearer token from the Authorization header,
// falling back to the access token cookie.
func BearerFromRequest(r *http.Request) string {
	if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	if c, err := r.Cookie(CookieAccessToken); err == nil {
		return c.Value
	}
	return ""
}

// SetAccessToken hands token back to the browser for the next step of a flow.
func SetAccessToken(w http.ResponseWriter, token, path string, secure bool) {
	w.Header().Set("Authorization", "Bearer "+token)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieAccessToken,
		Value:    token,
		Path:     path,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticate forwards the presented token into the context without
// requiring one. Flows that start unauthenticated (redirect entry, PSU login)
// use this; the token is validated by the collaborator on first use.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := BearerFromRequest(r); token != "" {
			ctx := requestcontext.WithPSUToken(r.Context(), token)
			if login := LoginFromToken(token); login != "" {
				ctx = requestcontext.WithPSULogin(ctx, login)
			}
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// LoginFromToken reads the login claim without verifying the signature.
// Only the ledgers service can verify its tokens, and it sees the token on
// every call made on the PSU's behalf.
func LoginFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	login, _ := claims["login"].(string)
	return login
}

// RequireAuth rejects requests without a token the validator accepts.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := BearerFromRequest(r)
			if token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(ctx, token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx = requestcontext.WithPSUToken(ctx, token)
			ctx = requestcontext.WithPSULogin(ctx, claims.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
