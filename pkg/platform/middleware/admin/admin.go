// Package admin guards operator endpoints such as the consent data purge.
package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/httputil"
	"oba/pkg/requestcontext"
)

// HeaderAdminToken carries the operator token.
const HeaderAdminToken = "X-Admin-Token"

// RequireAdminToken lets a request through only when it presents expected.
// An empty expected token rejects everything.
func RequireAdminToken(expected string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(HeaderAdminToken)
			if expected != "" && subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1 {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			logger.WarnContext(ctx, "rejected admin request",
				"request_id", requestcontext.RequestID(ctx),
				"path", r.URL.Path,
				"client_ip", requestcontext.ClientIP(ctx),
				"token_present", presented != "",
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "admin token required"))
		})
	}
}
