package loginattempt

import (
	"net/http"

	"oba/internal/platform/restclient"
	dErrors "oba/pkg/domain-errors"
)

// IsRejected reports whether err from a ledgers login means the PSU
// credentials were refused, as opposed to the call failing.
func IsRejected(err error) bool {
	if err == nil {
		return false
	}
	if status, ok := restclient.StatusOf(err); ok {
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return true
		}
		return false
	}
	return dErrors.HasCode(err, dErrors.CodeUnauthorized) ||
		dErrors.HasCode(err, dErrors.CodeAccessForbidden) ||
		dErrors.HasCode(err, dErrors.CodeLoginFailed)
}
