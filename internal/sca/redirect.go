package sca

import (
	"net/url"

	dErrors "oba/pkg/domain-errors"
)

// AuthConfirmationRedirectURI appends authConfirmationCode to the TPP ok
// URI when a code is present. Existing query parameters are kept.
func AuthConfirmationRedirectURI(uri, code string) (string, error) {
	if code == "" {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid TPP redirect URI")
	}
	q := u.Query()
	q.Set("authConfirmationCode", code)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
