package sca

import (
	"context"

	"oba/pkg/requestcontext"
)

// BearerFromContext rebuilds the PSU bearer token forwarded by the browser,
// or nil when the request carries none.
func BearerFromContext(ctx context.Context) *BearerToken {
	token := requestcontext.PSUToken(ctx)
	if token == "" {
		return nil
	}
	return &BearerToken{
		AccessToken: token,
		Claims:      &AccessTokenClaims{Login: requestcontext.PSULogin(ctx)},
	}
}
