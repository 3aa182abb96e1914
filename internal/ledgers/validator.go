package ledgers

import (
	"context"

	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/middleware/auth"
)

// TokenValidator lets the auth middleware check PSU tokens with ledgers.
type TokenValidator struct {
	client *Client
}

func NewTokenValidator(client *Client) *TokenValidator {
	return &TokenValidator{client: client}
}

func (v *TokenValidator) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	bearer, err := v.client.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if bearer.Claims == nil || bearer.Claims.Login == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token carries no PSU login")
	}
	return &auth.Claims{Login: bearer.Claims.Login, Role: bearer.Claims.Role}, nil
}
