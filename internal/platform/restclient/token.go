package restclient

import "context"

type accessTokenKey struct{}

// WithAccessToken returns a child context whose outbound calls authenticate
// with token. The parent context is never modified, so the credential ends
// with the call chain that derived it.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken returns the outbound bearer token carried by ctx.
func AccessToken(ctx context.Context) string {
	if tok, ok := ctx.Value(accessTokenKey{}).(string); ok {
		return tok
	}
	return ""
}
