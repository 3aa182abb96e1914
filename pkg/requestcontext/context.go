// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// This package defines context keys and getter/setter functions for values that are
// typically set by middleware but consumed by services. By keeping this package free
// of net/http dependencies, services can import only what they need without pulling
// in HTTP-related code.
//
// Usage in services (read values):
//
//	requestID := requestcontext.RequestID(ctx)
//	cookie := requestcontext.ConsentCookie(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithConsentCookie(ctx, signedReference)
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	psuLoginKey      struct{}
	psuTokenKey      struct{}
	consentCookieKey struct{}
	clientIPKey      struct{}
	userAgentKey     struct{}
	clientDeviceKey  struct{}
	requestIDKey     struct{}
	requestTimeKey   struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyPSULogin      = psuLoginKey{}
	ContextKeyPSUToken      = psuTokenKey{}
	ContextKeyConsentCookie = consentCookieKey{}
	ContextKeyClientIP      = clientIPKey{}
	ContextKeyUserAgent     = userAgentKey{}
	ContextKeyClientDevice  = clientDeviceKey{}
	ContextKeyRequestID     = requestIDKey{}
	ContextKeyRequestTime   = requestTimeKey{}
)

// -----------------------------------------------------------------------------
// PSU session (login, inbound bearer token, consent reference cookie)
// -----------------------------------------------------------------------------

// PSULogin retrieves the authenticated PSU login from the context.
func PSULogin(ctx context.Context) string {
	if login, ok := ctx.Value(ContextKeyPSULogin).(string); ok {
		return login
	}
	return ""
}

// WithPSULogin injects the PSU login into the context.
func WithPSULogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, ContextKeyPSULogin, login)
}

// PSUToken retrieves the raw bearer token the PSU presented on this request.
// This is the inbound credential only; outbound calls carry their own token.
func PSUToken(ctx context.Context) string {
	if tok, ok := ctx.Value(ContextKeyPSUToken).(string); ok {
		return tok
	}
	return ""
}

// WithPSUToken injects the inbound PSU bearer token into the context.
func WithPSUToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextKeyPSUToken, token)
}

// ConsentCookie retrieves the signed consent reference carried by the browser.
func ConsentCookie(ctx context.Context) string {
	if c, ok := ctx.Value(ContextKeyConsentCookie).(string); ok {
		return c
	}
	return ""
}

// WithConsentCookie injects the signed consent reference into the context.
func WithConsentCookie(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, ContextKeyConsentCookie, cookie)
}

// -----------------------------------------------------------------------------
// Client metadata (IP, User-Agent, parsed device)
// -----------------------------------------------------------------------------

// ClientDevice is the browser/OS summary parsed from the User-Agent.
type ClientDevice struct {
	Browser string
	OS      string
	Mobile  bool
}

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// UserAgent retrieves the User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// Device retrieves the parsed client device from the context.
func Device(ctx context.Context) ClientDevice {
	if d, ok := ctx.Value(ContextKeyClientDevice).(ClientDevice); ok {
		return d
	}
	return ClientDevice{}
}

// WithClientMetadata injects client IP and User-Agent into a context.
// Useful for service unit tests that don't run the full HTTP middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	return ctx
}

// WithDevice injects the parsed client device into a context.
func WithDevice(ctx context.Context, d ClientDevice) context.Context {
	return context.WithValue(ctx, ContextKeyClientDevice, d)
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// -----------------------------------------------------------------------------
// Request time
// -----------------------------------------------------------------------------

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (for non-HTTP contexts like workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := RequestTime(ctx); ok {
		return t
	}
	return time.Now()
}

// RequestTime reports the time captured by the requesttime middleware.
func RequestTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(ContextKeyRequestTime).(time.Time)
	return t, ok
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
