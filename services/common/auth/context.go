package auth

import (
	"context"
	"strings"
)

// BearerPrefix is the required prefix of a well-formed Authorization header.
const BearerPrefix = "Bearer "

type contextKey struct{ name string }

var tokenKey = contextKey{"auth-token"}

// WithToken returns a context carrying the given Authorization header value.
// A value that does not start with "Bearer " is treated as absent and the
// parent context is returned unchanged.
func WithToken(ctx context.Context, header string) context.Context {
	if !strings.HasPrefix(header, BearerPrefix) {
		return ctx
	}
	if strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix)) == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, header)
}

// TokenFromContext returns the Authorization header value carried by ctx.
// The second return reports whether a token is present.
func TokenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	token, ok := ctx.Value(tokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
