package httpx

import "context"

type ctxKey string

const (
	// CtxKeyToken holds the raw bearer token forwarded to the backend.
	CtxKeyToken ctxKey = "bearer_token"
)

// TokenFromContext returns the bearer token attached by BearerMiddleware,
// or "" if the request was not authenticated.
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyToken).(string); ok {
		return v
	}
	return ""
}

// ContextWithToken attaches a bearer token to the context. Exposed for tests
// that exercise handlers without the middleware chain.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken, token)
}
