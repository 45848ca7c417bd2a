package httpapi

import "context"

// Principal identifies the calling manager. The engine trusts the
// gateway in front of it to authenticate; requests arrive with
// identity headers already verified upstream.
type Principal struct {
	UserID   string
	TeamID   string
	TeamName string
}

type contextKey string

const principalContextKey contextKey = "identity_principal"

func withPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}
