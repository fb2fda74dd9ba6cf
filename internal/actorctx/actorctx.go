package actorctx

import (
	"context"

	"github.com/geocoder89/eventdesk/internal/auth"
)

type ctxKey struct{}

func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	v, ok := ctx.Value(ctxKey{}).(auth.Identity)

	return v, ok && v.Username != ""
}
