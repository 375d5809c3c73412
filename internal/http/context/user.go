package context

import (
	"context"
)

const keyUser contextKey = "user"

// User returns the name of the authenticated user, if any.
func User(ctx context.Context) string {
	user, ok := ctx.Value(keyUser).(string)
	if !ok {
		return ""
	}

	return user
}

func SetUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, keyUser, user)
}
