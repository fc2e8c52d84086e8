package user

import (
	"context"
	"fmt"
)

type ctxKey int

const userCtxKey ctxKey = iota + 1

// NewContextWithUser returns a new context carrying the resolved authenticated user.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func NewContextWithUser(baseCtx context.Context, u *User) context.Context {
	return context.WithValue(baseCtx, userCtxKey, u)
}

// FromContext extracts the authenticated user from the context.
func FromContext(ctx context.Context) (*User, error) {
	val := ctx.Value(userCtxKey)
	if val == nil {
		return nil, fmt.Errorf("no user in context")
	}

	u, ok := val.(*User)
	if !ok {
		return nil, fmt.Errorf("context user is not a *User: %T", val)
	}

	return u, nil
}
