package httpapi

import (
	"context"

	"github.com/google/uuid"
)

type authContextKey string

const authAccountKey authContextKey = "authAccount"

// AuthAccount represents the authenticated account in context.
type AuthAccount struct {
	AccountID uuid.UUID
	Username  string
	SessionID uuid.UUID
}

func withAuthAccount(ctx context.Context, a *AuthAccount) context.Context {
	if a == nil {
		return ctx
	}
	return context.WithValue(ctx, authAccountKey, a)
}

func authAccountFromContext(ctx context.Context) *AuthAccount {
	val := ctx.Value(authAccountKey)
	if v, ok := val.(*AuthAccount); ok {
		return v
	}
	return nil
}
