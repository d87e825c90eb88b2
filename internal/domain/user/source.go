package user

import (
	"context"
	"errors"
)

// ErrMalformedResponse means the source answered, but not with a user list.
var ErrMalformedResponse = errors.New("malformed users response")

// Source returns the full user collection in one call.
type Source interface {
	ListUsers(ctx context.Context) ([]User, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]User, error)

func (f SourceFunc) ListUsers(ctx context.Context) ([]User, error) {
	return f(ctx)
}
