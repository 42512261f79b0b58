// Package store provides the simulated API's user persistence. The only
// implementation is in-memory; records live for the process lifetime.
package store

import (
	"context"

	"github.com/formlab/formlab/types"
)

// UserStore handles user-related data operations for the simulated API.
// Implementations must keep the duplicate-email invariant under concurrent
// CreateUser calls.
type UserStore interface {
	CreateUser(ctx context.Context, user types.User) (types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}
