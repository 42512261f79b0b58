package store

import (
	"context"
	"strings"
	"sync"

	"github.com/formlab/formlab/internal/utils"
	"github.com/formlab/formlab/types"
)

// MemoryUserStore is a mutex-guarded in-memory UserStore. Email comparisons
// are case-insensitive throughout.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []types.User
}

// NewMemoryUserStore returns an empty store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

// NewSeededUserStore returns a store preloaded with the demo accounts the
// simulated login endpoint resolves against.
func NewSeededUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: []types.User{
			{ID: "1", Name: "John Doe", Email: "john@example.com", Role: types.RoleUser},
			{ID: "2", Name: "Admin User", Email: "admin@example.com", Role: types.RoleAdmin},
		},
	}
}

// CreateUser appends a new user. The duplicate check and the append happen
// under one write lock so concurrent registrations of the same email cannot
// both succeed. An empty ID is filled in.
func (s *MemoryUserStore) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	if err := ctx.Err(); err != nil {
		return types.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return types.User{}, ErrEmailExists
		}
	}

	if user.ID == "" {
		user.ID = utils.GenerateID()
	}
	s.users = append(s.users, user)
	return user, nil
}

// GetUserByEmail returns a copy of the stored user, or ErrNotFound.
func (s *MemoryUserStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// EmailExists reports whether any stored user has the given email.
func (s *MemoryUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetUserByEmail(ctx, email)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of stored users.
func (s *MemoryUserStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}
