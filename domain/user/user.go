// Package user contains the user identity referenced by fragments.
package user

import (
	"context"

	"github.com/fragbase/fragbase/domain/storage"
)

// DefaultRole is assigned to users materialised during a legacy import.
const DefaultRole = "user"

// User is an authoring identity. The legacy dump carries only a handle, so
// users are deduplicated by username rather than by any legacy identifier.
type User struct {
	id       int64
	username string
	role     string
}

// New creates a User with no identity yet (assigned on save).
func New(username, role string) User {
	return User{username: username, role: role}
}

// Reconstruct rebuilds a User from persisted state.
func Reconstruct(id int64, username, role string) User {
	return User{id: id, username: username, role: role}
}

// ID returns the store-assigned identity.
func (u User) ID() int64 { return u.id }

// Username returns the unique handle.
func (u User) Username() string { return u.username }

// Role returns the user's role.
func (u User) Role() string { return u.role }

// Store persists users.
type Store interface {
	Find(ctx context.Context, options ...storage.Option) ([]User, error)
	FindOne(ctx context.Context, options ...storage.Option) (User, error)
	Count(ctx context.Context, options ...storage.Option) (int64, error)
	Create(ctx context.Context, u User) (User, error)
}

// WithUsername filters by the "username" column.
func WithUsername(name string) storage.Option {
	return storage.WithCondition("username", name)
}

// WithUsernameIn filters by the "username" column using IN.
func WithUsernameIn(names []string) storage.Option {
	return storage.WithConditionIn("username", names)
}
