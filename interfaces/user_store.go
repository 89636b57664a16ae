package interfaces

import (
	"context"

	"hotelmesh/domain"
)

// UserStore holds credential entries.
//
//go:generate moq -stub -out mock/user_store.go -pkg mock . UserStore
type UserStore interface {
	// GetByUsername returns the user; entity_not_found when absent.
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	// Create stores the user unless the username is taken.
	// Returns: (true, nil) when stored; (false, nil) when it already existed.
	Create(ctx context.Context, user domain.User) (bool, error)
}
