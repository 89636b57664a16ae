// Package memstore is the in-process credential store used when no Redis is configured.
package memstore

import (
	"context"
	"sync"

	"hotelmesh/domain"
	"hotelmesh/service"
)

// UserStore implements interfaces.UserStore on a map guarded by a RWMutex.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]string
}

// NewUserStore returns a store holding users; later duplicates of a username are ignored.
func NewUserStore(users []domain.User) *UserStore {
	s := &UserStore{users: make(map[string]string, len(users))}
	for _, u := range users {
		if _, ok := s.users[u.Username]; !ok {
			s.users[u.Username] = u.Password
		}
	}
	return s
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	password, ok := s.users[username]
	if !ok {
		return domain.User{}, service.NewEntityNotFoundError("user not found", nil)
	}
	return domain.User{Username: username, Password: password}, nil
}

func (s *UserStore) Create(_ context.Context, user domain.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return false, nil
	}
	s.users[user.Username] = user.Password
	return true, nil
}
