package service

import (
	"context"
	"crypto/subtle"

	"hotelmesh/domain"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"
)

// UserService implements interfaces.UserService on a UserStore.
type UserService struct {
	store interfaces.UserStore
}

func NewUserService(store interfaces.UserStore) *UserService {
	return &UserService{
		store: helpers.NilPanic(store, "service.user.go: store is required"),
	}
}

// Register stores a new user. An empty username or password is malformed input; a taken
// username is the AlreadyExists outcome, not an error.
func (s *UserService) Register(ctx context.Context, user domain.User) (domain.RegistrationOutcome, error) {
	if err := validateCredentials(user); err != nil {
		return domain.AlreadyExists, err
	}
	created, err := s.store.Create(ctx, user)
	if err != nil {
		return domain.AlreadyExists, err
	}
	if !created {
		return domain.AlreadyExists, nil
	}
	return domain.Registered, nil
}

// Check reports whether user exists with exactly this password. Unknown users and wrong
// passwords both yield false.
func (s *UserService) Check(ctx context.Context, user domain.User) (bool, error) {
	if user.Username == "" {
		return false, nil
	}
	stored, err := s.store.GetByUsername(ctx, user.Username)
	if err != nil {
		if IsEntityNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(stored.Password), []byte(user.Password)) == 1, nil
}

func validateCredentials(user domain.User) error {
	if user.Username == "" {
		return NewMalformedInputError("username is required", nil)
	}
	if user.Password == "" {
		return NewMalformedInputError("password is required", nil)
	}
	return nil
}
