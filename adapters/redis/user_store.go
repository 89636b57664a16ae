package redis

import (
	"context"
	"encoding/json"

	"hotelmesh/domain"
	"hotelmesh/helpers"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "hotelmesh_user"

// UserStore implements interfaces.UserStore on Redis (key: hotelmesh_user:{username}, value:
// JSON {username, password}).
type UserStore struct {
	users *cache[domain.User]
}

func NewUserStore(client redis.UniversalClient) *UserStore {
	return &UserStore{
		users: newCache(helpers.NilPanic(client, "adapters.redis.user_store.go: client is required"), keyPrefix, marshalUser, unmarshalUser),
	}
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.users.ReadValue(ctx, username)
}

func (s *UserStore) Create(ctx context.Context, user domain.User) (bool, error) {
	return s.users.WriteValueIfAbsent(ctx, user.Username, user)
}

// Seed creates every user of users that does not exist yet; existing entries, including
// passwords registered since, are kept.
//
// Returns: the number of users created.
func (s *UserStore) Seed(ctx context.Context, users []domain.User) (int, error) {
	created := 0
	for _, u := range users {
		ok, err := s.Create(ctx, u)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func marshalUser(u domain.User) ([]byte, error) { return json.Marshal(u) }

func unmarshalUser(b []byte) (domain.User, error) {
	var u domain.User
	err := json.Unmarshal(b, &u)
	return u, err
}
