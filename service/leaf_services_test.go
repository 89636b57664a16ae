package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hotelmesh/domain"
	"hotelmesh/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocations() []domain.HotelLocation {
	return []domain.HotelLocation{
		{ID: "1", Point: domain.Point{Lat: 37.7867, Lon: -122.4112}},
		{ID: "2", Point: domain.Point{Lat: 37.7854, Lon: -122.4005}},
		{ID: "3", Point: domain.Point{Lat: 37.7854, Lon: -122.4071}},
		{ID: "4", Point: domain.Point{Lat: 37.7936, Lon: -122.3930}},
		{ID: "5", Point: domain.Point{Lat: 37.7831, Lon: -122.4181}},
		{ID: "6", Point: domain.Point{Lat: 37.7863, Lon: -122.4015}},
		{ID: "7", Point: domain.Point{Lat: 37.8255, Lon: -122.354}},
		{ID: "LA", Point: domain.Point{Lat: 34.0522, Lon: -118.2437}},
	}
}

func TestGeoIndex_Nearby(t *testing.T) {
	geo := NewGeoIndex(testLocations())
	ctx := context.Background()

	tests := []struct {
		name    string
		origin  domain.Point
		want    []string
		wantErr bool
	}{
		{name: "at hotel 1", origin: domain.Point{Lat: 37.7867, Lon: -122.4112}, want: []string{"1", "3", "5", "6", "2"}},
		{name: "civic center", origin: domain.Point{Lat: 37.7749, Lon: -122.4194}, want: []string{"5", "1", "3", "6", "2"}},
		{name: "nothing within 10 km", origin: domain.Point{Lat: 40, Lon: -100}, want: []string{}},
		{name: "latitude out of range", origin: domain.Point{Lat: 91, Lon: 0}, wantErr: true},
		{name: "longitude out of range", origin: domain.Point{Lat: 0, Lon: -181}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geo.Nearby(ctx, tt.origin)
			if tt.wantErr {
				assert.True(t, IsMalformedInput(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeoIndex_Point(t *testing.T) {
	geo := NewGeoIndex(testLocations())

	p, err := geo.Point(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, domain.Point{Lat: 37.7936, Lon: -122.3930}, p)

	_, err = geo.Point(context.Background(), "404")
	assert.True(t, IsEntityNotFound(err))
}

func TestRateTable_GetRates(t *testing.T) {
	rates := NewRateTable(map[string][]domain.RoomType{
		"1": {{Code: "STD", BookableRate: 120}, {Code: "DLX", BookableRate: 240}},
		"2": {{Code: "STD", BookableRate: 110}},
	})

	plans, err := rates.GetRates(context.Background(), []string{"2", "99", "1"}, "2024-06-01", "2024-06-02")
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "2", plans[0].HotelID)
	assert.Equal(t, "1", plans[1].HotelID)
	assert.Equal(t, "STD", plans[1].Code)
	assert.Equal(t, "DLX", plans[2].Code)
	assert.Equal(t, 240.0, plans[2].RoomType.BookableRate)
	for _, p := range plans {
		assert.Equal(t, "2024-06-01", p.InDate)
		assert.Equal(t, "2024-06-02", p.OutDate)
	}

	plans, err = rates.GetRates(context.Background(), nil, "", "")
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestProfileTable_GetProfiles(t *testing.T) {
	profiles := NewProfileTable([]domain.HotelProfile{
		{ID: "3", Name: "Hotel Zetta"},
		{ID: "5", Name: "Phoenix Hotel"},
	})

	got, err := profiles.GetProfiles(context.Background(), []string{"5", "404", "3"}, "en")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Phoenix Hotel", got[0].Name)
	assert.Equal(t, "Hotel Zetta", got[1].Name)
}

// mapUserStore is a UserStore mock backed by a map.
func mapUserStore(users map[string]string) *mock.UserStoreMock {
	var mu sync.Mutex
	return &mock.UserStoreMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
			mu.Lock()
			defer mu.Unlock()
			password, ok := users[username]
			if !ok {
				return domain.User{}, NewEntityNotFoundError("user not found", nil)
			}
			return domain.User{Username: username, Password: password}, nil
		},
		CreateFunc: func(ctx context.Context, user domain.User) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := users[user.Username]; ok {
				return false, nil
			}
			users[user.Username] = user.Password
			return true, nil
		},
	}
}

func TestUserService_Register(t *testing.T) {
	users := NewUserService(mapUserStore(map[string]string{"Cornell_1": "1111111111"}))
	ctx := context.Background()

	tests := []struct {
		name    string
		user    domain.User
		want    domain.RegistrationOutcome
		wantErr bool
	}{
		{name: "new user", user: domain.User{Username: "alice", Password: "pw"}, want: domain.Registered},
		{name: "taken username", user: domain.User{Username: "Cornell_1", Password: "x"}, want: domain.AlreadyExists},
		{name: "missing username", user: domain.User{Password: "x"}, wantErr: true},
		{name: "missing password", user: domain.User{Username: "bob"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := users.Register(ctx, tt.user)
			if tt.wantErr {
				assert.True(t, IsMalformedInput(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "User registered successfully", domain.Registered.Message())
	assert.Equal(t, "User already exists", domain.AlreadyExists.Message())
}

func TestUserService_Check(t *testing.T) {
	users := NewUserService(mapUserStore(map[string]string{"Cornell_1": "1111111111"}))
	ctx := context.Background()

	tests := []struct {
		name string
		user domain.User
		want bool
	}{
		{name: "valid", user: domain.User{Username: "Cornell_1", Password: "1111111111"}, want: true},
		{name: "wrong password", user: domain.User{Username: "Cornell_1", Password: "111111111"}, want: false},
		{name: "unknown user", user: domain.User{Username: "Cornell_9999", Password: "x"}, want: false},
		{name: "empty", user: domain.User{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := users.Check(ctx, tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserService_StoreFailure(t *testing.T) {
	storeErr := NewInternalServerError("Redis read key error", errors.New("connection refused"))
	store := &mock.UserStoreMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
			return domain.User{}, storeErr
		},
		CreateFunc: func(ctx context.Context, user domain.User) (bool, error) {
			return false, storeErr
		},
	}
	users := NewUserService(store)

	_, err := users.Check(context.Background(), domain.User{Username: "a", Password: "b"})
	assert.ErrorIs(t, err, storeErr)

	_, err = users.Register(context.Background(), domain.User{Username: "a", Password: "b"})
	assert.ErrorIs(t, err, storeErr)
}
