package interfaces

import (
	"context"

	"hotelmesh/domain"
)

// The mesh service contracts below are implemented twice: locally by the service package
// (the business logic behind a server) and remotely by adapters/mesh (pooled stubs calling
// that server). Orchestrators depend only on the contracts.

// GeoService finds hotels near a point.
//
//go:generate moq -stub -out mock/geo_service.go -pkg mock . GeoService
type GeoService interface {
	// Nearby returns up to 5 hotel ids within 10 km of origin, closest first.
	Nearby(ctx context.Context, origin domain.Point) ([]string, error)
	// Point returns the coordinates of a hotel; entity_not_found for an unknown id.
	Point(ctx context.Context, hotelID string) (domain.Point, error)
}

// RateService returns rate plans.
//
//go:generate moq -stub -out mock/rate_service.go -pkg mock . RateService
type RateService interface {
	GetRates(ctx context.Context, hotelIDs []string, inDate, outDate string) ([]domain.RatePlan, error)
}

// ProfileService returns hotel profiles in request order; unknown ids are skipped.
//
//go:generate moq -stub -out mock/profile_service.go -pkg mock . ProfileService
type ProfileService interface {
	GetProfiles(ctx context.Context, hotelIDs []string, locale string) ([]domain.HotelProfile, error)
}

// UserService registers and verifies credentials.
//
//go:generate moq -stub -out mock/user_service.go -pkg mock . UserService
type UserService interface {
	Register(ctx context.Context, user domain.User) (domain.RegistrationOutcome, error)
	// Check reports whether the username exists with exactly this password.
	Check(ctx context.Context, user domain.User) (bool, error)
}

// SearchService is the search orchestrator.
//
//go:generate moq -stub -out mock/search_service.go -pkg mock . SearchService
type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.HotelProfile, error)
}

// RecommendationService is the recommendation orchestrator.
//
//go:generate moq -stub -out mock/recommendation_service.go -pkg mock . RecommendationService
type RecommendationService interface {
	Recommend(ctx context.Context, req domain.RecommendationRequest) ([]domain.HotelProfile, error)
}

// ReservationService books rooms.
//
//go:generate moq -stub -out mock/reservation_service.go -pkg mock . ReservationService
type ReservationService interface {
	// Reserve returns a business outcome; errors are reserved for malformed input and
	// infrastructure failures.
	Reserve(ctx context.Context, req domain.ReservationRequest) (domain.BookingResult, error)
}
