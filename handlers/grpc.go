// Package handlers exposes the mesh services over gRPC and the frontend over HTTP.
package handlers

import (
	"context"

	"hotelmesh/adapters/transport"
	"hotelmesh/api"
	"hotelmesh/domain"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"
	"hotelmesh/service"

	"google.golang.org/grpc"
)

// unary adapts a typed method to a transport.Handler. A payload that does not decode is
// malformed_input; fn's errors are passed through for the error interceptor to map.
func unary[Req any, Resp any](fn func(ctx context.Context, req Req) (Resp, error)) transport.Handler {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var req Req
		if err := api.Unmarshal(payload, &req); err != nil {
			return nil, service.NewMalformedInputError("request payload is not valid", err)
		}
		resp, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		out, err := api.Marshal(resp)
		if err != nil {
			return nil, service.NewInternalServerError("failed to encode response", err)
		}
		return out, nil
	}
}

func route(fullMethod string) string {
	return transport.MethodName(fullMethod)
}

// GeoRoutes serves Nearby and Point.
func GeoRoutes(geo interfaces.GeoService) map[string]transport.Handler {
	helpers.NilPanic(geo, "handlers.grpc.go: geo is required")
	return map[string]transport.Handler{
		route(api.MethodNearby): unary(func(ctx context.Context, req api.NearbyRequest) (api.NearbyResponse, error) {
			ids, err := geo.Nearby(ctx, domain.Point{Lat: req.Lat, Lon: req.Lon})
			if err != nil {
				return api.NearbyResponse{}, err
			}
			if ids == nil {
				ids = []string{}
			}
			return api.NearbyResponse{HotelIDs: ids}, nil
		}),
		route(api.MethodPoint): unary(func(ctx context.Context, req api.PointRequest) (api.PointResponse, error) {
			p, err := geo.Point(ctx, req.HotelID)
			if err != nil {
				return api.PointResponse{}, err
			}
			return api.PointResponse{Lat: p.Lat, Lon: p.Lon}, nil
		}),
	}
}

// RateRoutes serves GetRates.
func RateRoutes(rates interfaces.RateService) map[string]transport.Handler {
	helpers.NilPanic(rates, "handlers.grpc.go: rates is required")
	return map[string]transport.Handler{
		route(api.MethodGetRates): unary(func(ctx context.Context, req api.GetRatesRequest) (api.GetRatesResponse, error) {
			plans, err := rates.GetRates(ctx, req.HotelIDs, req.InDate, req.OutDate)
			if err != nil {
				return api.GetRatesResponse{}, err
			}
			return api.GetRatesResponse{RatePlans: api.FromRatePlans(plans)}, nil
		}),
	}
}

// ProfileRoutes serves GetProfiles.
func ProfileRoutes(profiles interfaces.ProfileService) map[string]transport.Handler {
	helpers.NilPanic(profiles, "handlers.grpc.go: profiles is required")
	return map[string]transport.Handler{
		route(api.MethodGetProfiles): unary(func(ctx context.Context, req api.GetProfilesRequest) (api.GetProfilesResponse, error) {
			hotels, err := profiles.GetProfiles(ctx, req.HotelIDs, req.Locale)
			if err != nil {
				return api.GetProfilesResponse{}, err
			}
			return api.GetProfilesResponse{Hotels: api.FromProfiles(hotels)}, nil
		}),
	}
}

// UserRoutes serves Register and Check.
func UserRoutes(users interfaces.UserService) map[string]transport.Handler {
	helpers.NilPanic(users, "handlers.grpc.go: users is required")
	return map[string]transport.Handler{
		route(api.MethodRegister): unary(func(ctx context.Context, req api.RegisterRequest) (api.RegisterResponse, error) {
			outcome, err := users.Register(ctx, domain.User{Username: req.Username, Password: req.Password})
			if err != nil {
				return api.RegisterResponse{}, err
			}
			return api.RegisterResponse{Message: outcome.Message(), Registered: outcome == domain.Registered}, nil
		}),
		route(api.MethodCheckUser): unary(func(ctx context.Context, req api.CheckUserRequest) (api.CheckUserResponse, error) {
			ok, err := users.Check(ctx, domain.User{Username: req.Username, Password: req.Password})
			if err != nil {
				return api.CheckUserResponse{}, err
			}
			return api.CheckUserResponse{Exists: ok}, nil
		}),
	}
}

// SearchRoutes serves Search.
func SearchRoutes(search interfaces.SearchService) map[string]transport.Handler {
	helpers.NilPanic(search, "handlers.grpc.go: search is required")
	return map[string]transport.Handler{
		route(api.MethodSearch): unary(func(ctx context.Context, req api.SearchRequest) (api.SearchResponse, error) {
			hotels, err := search.Search(ctx, api.ToSearchRequest(req))
			if err != nil {
				return api.SearchResponse{}, err
			}
			return api.SearchResponse{Hotels: api.FromProfiles(hotels)}, nil
		}),
	}
}

// RecommendationRoutes serves Recommend.
func RecommendationRoutes(recommend interfaces.RecommendationService) map[string]transport.Handler {
	helpers.NilPanic(recommend, "handlers.grpc.go: recommend is required")
	return map[string]transport.Handler{
		route(api.MethodRecommend): unary(func(ctx context.Context, req api.RecommendRequest) (api.RecommendResponse, error) {
			hotels, err := recommend.Recommend(ctx, api.ToRecommendationRequest(req))
			if err != nil {
				return api.RecommendResponse{}, err
			}
			return api.RecommendResponse{Hotels: api.FromProfiles(hotels)}, nil
		}),
	}
}

// ReservationRoutes serves Reserve.
func ReservationRoutes(reservations interfaces.ReservationService) map[string]transport.Handler {
	helpers.NilPanic(reservations, "handlers.grpc.go: reservations is required")
	return map[string]transport.Handler{
		route(api.MethodReserve): unary(func(ctx context.Context, req api.ReserveRequest) (api.ReserveResponse, error) {
			res, err := reservations.Reserve(ctx, api.ToReservationRequest(req))
			if err != nil {
				return api.ReserveResponse{}, err
			}
			return api.FromBookingResult(res), nil
		}),
	}
}

// Register adds serviceName with routes to srv.
func Register(srv *grpc.Server, serviceName string, routes map[string]transport.Handler) {
	srv.RegisterService(transport.NewServiceDesc(serviceName, routes), nil)
}
