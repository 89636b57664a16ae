// Package api holds the mesh wire messages, their method paths and the payload codec
// shared by servers (handlers) and clients (adapters/mesh).
package api

// Service names as they appear in method paths.
const (
	SearchServiceName         = "hotelmesh.Search"
	GeoServiceName            = "hotelmesh.Geo"
	RateServiceName           = "hotelmesh.Rate"
	ProfileServiceName        = "hotelmesh.Profile"
	RecommendationServiceName = "hotelmesh.Recommendation"
	ReservationServiceName    = "hotelmesh.Reservation"
	UserServiceName           = "hotelmesh.User"
)

// Full method paths, "/<service>/<method>".
const (
	MethodSearch      = "/" + SearchServiceName + "/Search"
	MethodNearby      = "/" + GeoServiceName + "/Nearby"
	MethodPoint       = "/" + GeoServiceName + "/Point"
	MethodGetRates    = "/" + RateServiceName + "/GetRates"
	MethodGetProfiles = "/" + ProfileServiceName + "/GetProfiles"
	MethodRecommend   = "/" + RecommendationServiceName + "/Recommend"
	MethodReserve     = "/" + ReservationServiceName + "/Reserve"
	MethodRegister    = "/" + UserServiceName + "/Register"
	MethodCheckUser   = "/" + UserServiceName + "/Check"
)
