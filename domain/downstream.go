package domain

import "time"

// ServiceName identifies a mesh service.
type ServiceName string

const (
	ServiceFrontend       ServiceName = "frontend"
	ServiceSearch         ServiceName = "search"
	ServiceGeo            ServiceName = "geo"
	ServiceRate           ServiceName = "rate"
	ServiceProfile        ServiceName = "profile"
	ServiceRecommendation ServiceName = "recommendation"
	ServiceReservation    ServiceName = "reservation"
	ServiceUser           ServiceName = "user"
)

// AllServices lists every mesh service.
var AllServices = []ServiceName{
	ServiceFrontend, ServiceSearch, ServiceGeo, ServiceRate, ServiceProfile,
	ServiceRecommendation, ServiceReservation, ServiceUser,
}

// Downstreams lists the peers each service calls.
var Downstreams = map[ServiceName][]ServiceName{
	ServiceFrontend:       {ServiceSearch, ServiceRecommendation, ServiceUser, ServiceReservation},
	ServiceSearch:         {ServiceGeo, ServiceRate, ServiceProfile},
	ServiceRecommendation: {ServiceProfile, ServiceRate},
	ServiceReservation:    {ServiceUser},
}

// Endpoint is the static address and sizing of one mesh service.
type Endpoint struct {
	Name     ServiceName
	Address  string
	PoolSize int
	Workers  int
}

// SlotStats is a point-in-time view of one connection pool slot.
type SlotStats struct {
	Index    int
	InUse    bool
	LastUsed time.Time
	Errors   int64
}
