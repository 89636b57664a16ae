package domain

// SearchRequest is the input of the search orchestrator.
type SearchRequest struct {
	CustomerName string
	InDate       string
	OutDate      string
	Origin       Point
	Locale       string
}

// RecommendationRequest is the input of the recommendation orchestrator. Require holds the
// raw criterion name as sent by the client.
type RecommendationRequest struct {
	Origin  Point
	Require string
	Locale  string
}

// ReservationRequest is the input of the reservation service.
type ReservationRequest struct {
	CustomerName string
	HotelID      string
	InDate       string
	OutDate      string
	Rooms        int
	Username     string
	Password     string
}
