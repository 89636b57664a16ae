package api

type SearchRequest struct {
	CustomerName string  `json:"customer_name"`
	InDate       string  `json:"in_date"`
	OutDate      string  `json:"out_date"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Locale       string  `json:"locale,omitempty"`
}

type SearchResponse struct {
	Hotels []Hotel `json:"hotels"`
}

type NearbyRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type NearbyResponse struct {
	HotelIDs []string `json:"hotel_ids"`
}

type PointRequest struct {
	HotelID string `json:"hotel_id"`
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GetRatesRequest carries the stay dates only when the caller has a stay in mind.
type GetRatesRequest struct {
	HotelIDs []string `json:"hotel_ids"`
	InDate   string   `json:"in_date,omitempty"`
	OutDate  string   `json:"out_date,omitempty"`
}

type GetRatesResponse struct {
	RatePlans []RatePlan `json:"rate_plans"`
}

type RatePlan struct {
	HotelID  string   `json:"hotel_id"`
	Code     string   `json:"code"`
	InDate   string   `json:"in_date,omitempty"`
	OutDate  string   `json:"out_date,omitempty"`
	RoomType RoomType `json:"room_type"`
}

type RoomType struct {
	Code               string  `json:"code"`
	Description        string  `json:"room_description"`
	Currency           string  `json:"currency"`
	BookableRate       float64 `json:"bookable_rate"`
	TotalRate          float64 `json:"total_rate"`
	TotalRateInclusive float64 `json:"total_rate_inclusive"`
}

type GetProfilesRequest struct {
	HotelIDs []string `json:"hotel_ids"`
	Locale   string   `json:"locale,omitempty"`
}

type GetProfilesResponse struct {
	Hotels []Hotel `json:"hotels"`
}

// Hotel is the wire form of a hotel profile; the frontend serves it as is.
type Hotel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Description string  `json:"description"`
	Address     Address `json:"address"`
}

type Address struct {
	StreetNumber string  `json:"streetNumber"`
	StreetName   string  `json:"streetName"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postalCode"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

type RecommendRequest struct {
	Require string  `json:"require"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Locale  string  `json:"locale,omitempty"`
}

type RecommendResponse struct {
	Hotels []Hotel `json:"hotels"`
}

type ReserveRequest struct {
	CustomerName string `json:"customer_name"`
	HotelID      string `json:"hotel_id"`
	InDate       string `json:"in_date"`
	OutDate      string `json:"out_date"`
	RoomNumber   int    `json:"room_number"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

type ReserveResponse struct {
	Message       string `json:"message"`
	Outcome       string `json:"outcome"`
	ReservationID string `json:"reservation_id,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message    string `json:"message"`
	Registered bool   `json:"registered"`
}

type CheckUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CheckUserResponse struct {
	Exists bool `json:"exists"`
}
