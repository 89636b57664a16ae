package domain

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Address is the postal address of a hotel.
type Address struct {
	StreetNumber string
	StreetName   string
	City         string
	State        string
	Country      string
	PostalCode   string
	Lat          float64
	Lon          float64
}

// HotelProfile is the descriptive record served by the profile service.
type HotelProfile struct {
	ID          string
	Name        string
	PhoneNumber string
	Description string
	Address     Address
}

// HotelLocation binds a hotel id to its coordinates (geo service index entry).
type HotelLocation struct {
	ID    string
	Point Point
}

// HotelAttributes is a row of the recommendation table.
type HotelAttributes struct {
	ID    string
	Point Point
	Rate  float64
	Price float64
}

// RoomType describes one priced room category of a rate plan.
type RoomType struct {
	Code               string
	Description        string
	Currency           string
	BookableRate       float64
	TotalRate          float64
	TotalRateInclusive float64
}

// RatePlan is a per-hotel offer returned by the rate service.
type RatePlan struct {
	HotelID  string
	Code     string
	InDate   string
	OutDate  string
	RoomType RoomType
}
