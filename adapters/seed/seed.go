// Package seed holds the fixed data set every service starts from: 80 hotels in San
// Francisco, their coordinates, prices and capacities, and the Cornell_N test users.
package seed

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hotelmesh/domain"
)

// HotelCount is the number of seeded hotels; ids are "1".."80".
const HotelCount = 80

// UserCount is the number of seeded users, Cornell_0..Cornell_500.
const UserCount = 501

const (
	defaultCity    = "San Francisco"
	defaultState   = "CA"
	defaultCountry = "United States"
)

// generatedPoint places hotel i (i > 6) on a diagonal running north-east of downtown.
func generatedPoint(i int) domain.Point {
	return domain.Point{
		Lat: 37.7835 + float64(i)/500.0*3,
		Lon: -122.41 + float64(i)/500.0*4,
	}
}

// Profiles returns the profile of every hotel ordered by id.
func Profiles() []domain.HotelProfile {
	out := []domain.HotelProfile{
		{
			ID:          "1",
			Name:        "Clift Hotel",
			PhoneNumber: "(415) 775-4700",
			Description: "A 6-minute walk from Union Square and 4 minutes from a Muni Metro station, this luxury hotel designed by Philippe Starck features an artsy furniture collection in the lobby, including work by Salvador Dali.",
			Address:     address("495", "Geary St", "94102", 37.7867, -122.4112),
		},
		{
			ID:          "2",
			Name:        "W San Francisco",
			PhoneNumber: "(415) 777-5300",
			Description: "Less than a block from the Yerba Buena Center for the Arts, this trendy hotel is a 12-minute walk from Union Square.",
			Address:     address("181", "3rd St", "94103", 37.7854, -122.4005),
		},
		{
			ID:          "3",
			Name:        "Hotel Zetta",
			PhoneNumber: "(415) 543-8555",
			Description: "A 3-minute walk from the Powell Street cable-car turnaround and BART rail station, this hip hotel 9 minutes from Union Square combines high-tech lodging with artsy touches.",
			Address:     address("55", "5th St", "94103", 37.7834, -122.4071),
		},
		{
			ID:          "4",
			Name:        "Hotel Vitale",
			PhoneNumber: "(415) 278-3700",
			Description: "This waterfront hotel with Bay Bridge views is 3 blocks from the Financial District and a 4-minute walk from the Ferry Building.",
			Address:     address("8", "Mission St", "94105", 37.7936, -122.3930),
		},
		{
			ID:          "5",
			Name:        "Phoenix Hotel",
			PhoneNumber: "(415) 776-1380",
			Description: "Located in the Tenderloin neighborhood, a 10-minute walk from a BART rail station, this retro motor lodge has hosted many rock musicians and other celebrities since the 1950s. It's a 4-minute walk from the historic Great American Music Hall nightclub.",
			Address:     address("601", "Eddy St", "94109", 37.7831, -122.4181),
		},
		{
			ID:          "6",
			Name:        stRegisName,
			PhoneNumber: "(415) 284-4000",
			Description: stRegisDescription,
			Address:     address("125", "3rd St", "94109", 37.7863, -122.4015),
		},
	}
	for i := 7; i <= HotelCount; i++ {
		p := generatedPoint(i)
		out = append(out, domain.HotelProfile{
			ID:          strconv.Itoa(i),
			Name:        stRegisName,
			PhoneNumber: "(415) 284-40" + strconv.Itoa(i),
			Description: stRegisDescription,
			Address:     address("125", "3rd St", "94109", p.Lat, p.Lon),
		})
	}
	return out
}

const (
	stRegisName        = "St. Regis San Francisco"
	stRegisDescription = "St. Regis Museum Tower is a 42-story, 484 ft skyscraper in the South of Market district of San Francisco, California, adjacent to Yerba Buena Gardens, Moscone Center, PacBell Building and the San Francisco Museum of Modern Art."
)

func address(number, street, postal string, lat, lon float64) domain.Address {
	return domain.Address{
		StreetNumber: number,
		StreetName:   street,
		City:         defaultCity,
		State:        defaultState,
		Country:      defaultCountry,
		PostalCode:   postal,
		Lat:          lat,
		Lon:          lon,
	}
}

// Locations returns the geo index entries. Hotel 3 is indexed slightly north of the
// coordinates in its profile address; both tables keep their own values.
func Locations() []domain.HotelLocation {
	out := []domain.HotelLocation{
		{ID: "1", Point: domain.Point{Lat: 37.7867, Lon: -122.4112}},
		{ID: "2", Point: domain.Point{Lat: 37.7854, Lon: -122.4005}},
		{ID: "3", Point: domain.Point{Lat: 37.7854, Lon: -122.4071}},
		{ID: "4", Point: domain.Point{Lat: 37.7936, Lon: -122.3930}},
		{ID: "5", Point: domain.Point{Lat: 37.7831, Lon: -122.4181}},
		{ID: "6", Point: domain.Point{Lat: 37.7863, Lon: -122.4015}},
	}
	for i := 7; i <= HotelCount; i++ {
		out = append(out, domain.HotelLocation{ID: strconv.Itoa(i), Point: generatedPoint(i)})
	}
	return out
}

// Attributes returns the recommendation table: coordinates, nightly rate and price.
func Attributes() []domain.HotelAttributes {
	out := []domain.HotelAttributes{
		{ID: "1", Point: domain.Point{Lat: 37.7867, Lon: -122.4112}, Rate: 109.00, Price: 150.00},
		{ID: "2", Point: domain.Point{Lat: 37.7854, Lon: -122.4005}, Rate: 139.00, Price: 120.00},
		{ID: "3", Point: domain.Point{Lat: 37.7834, Lon: -122.4071}, Rate: 109.00, Price: 190.00},
		{ID: "4", Point: domain.Point{Lat: 37.7936, Lon: -122.3930}, Rate: 129.00, Price: 160.00},
		{ID: "5", Point: domain.Point{Lat: 37.7831, Lon: -122.4181}, Rate: 119.00, Price: 140.00},
		{ID: "6", Point: domain.Point{Lat: 37.7863, Lon: -122.4015}, Rate: 149.00, Price: 200.00},
	}
	for i := 7; i <= HotelCount; i++ {
		rate, price := 135.00, 179.00
		if i%3 == 0 {
			switch i % 5 {
			case 0:
				rate, price = 109.00, 123.17
			case 1:
				rate, price = 120.00, 140.00
			case 2:
				rate, price = 124.00, 144.00
			case 3:
				rate, price = 132.00, 158.00
			case 4:
				rate, price = 232.00, 258.00
			}
		}
		out = append(out, domain.HotelAttributes{ID: strconv.Itoa(i), Point: generatedPoint(i), Rate: rate, Price: price})
	}
	return out
}

// RoomTypes returns the priced room categories of hotels 1..10; other hotels have none.
// Rates are derived from the hotel number so every process serves the same prices.
func RoomTypes() map[string][]domain.RoomType {
	out := make(map[string][]domain.RoomType, 10)
	for i := 1; i <= 10; i++ {
		out[strconv.Itoa(i)] = []domain.RoomType{
			roomType("STD", "Standard Room", 100+float64(i*37%50)),
			roomType("DLX", "Deluxe Room", 200+float64(i*61%100)),
		}
	}
	return out
}

func roomType(code, description string, bookable float64) domain.RoomType {
	total := round2(bookable * 1.1)
	return domain.RoomType{
		Code:               code,
		Description:        description,
		Currency:           "USD",
		BookableRate:       bookable,
		TotalRate:          total,
		TotalRateInclusive: round2(total * 1.2),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Inventories returns the capacity of every hotel plus the reservations on the books at
// startup: 200 rooms for hotels 1..6, 300/250/200 for the rest by id modulo 3.
func Inventories() []domain.HotelInventory {
	out := make([]domain.HotelInventory, 0, HotelCount)
	for i := 1; i <= HotelCount; i++ {
		capacity := 200
		if i > 6 {
			switch i % 3 {
			case 1:
				capacity = 300
			case 2:
				capacity = 250
			}
		}
		out = append(out, domain.HotelInventory{HotelID: strconv.Itoa(i), Capacity: capacity})
	}
	out[3].Reservations = []domain.Reservation{{
		ID:           "initial-alice-4",
		HotelID:      "4",
		CustomerName: "Alice",
		InDate:       time.Date(2015, time.April, 9, 0, 0, 0, 0, time.UTC),
		OutDate:      time.Date(2015, time.April, 10, 0, 0, 0, 0, time.UTC),
		Rooms:        1,
	}}
	return out
}

// Users returns Cornell_0..Cornell_500; the password of Cornell_N is N written ten times.
func Users() []domain.User {
	out := make([]domain.User, 0, UserCount)
	for i := 0; i < UserCount; i++ {
		suffix := strconv.Itoa(i)
		out = append(out, domain.User{
			Username: fmt.Sprintf("Cornell_%d", i),
			Password: strings.Repeat(suffix, 10),
		})
	}
	return out
}
