package service

import (
	"testing"

	"hotelmesh/domain"

	"github.com/stretchr/testify/assert"
)

func TestSelectHotels(t *testing.T) {
	origin := domain.Point{Lat: 37.7749, Lon: -122.4194}
	hotels := []domain.HotelAttributes{
		{ID: "A", Point: domain.Point{Lat: 37.7867, Lon: -122.4112}, Rate: 150, Price: 190},
		{ID: "B", Point: domain.Point{Lat: 37.7854, Lon: -122.4005}, Rate: 150, Price: 120},
		{ID: "C", Point: domain.Point{Lat: 37.7749, Lon: -122.4194}, Rate: 100, Price: 120},
	}

	tests := []struct {
		name      string
		hotels    []domain.HotelAttributes
		criterion domain.Criterion
		want      []string
	}{
		{name: "rate tie keeps both maxima", hotels: hotels, criterion: domain.CriterionRate, want: []string{"A", "B"}},
		{name: "price tie keeps both minima", hotels: hotels, criterion: domain.CriterionPrice, want: []string{"B", "C"}},
		{name: "distance picks the hotel at the origin", hotels: hotels, criterion: domain.CriterionDistance, want: []string{"C"}},
		{
			name: "distance tie within epsilon",
			hotels: []domain.HotelAttributes{
				{ID: "1", Point: domain.Point{Lat: 37.7867, Lon: -122.4112}},
				{ID: "2", Point: domain.Point{Lat: 37.7867, Lon: -122.4112}},
				{ID: "3", Point: domain.Point{Lat: 38.0, Lon: -122.0}},
			},
			criterion: domain.CriterionDistance,
			want:      []string{"1", "2"},
		},
		{
			name: "scores differing beyond epsilon are not tied",
			hotels: []domain.HotelAttributes{
				{ID: "1", Rate: 100},
				{ID: "2", Rate: 100 + 1e-6},
			},
			criterion: domain.CriterionRate,
			want:      []string{"2"},
		},
		{name: "unknown criterion", hotels: hotels, criterion: domain.CriterionUnknown, want: nil},
		{name: "empty table", hotels: nil, criterion: domain.CriterionRate, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectHotels(tt.hotels, tt.criterion, origin))
		})
	}
}
