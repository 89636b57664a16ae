package service

import (
	"context"

	"hotelmesh/domain"
)

// RateTable implements interfaces.RateService over fixed room types per hotel.
type RateTable struct {
	rooms map[string][]domain.RoomType
}

func NewRateTable(rooms map[string][]domain.RoomType) *RateTable {
	return &RateTable{rooms: rooms}
}

// GetRates returns one plan per room type of every requested hotel, in request order. Hotels
// without rates contribute nothing. The dates are echoed into each plan.
func (r *RateTable) GetRates(_ context.Context, hotelIDs []string, inDate, outDate string) ([]domain.RatePlan, error) {
	plans := make([]domain.RatePlan, 0, 2*len(hotelIDs))
	for _, id := range hotelIDs {
		for _, rt := range r.rooms[id] {
			plans = append(plans, domain.RatePlan{
				HotelID:  id,
				Code:     rt.Code,
				InDate:   inDate,
				OutDate:  outDate,
				RoomType: rt,
			})
		}
	}
	return plans, nil
}
