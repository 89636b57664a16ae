package service

import (
	"context"
	"fmt"
	"sort"

	"hotelmesh/domain"
)

const (
	nearbyLimit    = 5
	nearbyRadiusKm = 10.0
)

// GeoIndex implements interfaces.GeoService over a fixed set of hotel locations.
type GeoIndex struct {
	hotels []domain.HotelLocation
	byID   map[string]domain.Point
}

func NewGeoIndex(locations []domain.HotelLocation) *GeoIndex {
	g := &GeoIndex{
		hotels: append([]domain.HotelLocation(nil), locations...),
		byID:   make(map[string]domain.Point, len(locations)),
	}
	for _, l := range locations {
		g.byID[l.ID] = l.Point
	}
	return g
}

// Nearby returns the ids of the closest hotels within 10 km of origin, at most 5, closest
// first. Equidistant hotels keep index order.
func (g *GeoIndex) Nearby(_ context.Context, origin domain.Point) ([]string, error) {
	if err := validatePoint(origin); err != nil {
		return nil, err
	}
	type candidate struct {
		id       string
		distance float64
	}
	candidates := make([]candidate, 0, len(g.hotels))
	for _, h := range g.hotels {
		if d := domain.Distance(origin, h.Point); d <= nearbyRadiusKm {
			candidates = append(candidates, candidate{id: h.ID, distance: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if len(candidates) > nearbyLimit {
		candidates = candidates[:nearbyLimit]
	}
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.id)
	}
	return ids, nil
}

func (g *GeoIndex) Point(_ context.Context, hotelID string) (domain.Point, error) {
	p, ok := g.byID[hotelID]
	if !ok {
		return domain.Point{}, NewEntityNotFoundError(fmt.Sprintf("hotel %q not found", hotelID), nil)
	}
	return p, nil
}

func validatePoint(p domain.Point) error {
	if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
		return NewMalformedInputError(fmt.Sprintf("coordinates out of range: lat=%v lon=%v", p.Lat, p.Lon), nil)
	}
	return nil
}
