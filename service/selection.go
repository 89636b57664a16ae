package service

import (
	"math"

	"hotelmesh/domain"
)

// tieEpsilon is the tolerance within which two scores count as equal.
const tieEpsilon = 1e-10

// SelectHotels returns every hotel whose score under criterion equals the best score within
// tieEpsilon, in table order. Distance and price are minimized, rate is maximized. An unknown
// criterion or an empty table selects nothing.
func SelectHotels(hotels []domain.HotelAttributes, criterion domain.Criterion, origin domain.Point) []string {
	var (
		score    func(domain.HotelAttributes) float64
		maximize bool
	)
	switch criterion {
	case domain.CriterionDistance:
		score = func(h domain.HotelAttributes) float64 { return domain.Distance(origin, h.Point) }
	case domain.CriterionRate:
		score = func(h domain.HotelAttributes) float64 { return h.Rate }
		maximize = true
	case domain.CriterionPrice:
		score = func(h domain.HotelAttributes) float64 { return h.Price }
	default:
		return nil
	}
	if len(hotels) == 0 {
		return nil
	}

	scores := make([]float64, len(hotels))
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	for i, h := range hotels {
		scores[i] = score(h)
		if (maximize && scores[i] > best) || (!maximize && scores[i] < best) {
			best = scores[i]
		}
	}

	var ids []string
	for i, h := range hotels {
		if math.Abs(scores[i]-best) < tieEpsilon {
			ids = append(ids, h.ID)
		}
	}
	return ids
}
