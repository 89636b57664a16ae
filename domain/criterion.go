package domain

import "strings"

// Criterion selects the ranking rule of the recommendation service.
type Criterion int

const (
	CriterionUnknown Criterion = iota
	// CriterionDistance keeps the hotels closest to the origin.
	CriterionDistance
	// CriterionRate keeps the best rated hotels.
	CriterionRate
	// CriterionPrice keeps the cheapest hotels.
	CriterionPrice
)

// ParseCriterion accepts "dis"/"distance", "rate" and "price" (case-insensitive).
func ParseCriterion(s string) (Criterion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dis", "distance":
		return CriterionDistance, true
	case "rate":
		return CriterionRate, true
	case "price":
		return CriterionPrice, true
	default:
		return CriterionUnknown, false
	}
}

func (c Criterion) String() string {
	switch c {
	case CriterionDistance:
		return "distance"
	case CriterionRate:
		return "rate"
	case CriterionPrice:
		return "price"
	default:
		return "unknown"
	}
}
