package service

import (
	"context"

	"hotelmesh/domain"
)

// ProfileTable implements interfaces.ProfileService over a fixed set of profiles.
type ProfileTable struct {
	profiles map[string]domain.HotelProfile
}

func NewProfileTable(profiles []domain.HotelProfile) *ProfileTable {
	t := &ProfileTable{profiles: make(map[string]domain.HotelProfile, len(profiles))}
	for _, p := range profiles {
		t.profiles[p.ID] = p
	}
	return t
}

// GetProfiles returns the profiles of hotelIDs in request order; unknown ids are skipped. All
// profiles are stored in one language, so locale does not change the result.
func (t *ProfileTable) GetProfiles(_ context.Context, hotelIDs []string, _ string) ([]domain.HotelProfile, error) {
	out := make([]domain.HotelProfile, 0, len(hotelIDs))
	for _, id := range hotelIDs {
		if p, ok := t.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
