package api

import "hotelmesh/domain"

// FromProfiles converts domain profiles to wire hotels. A nil input yields an empty slice
// so that JSON bodies carry [] rather than null.
func FromProfiles(profiles []domain.HotelProfile) []Hotel {
	out := make([]Hotel, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Hotel{
			ID:          p.ID,
			Name:        p.Name,
			PhoneNumber: p.PhoneNumber,
			Description: p.Description,
			Address: Address{
				StreetNumber: p.Address.StreetNumber,
				StreetName:   p.Address.StreetName,
				City:         p.Address.City,
				State:        p.Address.State,
				Country:      p.Address.Country,
				PostalCode:   p.Address.PostalCode,
				Lat:          p.Address.Lat,
				Lon:          p.Address.Lon,
			},
		})
	}
	return out
}

// ToProfiles converts wire hotels to domain profiles, preserving order.
func ToProfiles(hotels []Hotel) []domain.HotelProfile {
	out := make([]domain.HotelProfile, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, domain.HotelProfile{
			ID:          h.ID,
			Name:        h.Name,
			PhoneNumber: h.PhoneNumber,
			Description: h.Description,
			Address: domain.Address{
				StreetNumber: h.Address.StreetNumber,
				StreetName:   h.Address.StreetName,
				City:         h.Address.City,
				State:        h.Address.State,
				Country:      h.Address.Country,
				PostalCode:   h.Address.PostalCode,
				Lat:          h.Address.Lat,
				Lon:          h.Address.Lon,
			},
		})
	}
	return out
}

func FromRatePlans(plans []domain.RatePlan) []RatePlan {
	out := make([]RatePlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, RatePlan{
			HotelID: p.HotelID,
			Code:    p.Code,
			InDate:  p.InDate,
			OutDate: p.OutDate,
			RoomType: RoomType{
				Code:               p.RoomType.Code,
				Description:        p.RoomType.Description,
				Currency:           p.RoomType.Currency,
				BookableRate:       p.RoomType.BookableRate,
				TotalRate:          p.RoomType.TotalRate,
				TotalRateInclusive: p.RoomType.TotalRateInclusive,
			},
		})
	}
	return out
}

func ToRatePlans(plans []RatePlan) []domain.RatePlan {
	out := make([]domain.RatePlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, domain.RatePlan{
			HotelID: p.HotelID,
			Code:    p.Code,
			InDate:  p.InDate,
			OutDate: p.OutDate,
			RoomType: domain.RoomType{
				Code:               p.RoomType.Code,
				Description:        p.RoomType.Description,
				Currency:           p.RoomType.Currency,
				BookableRate:       p.RoomType.BookableRate,
				TotalRate:          p.RoomType.TotalRate,
				TotalRateInclusive: p.RoomType.TotalRateInclusive,
			},
		})
	}
	return out
}

func FromSearchRequest(req domain.SearchRequest) SearchRequest {
	return SearchRequest{
		CustomerName: req.CustomerName,
		InDate:       req.InDate,
		OutDate:      req.OutDate,
		Lat:          req.Origin.Lat,
		Lon:          req.Origin.Lon,
		Locale:       req.Locale,
	}
}

func ToSearchRequest(req SearchRequest) domain.SearchRequest {
	return domain.SearchRequest{
		CustomerName: req.CustomerName,
		InDate:       req.InDate,
		OutDate:      req.OutDate,
		Origin:       domain.Point{Lat: req.Lat, Lon: req.Lon},
		Locale:       req.Locale,
	}
}

func FromRecommendationRequest(req domain.RecommendationRequest) RecommendRequest {
	return RecommendRequest{
		Require: req.Require,
		Lat:     req.Origin.Lat,
		Lon:     req.Origin.Lon,
		Locale:  req.Locale,
	}
}

func ToRecommendationRequest(req RecommendRequest) domain.RecommendationRequest {
	return domain.RecommendationRequest{
		Origin:  domain.Point{Lat: req.Lat, Lon: req.Lon},
		Require: req.Require,
		Locale:  req.Locale,
	}
}

func FromReservationRequest(req domain.ReservationRequest) ReserveRequest {
	return ReserveRequest{
		CustomerName: req.CustomerName,
		HotelID:      req.HotelID,
		InDate:       req.InDate,
		OutDate:      req.OutDate,
		RoomNumber:   req.Rooms,
		Username:     req.Username,
		Password:     req.Password,
	}
}

func ToReservationRequest(req ReserveRequest) domain.ReservationRequest {
	return domain.ReservationRequest{
		CustomerName: req.CustomerName,
		HotelID:      req.HotelID,
		InDate:       req.InDate,
		OutDate:      req.OutDate,
		Rooms:        req.RoomNumber,
		Username:     req.Username,
		Password:     req.Password,
	}
}

func FromBookingResult(res domain.BookingResult) ReserveResponse {
	return ReserveResponse{
		Message:       res.Message(),
		Outcome:       res.Outcome.String(),
		ReservationID: res.ReservationID,
	}
}
