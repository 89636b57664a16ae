package service

import (
	"context"

	"hotelmesh/domain"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

// SearchService implements interfaces.SearchService: geo lookup, then rate and profile
// lookups in parallel. Membership and order of the result come from the profile lookup alone.
type SearchService struct {
	orchestrator
	geo      interfaces.GeoService
	rates    interfaces.RateService
	profiles interfaces.ProfileService
	logger   log.Logger
}

func NewSearchService(
	geo interfaces.GeoService,
	rates interfaces.RateService,
	profiles interfaces.ProfileService,
	clock interfaces.Clock,
	logger log.Logger,
	opts ...OrchestratorOption,
) *SearchService {
	return &SearchService{
		orchestrator: newOrchestrator(helpers.NilPanic(clock, "service.search.go: clock is required"), opts),
		geo:          helpers.NilPanic(geo, "service.search.go: geo is required"),
		rates:        helpers.NilPanic(rates, "service.search.go: rates is required"),
		profiles:     helpers.NilPanic(profiles, "service.search.go: profiles is required"),
		logger:       log.With(helpers.NilPanic(logger, "service.search.go: logger is required"), "component", "search"),
	}
}

// Search returns the profiles of the hotels near req.Origin.
//
// Returns: (profiles, nil), an empty list when geo finds nothing; (nil, malformed_input) on bad
// dates or coordinates; (nil, request_timeout) when the budget runs out at a phase boundary;
// (nil, err) when the geo or profile lookup fails. A failed rate lookup is logged only.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (_ []domain.HotelProfile, err error) {
	ctx, budget, span := s.begin(ctx, "search")
	defer func() { endSpan(span, err) }()

	if err := validateStay(req.InDate, req.OutDate); err != nil {
		return nil, err
	}
	if err := validatePoint(req.Origin); err != nil {
		return nil, err
	}

	ids, err := s.geo.Nearby(ctx, req.Origin)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.HotelProfile{}, nil
	}

	var (
		g        errgroup.Group
		profiles []domain.HotelProfile
	)
	g.Go(func() error {
		if _, err := s.rates.GetRates(ctx, ids, req.InDate, req.OutDate); err != nil {
			level.Warn(s.logger).Log("msg", "rate lookup failed, continuing without rates", "hotels", len(ids), "err", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		profiles, err = s.profiles.GetProfiles(ctx, ids, req.Locale)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := budget.Check("responding"); err != nil {
		return nil, err
	}
	return profiles, nil
}

// validateStay checks that both dates are YYYY-MM-DD and out is not before in.
func validateStay(in, out string) error {
	inDate, err := domain.ParseDate(in)
	if err != nil {
		return NewMalformedInputError("inDate must be YYYY-MM-DD", err)
	}
	outDate, err := domain.ParseDate(out)
	if err != nil {
		return NewMalformedInputError("outDate must be YYYY-MM-DD", err)
	}
	if outDate.Before(inDate) {
		return NewMalformedInputError("outDate must not be before inDate", nil)
	}
	return nil
}
