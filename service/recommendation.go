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

// RecommendationService implements interfaces.RecommendationService: the selection policy
// over the local attribute table, then a profile lookup for the winners.
type RecommendationService struct {
	orchestrator
	hotels   []domain.HotelAttributes
	profiles interfaces.ProfileService
	rates    interfaces.RateService
	logger   log.Logger
}

// NewRecommendationService creates the service. rates is optional; when set, rate plans of the
// selected hotels are fetched alongside the profiles and a failure there is only logged.
func NewRecommendationService(
	hotels []domain.HotelAttributes,
	profiles interfaces.ProfileService,
	rates interfaces.RateService,
	clock interfaces.Clock,
	logger log.Logger,
	opts ...OrchestratorOption,
) *RecommendationService {
	return &RecommendationService{
		orchestrator: newOrchestrator(helpers.NilPanic(clock, "service.recommendation.go: clock is required"), opts),
		hotels:       append([]domain.HotelAttributes(nil), hotels...),
		profiles:     helpers.NilPanic(profiles, "service.recommendation.go: profiles is required"),
		rates:        rates,
		logger:       log.With(helpers.NilPanic(logger, "service.recommendation.go: logger is required"), "component", "recommendation"),
	}
}

// Recommend returns the profiles of every hotel that ties for the best score under
// req.Require. An unknown criterion yields an empty list. The optional rate lookup is
// date-less: a recommendation has no stay, so the request carries no dates and the plans it
// returns have none either.
func (s *RecommendationService) Recommend(ctx context.Context, req domain.RecommendationRequest) (_ []domain.HotelProfile, err error) {
	ctx, budget, span := s.begin(ctx, "recommend")
	defer func() { endSpan(span, err) }()

	if err := validatePoint(req.Origin); err != nil {
		return nil, err
	}
	criterion, ok := domain.ParseCriterion(req.Require)
	if !ok {
		level.Debug(s.logger).Log("msg", "unknown criterion", "require", req.Require)
		return []domain.HotelProfile{}, nil
	}

	ids := SelectHotels(s.hotels, criterion, req.Origin)
	if len(ids) == 0 {
		return []domain.HotelProfile{}, nil
	}
	if err := budget.Check("profile lookup"); err != nil {
		return nil, err
	}

	var (
		g        errgroup.Group
		profiles []domain.HotelProfile
	)
	if s.rates != nil {
		g.Go(func() error {
			if _, err := s.rates.GetRates(ctx, ids, "", ""); err != nil {
				level.Warn(s.logger).Log("msg", "rate lookup failed, continuing without rates", "hotels", len(ids), "err", err)
			}
			return nil
		})
	}
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
