package recommend

import (
	"context"
	"errors"
	"sync/atomic"

	"gotrip/pkg/recommender"
	"gotrip/pkg/types"
)

// Service define la lógica que exponen los handlers.
type Service interface {
	Recommend(ctx context.Context, req types.ProfileRequest) (recommender.Recommendation, error)
	Ranking(ctx context.Context, req types.ProfileRequest, limit int) ([]recommender.ScoredCandidate, error)
	Catalog() *recommender.Catalog
	Policy() recommender.Policy
	Stats() Stats
}

// Stats son contadores acumulados desde el arranque.
type Stats struct {
	Requests        int64 `json:"requests"`
	Recommendations int64 `json:"recommendations"`
	InvalidProfiles int64 `json:"invalid_profiles"`
	Rejected        int64 `json:"rejected"`
}

type recommendService struct {
	engine *recommender.Recommender

	requests        atomic.Int64
	recommendations atomic.Int64
	invalid         atomic.Int64
	rejected        atomic.Int64
}

func NewService(engine *recommender.Recommender) Service {
	return &recommendService{engine: engine}
}

func (s *recommendService) profile(req types.ProfileRequest) (recommender.UserProfile, error) {
	s.requests.Add(1)
	p, err := recommender.NewUserProfile(req.Preferences, req.Budget, req.Companion)
	if err != nil {
		s.rejected.Add(1)
		return recommender.UserProfile{}, err
	}
	return p, nil
}

func (s *recommendService) track(err error) {
	if errors.Is(err, recommender.ErrInvalidProfile) {
		s.invalid.Add(1)
	}
}

func (s *recommendService) Recommend(ctx context.Context, req types.ProfileRequest) (recommender.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return recommender.Recommendation{}, err
	}
	p, err := s.profile(req)
	if err != nil {
		return recommender.Recommendation{}, err
	}
	rec, err := s.engine.Recommend(p)
	if err != nil {
		s.track(err)
		return recommender.Recommendation{}, err
	}
	s.recommendations.Add(1)
	return rec, nil
}

func (s *recommendService) Ranking(ctx context.Context, req types.ProfileRequest, limit int) ([]recommender.ScoredCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.profile(req)
	if err != nil {
		return nil, err
	}
	ranked, err := s.engine.Rank(p, limit)
	if err != nil {
		s.track(err)
		return nil, err
	}
	return ranked, nil
}

func (s *recommendService) Catalog() *recommender.Catalog { return s.engine.Catalog() }

func (s *recommendService) Policy() recommender.Policy { return s.engine.Policy() }

func (s *recommendService) Stats() Stats {
	return Stats{
		Requests:        s.requests.Load(),
		Recommendations: s.recommendations.Load(),
		InvalidProfiles: s.invalid.Load(),
		Rejected:        s.rejected.Load(),
	}
}
