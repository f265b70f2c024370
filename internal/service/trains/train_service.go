package trains

import (
	"context"

	"github.com/Domenick1991/railbooking/internal/cache"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/metrics"
	"github.com/rs/zerolog/log"
)

type TrainUseCase interface {
	List(ctx context.Context) []domain.TrainRoute
	Search(ctx context.Context, from, to, date string) []domain.TrainRoute
}

type Catalog interface {
	List() []domain.TrainRoute
	FindMatches(origin, destination, travelDate string) []domain.TrainRoute
}

type SearchCache interface {
	GetTrains(ctx context.Context, key string) ([]domain.TrainRoute, error)
	SetTrains(ctx context.Context, key string, trains []domain.TrainRoute) error
}

type TrainService struct {
	catalog Catalog
	cache   SearchCache
}

// NewTrainService accepts a nil cache; searches then always hit the catalog.
func NewTrainService(catalog Catalog, cache SearchCache) *TrainService {
	return &TrainService{catalog: catalog, cache: cache}
}

func (s *TrainService) List(_ context.Context) []domain.TrainRoute {
	return s.catalog.List()
}

func (s *TrainService) Search(ctx context.Context, from, to, date string) []domain.TrainRoute {
	trains := s.search(ctx, from, to, date)

	result := "found"
	if len(trains) == 0 {
		result = "empty"
	}
	metrics.TrainSearches.WithLabelValues(result).Inc()

	return trains
}

func (s *TrainService) search(ctx context.Context, from, to, date string) []domain.TrainRoute {
	key := cache.SearchKey(from, to, date)

	if s.cache != nil {
		cached, err := s.cache.GetTrains(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
		} else if cached != nil {
			return cached
		}
	}

	trains := s.catalog.FindMatches(from, to, date)
	if s.cache != nil {
		if err := s.cache.SetTrains(ctx, key, trains); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
		}
	}
	return trains
}

var _ TrainUseCase = (*TrainService)(nil)
