package court

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type CourtRepository interface {
	GetAllCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id string) (Court, error)
	InsertCourt(ctx context.Context, c Court) (Court, error)
	UpdateCourt(ctx context.Context, c Court) error
	DeleteCourt(ctx context.Context, id string) error
}

// Service fronts the court inventory. Single-court reads sit on the hot path
// of every reservation and payment (price lookup), so they are cached with a
// short TTL; mutations evict the cached entry.
type Service struct {
	repo  CourtRepository
	cache *cache.Cache
}

func NewService(repo CourtRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (s *Service) GetAllCourts(ctx context.Context) ([]Court, error) {
	return s.repo.GetAllCourts(ctx)
}

func (s *Service) FindCourtByID(ctx context.Context, id string) (Court, error) {
	cached, found := s.cache.Get(id)

	if found {
		return cached.(Court), nil
	}

	c, err := s.repo.GetCourtByID(ctx, id)

	if err != nil {
		return Court{}, err
	}

	s.cache.Set(id, c, cache.DefaultExpiration)

	return c, nil
}

func (s *Service) CreateCourt(ctx context.Context, c Court) (Court, error) {
	return s.repo.InsertCourt(ctx, c)
}

func (s *Service) ModifyCourt(ctx context.Context, c Court) error {
	err := s.repo.UpdateCourt(ctx, c)

	if err == nil {
		s.cache.Delete(c.ID)
	}

	return err
}

func (s *Service) RemoveCourt(ctx context.Context, id string) error {
	err := s.repo.DeleteCourt(ctx, id)

	if err == nil {
		s.cache.Delete(id)
	}

	return err
}
