package novelty

import (
	"context"
	"fmt"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
)

type NoveltyServiceImpl struct {
	repo novelty.ObservationRepository
}

func NewNoveltyService(repo novelty.ObservationRepository) *NoveltyServiceImpl {
	return &NoveltyServiceImpl{repo: repo}
}

// BlockingIntervals implements novelty.Service.
func (s *NoveltyServiceImpl) BlockingIntervals(ctx context.Context, employeeID string) ([]novelty.BlockingInterval, error) {
	observations, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	return NormalizeAll(observations)
}
