package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danielkpl2/hotel/internal/repository"
)

// AdminService wraps the fixture-data operations exposed to operators.
type AdminService struct {
	seed   *repository.SeedRepository
	logger *zap.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(seed *repository.SeedRepository, logger *zap.Logger) *AdminService {
	return &AdminService{seed: seed, logger: logger}
}

// SeedSmall clears existing data and loads the three-hotel dataset.
func (s *AdminService) SeedSmall(ctx context.Context) (*repository.DataSummary, error) {
	if err := s.seed.ClearAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear data before seeding: %w", err)
	}
	if err := s.seed.SeedSmall(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("small seed dataset loaded")
	return s.seed.Summary(ctx)
}

// SeedLarge clears existing data and loads the eight-hotel dataset.
func (s *AdminService) SeedLarge(ctx context.Context) (*repository.DataSummary, error) {
	if err := s.seed.ClearAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear data before seeding: %w", err)
	}
	if err := s.seed.SeedLarge(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("large seed dataset loaded")
	return s.seed.Summary(ctx)
}

// ClearAll removes every row from every table.
func (s *AdminService) ClearAll(ctx context.Context) (*repository.DataSummary, error) {
	if err := s.seed.ClearAll(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("all data cleared")
	return s.seed.Summary(ctx)
}

// DataSummary returns the current row counts.
func (s *AdminService) DataSummary(ctx context.Context) (*repository.DataSummary, error) {
	return s.seed.Summary(ctx)
}
