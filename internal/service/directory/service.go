// Package directory exposes read-only reference data.
package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// Service provides directory lookups.
type Service struct {
	categories categoryRepo
	log        *slog.Logger
}

// NewService creates a new Directory service.
func NewService(log *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		categories: categories,
		log:        log.With("service", "directory"),
	}
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
