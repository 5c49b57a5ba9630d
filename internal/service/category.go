package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meshram0823/UrbanCart/internal/domain"
	"github.com/meshram0823/UrbanCart/internal/repository"
	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

// CategoryService implements the business logic for category operations.
type CategoryService struct {
	repo   repository.CategoryRepository
	logger *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: logger,
	}
}

// CreateCategory inserts a new category. Names are unique across the
// catalog.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.InvalidInput("Category name is required")
	}

	category := &domain.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		if apperrors.HTTPStatus(err) != 500 {
			return nil, err
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID.Hex()),
		slog.String("name", category.Name),
	)

	return category, nil
}

// ListCategories returns all categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
