package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type categoryUsecase struct {
	categoryRepo domain.CategoryRepository
}

func NewCategoryUsecase(categoryRepo domain.CategoryRepository) domain.CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (uc *categoryUsecase) CreateCategory(ctx context.Context, category *domain.JobCategory) error {
	if category.Name == "" {
		return apperror.BadRequest("Category name is required")
	}
	if category.Count < 0 {
		category.Count = 0
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *categoryUsecase) ListCategories(ctx context.Context) ([]domain.JobCategory, error) {
	categories, err := uc.categoryRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}
