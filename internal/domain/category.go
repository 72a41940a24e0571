package domain

import "context"

// JobCategory is a browsable category. Count is a display counter only.
type JobCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *JobCategory) error
	FetchAll(ctx context.Context) ([]JobCategory, error)
}

type CategoryUsecase interface {
	CreateCategory(ctx context.Context, category *JobCategory) error
	ListCategories(ctx context.Context) ([]JobCategory, error)
}
