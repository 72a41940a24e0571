package memory

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type categoryRepo struct {
	store *Store
}

func NewCategoryRepository(store *Store) domain.CategoryRepository {
	return &categoryRepo{store: store}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.JobCategory) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.category++
	category.ID = s.seq.category

	stored := *category
	s.categories[category.ID] = &stored
	return nil
}

func (r *categoryRepo) FetchAll(ctx context.Context) ([]domain.JobCategory, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.JobCategory, 0, len(s.categories))
	for _, id := range sortedIDs(s.categories) {
		out = append(out, *s.categories[id])
	}
	return out, nil
}
