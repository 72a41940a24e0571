package memory

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
)

type newsletterRepo struct {
	store *Store
}

func NewNewsletterRepository(store *Store) domain.NewsletterRepository {
	return &newsletterRepo{store: store}
}

func (r *newsletterRepo) Subscribe(ctx context.Context, sub *domain.NewsletterSubscription) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(sub.Email)
	if existing, ok := s.newsletter[key]; ok {
		*sub = *existing
		return false, nil
	}

	s.seq.newsletter++
	sub.ID = s.seq.newsletter
	sub.CreatedAt = s.now()

	stored := *sub
	s.newsletter[key] = &stored
	return true, nil
}
