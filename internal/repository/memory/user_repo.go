package memory

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrConflict
		}
	}

	s.seq.user++
	user.ID = s.seq.user
	user.CreatedAt = s.now()
	if user.ProfileImage != nil && *user.ProfileImage == "" {
		user.ProfileImage = nil
	}

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *user
	return &out, nil
}

// GetByUsername scans every user; there is no secondary index.
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

// GetByEmail scans every user; there is no secondary index.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *userRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if u := s.users[id]; match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}
