package memory

import (
	"context"
	"sort"

	"go-jobboard-backend/internal/domain"
)

type applicationRepo struct {
	store *Store
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(store *Store) domain.ApplicationRepository {
	return &applicationRepo{store: store}
}

// Create inserts a pending application and bumps the job's counter. Both
// happen under the write lock, so a duplicate can never be counted twice.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.PairKey{UserID: app.UserID, JobID: app.JobID}
	if _, exists := s.applications[key]; exists {
		return domain.ErrConflict
	}

	s.seq.application++
	app.ID = s.seq.application
	app.Status = domain.ApplicationStatusPending
	app.CreatedAt = s.now()
	if app.CoverLetter != nil && *app.CoverLetter == "" {
		app.CoverLetter = nil
	}

	stored := *app
	s.applications[key] = &stored

	if job, ok := s.jobs[app.JobID]; ok {
		job.ApplicationCount++
	}
	return nil
}

func (r *applicationRepo) GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.applications[domain.PairKey{UserID: userID, JobID: jobID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *app
	return &out, nil
}

// ListByUser returns the user's applications in submission order.
func (r *applicationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]domain.Application, 0)
	for key, app := range s.applications {
		if key.UserID == userID {
			apps = append(apps, *app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps, nil
}
