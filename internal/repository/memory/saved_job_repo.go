package memory

import (
	"context"
	"fmt"
	"sort"

	"go-jobboard-backend/internal/domain"
)

type savedJobRepo struct {
	store *Store
}

func NewSavedJobRepository(store *Store) domain.SavedJobRepository {
	return &savedJobRepo{store: store}
}

func (r *savedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.PairKey{UserID: saved.UserID, JobID: saved.JobID}
	if _, exists := s.savedJobs[key]; exists {
		return domain.ErrConflict
	}

	s.seq.savedJob++
	saved.ID = s.seq.savedJob
	saved.CreatedAt = s.now()

	stored := *saved
	s.savedJobs[key] = &stored
	return nil
}

func (r *savedJobRepo) GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved, ok := s.savedJobs[domain.PairKey{UserID: userID, JobID: jobID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *saved
	return &out, nil
}

func (r *savedJobRepo) Delete(ctx context.Context, userID, jobID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.savedJobs, domain.PairKey{UserID: userID, JobID: jobID})
	return nil
}

// ListJobsByUser returns the user's saved jobs joined with their company, in
// the order they were saved.
func (r *savedJobRepo) ListJobsByUser(ctx context.Context, userID int64) ([]domain.JobWithCompany, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := make([]*domain.SavedJob, 0)
	for key, sj := range s.savedJobs {
		if key.UserID == userID {
			saved = append(saved, sj)
		}
	}
	sort.Slice(saved, func(i, j int) bool { return saved[i].ID < saved[j].ID })

	jobs := make([]domain.JobWithCompany, 0, len(saved))
	for _, sj := range saved {
		job, ok := s.jobs[sj.JobID]
		if !ok {
			return nil, fmt.Errorf("saved job %d references job %d: %w", sj.ID, sj.JobID, domain.ErrIntegrity)
		}
		joined, err := s.joinCompany(job)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, joined)
	}
	return jobs, nil
}
