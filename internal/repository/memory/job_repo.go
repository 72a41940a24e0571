package memory

import (
	"context"
	"sort"

	"go-jobboard-backend/internal/domain"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.job++
	job.ID = s.seq.job
	job.CreatedAt = s.now()
	job.ApplyDefaults()

	stored := cloneJob(job)
	s.jobs[job.ID] = &stored
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneJob(job)
	return &out, nil
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	joined, err := s.joinCompany(job)
	if err != nil {
		return nil, err
	}
	return &joined, nil
}

// FetchByFilter returns the jobs matching filter, joined with their company,
// newest first.
func (r *jobRepo) FetchByFilter(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.JobWithCompany, 0)
	for _, id := range sortedIDs(s.jobs) {
		job := s.jobs[id]
		if !filter.Matches(job) {
			continue
		}
		joined, err := s.joinCompany(job)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, joined)
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		if !jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
		}
		return jobs[i].ID > jobs[j].ID
	})
	return jobs, nil
}

// FetchFeatured returns featured jobs in store order.
func (r *jobRepo) FetchFeatured(ctx context.Context) ([]domain.JobWithCompany, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.JobWithCompany, 0)
	for _, id := range sortedIDs(s.jobs) {
		job := s.jobs[id]
		if !job.Featured {
			continue
		}
		joined, err := s.joinCompany(job)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, joined)
	}
	return jobs, nil
}
