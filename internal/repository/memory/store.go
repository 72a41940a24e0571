// Package memory keeps every entity in process memory. It backs the API when
// no database is configured and in tests.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
)

// Store holds all collections and the per-entity id sequences. A single
// RWMutex serialises writers so that uniqueness checks and counter
// increments are atomic with the insert they guard.
type Store struct {
	mu sync.RWMutex

	users        map[int64]*domain.User
	companies    map[int64]*domain.Company
	jobs         map[int64]*domain.Job
	applications map[domain.PairKey]*domain.Application
	savedJobs    map[domain.PairKey]*domain.SavedJob
	categories   map[int64]*domain.JobCategory
	newsletter   map[string]*domain.NewsletterSubscription

	seq sequences

	now func() time.Time
}

// sequences hold the last id handed out per entity type. Ids are never reused.
type sequences struct {
	user, company, job, application, savedJob, category, newsletter int64
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now, which tests use to control createdAt ordering.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		users:        make(map[int64]*domain.User),
		companies:    make(map[int64]*domain.Company),
		jobs:         make(map[int64]*domain.Job),
		applications: make(map[domain.PairKey]*domain.Application),
		savedJobs:    make(map[domain.PairKey]*domain.SavedJob),
		categories:   make(map[int64]*domain.JobCategory),
		newsletter:   make(map[string]*domain.NewsletterSubscription),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// joinCompany must be called with the lock held.
func (s *Store) joinCompany(job *domain.Job) (domain.JobWithCompany, error) {
	company, ok := s.companies[job.CompanyID]
	if !ok {
		return domain.JobWithCompany{}, fmt.Errorf("job %d references company %d: %w", job.ID, job.CompanyID, domain.ErrIntegrity)
	}
	return domain.JobWithCompany{Job: cloneJob(job), Company: cloneCompany(company)}, nil
}

// sortedIDs returns the keys of an id-keyed map in ascending order.
func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Records handed out are copies so callers cannot mutate stored state.

func cloneJob(j *domain.Job) domain.Job {
	c := *j
	c.Skills = append(make([]string, 0, len(j.Skills)), j.Skills...)
	if j.SalaryMin != nil {
		v := *j.SalaryMin
		c.SalaryMin = &v
	}
	if j.SalaryMax != nil {
		v := *j.SalaryMax
		c.SalaryMax = &v
	}
	return c
}

func cloneCompany(co *domain.Company) domain.Company {
	c := *co
	c.Technologies = append(make([]string, 0, len(co.Technologies)), co.Technologies...)
	if co.Website != nil {
		v := *co.Website
		c.Website = &v
	}
	return c
}
