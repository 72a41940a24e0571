package memory

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type companyRepo struct {
	store *Store
}

func NewCompanyRepository(store *Store) domain.CompanyRepository {
	return &companyRepo{store: store}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.company++
	company.ID = s.seq.company
	company.CreatedAt = s.now()
	if company.Website != nil && *company.Website == "" {
		company.Website = nil
	}
	if company.Technologies == nil {
		company.Technologies = []string{}
	}

	stored := cloneCompany(company)
	s.companies[company.ID] = &stored
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	company, ok := s.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneCompany(company)
	return &out, nil
}

func (r *companyRepo) FetchWithJobCount(ctx context.Context) ([]domain.CompanyWithJobCount, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int64]int, len(s.companies))
	for _, job := range s.jobs {
		counts[job.CompanyID]++
	}

	out := make([]domain.CompanyWithJobCount, 0, len(s.companies))
	for _, id := range sortedIDs(s.companies) {
		out = append(out, domain.CompanyWithJobCount{
			Company:  cloneCompany(s.companies[id]),
			JobCount: counts[id],
		})
	}
	return out, nil
}
