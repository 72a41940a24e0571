package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

// NewCompanyUsecase creates a new company usecase
func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (uc *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company) error {
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

// ListCompanies returns every company with the number of jobs it has posted
func (uc *companyUsecase) ListCompanies(ctx context.Context) ([]domain.CompanyWithJobCount, error) {
	companies, err := uc.companyRepo.FetchWithJobCount(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}
