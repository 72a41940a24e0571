package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		validate:    validate,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	// Business Validation
	var fields []validation.FieldError
	if res := validation.Struct(u.validate, job); !res.Valid {
		fields = append(fields, res.Errors...)
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		fields = append(fields, validation.FieldError{Field: "salaryMin", Message: "must not be greater than salaryMax"})
	}

	// companyId must reference an existing company
	if _, err := u.companyRepo.GetByID(ctx, job.CompanyID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return apperror.Internal(err)
		}
		fields = append(fields, validation.FieldError{Field: "companyId", Message: "company does not exist"})
	}

	if len(fields) > 0 {
		return apperror.Validation("Invalid job data", fields)
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJob returns the job with its company, or a 404 when the id is unknown
func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// SearchJobs applies the filter and returns matches newest first
func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, error) {
	filter.Search = strings.TrimSpace(filter.Search)

	jobs, err := u.jobRepo.FetchByFilter(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListFeaturedJobs(ctx context.Context) ([]domain.JobWithCompany, error) {
	jobs, err := u.jobRepo.FetchFeatured(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
