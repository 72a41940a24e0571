package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const msgAlreadyApplied = "You have already applied to this job"

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits a pending application for the (user, job) pair
func (uc *applicationUsecase) Apply(ctx context.Context, userID, jobID int64, coverLetter string) (*domain.Application, error) {
	// 1. Validate job exists
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Job does not exist")
		}
		return nil, apperror.Internal(err)
	}

	// 2. Check for duplicate application
	existing, err := uc.applicationRepo.GetByUserAndJob(ctx, userID, jobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict(msgAlreadyApplied)
	}

	// 3. Create application. The repository re-checks the pair atomically.
	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.Application{
		UserID:      userID,
		JobID:       jobID,
		CoverLetter: coverLetterPtr,
		Status:      domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict(msgAlreadyApplied)
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// ListUserApplications returns all applications submitted by the user
func (uc *applicationUsecase) ListUserApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}
