package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const msgAlreadySaved = "Job is already saved"

type savedJobUsecase struct {
	savedJobRepo domain.SavedJobRepository
	jobRepo      domain.JobRepository
}

func NewSavedJobUsecase(savedJobRepo domain.SavedJobRepository, jobRepo domain.JobRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
	}
}

func (uc *savedJobUsecase) SaveJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Job does not exist")
		}
		return nil, apperror.Internal(err)
	}

	existing, err := uc.savedJobRepo.GetByUserAndJob(ctx, userID, jobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict(msgAlreadySaved)
	}

	saved := &domain.SavedJob{UserID: userID, JobID: jobID}
	if err := uc.savedJobRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict(msgAlreadySaved)
		}
		return nil, apperror.Internal(err)
	}
	return saved, nil
}

// UnsaveJob removes the bookmark. Removing one that does not exist succeeds.
func (uc *savedJobUsecase) UnsaveJob(ctx context.Context, userID, jobID int64) error {
	if err := uc.savedJobRepo.Delete(ctx, userID, jobID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *savedJobUsecase) ListSavedJobs(ctx context.Context, userID int64) ([]domain.JobWithCompany, error) {
	jobs, err := uc.savedJobRepo.ListJobsByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
