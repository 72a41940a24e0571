package domain

import (
	"context"
	"time"
)

// SavedJob is a user's bookmark of a job, unique per (user, job).
type SavedJob struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	JobID     int64     `json:"jobId"`
	CreatedAt time.Time `json:"createdAt"`
}

type SavedJobRepository interface {
	// Create returns ErrConflict when the pair is already saved.
	Create(ctx context.Context, saved *SavedJob) error
	GetByUserAndJob(ctx context.Context, userID, jobID int64) (*SavedJob, error)
	// Delete is idempotent.
	Delete(ctx context.Context, userID, jobID int64) error
	ListJobsByUser(ctx context.Context, userID int64) ([]JobWithCompany, error)
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, userID, jobID int64) (*SavedJob, error)
	UnsaveJob(ctx context.Context, userID, jobID int64) error
	ListSavedJobs(ctx context.Context, userID int64) ([]JobWithCompany, error)
}
