package domain

import (
	"context"
	"time"
)

// Application status constants. Only pending is ever assigned; there is no
// transition to accepted or rejected yet.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application is a user's submitted interest in a job, unique per (user, job).
type Application struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	JobID       int64     `json:"jobId"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"coverLetter"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PairKey identifies the (user, job) relationship owned by applications and
// saved jobs.
type PairKey struct {
	UserID int64
	JobID  int64
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	// Create stores the application as pending and increments the job's
	// application counter. It returns ErrConflict when the pair exists.
	Create(ctx context.Context, app *Application) error
	GetByUserAndJob(ctx context.Context, userID, jobID int64) (*Application, error)
	ListByUser(ctx context.Context, userID int64) ([]Application, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID int64, coverLetter string) (*Application, error)
	ListUserApplications(ctx context.Context, userID int64) ([]Application, error)
}
