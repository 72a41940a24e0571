package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	query := `
		INSERT INTO saved_jobs (user_id, job_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, job_id) DO NOTHING
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, saved.UserID, saved.JobID).Scan(&saved.ID, &saved.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrConflict
	}
	return translateError(err)
}

func (r *savedJobRepo) GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	query := `SELECT id, user_id, job_id, created_at FROM saved_jobs WHERE user_id = $1 AND job_id = $2`
	var saved domain.SavedJob
	err := r.db.QueryRow(ctx, query, userID, jobID).Scan(&saved.ID, &saved.UserID, &saved.JobID, &saved.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &saved, nil
}

// Delete removes the pair if present. Deleting a missing pair is not an error.
func (r *savedJobRepo) Delete(ctx context.Context, userID, jobID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	return err
}

// ListJobsByUser returns the user's saved jobs joined with their company, in
// the order they were saved.
func (r *savedJobRepo) ListJobsByUser(ctx context.Context, userID int64) ([]domain.JobWithCompany, error) {
	query := `SELECT ` + jobWithCompanyColumns + `
		FROM saved_jobs sj
		JOIN jobs j ON j.id = sj.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE sj.user_id = $1
		ORDER BY sj.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.JobWithCompany, 0)
	for rows.Next() {
		job, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
