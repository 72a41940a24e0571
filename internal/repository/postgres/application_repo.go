package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a pending application and bumps the job's counter in one
// transaction. The unique (user_id, job_id) constraint rejects duplicates
// even when two requests race past the usecase pre-check.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	app.Status = domain.ApplicationStatusPending
	if app.CoverLetter != nil && *app.CoverLetter == "" {
		app.CoverLetter = nil
	}

	query := `
		INSERT INTO applications (user_id, job_id, status, cover_letter)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, job_id) DO NOTHING
		RETURNING id, created_at`
	err = tx.QueryRow(ctx, query, app.UserID, app.JobID, app.Status, app.CoverLetter).Scan(&app.ID, &app.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrConflict
	}
	if err != nil {
		return translateError(err)
	}

	if _, err := tx.Exec(ctx, `UPDATE jobs SET application_count = application_count + 1 WHERE id = $1`, app.JobID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *applicationRepo) GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
	query := `SELECT id, user_id, job_id, status, cover_letter, created_at
	          FROM applications WHERE user_id = $1 AND job_id = $2`
	app, err := scanApplication(r.db.QueryRow(ctx, query, userID, jobID))
	if err != nil {
		return nil, translateError(err)
	}
	return app, nil
}

// ListByUser returns the user's applications in submission order.
func (r *applicationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `SELECT id, user_id, job_id, status, cover_letter, created_at
	          FROM applications WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func scanApplication(row scanner) (*domain.Application, error) {
	var app domain.Application
	if err := row.Scan(&app.ID, &app.UserID, &app.JobID, &app.Status, &app.CoverLetter, &app.CreatedAt); err != nil {
		return nil, err
	}
	return &app, nil
}
