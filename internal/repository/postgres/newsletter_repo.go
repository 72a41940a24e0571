package postgres

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type newsletterRepo struct {
	db *pgxpool.Pool
}

func NewNewsletterRepository(db *pgxpool.Pool) domain.NewsletterRepository {
	return &newsletterRepo{db: db}
}

// Subscribe stores the address once. Addresses compare case-insensitively.
func (r *newsletterRepo) Subscribe(ctx context.Context, sub *domain.NewsletterSubscription) (bool, error) {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))

	query := `
		INSERT INTO newsletter_subscriptions (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, sub.Email).Scan(&sub.ID, &sub.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		existing := `SELECT id, created_at FROM newsletter_subscriptions WHERE email = $1`
		if err := r.db.QueryRow(ctx, existing, sub.Email).Scan(&sub.ID, &sub.CreatedAt); err != nil {
			return false, translateError(err)
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
