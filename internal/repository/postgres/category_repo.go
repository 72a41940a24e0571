package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) domain.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.JobCategory) error {
	query := `INSERT INTO job_categories (name, icon, count, color) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, query, category.Name, category.Icon, category.Count, category.Color).Scan(&category.ID)
	return translateError(err)
}

func (r *categoryRepo) FetchAll(ctx context.Context) ([]domain.JobCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, icon, count, color FROM job_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]domain.JobCategory, 0)
	for rows.Next() {
		var c domain.JobCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Count, &c.Color); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
