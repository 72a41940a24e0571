package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	if company.Website != nil && *company.Website == "" {
		company.Website = nil
	}
	company.Technologies = nonNil(company.Technologies)

	query := `INSERT INTO companies (name, description, industry, location, size, logo, website, technologies)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Industry, company.Location, company.Size, company.Logo,
		company.Website, pq.Array(company.Technologies),
	).Scan(&company.ID, &company.CreatedAt)
	return translateError(err)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT c.id, c.name, c.description, c.industry, c.location, c.size, c.logo,
	          c.website, c.technologies, c.created_at
	          FROM companies c WHERE c.id = $1`
	var company domain.Company
	if err := r.db.QueryRow(ctx, query, id).Scan(companyDest(&company)...); err != nil {
		return nil, translateError(err)
	}
	company.Technologies = nonNil(company.Technologies)
	return &company, nil
}

// FetchWithJobCount lists companies in id order with the number of jobs each
// has posted.
func (r *companyRepo) FetchWithJobCount(ctx context.Context) ([]domain.CompanyWithJobCount, error) {
	query := `
		SELECT c.id, c.name, c.description, c.industry, c.location, c.size, c.logo,
		       c.website, c.technologies, c.created_at,
		       (SELECT COUNT(*) FROM jobs j WHERE j.company_id = c.id) AS job_count
		FROM companies c
		ORDER BY c.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]domain.CompanyWithJobCount, 0)
	for rows.Next() {
		var c domain.CompanyWithJobCount
		dest := append(companyDest(&c.Company), &c.JobCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		c.Technologies = nonNil(c.Technologies)
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
