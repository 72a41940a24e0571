package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobColumns = `
	j.id, j.title, j.description, j.company_id, j.category, j.type,
	j.experience_level, j.location, j.remote_type, j.salary_min, j.salary_max,
	j.currency, j.skills, j.featured, j.urgent, j.application_count, j.created_at`

const jobWithCompanyColumns = jobColumns + `,
	c.id, c.name, c.description, c.industry, c.location, c.size, c.logo,
	c.website, c.technologies, c.created_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	job.ApplyDefaults()

	query := `INSERT INTO jobs (title, description, company_id, category, type, experience_level, location,
	          remote_type, salary_min, salary_max, currency, skills, featured, urgent)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	          RETURNING id, application_count, created_at`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.CompanyID, job.Category, job.Type, job.ExperienceLevel, job.Location,
		job.RemoteType, job.SalaryMin, job.SalaryMax, job.Currency, pq.Array(job.Skills), job.Featured, job.Urgent,
	).Scan(&job.ID, &job.ApplicationCount, &job.CreatedAt)
	return translateError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return job, nil
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `SELECT ` + jobWithCompanyColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`
	job, err := scanJobWithCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return job, nil
}

// FetchByFilter returns the matching jobs newest first.
func (r *jobRepo) FetchByFilter(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, error) {
	query, args := buildJobFilterQuery(filter)
	return r.fetch(ctx, query, args...)
}

func (r *jobRepo) FetchFeatured(ctx context.Context) ([]domain.JobWithCompany, error) {
	query := `SELECT ` + jobWithCompanyColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.featured
		ORDER BY j.id`
	return r.fetch(ctx, query)
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.JobWithCompany, error) {
	rows, err := r.db.Query(ctx, query, args...)
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

// buildJobFilterQuery renders the search as one parameterised statement. The
// salary condition is only added when both bounds are present.
func buildJobFilterQuery(f domain.JobFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Category != "" {
		conds = append(conds, "j.category = "+arg(f.Category))
	}
	if f.Type != "" {
		conds = append(conds, "j.type = "+arg(f.Type))
	}
	if f.ExperienceLevel != "" {
		conds = append(conds, "j.experience_level = "+arg(f.ExperienceLevel))
	}
	if f.RemoteType != "" {
		conds = append(conds, "j.remote_type = "+arg(f.RemoteType))
	}
	if f.HasSalaryRange() {
		conds = append(conds, fmt.Sprintf(
			"j.salary_min IS NOT NULL AND j.salary_max IS NOT NULL AND j.salary_min >= %s AND j.salary_max <= %s",
			arg(*f.SalaryMin), arg(*f.SalaryMax),
		))
	}
	if f.Search != "" {
		p := arg("%" + escapeLike(f.Search) + "%")
		conds = append(conds, fmt.Sprintf(
			"(j.title ILIKE %[1]s OR j.description ILIKE %[1]s OR EXISTS (SELECT 1 FROM unnest(j.skills) AS s(skill) WHERE s.skill ILIKE %[1]s))",
			p,
		))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + jobWithCompanyColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id`)
	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, "\n\t\t  AND "))
	}
	sb.WriteString("\n\t\tORDER BY j.created_at DESC, j.id DESC")
	return sb.String(), args
}

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func jobDest(job *domain.Job) []any {
	return []any{
		&job.ID, &job.Title, &job.Description, &job.CompanyID, &job.Category, &job.Type,
		&job.ExperienceLevel, &job.Location, &job.RemoteType, &job.SalaryMin, &job.SalaryMax,
		&job.Currency, pq.Array(&job.Skills), &job.Featured, &job.Urgent, &job.ApplicationCount, &job.CreatedAt,
	}
}

func companyDest(co *domain.Company) []any {
	return []any{
		&co.ID, &co.Name, &co.Description, &co.Industry, &co.Location, &co.Size, &co.Logo,
		&co.Website, pq.Array(&co.Technologies), &co.CreatedAt,
	}
}

func scanJob(row scanner) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(jobDest(&job)...); err != nil {
		return nil, err
	}
	job.Skills = nonNil(job.Skills)
	return &job, nil
}

func scanJobWithCompany(row scanner) (*domain.JobWithCompany, error) {
	var out domain.JobWithCompany
	dest := append(jobDest(&out.Job), companyDest(&out.Company)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	out.Skills = nonNil(out.Skills)
	out.Company.Technologies = nonNil(out.Company.Technologies)
	return &out, nil
}
