//go:build integration

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repository/postgres/
package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPool migrates a throwaway schema and returns a pool bound to it.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	admin, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	schemaName := fmt.Sprintf("jobboard_test_%d", time.Now().UnixNano())
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schemaName)
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(url)
	require.NoError(t, err)
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	cfg.ConnConfig.RuntimeParams["search_path"] = schemaName
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schemaName+" CASCADE")
		admin.Close()
	})

	require.NoError(t, Migrate(ctx, pool))
	return pool
}

func createCompany(t *testing.T, repo domain.CompanyRepository, name string) *domain.Company {
	t.Helper()
	co := &domain.Company{Name: name, Description: "d", Industry: "Tech", Location: "Remote", Size: "10-50", Logo: "logo.png"}
	require.NoError(t, repo.Create(context.Background(), co))
	return co
}

func createJob(t *testing.T, repo domain.JobRepository, companyID int64, title string, salaryMin, salaryMax *int) *domain.Job {
	t.Helper()
	job := &domain.Job{
		Title: title, Description: "Build things", CompanyID: companyID, Category: "Engineering",
		Type: domain.JobTypeFullTime, ExperienceLevel: domain.ExperienceMid, Location: "Remote",
		RemoteType: domain.RemoteFully, SalaryMin: salaryMin, SalaryMax: salaryMax, Skills: []string{"Go", "SQL"},
	}
	require.NoError(t, repo.Create(context.Background(), job))
	return job
}

func TestJobRepositoryAgainstPostgres(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	companies := NewCompanyRepository(pool)
	jobs := NewJobRepository(pool)

	empty, err := IsEmpty(ctx, pool)
	require.NoError(t, err)
	assert.True(t, empty)

	co := createCompany(t, companies, "Acme")
	inRange := createJob(t, jobs, co.ID, "Backend Engineer", intPtr(60000), intPtr(90000))
	wide := createJob(t, jobs, co.ID, "Staff Engineer", intPtr(50000), intPtr(150000))
	noSalary := createJob(t, jobs, co.ID, "Intern", intPtr(0), nil)

	assert.Equal(t, domain.DefaultCurrency, noSalary.Currency)
	assert.Nil(t, noSalary.SalaryMin)

	t.Run("salary containment", func(t *testing.T) {
		got, err := jobs.FetchByFilter(ctx, domain.JobFilter{SalaryMin: intPtr(55000), SalaryMax: intPtr(100000)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, inRange.ID, got[0].ID)

		got, err = jobs.FetchByFilter(ctx, domain.JobFilter{SalaryMin: intPtr(40000)})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("search over skills and newest first", func(t *testing.T) {
		got, err := jobs.FetchByFilter(ctx, domain.JobFilter{Search: "sql"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, noSalary.ID, got[0].ID)
		assert.Equal(t, wide.ID, got[1].ID)
		assert.Equal(t, "Acme", got[0].Company.Name)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		got, err := jobs.FetchByFilter(ctx, domain.JobFilter{Search: "%"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing job", func(t *testing.T) {
		_, err := jobs.GetByIDWithCompany(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	withCount, err := companies.FetchWithJobCount(ctx)
	require.NoError(t, err)
	require.Len(t, withCount, 1)
	assert.Equal(t, 3, withCount[0].JobCount)
}

func TestRelationshipLedgerAgainstPostgres(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	companies := NewCompanyRepository(pool)
	jobs := NewJobRepository(pool)
	applications := NewApplicationRepository(pool)
	saved := NewSavedJobRepository(pool)

	co := createCompany(t, companies, "Acme")
	job := createJob(t, jobs, co.ID, "Backend Engineer", nil, nil)

	t.Run("duplicate application leaves the count alone", func(t *testing.T) {
		require.NoError(t, applications.Create(ctx, &domain.Application{UserID: 1, JobID: job.ID}))
		err := applications.Create(ctx, &domain.Application{UserID: 1, JobID: job.ID})
		assert.ErrorIs(t, err, domain.ErrConflict)

		stored, err := jobs.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.ApplicationCount)
	})

	t.Run("concurrent applications count once each", func(t *testing.T) {
		var wg sync.WaitGroup
		for userID := int64(100); userID < 116; userID++ {
			wg.Add(1)
			go func(uid int64) {
				defer wg.Done()
				assert.NoError(t, applications.Create(ctx, &domain.Application{UserID: uid, JobID: job.ID}))
			}(userID)
		}
		wg.Wait()

		stored, err := jobs.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 17, stored.ApplicationCount)
	})

	t.Run("application for a missing job", func(t *testing.T) {
		err := applications.Create(ctx, &domain.Application{UserID: 1, JobID: 9999})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("saved jobs", func(t *testing.T) {
		require.NoError(t, saved.Create(ctx, &domain.SavedJob{UserID: 2, JobID: job.ID}))
		assert.ErrorIs(t, saved.Create(ctx, &domain.SavedJob{UserID: 2, JobID: job.ID}), domain.ErrConflict)

		list, err := saved.ListJobsByUser(ctx, 2)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, job.ID, list[0].ID)

		require.NoError(t, saved.Delete(ctx, 2, job.ID))
		require.NoError(t, saved.Delete(ctx, 2, job.ID))
		list, err = saved.ListJobsByUser(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
