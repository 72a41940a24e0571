package seed_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/seed"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogApplies(t *testing.T) {
	catalog, err := seed.Load("", validation.New())
	require.NoError(t, err)

	store := memory.NewStore()
	companyRepo := memory.NewCompanyRepository(store)
	jobRepo := memory.NewJobRepository(store)
	deps := seed.Deps{
		Companies:  usecase.NewCompanyUsecase(companyRepo),
		Categories: usecase.NewCategoryUsecase(memory.NewCategoryRepository(store)),
		Jobs:       usecase.NewJobUsecase(jobRepo, companyRepo, validation.New()),
	}

	sum, err := catalog.Apply(context.Background(), deps)
	require.NoError(t, err)
	assert.Equal(t, seed.Summary{Companies: 4, Categories: 6, Jobs: 6}, sum)

	software, err := deps.Jobs.SearchJobs(context.Background(), domain.JobFilter{Category: "Yazılım Geliştirme"})
	require.NoError(t, err)
	assert.Len(t, software, 3)

	featured, err := deps.Jobs.ListFeaturedJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, int64(2), featured[0].ID)

	first, err := deps.Jobs.GetJob(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "TechFlow Solutions", first.Company.Name)
	require.NotNil(t, first.SalaryMin)
	assert.Equal(t, 80000, *first.SalaryMin)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	v := validation.New()

	t.Run("unknown company reference", func(t *testing.T) {
		doc := `
companies:
  - {name: Acme, description: d, industry: i, location: l, size: s, logo: x}
jobs:
  - {title: t, description: d, company: 2, category: c, type: full-time, experience_level: mid, location: l, remote_type: hybrid}
`
		_, err := seed.Parse([]byte(doc), v)
		assert.ErrorContains(t, err, "references company 2")
	})

	t.Run("invalid enum", func(t *testing.T) {
		doc := `
companies:
  - {name: Acme, description: d, industry: i, location: l, size: s, logo: x}
jobs:
  - {title: t, description: d, company: 1, category: c, type: gig, experience_level: mid, location: l, remote_type: hybrid}
`
		_, err := seed.Parse([]byte(doc), v)
		assert.ErrorContains(t, err, "invalid catalog")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := seed.Parse([]byte("companies: ["), v)
		assert.ErrorContains(t, err, "decode catalog")
	})
}
