package postgres

import (
	"strings"
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestBuildJobFilterQueryWithoutFilters(t *testing.T) {
	query, args := buildJobFilterQuery(domain.JobFilter{})

	assert.Empty(t, args)
	assert.NotContains(t, query, "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY j.created_at DESC, j.id DESC"))
}

func TestBuildJobFilterQueryAllFilters(t *testing.T) {
	query, args := buildJobFilterQuery(domain.JobFilter{
		Category:        "Yazılım Geliştirme",
		Type:            "full-time",
		ExperienceLevel: "senior",
		RemoteType:      "hybrid",
		SalaryMin:       intPtr(50000),
		SalaryMax:       intPtr(150000),
		Search:          "50%_off",
	})

	assert.Equal(t, []any{"Yazılım Geliştirme", "full-time", "senior", "hybrid", 50000, 150000, `%50\%\_off%`}, args)
	assert.Contains(t, query, "j.category = $1")
	assert.Contains(t, query, "j.remote_type = $4")
	assert.Contains(t, query, "j.salary_min >= $5 AND j.salary_max <= $6")
	assert.Contains(t, query, "j.title ILIKE $7")
	assert.Contains(t, query, "s.skill ILIKE $7")
}

func TestBuildJobFilterQueryIgnoresSingleSalaryBound(t *testing.T) {
	query, args := buildJobFilterQuery(domain.JobFilter{SalaryMin: intPtr(50000)})

	assert.Empty(t, args)
	assert.NotContains(t, query, "salary_min >=")
}
