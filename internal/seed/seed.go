// Package seed loads the demo catalog of companies, categories and jobs.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type Catalog struct {
	Companies  []CompanyEntry  `yaml:"companies" binding:"dive"`
	Categories []CategoryEntry `yaml:"categories" binding:"dive"`
	Jobs       []JobEntry      `yaml:"jobs" binding:"dive"`
}

type CompanyEntry struct {
	Name         string   `yaml:"name" binding:"required"`
	Description  string   `yaml:"description" binding:"required"`
	Industry     string   `yaml:"industry" binding:"required"`
	Location     string   `yaml:"location" binding:"required"`
	Size         string   `yaml:"size" binding:"required"`
	Logo         string   `yaml:"logo" binding:"required"`
	Website      string   `yaml:"website"`
	Technologies []string `yaml:"technologies"`
}

type CategoryEntry struct {
	Name  string `yaml:"name" binding:"required"`
	Icon  string `yaml:"icon" binding:"required"`
	Count int    `yaml:"count" binding:"gte=0"`
	Color string `yaml:"color" binding:"required"`
}

type JobEntry struct {
	Title           string   `yaml:"title" binding:"required"`
	Description     string   `yaml:"description" binding:"required"`
	Company         int      `yaml:"company" binding:"required,gte=1"` // 1-based index into Companies
	Category        string   `yaml:"category" binding:"required"`
	Type            string   `yaml:"type" binding:"required,oneof=full-time part-time freelance contract internship"`
	ExperienceLevel string   `yaml:"experience_level" binding:"required,oneof=entry mid senior lead executive"`
	Location        string   `yaml:"location" binding:"required"`
	RemoteType      string   `yaml:"remote_type" binding:"required,oneof=fully-remote hybrid timezone-specific office"`
	SalaryMin       int      `yaml:"salary_min" binding:"gte=0"`
	SalaryMax       int      `yaml:"salary_max" binding:"gte=0"`
	Currency        string   `yaml:"currency"`
	Skills          []string `yaml:"skills"`
	Featured        bool     `yaml:"featured"`
	Urgent          bool     `yaml:"urgent"`
}

// Parse decodes and validates a catalog document.
func Parse(data []byte, v *validator.Validate) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("seed: decode catalog: %w", err)
	}
	if res := validation.Struct(v, &c); !res.Valid {
		return nil, fmt.Errorf("seed: invalid catalog: %s %s", res.Errors[0].Field, res.Errors[0].Message)
	}
	for i, j := range c.Jobs {
		if j.Company > len(c.Companies) {
			return nil, fmt.Errorf("seed: job %d (%q) references company %d, catalog has %d", i+1, j.Title, j.Company, len(c.Companies))
		}
	}
	return &c, nil
}

// Load reads the catalog at path, or the embedded catalog when path is empty.
func Load(path string, v *validator.Validate) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedCatalog, v)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data, v)
}

// Deps are the usecases the catalog is written through.
type Deps struct {
	Companies  domain.CompanyUsecase
	Categories domain.CategoryUsecase
	Jobs       domain.JobUsecase
}

// Summary reports how many records Apply created.
type Summary struct {
	Companies  int
	Categories int
	Jobs       int
}

// Apply creates every catalog record in order: companies, categories, jobs.
func (c *Catalog) Apply(ctx context.Context, deps Deps) (Summary, error) {
	var sum Summary
	companyIDs := make([]int64, len(c.Companies))

	for i, e := range c.Companies {
		company := &domain.Company{
			Name:         e.Name,
			Description:  e.Description,
			Industry:     e.Industry,
			Location:     e.Location,
			Size:         e.Size,
			Logo:         e.Logo,
			Technologies: e.Technologies,
		}
		if e.Website != "" {
			website := e.Website
			company.Website = &website
		}
		if err := deps.Companies.CreateCompany(ctx, company); err != nil {
			return sum, fmt.Errorf("seed: company %q: %w", e.Name, err)
		}
		companyIDs[i] = company.ID
		sum.Companies++
	}

	for _, e := range c.Categories {
		category := &domain.JobCategory{Name: e.Name, Icon: e.Icon, Count: e.Count, Color: e.Color}
		if err := deps.Categories.CreateCategory(ctx, category); err != nil {
			return sum, fmt.Errorf("seed: category %q: %w", e.Name, err)
		}
		sum.Categories++
	}

	for _, e := range c.Jobs {
		job := &domain.Job{
			Title:           e.Title,
			Description:     e.Description,
			CompanyID:       companyIDs[e.Company-1],
			Category:        e.Category,
			Type:            e.Type,
			ExperienceLevel: e.ExperienceLevel,
			Location:        e.Location,
			RemoteType:      e.RemoteType,
			SalaryMin:       intPtr(e.SalaryMin),
			SalaryMax:       intPtr(e.SalaryMax),
			Currency:        e.Currency,
			Skills:          e.Skills,
			Featured:        e.Featured,
			Urgent:          e.Urgent,
		}
		if err := deps.Jobs.CreateJob(ctx, job); err != nil {
			return sum, fmt.Errorf("seed: job %q: %w", e.Title, err)
		}
		sum.Jobs++
	}

	return sum, nil
}

func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
