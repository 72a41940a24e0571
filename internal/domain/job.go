package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
	// ErrIntegrity means a stored record points at a record that does not exist.
	ErrIntegrity = errors.New("data integrity violation")
)

// Job types
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeFreelance  = "freelance"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Experience levels
const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceLead      = "lead"
	ExperienceExecutive = "executive"
)

// Remote types
const (
	RemoteFully            = "fully-remote"
	RemoteHybrid           = "hybrid"
	RemoteTimezoneSpecific = "timezone-specific"
	RemoteOffice           = "office"
)

const DefaultCurrency = "USD"

// Job is a posting. The binding tags are the invariants every stored job
// satisfies, whichever path created it.
type Job struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title" binding:"required,no_blank"`
	Description      string    `json:"description" binding:"required,no_blank"`
	CompanyID        int64     `json:"companyId"`
	Category         string    `json:"category" binding:"required,no_blank"`
	Type             string    `json:"type" binding:"required,oneof=full-time part-time freelance contract internship"`
	ExperienceLevel  string    `json:"experienceLevel" binding:"required,oneof=entry mid senior lead executive"`
	Location         string    `json:"location" binding:"required,no_blank"`
	RemoteType       string    `json:"remoteType" binding:"required,oneof=fully-remote hybrid timezone-specific office"`
	SalaryMin        *int      `json:"salaryMin" binding:"omitempty,gte=0"`
	SalaryMax        *int      `json:"salaryMax" binding:"omitempty,gte=0"`
	Currency         string    `json:"currency" binding:"omitempty,len=3"`
	Skills           []string  `json:"skills" binding:"omitempty,dive,no_blank"`
	Featured         bool      `json:"featured"`
	Urgent           bool      `json:"urgent"`
	ApplicationCount int       `json:"applicationCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ApplyDefaults fills the fields a freshly created job must carry.
// Zero salaries count as absent.
func (j *Job) ApplyDefaults() {
	if j.Currency == "" {
		j.Currency = DefaultCurrency
	}
	if j.SalaryMin != nil && *j.SalaryMin == 0 {
		j.SalaryMin = nil
	}
	if j.SalaryMax != nil && *j.SalaryMax == 0 {
		j.SalaryMax = nil
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	j.ApplicationCount = 0
}

// JobWithCompany is a job joined with its owning company at read time.
type JobWithCompany struct {
	Job
	Company Company `json:"company"`
}

// JobFilter holds the optional criteria of a job search. Empty strings and
// nil bounds impose no constraint.
type JobFilter struct {
	Category        string
	Type            string
	ExperienceLevel string
	RemoteType      string
	SalaryMin       *int
	SalaryMax       *int
	Search          string
}

// HasSalaryRange reports whether the salary containment check applies.
// It only does when both bounds are given.
func (f JobFilter) HasSalaryRange() bool {
	return f.SalaryMin != nil && f.SalaryMax != nil
}

// Matches applies every criterion of the filter to job, AND-combined.
//
// The salary check is containment, not overlap: the job's declared range must
// sit entirely inside the requested one, so jobs missing either salary are
// excluded whenever a range is requested.
func (f JobFilter) Matches(job *Job) bool {
	if f.Category != "" && job.Category != f.Category {
		return false
	}
	if f.Type != "" && job.Type != f.Type {
		return false
	}
	if f.ExperienceLevel != "" && job.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	if f.RemoteType != "" && job.RemoteType != f.RemoteType {
		return false
	}
	if f.HasSalaryRange() {
		if job.SalaryMin == nil || job.SalaryMax == nil {
			return false
		}
		if *job.SalaryMin < *f.SalaryMin || *job.SalaryMax > *f.SalaryMax {
			return false
		}
	}
	if f.Search != "" && !matchesSearch(job, strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func matchesSearch(job *Job, needle string) bool {
	if strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	FetchByFilter(ctx context.Context, filter JobFilter) ([]JobWithCompany, error)
	FetchFeatured(ctx context.Context) ([]JobWithCompany, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id int64) (*JobWithCompany, error)
	SearchJobs(ctx context.Context, filter JobFilter) ([]JobWithCompany, error)
	ListFeaturedJobs(ctx context.Context) ([]JobWithCompany, error)
}
