package domain

import (
	"context"
	"time"
)

// Company is an employer. Companies are immutable once created.
type Company struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Industry     string    `json:"industry"`
	Location     string    `json:"location"`
	Size         string    `json:"size"`
	Logo         string    `json:"logo"`
	Website      *string   `json:"website"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CompanyWithJobCount is a company plus the number of jobs referencing it.
type CompanyWithJobCount struct {
	Company
	JobCount int `json:"jobCount"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	FetchWithJobCount(ctx context.Context) ([]CompanyWithJobCount, error)
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, company *Company) error
	GetCompany(ctx context.Context, id int64) (*Company, error)
	ListCompanies(ctx context.Context) ([]CompanyWithJobCount, error)
}
