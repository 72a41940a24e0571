package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"` // bcrypt hash
	FullName     string    `json:"fullName"`
	ProfileImage *string   `json:"profileImage"`
	IsEmployer   bool      `json:"isEmployer"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterUserRequest carries the registration form.
type RegisterUserRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50,valid_username"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
	FullName     string `json:"fullName" binding:"required,no_blank,valid_name,no_emoji"`
	ProfileImage string `json:"profileImage" binding:"omitempty,url"`
	IsEmployer   bool   `json:"isEmployer"`
}

type UserRepository interface {
	// Create returns ErrConflict when the username or email is taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type UserUsecase interface {
	Register(ctx context.Context, req *RegisterUserRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
}
