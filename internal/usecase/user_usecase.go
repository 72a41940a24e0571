package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type userUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates a user after checking that username and email are free.
// Both lookups are linear scans in the in-memory store.
func (uc *userUsecase) Register(ctx context.Context, req *domain.RegisterUserRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if res := validation.Struct(uc.validate, req); !res.Valid {
		return nil, apperror.Validation("Invalid user data", res.Errors)
	}

	if _, err := uc.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperror.Conflict("Username is already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if _, err := uc.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Conflict("Email is already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hash),
		FullName:   req.FullName,
		IsEmployer: req.IsEmployer,
	}
	if req.ProfileImage != "" {
		user.ProfileImage = &req.ProfileImage
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Username or email is already registered")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (uc *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
