package usecase

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type newsletterUsecase struct {
	newsletterRepo domain.NewsletterRepository
	mailer         email.Sender
	validate       *validator.Validate
}

// NewNewsletterUsecase creates a newsletter usecase. mailer may be nil, in
// which case no confirmation is sent.
func NewNewsletterUsecase(repo domain.NewsletterRepository, mailer email.Sender, validate *validator.Validate) domain.NewsletterUsecase {
	return &newsletterUsecase{
		newsletterRepo: repo,
		mailer:         mailer,
		validate:       validate,
	}
}

func (uc *newsletterUsecase) Subscribe(ctx context.Context, req *domain.NewsletterRequest) error {
	addr := strings.ToLower(strings.TrimSpace(req.Email))
	if addr == "" {
		return apperror.BadRequest("Email is required")
	}
	if err := uc.validate.Var(addr, "email"); err != nil {
		return apperror.BadRequest("Email is not valid")
	}

	sub := &domain.NewsletterSubscription{Email: addr}
	created, err := uc.newsletterRepo.Subscribe(ctx, sub)
	if err != nil {
		return apperror.Internal(err)
	}
	if !created || uc.mailer == nil {
		return nil
	}

	body, err := email.RenderNewsletterConfirmation(email.NewsletterEmailData{Email: addr})
	if err != nil {
		logger.Log.Error("Failed to render newsletter confirmation", "error", err)
		return nil
	}
	// Delivery failures never fail the subscription
	if err := uc.mailer.Send(addr, "Welcome to the job newsletter", body); err != nil {
		logger.Log.Warn("Failed to send newsletter confirmation", "email", addr, "error", err)
	}
	return nil
}
