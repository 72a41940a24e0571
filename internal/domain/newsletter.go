package domain

import (
	"context"
	"time"
)

// NewsletterRequest represents a newsletter sign-up
type NewsletterRequest struct {
	Email string `json:"email"`
}

type NewsletterSubscription struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewsletterRepository interface {
	// Subscribe stores the address once; created is false when it already existed.
	Subscribe(ctx context.Context, sub *NewsletterSubscription) (created bool, err error)
}

type NewsletterUsecase interface {
	// Subscribe validates the address, records it and sends a confirmation
	// mail on first subscription.
	Subscribe(ctx context.Context, req *NewsletterRequest) error
}
