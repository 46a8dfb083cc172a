package repository

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type WaitlistRepository interface {
	Add(ctx context.Context, entry *domain.WaitlistEntry) error
	IsEmailOnWaitlist(ctx context.Context, email string) (bool, error)
}
