package repository

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	GetAll(ctx context.Context) ([]*domain.Category, error)
}
