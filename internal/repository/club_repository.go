package repository

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id int) (*domain.Club, error)
	GetAll(ctx context.Context) ([]*domain.Club, error)
	GetWithCategories(ctx context.Context, id int) (*domain.ClubWithCategories, error)
	GetFeatured(ctx context.Context, limit int) ([]*domain.Club, error)
	AddCategory(ctx context.Context, clubID, categoryID int) error
	AddMember(ctx context.Context, member *domain.ClubMember) error
	GetMembersByClubID(ctx context.Context, clubID int) ([]*domain.ClubMember, error)
}
