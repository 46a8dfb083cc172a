package club

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

const defaultFeaturedLimit = 5

type ClubUseCase struct {
	clubRepo     repository.ClubRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	logger       *zap.Logger
}

func NewClubUseCase(
	clubRepo repository.ClubRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) *ClubUseCase {
	return &ClubUseCase{
		clubRepo:     clubRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CreateClubRequest represents data for creating a club
type CreateClubRequest struct {
	Name            string     `json:"name" binding:"required,max=200"`
	Description     string     `json:"description" binding:"required"`
	MeetingLocation *string    `json:"meetingLocation" binding:"omitempty,max=200"`
	FoundedDate     *time.Time `json:"foundedDate"`
	PresidentID     int        `json:"presidentId" binding:"required,gt=0"`
	Featured        bool       `json:"featured"`
	CategoryIDs     []int      `json:"categoryIds" binding:"omitempty,dive,gt=0"`
}

// JoinClubRequest represents a membership request
type JoinClubRequest struct {
	UserID int    `json:"userId" binding:"required,gt=0"`
	Role   string `json:"role" binding:"omitempty,oneof=member officer president"`
}

func (uc *ClubUseCase) ListClubs(ctx context.Context) ([]*domain.Club, error) {
	return uc.clubRepo.GetAll(ctx)
}

func (uc *ClubUseCase) GetClub(ctx context.Context, id int) (*domain.ClubWithCategories, error) {
	return uc.clubRepo.GetWithCategories(ctx, id)
}

func (uc *ClubUseCase) FeaturedClubs(ctx context.Context, limit int) ([]*domain.Club, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return uc.clubRepo.GetFeatured(ctx, limit)
}

// CreateClub creates a club and links it to the given categories.
func (uc *ClubUseCase) CreateClub(ctx context.Context, req *CreateClubRequest) (*domain.ClubWithCategories, error) {
	if _, err := uc.userRepo.GetByID(ctx, req.PresidentID); err != nil {
		return nil, err
	}
	for _, id := range req.CategoryIDs {
		if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	club := &domain.Club{
		Name:            req.Name,
		Description:     req.Description,
		MeetingLocation: req.MeetingLocation,
		FoundedDate:     req.FoundedDate,
		PresidentID:     req.PresidentID,
		Featured:        req.Featured,
	}
	if err := uc.clubRepo.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	for _, id := range req.CategoryIDs {
		if err := uc.clubRepo.AddCategory(ctx, club.ID, id); err != nil {
			uc.logger.Warn("failed to link club category",
				zap.Int("club_id", club.ID),
				zap.Int("category_id", id),
				zap.Error(err))
		}
	}

	return uc.clubRepo.GetWithCategories(ctx, club.ID)
}

// JoinClub adds a user to a club's member list.
func (uc *ClubUseCase) JoinClub(ctx context.Context, clubID int, req *JoinClubRequest) (*domain.ClubMember, error) {
	if _, err := uc.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "member"
	}

	member := &domain.ClubMember{
		UserID: req.UserID,
		ClubID: clubID,
		Role:   role,
	}
	if err := uc.clubRepo.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add club member: %w", err)
	}
	return member, nil
}

func (uc *ClubUseCase) ListMembers(ctx context.Context, clubID int) ([]*domain.ClubMember, error) {
	if _, err := uc.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	return uc.clubRepo.GetMembersByClubID(ctx, clubID)
}
