package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	waitlistRepo repository.WaitlistRepository
}

func NewUserUseCase(userRepo repository.UserRepository, waitlistRepo repository.WaitlistRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		waitlistRepo: waitlistRepo,
	}
}

// CreateUserRequest represents user registration data
type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required,min=3,max=50"`
	Password   string  `json:"password" binding:"required,min=8"`
	Email      string  `json:"email" binding:"required,email"`
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	Role       string  `json:"role" binding:"omitempty,oneof=student faculty staff"`
	University *string `json:"university"`
}

// WaitlistRequest represents a pre-launch signup
type WaitlistRequest struct {
	FirstName    string   `json:"firstName" binding:"required"`
	LastName     string   `json:"lastName" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	University   string   `json:"university" binding:"required"`
	Role         string   `json:"role" binding:"required"`
	Interests    []string `json:"interests"`
	WantsUpdates bool     `json:"wantsUpdates"`
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (uc *UserUseCase) CreateUser(ctx context.Context, req *CreateUserRequest) (*domain.User, error) {
	if _, err := uc.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := uc.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = "student"
	}

	user := &domain.User{
		Username:   req.Username,
		Password:   string(hashed),
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       role,
		University: req.University,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// JoinWaitlist adds an email to the waitlist, rejecting duplicates.
func (uc *UserUseCase) JoinWaitlist(ctx context.Context, req *WaitlistRequest) (*domain.WaitlistEntry, error) {
	onList, err := uc.waitlistRepo.IsEmailOnWaitlist(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check waitlist: %w", err)
	}
	if onList {
		return nil, domain.ErrEmailOnWaitlist
	}

	entry := &domain.WaitlistEntry{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		University:   req.University,
		Role:         req.Role,
		Interests:    req.Interests,
		WantsUpdates: req.WantsUpdates,
	}
	if err := uc.waitlistRepo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
