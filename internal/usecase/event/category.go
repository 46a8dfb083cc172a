package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

// SuggestCategoriesRequest represents a description to categorize
type SuggestCategoriesRequest struct {
	Description string `json:"description" binding:"required"`
}

// SuggestCategoriesResponse carries the suggested category ids
type SuggestCategoriesResponse struct {
	CategoryIDs []int `json:"categoryIds"`
}

// SuggestCategoriesForDescription asks the AI client which stored categories
// fit a description. Returns an empty list when the client is not configured.
func (uc *EventUseCase) SuggestCategoriesForDescription(ctx context.Context, description string) ([]int, error) {
	if uc.geminiClient == nil {
		return []int{}, nil
	}
	ids := uc.suggestCategories(ctx, description)
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// CreateCategoryRequest represents a user-defined category
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	Color     string `json:"color" binding:"required,hexcolor"`
	CreatedBy *int   `json:"createdBy" binding:"omitempty,gt=0"`
}

func (uc *EventUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categoryRepo.GetAll(ctx)
}

func (uc *EventUseCase) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

// CreateCategory creates a non-default category. Names are unique, compared
// case-insensitively.
func (uc *EventUseCase) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*domain.Category, error) {
	if _, err := uc.categoryRepo.GetByName(ctx, req.Name); err == nil {
		return nil, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	if req.CreatedBy != nil {
		if _, err := uc.userRepo.GetByID(ctx, *req.CreatedBy); err != nil {
			return nil, err
		}
	}

	category := &domain.Category{
		Name:      req.Name,
		Color:     req.Color,
		IsDefault: false,
		CreatedBy: req.CreatedBy,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
