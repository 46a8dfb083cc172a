package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type categoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) repository.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if strings.EqualFold(c.Name, category.Name) {
			return domain.ErrCategoryAlreadyExists
		}
	}

	category.ID = r.store.categoryID
	r.store.categoryID++

	stored := *category
	r.store.categories[category.ID] = &stored
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	category, ok := r.store.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, category := range r.store.categories {
		if strings.EqualFold(category.Name, name) {
			copied := *category
			return &copied, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make([]int, 0, len(r.store.categories))
	for id := range r.store.categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	categories := make([]*domain.Category, 0, len(ids))
	for _, id := range ids {
		copied := *r.store.categories[id]
		categories = append(categories, &copied)
	}
	return categories, nil
}
