package memory

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type clubRepository struct {
	store *Store
}

func NewClubRepository(store *Store) repository.ClubRepository {
	return &clubRepository{store: store}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	club.ID = r.store.clubID
	r.store.clubID++
	club.CreatedAt = now()

	stored := *club
	r.store.clubs[club.ID] = &stored
	return nil
}

func (r *clubRepository) GetByID(ctx context.Context, id int) (*domain.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	club, ok := r.store.clubs[id]
	if !ok {
		return nil, domain.ErrClubNotFound
	}
	copied := *club
	return &copied, nil
}

func (r *clubRepository) GetAll(ctx context.Context) ([]*domain.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	clubs := make([]*domain.Club, 0, len(r.store.clubs))
	for _, id := range r.store.sortedClubIDs() {
		copied := *r.store.clubs[id]
		clubs = append(clubs, &copied)
	}
	return clubs, nil
}

func (r *clubRepository) GetWithCategories(ctx context.Context, id int) (*domain.ClubWithCategories, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	club, ok := r.store.clubs[id]
	if !ok {
		return nil, domain.ErrClubNotFound
	}

	result := &domain.ClubWithCategories{
		Club:       *club,
		Categories: r.store.categoriesForClub(id),
	}
	if president, ok := r.store.users[club.PresidentID]; ok {
		copied := *president
		result.President = &copied
	}
	return result, nil
}

func (r *clubRepository) GetFeatured(ctx context.Context, limit int) ([]*domain.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var featured []*domain.Club
	for _, id := range r.store.sortedClubIDs() {
		club := r.store.clubs[id]
		if !club.Featured {
			continue
		}
		copied := *club
		featured = append(featured, &copied)
		if limit > 0 && len(featured) >= limit {
			break
		}
	}
	return featured, nil
}

func (r *clubRepository) AddCategory(ctx context.Context, clubID, categoryID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clubs[clubID]; !ok {
		return domain.ErrClubNotFound
	}
	if _, ok := r.store.categories[categoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	for _, cc := range r.store.clubCategories {
		if cc.clubID == clubID && cc.categoryID == categoryID {
			return nil
		}
	}
	r.store.clubCategories = append(r.store.clubCategories, clubCategory{
		clubID:     clubID,
		categoryID: categoryID,
	})
	return nil
}

func (r *clubRepository) AddMember(ctx context.Context, member *domain.ClubMember) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clubs[member.ClubID]; !ok {
		return domain.ErrClubNotFound
	}
	member.JoinedAt = now()

	stored := *member
	r.store.clubMembers = append(r.store.clubMembers, &stored)
	return nil
}

func (r *clubRepository) GetMembersByClubID(ctx context.Context, clubID int) ([]*domain.ClubMember, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var members []*domain.ClubMember
	for _, member := range r.store.clubMembers {
		if member.ClubID == clubID {
			copied := *member
			members = append(members, &copied)
		}
	}
	return members, nil
}
