package memory

import (
	"context"
	"strings"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}

	user.ID = r.store.userID
	r.store.userID++
	user.CreatedAt = now()

	stored := *user
	r.store.users[user.ID] = &stored
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type waitlistRepository struct {
	store *Store
}

func NewWaitlistRepository(store *Store) repository.WaitlistRepository {
	return &waitlistRepository{store: store}
}

func (r *waitlistRepository) Add(ctx context.Context, entry *domain.WaitlistEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.waitlist {
		if strings.EqualFold(e.Email, entry.Email) {
			return domain.ErrEmailOnWaitlist
		}
	}

	entry.ID = r.store.waitlistID
	r.store.waitlistID++
	entry.CreatedAt = now()

	stored := *entry
	r.store.waitlist[entry.ID] = &stored
	return nil
}

func (r *waitlistRepository) IsEmailOnWaitlist(ctx context.Context, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.waitlist {
		if strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
