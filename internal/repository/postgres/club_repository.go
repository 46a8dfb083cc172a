package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type clubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) repository.ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	query := `
		INSERT INTO clubs (name, description, meeting_location, founded_date, president_id, featured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		club.Name, club.Description, club.MeetingLocation,
		club.FoundedDate, club.PresidentID, club.Featured,
	).Scan(&club.ID, &club.CreatedAt)
}

func (r *clubRepository) GetByID(ctx context.Context, id int) (*domain.Club, error) {
	var club domain.Club
	query := `SELECT * FROM clubs WHERE id = $1`
	err := r.db.GetContext(ctx, &club, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetAll(ctx context.Context) ([]*domain.Club, error) {
	clubs := []*domain.Club{}
	query := `SELECT * FROM clubs ORDER BY id`
	if err := r.db.SelectContext(ctx, &clubs, query); err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *clubRepository) GetWithCategories(ctx context.Context, id int) (*domain.ClubWithCategories, error) {
	club, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categories := []domain.Category{}
	query := `
		SELECT c.* FROM categories c
		JOIN club_categories cc ON cc.category_id = c.id
		WHERE cc.club_id = $1
		ORDER BY c.id
	`
	if err := r.db.SelectContext(ctx, &categories, query, id); err != nil {
		return nil, err
	}

	result := &domain.ClubWithCategories{
		Club:       *club,
		Categories: categories,
	}

	var president domain.User
	err = r.db.GetContext(ctx, &president, `SELECT * FROM users WHERE id = $1`, club.PresidentID)
	if err == nil {
		result.President = &president
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return result, nil
}

func (r *clubRepository) GetFeatured(ctx context.Context, limit int) ([]*domain.Club, error) {
	clubs := []*domain.Club{}
	query := `SELECT * FROM clubs WHERE featured = true ORDER BY id LIMIT $1`
	if err := r.db.SelectContext(ctx, &clubs, query, limit); err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *clubRepository) AddCategory(ctx context.Context, clubID, categoryID int) error {
	query := `
		INSERT INTO club_categories (club_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, clubID, categoryID)
	return err
}

func (r *clubRepository) AddMember(ctx context.Context, member *domain.ClubMember) error {
	query := `
		INSERT INTO club_members (user_id, club_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, club_id) DO UPDATE SET role = EXCLUDED.role
		RETURNING joined_at
	`
	return r.db.QueryRowContext(ctx, query, member.UserID, member.ClubID, member.Role).Scan(&member.JoinedAt)
}

func (r *clubRepository) GetMembersByClubID(ctx context.Context, clubID int) ([]*domain.ClubMember, error) {
	members := []*domain.ClubMember{}
	query := `SELECT * FROM club_members WHERE club_id = $1 ORDER BY joined_at`
	if err := r.db.SelectContext(ctx, &members, query, clubID); err != nil {
		return nil, err
	}
	return members, nil
}
