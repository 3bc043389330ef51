package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type teamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new PostgreSQL team repository
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateMember(ctx context.Context, member *domain.TeamMember) error {
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	query := `
		INSERT INTO team_members (
			name, role, bio, photo_url, is_active, display_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		member.Name,
		member.Role,
		member.Bio,
		member.PhotoURL,
		member.IsActive,
		member.DisplayOrder,
		member.CreatedAt,
		member.UpdatedAt,
	).Scan(&member.ID)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}

	return nil
}

func (r *teamRepository) GetMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	query := `
		SELECT id, name, COALESCE(role, ''), COALESCE(bio, ''), COALESCE(photo_url, ''),
			is_active, display_order, created_at, updated_at
		FROM team_members
		WHERE id = $1
	`

	var m domain.TeamMember
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Role,
		&m.Bio,
		&m.PhotoURL,
		&m.IsActive,
		&m.DisplayOrder,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("team member", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	return &m, nil
}

func (r *teamRepository) ListMembers(ctx context.Context, activeOnly bool) ([]*domain.TeamMember, error) {
	query := `
		SELECT id, name, COALESCE(role, ''), COALESCE(bio, ''), COALESCE(photo_url, ''),
			is_active, display_order, created_at, updated_at
		FROM team_members
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := []*domain.TeamMember{}
	for rows.Next() {
		var m domain.TeamMember
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Role,
			&m.Bio,
			&m.PhotoURL,
			&m.IsActive,
			&m.DisplayOrder,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}

	return members, nil
}

func (r *teamRepository) UpdateMember(ctx context.Context, member *domain.TeamMember) error {
	member.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE team_members
		SET name = $1, role = $2, bio = $3, photo_url = $4, is_active = $5,
			display_order = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		member.Name,
		member.Role,
		member.Bio,
		member.PhotoURL,
		member.IsActive,
		member.DisplayOrder,
		member.UpdatedAt,
		member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("team member", strconv.FormatInt(member.ID, 10))
	}

	return nil
}

// DeleteMember removes a team member; portfolio items cascade at the DDL level
func (r *teamRepository) DeleteMember(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("team member", strconv.FormatInt(id, 10))
	}

	return nil
}

func (r *teamRepository) CreatePortfolioItem(ctx context.Context, item *domain.PortfolioItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `
		INSERT INTO portfolio_items (
			team_member_id, title, description, image_url, display_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.TeamMemberID,
		item.Title,
		item.Description,
		item.ImageURL,
		item.DisplayOrder,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}

	return nil
}

func (r *teamRepository) ListPortfolioItems(ctx context.Context, teamMemberID int64) ([]*domain.PortfolioItem, error) {
	query := `
		SELECT id, team_member_id, title, COALESCE(description, ''), COALESCE(image_url, ''),
			display_order, created_at, updated_at
		FROM portfolio_items
		WHERE team_member_id = $1
		ORDER BY display_order, id
	`

	rows, err := r.db.QueryContext(ctx, query, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	defer rows.Close()

	items := []*domain.PortfolioItem{}
	for rows.Next() {
		var item domain.PortfolioItem
		err := rows.Scan(
			&item.ID,
			&item.TeamMemberID,
			&item.Title,
			&item.Description,
			&item.ImageURL,
			&item.DisplayOrder,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate portfolio items: %w", err)
	}

	return items, nil
}

func (r *teamRepository) UpdatePortfolioItem(ctx context.Context, item *domain.PortfolioItem) error {
	item.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE portfolio_items
		SET title = $1, description = $2, image_url = $3, display_order = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.Description,
		item.ImageURL,
		item.DisplayOrder,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("portfolio item", strconv.FormatInt(item.ID, 10))
	}

	return nil
}

func (r *teamRepository) DeletePortfolioItem(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("portfolio item", strconv.FormatInt(id, 10))
	}

	return nil
}
