package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new PostgreSQL blog repository
func NewBlogRepository(db *sql.DB) domain.BlogRepository {
	return &blogRepository{db: db}
}

const blogColumns = `id, title, slug, COALESCE(excerpt, ''), content,
	COALESCE(cover_image_url, ''), tags, published_at, created_at, updated_at`

func (r *blogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO blog_posts (
			title, slug, excerpt, content, cover_image_url, tags,
			published_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.CoverImageURL,
		pq.Array(post.Tags),
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

func (r *blogRepository) scanPost(row *sql.Row) (*domain.BlogPost, error) {
	var post domain.BlogPost
	var tags pq.StringArray
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.CoverImageURL,
		&tags,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	post.Tags = tags
	return &post, nil
}

func (r *blogRepository) Get(ctx context.Context, id int64) (*domain.BlogPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE id = $1`, blogColumns)

	post, err := r.scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("blog post", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return post, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE slug = $1`, blogColumns)

	post, err := r.scanPost(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("blog post", slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return post, nil
}

func (r *blogRepository) List(ctx context.Context, publishedOnly bool) ([]*domain.BlogPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts`, blogColumns)
	if publishedOnly {
		query += ` WHERE published_at IS NOT NULL AND published_at <= NOW()`
	}
	query += ` ORDER BY COALESCE(published_at, created_at) DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.BlogPost{}
	for rows.Next() {
		var post domain.BlogPost
		var tags pq.StringArray
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Excerpt,
			&post.Content,
			&post.CoverImageURL,
			&tags,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		post.Tags = tags
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blog posts: %w", err)
	}

	return posts, nil
}

func (r *blogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	post.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, cover_image_url = $5,
			tags = $6, published_at = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.CoverImageURL,
		pq.Array(post.Tags),
		post.PublishedAt,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("blog post", strconv.FormatInt(post.ID, 10))
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("blog post", strconv.FormatInt(id, 10))
	}

	return nil
}
