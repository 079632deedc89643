package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reseldor/content-api/internal/domain"
)

type postgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a PostgreSQL-backed article repository
func NewPostgresArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &postgresArticleRepository{pool: pool}
}

func (r *postgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (id, title, description, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Description,
		article.Content,
		article.AuthorID,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (r *postgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	query := `
		SELECT a.id, a.title, a.description, a.content, a.author_id, a.created_at, a.updated_at,
		       u.id, u.email
		FROM articles a
		LEFT JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`

	article := &domain.Article{}
	author := &domain.Author{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Description,
		&article.Content,
		&article.AuthorID,
		&article.CreatedAt,
		&article.UpdatedAt,
		&author.ID,
		&author.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	article.Author = author
	return article, nil
}

func (r *postgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, int, error) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)
	argPos := 1

	if filter.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("a.author_id = $%d", argPos))
		args = append(args, filter.AuthorID)
		argPos++
	}
	if filter.StartDate != "" {
		start, err := domain.ParseFilterDate(filter.StartDate)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid start date: %w", err)
		}
		conditions = append(conditions, fmt.Sprintf("a.created_at >= $%d", argPos))
		args = append(args, start)
		argPos++
	}
	if filter.EndDate != "" {
		end, err := domain.ParseFilterDate(filter.EndDate)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid end date: %w", err)
		}
		conditions = append(conditions, fmt.Sprintf("a.created_at <= $%d", argPos))
		args = append(args, end)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM articles a %s`, where)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	order := "DESC"
	if filter.SortOrder == domain.SortAsc {
		order = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.title, a.description, a.content, a.author_id, a.created_at, a.updated_at,
		       u.id, u.email
		FROM articles a
		LEFT JOIN users u ON u.id = a.author_id
		%s
		ORDER BY a.created_at %s
		LIMIT $%d OFFSET $%d
	`, where, order, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*domain.Article, 0)
	for rows.Next() {
		article := &domain.Article{}
		author := &domain.Author{}
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Description,
			&article.Content,
			&article.AuthorID,
			&article.CreatedAt,
			&article.UpdatedAt,
			&author.ID,
			&author.Email,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan article: %w", err)
		}
		article.Author = author
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, total, nil
}

func (r *postgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	query := `
		UPDATE articles
		SET title = $2, description = $3, content = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Description,
		article.Content,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}

func (r *postgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}
