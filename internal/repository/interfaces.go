package repository

import (
	"context"

	"github.com/reseldor/content-api/internal/domain"
)

// UserRepository handles user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, int, error)
}

// ArticleRepository handles article data access
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, int, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
}
