package service

import (
	"context"

	"github.com/reseldor/content-api/internal/domain"
)

// mockUserRepository is a mock implementation of repository.UserRepository
type mockUserRepository struct {
	users       map[string]*domain.User
	emailIndex  map[string]*domain.User
	createError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[string]*domain.User),
		emailIndex: make(map[string]*domain.User),
	}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

func (r *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) Delete(ctx context.Context, id string) error {
	user := r.users[id]
	if user == nil {
		return domain.ErrUserNotFound
	}
	delete(r.emailIndex, user.Email)
	delete(r.users, id)
	return nil
}

func (r *mockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, int, error) {
	all := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	total := len(all)
	if offset >= total {
		return []*domain.User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// mockArticleRepository is a mock implementation of repository.ArticleRepository
type mockArticleRepository struct {
	articles    map[string]*domain.Article
	createError error
	listCalls   int
}

func newMockArticleRepository() *mockArticleRepository {
	return &mockArticleRepository{
		articles: make(map[string]*domain.Article),
	}
}

func (r *mockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if r.createError != nil {
		return r.createError
	}
	r.articles[article.ID] = article
	return nil
}

func (r *mockArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.articles[id], nil
}

func (r *mockArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, int, error) {
	r.listCalls++
	all := make([]*domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if filter.AuthorID != "" && a.AuthorID != filter.AuthorID {
			continue
		}
		all = append(all, a)
	}
	total := len(all)
	offset := filter.Offset()
	if offset >= total {
		return []*domain.Article{}, total, nil
	}
	end := offset + filter.Limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *mockArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return domain.ErrArticleNotFound
	}
	r.articles[article.ID] = article
	return nil
}

func (r *mockArticleRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}
