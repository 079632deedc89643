package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/reseldor/content-api/internal/domain"
	"github.com/reseldor/content-api/pkg/database"
	"github.com/reseldor/content-api/pkg/redis"
)

// These tests need a running Postgres and Redis. They are skipped
// unless INTEGRATION_TEST=true.

func setupIntegration(t *testing.T) (*database.PostgresDB, *redis.Client) {
	t.Helper()
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}

	ctx := context.Background()

	db, err := database.NewPostgres(ctx, nil)
	if err != nil {
		t.Fatalf("postgres connect: %v", err)
	}
	t.Cleanup(db.Close)

	cache, err := redis.NewClient(ctx, nil)
	if err != nil {
		t.Fatalf("redis connect: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	return db, cache
}

func newTestUserRecord() *domain.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		Password:  "$2a$04$notarealhashbutlongenoughforthecolumn",
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepositoryCRUD(t *testing.T) {
	db, _ := setupIntegration(t)
	ctx := context.Background()
	repo := NewPostgresUserRepository(db.Pool())

	user := newTestUserRecord()
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	defer repo.Delete(ctx, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got == nil || got.Email != user.Email {
		t.Fatalf("GetByID() = %+v", got)
	}

	exists, err := repo.ExistsByEmail(ctx, user.Email)
	if err != nil || !exists {
		t.Errorf("ExistsByEmail() = %v, %v", exists, err)
	}

	// duplicate email hits the unique constraint
	dup := newTestUserRecord()
	dup.Email = user.Email
	if err := repo.Create(ctx, dup); err != domain.ErrEmailTaken {
		t.Errorf("duplicate Create() = %v, want ErrEmailTaken", err)
	}

	user.Role = domain.RoleAdmin
	user.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	got, _ = repo.GetByID(ctx, user.ID)
	if got.Role != domain.RoleAdmin {
		t.Errorf("role after update = %s", got.Role)
	}

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	got, err = repo.GetByID(ctx, user.ID)
	if err != nil || got != nil {
		t.Errorf("GetByID() after delete = %+v, %v; want nil, nil", got, err)
	}
}

func TestCachedArticleRepositoryReadThrough(t *testing.T) {
	db, cache := setupIntegration(t)
	ctx := context.Background()

	userRepo := NewPostgresUserRepository(db.Pool())
	author := newTestUserRecord()
	if err := userRepo.Create(ctx, author); err != nil {
		t.Fatalf("author Create() error: %v", err)
	}
	defer userRepo.Delete(ctx, author.ID)

	repo := NewCachedArticleRepository(NewPostgresArticleRepository(db.Pool()), cache, time.Minute)

	now := time.Now().UTC().Truncate(time.Millisecond)
	article := &domain.Article{
		ID:        uuid.New().String(),
		Title:     "Cache probe",
		Content:   "Content long enough to be realistic",
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, article); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	defer repo.Delete(ctx, article.ID)

	// first read populates the cache
	got, err := repo.GetByID(ctx, article.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID() = %+v, %v", got, err)
	}

	n, err := cache.Exists(ctx, articleKey(article.ID)).Result()
	if err != nil {
		t.Fatalf("Exists() error: %v", err)
	}
	if n != 1 {
		t.Error("single-article cache entry missing after read")
	}

	// update must drop the cached entry
	article.Title = "Cache probe renamed"
	article.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, article); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	n, _ = cache.Exists(ctx, articleKey(article.ID)).Result()
	if n != 0 {
		t.Error("cache entry survived an update")
	}

	got, err = repo.GetByID(ctx, article.ID)
	if err != nil {
		t.Fatalf("GetByID() after update error: %v", err)
	}
	if got.Title != "Cache probe renamed" {
		t.Errorf("stale title %q after update", got.Title)
	}
}

func TestCachedArticleRepositoryListInvalidation(t *testing.T) {
	db, cache := setupIntegration(t)
	ctx := context.Background()

	userRepo := NewPostgresUserRepository(db.Pool())
	author := newTestUserRecord()
	if err := userRepo.Create(ctx, author); err != nil {
		t.Fatalf("author Create() error: %v", err)
	}
	defer userRepo.Delete(ctx, author.ID)

	repo := NewCachedArticleRepository(NewPostgresArticleRepository(db.Pool()), cache, time.Minute)

	filter := domain.ArticleFilter{Page: 1, Limit: 10, AuthorID: author.ID, SortOrder: domain.SortDesc}

	if _, _, err := repo.List(ctx, filter); err != nil {
		t.Fatalf("List() error: %v", err)
	}
	n, _ := cache.Exists(ctx, listKey(filter)).Result()
	if n != 1 {
		t.Fatal("list cache entry missing after read")
	}

	now := time.Now().UTC()
	article := &domain.Article{
		ID:        uuid.New().String(),
		Title:     "Invalidation probe",
		Content:   "Content long enough to be realistic",
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, article); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	defer repo.Delete(ctx, article.ID)

	n, _ = cache.Exists(ctx, listKey(filter)).Result()
	if n != 0 {
		t.Error("list cache entry survived a create")
	}

	articles, total, err := repo.List(ctx, filter)
	if err != nil {
		t.Fatalf("List() after create error: %v", err)
	}
	if total < 1 || len(articles) < 1 {
		t.Errorf("new article missing from refreshed list, total=%d", total)
	}
}
