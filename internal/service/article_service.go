package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/reseldor/content-api/internal/domain"
	"github.com/reseldor/content-api/internal/dto"
	"github.com/reseldor/content-api/internal/repository"
	"github.com/reseldor/content-api/pkg/telemetry"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	Create(ctx context.Context, authorID string, req *dto.CreateArticleRequest) (*domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) (*domain.PaginatedResult[*domain.Article], error)
	Update(ctx context.Context, id, requesterID string, req *dto.UpdateArticleRequest) (*domain.Article, error)
	Delete(ctx context.Context, id, requesterID string) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repository.ArticleRepository, userRepo repository.UserRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *articleService) Create(ctx context.Context, authorID string, req *dto.CreateArticleRequest) (*domain.Article, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.article.create")
	defer span.End()

	span.SetAttributes(attribute.String("author_id", authorID))

	now := time.Now()
	article := &domain.Article{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// re-read so the response carries the joined author
	created, err := s.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if created == nil {
		created = article
	}

	span.SetAttributes(attribute.String("article_id", article.ID))
	span.SetStatus(codes.Ok, "")
	return created, nil
}

func (s *articleService) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.article.get")
	defer span.End()

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if article == nil {
		span.SetStatus(codes.Error, "not found")
		return nil, domain.ErrArticleNotFound
	}

	span.SetStatus(codes.Ok, "")
	return article, nil
}

func (s *articleService) List(ctx context.Context, filter domain.ArticleFilter) (*domain.PaginatedResult[*domain.Article], error) {
	ctx, span := telemetry.StartSpan(ctx, "service.article.list")
	defer span.End()

	filter.SetDefaults()

	articles, total, err := s.articleRepo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("total", total))
	span.SetStatus(codes.Ok, "")
	return domain.NewPaginatedResult(articles, total, filter.Page, filter.Limit), nil
}

func (s *articleService) Update(ctx context.Context, id, requesterID string, req *dto.UpdateArticleRequest) (*domain.Article, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.article.update")
	defer span.End()

	span.SetAttributes(
		attribute.String("article_id", id),
		attribute.String("requester_id", requesterID),
	)

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if article == nil {
		span.SetStatus(codes.Error, "not found")
		return nil, domain.ErrArticleNotFound
	}

	if err := s.authorize(ctx, article, requesterID); err != nil {
		span.SetStatus(codes.Error, "forbidden")
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Description != nil {
		article.Description = req.Description
	}
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, article); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id, requesterID string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.article.delete")
	defer span.End()

	span.SetAttributes(
		attribute.String("article_id", id),
		attribute.String("requester_id", requesterID),
	)

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if article == nil {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrArticleNotFound
	}

	if err := s.authorize(ctx, article, requesterID); err != nil {
		span.SetStatus(codes.Error, "forbidden")
		return err
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// authorize allows the author or an admin to mutate an article. The
// requester's role is read fresh so a demotion takes effect on the
// next call, not at the next login.
func (s *articleService) authorize(ctx context.Context, article *domain.Article, requesterID string) error {
	if article.AuthorID == requesterID {
		return nil
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if requester == nil || requester.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
