package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/reseldor/content-api/internal/domain"
	"github.com/reseldor/content-api/pkg/logger"
	"github.com/reseldor/content-api/pkg/redis"
)

const (
	articleKeyPrefix    = "article:"
	articleListKeyScope = "articles:*"
)

// cachedList is the serialized form of a list page, carrying the total
// so the page count survives the cache round trip.
type cachedList struct {
	Articles []*domain.Article `json:"articles"`
	Total    int               `json:"total"`
}

// CachedArticleRepository wraps an ArticleRepository with a Redis
// read-through cache. Cache failures are logged and the underlying
// repository is used directly, so Redis being down degrades to
// uncached reads rather than errors.
type CachedArticleRepository struct {
	inner ArticleRepository
	cache *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedArticleRepository creates a caching decorator over repo
func NewCachedArticleRepository(inner ArticleRepository, cache *redis.Client, ttl time.Duration) *CachedArticleRepository {
	return &CachedArticleRepository{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		log:   logger.Get().Named("article-cache"),
	}
}

func articleKey(id string) string {
	return articleKeyPrefix + id
}

// listKey builds the cache key for a list page. Every filter dimension
// participates so distinct queries never share an entry.
func listKey(f domain.ArticleFilter) string {
	author := f.AuthorID
	if author == "" {
		author = "all"
	}
	start := f.StartDate
	if start == "" {
		start = "none"
	}
	end := f.EndDate
	if end == "" {
		end = "none"
	}
	return fmt.Sprintf("articles:%d:%d:%s:%s:%s:%s", f.Page, f.Limit, author, start, end, f.SortOrder)
}

func (r *CachedArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if err := r.inner.Create(ctx, article); err != nil {
		return err
	}

	// a new article changes every list page, but no single-article
	// entry exists for it yet
	r.invalidateLists(ctx)
	return nil
}

func (r *CachedArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	key := articleKey(id)

	data, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		article := &domain.Article{}
		if err := json.Unmarshal(data, article); err == nil {
			return article, nil
		}
		r.log.Warn("corrupt cache entry, falling through", zap.String("key", key))
	} else if err != goredis.Nil {
		r.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	article, err := r.inner.GetByID(ctx, id)
	if err != nil || article == nil {
		return article, err
	}

	r.store(ctx, key, article)
	return article, nil
}

func (r *CachedArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, int, error) {
	key := listKey(filter)

	data, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		var page cachedList
		if err := json.Unmarshal(data, &page); err == nil {
			return page.Articles, page.Total, nil
		}
		r.log.Warn("corrupt cache entry, falling through", zap.String("key", key))
	} else if err != goredis.Nil {
		r.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	articles, total, err := r.inner.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, cachedList{Articles: articles, Total: total})
	return articles, total, nil
}

func (r *CachedArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	if err := r.inner.Update(ctx, article); err != nil {
		return err
	}

	r.invalidate(ctx, articleKey(article.ID))
	r.invalidateLists(ctx)
	return nil
}

func (r *CachedArticleRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, articleKey(id))
	r.invalidateLists(ctx)
	return nil
}

func (r *CachedArticleRepository) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		r.log.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.cache.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedArticleRepository) invalidate(ctx context.Context, key string) {
	if err := r.cache.Del(ctx, key).Err(); err != nil {
		r.log.Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedArticleRepository) invalidateLists(ctx context.Context) {
	if err := r.cache.DeleteByPattern(ctx, articleListKeyScope); err != nil {
		r.log.Warn("list cache invalidation failed", zap.Error(err))
	}
}
