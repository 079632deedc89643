package di

import (
	"context"
	"fmt"

	"github.com/reseldor/content-api/internal/handler"
	"github.com/reseldor/content-api/internal/repository"
	"github.com/reseldor/content-api/internal/service"
	"github.com/reseldor/content-api/pkg/config"
	"github.com/reseldor/content-api/pkg/database"
	"github.com/reseldor/content-api/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client

	UserRepository    repository.UserRepository
	ArticleRepository repository.ArticleRepository

	TokenIssuer    service.TokenIssuer
	AuthService    service.AuthService
	UserService    service.UserService
	ArticleService service.ArticleService

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ArticleHandler *handler.ArticleHandler
	HealthHandler  *handler.HealthHandler
}

// NewContainer wires repositories, services and handlers from the
// loaded configuration
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		EnableTracing:   cfg.OTel.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	redisClient, err := redis.NewClient(ctx, &redis.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Repositories
	userRepo := repository.NewPostgresUserRepository(db.Pool())
	articleRepo := repository.NewCachedArticleRepository(
		repository.NewPostgresArticleRepository(db.Pool()),
		redisClient,
		cfg.Redis.CacheTTL,
	)

	// Services
	tokenIssuer := service.NewTokenIssuer(&service.TokenIssuerConfig{
		AccessSecret:    cfg.JWT.AccessSecret,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshSecret:   cfg.JWT.RefreshSecret,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
		Issuer:          cfg.JWT.Issuer,
	})
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	authService := service.NewAuthService(userRepo, tokenIssuer, hasher)
	userService := service.NewUserService(userRepo, hasher)
	articleService := service.NewArticleService(articleRepo, userRepo)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,

		UserRepository:    userRepo,
		ArticleRepository: articleRepo,

		TokenIssuer:    tokenIssuer,
		AuthService:    authService,
		UserService:    userService,
		ArticleService: articleService,

		AuthHandler:    handler.NewAuthHandler(authService, userService),
		UserHandler:    handler.NewUserHandler(userService),
		ArticleHandler: handler.NewArticleHandler(articleService),
		HealthHandler:  handler.NewHealthHandler(db, redisClient),
	}, nil
}

// Close releases the container's connections
func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
