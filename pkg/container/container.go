package container

import (
	"context"
	"fmt"
	"time"

	"bookcatalog-backend/internal/config"
	infraCache "bookcatalog-backend/internal/infrastructure/cache"
	"bookcatalog-backend/internal/infrastructure/database"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/logger"

	authorHandler "bookcatalog-backend/internal/domains/author/handler"
	authorRepo "bookcatalog-backend/internal/domains/author/repository"
	authorService "bookcatalog-backend/internal/domains/author/service"
	bookHandler "bookcatalog-backend/internal/domains/book/handler"
	bookRepo "bookcatalog-backend/internal/domains/book/repository"
	bookService "bookcatalog-backend/internal/domains/book/service"
	publisherHandler "bookcatalog-backend/internal/domains/publisher/handler"
	publisherRepo "bookcatalog-backend/internal/domains/publisher/repository"
	publisherService "bookcatalog-backend/internal/domains/publisher/service"
)

// Container is the root of the dependency graph. Everything here is a
// singleton built once at startup and torn down by Cleanup; no component
// reaches for package-level state.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *infraCache.RedisClient
	Cache  cache.Cache

	BookRepo      bookRepo.RepositoryInterface
	AuthorRepo    authorRepo.RepositoryInterface
	PublisherRepo publisherRepo.RepositoryInterface

	BookService      bookService.ServiceInterface
	AuthorService    authorService.ServiceInterface
	PublisherService publisherService.ServiceInterface

	BookHandler      *bookHandler.BookHandler
	AuthorHandler    *authorHandler.AuthorHandler
	PublisherHandler *publisherHandler.PublisherHandler
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisClient
	c.Cache = redisClient

	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(db.Pool)

	c.BookService = bookService.NewService(c.BookRepo, c.Cache)
	c.AuthorService = authorService.NewService(c.AuthorRepo)
	c.PublisherService = publisherService.NewService(c.PublisherRepo)

	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources. Call on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
