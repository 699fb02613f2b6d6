// Package container builds the application's dependency graph in order:
// config, infrastructure, repositories, services, handlers. Everything is a
// singleton wired once at startup; none of it holds per-request state.
package container

import (
	"context"
	"fmt"
	"time"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/pkg/hash"
	"bookshelf-backend/pkg/logger"

	"bookshelf-backend/internal/domains/book"
	bookHandler "bookshelf-backend/internal/domains/book/handler"
	bookRepo "bookshelf-backend/internal/domains/book/repository"
	bookService "bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/domains/user"
	userHandler "bookshelf-backend/internal/domains/user/handler"
	userRepo "bookshelf-backend/internal/domains/user/repository"
	userService "bookshelf-backend/internal/domains/user/service"
)

type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient

	UserRepo user.Repository
	BookRepo book.Repository

	UserService user.Service
	BookService book.Service

	UserHandler *userHandler.UserHandler
	BookHandler *bookHandler.BookHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	c.DB = db
	logger.Info("database connected", map[string]interface{}{
		"host": cfg.Database.Host,
		"name": cfg.Database.Database,
	})

	redisClient := cache.NewRedisClient(cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	c.Redis = redisClient
	logger.Info("redis connected", map[string]interface{}{
		"addr": cfg.Redis.Addr,
	})

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, hash.NewBcrypt())
	c.BookService = bookService.NewBookService(c.BookRepo)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
