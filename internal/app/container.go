package app

import (
	"context"
	"fmt"

	"github.com/kapu/brandlens-go/internal/config"
	"github.com/kapu/brandlens-go/internal/constants"
	"github.com/kapu/brandlens-go/internal/handler"
	"github.com/kapu/brandlens-go/internal/service"
	"github.com/kapu/brandlens-go/internal/service/cache"
	"github.com/kapu/brandlens-go/internal/service/database"
	"go.uber.org/zap"
)

// Container bundles the assembled services. Heavy-weight initialization
// (DB/cache) happens in Build so the mains stay focused on lifecycle.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Cache      *cache.CacheService
	Postgres   *database.PostgresService
	Repository *service.BrandRepository
	Reports    *service.ReportService
	Handler    *handler.BrandHandler

	closers []func()
}

// Close releases the container's connections in reverse build order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles the infrastructure services, unwinding anything already
// opened when a later step fails.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	if err := cacheSvc.WaitUntilReady(ctx, constants.RedisConfig.ReadyTimeout); err != nil {
		return nil, fmt.Errorf("redis not ready: %w", err)
	}

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:         cfg.Postgres.Host,
		Port:         cfg.Postgres.Port,
		User:         cfg.Postgres.User,
		Password:     cfg.Postgres.Password,
		Database:     cfg.Postgres.Database,
		SSLMode:      cfg.Postgres.SSLMode,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	repo := service.NewBrandRepository(postgresSvc, logger)
	reports := service.NewReportService(repo, cacheSvc, logger, cfg.Report.CacheTTL)
	brandHandler := handler.NewBrandHandler(repo, reports, cacheSvc, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Cache:      cacheSvc,
		Postgres:   postgresSvc,
		Repository: repo,
		Reports:    reports,
		Handler:    brandHandler,
		closers:    closers,
	}, nil
}
