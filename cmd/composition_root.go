package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "moving/internal/adapters/in/http"
	"moving/internal/adapters/out/postgres"
	"moving/internal/adapters/out/postgres/pricingrepo"
	"moving/internal/adapters/out/resilience"
	"moving/internal/adapters/out/sessionstore"
	"moving/internal/core/application/controller"
	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/application/usecases/queries"
	"moving/internal/core/ports"
	"moving/internal/jobs"
	"moving/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	regionCache *resilience.CachedDirectory
	redis       *redis.Client
	memoryStore *sessionstore.MemoryStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		metrics:    metrics.New(registry),
	}
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEstimatePriceQueryHandler() queries.EstimatePriceQueryHandler {
	return queries.NewEstimatePriceQueryHandler(pricingrepo.NewGormPricingRuleRepository(c.gormDB))
}

// RegionDirectory is the SQL prefecture list behind a circuit breaker and a
// cache. The same cache is refreshed by the region refresh job.
func (c *CompositionRoot) RegionDirectory() *resilience.CachedDirectory {
	if c.regionCache == nil {
		breaker := resilience.NewBreakingDirectory(
			queries.NewListRegionsQueryHandler(c.gormDB),
			resilience.DefaultBreakerSettings("region_directory"),
			c.metrics,
			c.logger,
		)
		c.regionCache = resilience.NewCachedDirectory(breaker, c.config.RegionCacheTTL, c.logger)
	}
	return c.regionCache
}

// SessionStore is Redis when an address is configured, process memory otherwise.
func (c *CompositionRoot) SessionStore(ctx context.Context) (ports.SessionStore, error) {
	if c.config.RedisAddr == "" {
		if c.memoryStore == nil {
			c.memoryStore = sessionstore.NewMemoryStore(c.config.SessionTTL)
			c.logger.WarnContext(ctx, "REDIS_ADDR is not set, sessions are kept in memory")
		}
		return c.memoryStore, nil
	}

	if c.redis == nil {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.config.RedisAddr,
			Password: c.config.RedisPassword,
		})
	}
	store := sessionstore.NewRedisStore(c.redis, c.config.SessionTTL)
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", c.config.RedisAddr, err)
	}
	return store, nil
}

func (c *CompositionRoot) CreateWizard() *controller.Wizard {
	return controller.NewWizard(
		c.RegionDirectory(),
		c.CreateEstimatePriceQueryHandler(),
		c.CreateRegisterOrderCommandHandler(),
		c.logger,
		controller.WithObserver(c.metrics),
	)
}

// CreateJobManager must be called after SessionStore so that the sweep job
// is scheduled for the in-memory store.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var sweeper jobs.SessionSweeper
	if c.memoryStore != nil {
		sweeper = c.memoryStore
	}
	return jobs.NewJobManager(c.RegionDirectory(), sweeper, jobs.Schedules{
		RegionRefresh: c.config.RegionRefreshSchedule,
		SessionSweep:  c.config.SessionSweepSchedule,
	}, c.logger)
}

func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	store, err := c.SessionStore(ctx)
	if err != nil {
		return nil, err
	}

	e, err := httpin.NewEcho(httpin.Options{
		Logger:     c.logger,
		Gatherer:   c.registry,
		Middleware: []echo.MiddlewareFunc{c.metrics.Middleware()},
	})
	if err != nil {
		return nil, err
	}

	cookie := httpin.CookieConfig{Secure: c.config.CookieSecure, MaxAge: c.config.SessionTTL}
	httpin.NewServer(c.CreateWizard(), store, cookie, c.logger).Register(e)
	return e, nil
}

// Close releases the connections opened by the root.
func (c *CompositionRoot) Close() error {
	var errs []error
	if c.redis != nil {
		errs = append(errs, c.redis.Close())
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
