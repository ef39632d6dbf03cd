package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campuslink/campuslink/internal/app/controllers"
	appMigrations "github.com/campuslink/campuslink/internal/app/migrations"
	appRepos "github.com/campuslink/campuslink/internal/app/repositories"
	appRoutes "github.com/campuslink/campuslink/internal/app/routes"
	appServices "github.com/campuslink/campuslink/internal/app/services"
	"github.com/campuslink/campuslink/internal/cache"
	"github.com/campuslink/campuslink/internal/config"
	"github.com/campuslink/campuslink/internal/db"
	"github.com/campuslink/campuslink/internal/localdb"
	"github.com/campuslink/campuslink/internal/mockstore"
	"github.com/campuslink/campuslink/internal/pkg/imageutil"
	"github.com/campuslink/campuslink/internal/pkg/logger"
	"github.com/campuslink/campuslink/internal/pkg/objectstore"
	"github.com/campuslink/campuslink/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Stores   *appRepos.Stores
	Services *appServices.Services
	Cache    cache.Cache
	Logger   zerolog.Logger

	HostelController    *appControllers.HostelController
	NewsController      *appControllers.NewsController
	EventController     *appControllers.EventController
	JobController       *appControllers.JobController
	RoommateController  *appControllers.RoommateController
	SpotlightController *appControllers.SpotlightController
	CatalogController   *appControllers.CatalogController
	UploadController    *appControllers.UploadController

	// Cleanup releases backend resources (connection pool, embedded
	// database handle). Always non-nil.
	Cleanup func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("driver", cfg.Database.Driver).
		Str("storage", cfg.Storage.Mode).
		Msg("Configuration loaded")
	return cfg, lgr, nil
}

// SetupStores builds the persistence backend selected by the configuration
// and returns the store container plus a cleanup function.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Stores, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return setupPostgresStores(cfg, lgr)
	case config.DriverEmbedded:
		return setupEmbeddedStores(cfg, lgr)
	case config.DriverMock:
		return setupMockStores(cfg, lgr)
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func setupPostgresStores(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Stores, func(), error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}

	stores := appRepos.NewPostgresStores(dbPool)

	if err := seed.Postgres(context.Background(), dbPool, stores); err != nil {
		// Seeding is best-effort; an already-populated database still serves.
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return stores, database.Close, nil
}

func setupEmbeddedStores(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Stores, func(), error) {
	lgr.Info().Str("snapshot", cfg.Database.SnapshotPath).Msg("Opening embedded database...")

	provider := localdb.NewProvider(localdb.NewFileSlot(cfg.Database.SnapshotPath))
	ldb, err := provider.Get(context.Background())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open embedded database")
		return nil, nil, err
	}

	cleanup := func() {
		if err := ldb.Close(); err != nil {
			lgr.Error().Err(err).Msg("Failed to close embedded database")
		}
	}
	return localdb.Stores(ldb), cleanup, nil
}

func setupMockStores(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Stores, func(), error) {
	lgr.Info().
		Int("minLatencyMs", cfg.Mock.MinLatencyMS).
		Int("maxLatencyMs", cfg.Mock.MaxLatencyMS).
		Msg("Using in-memory mock store")

	store := mockstore.New(mockstore.Options{
		MinLatency: time.Duration(cfg.Mock.MinLatencyMS) * time.Millisecond,
		MaxLatency: time.Duration(cfg.Mock.MaxLatencyMS) * time.Millisecond,
	})
	store.SeedFixtures()

	return store.Stores(), func() {}, nil
}

// SetupStorage builds the object storage service from the configured backend.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*objectstore.Service, error) {
	buckets := objectstore.Buckets{
		Uploads: cfg.Storage.UploadsBucket,
		News:    cfg.Storage.NewsBucket,
	}

	var backend objectstore.Backend
	switch cfg.Storage.Mode {
	case config.StorageS3:
		b, err := objectstore.NewS3Backend(objectstore.S3Config{
			Endpoint:      cfg.Storage.Endpoint,
			AccessKey:     cfg.Storage.AccessKey,
			SecretKey:     cfg.Storage.SecretKey,
			UseSSL:        cfg.Storage.UseSSL,
			PublicBaseURL: cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize s3 storage backend")
			return nil, fmt.Errorf("failed to initialize storage backend: %w", err)
		}
		backend = b
	case config.StorageLocal:
		b, err := objectstore.NewLocalBackend(cfg.Storage.LocalPath, cfg.Storage.PublicBaseURL)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize local storage backend")
			return nil, fmt.Errorf("failed to initialize storage backend: %w", err)
		}
		backend = b
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.Storage.Mode)
	}

	return objectstore.NewService(backend, buckets, imageutil.Options{}), nil
}

// SetupCache connects to redis when an address is configured and falls back
// to a no-op cache otherwise. A redis connection failure is not fatal.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) cache.Cache {
	if cfg.Redis.Addr == "" {
		return cache.Noop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := cache.NewRedis(ctx, cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, caching disabled")
		return cache.Noop()
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
	return c
}

// BuildDependencies initializes stores, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	stores, cleanup, err := SetupStores(cfg, lgr)
	if err != nil {
		return nil, err
	}

	uploads, err := SetupStorage(cfg, lgr)
	if err != nil {
		cleanup()
		return nil, err
	}

	deps := &Dependencies{
		Stores:  stores,
		Cache:   SetupCache(cfg, lgr),
		Logger:  lgr,
		Cleanup: cleanup,
	}

	deps.Services = appServices.New(stores, uploads, deps.Cache)

	deps.HostelController = appControllers.NewHostelController(deps.Services.Hostels)
	deps.NewsController = appControllers.NewNewsController(deps.Services.News)
	deps.EventController = appControllers.NewEventController(deps.Services.Events)
	deps.JobController = appControllers.NewJobController(deps.Services.Jobs)
	deps.RoommateController = appControllers.NewRoommateController(deps.Services.Roommates)
	deps.SpotlightController = appControllers.NewSpotlightController(deps.Services.Spotlight)
	deps.CatalogController = appControllers.NewCatalogController(deps.Services.Catalog)
	deps.UploadController = appControllers.NewUploadController(deps.Services.Uploads)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.HostelController,
		deps.NewsController,
		deps.EventController,
		deps.JobController,
		deps.RoommateController,
		deps.SpotlightController,
		deps.CatalogController,
		deps.UploadController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
