package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resume-scoring/internal/assets"
	"resume-scoring/internal/reports"
	"resume-scoring/internal/scoring"
	"resume-scoring/internal/services/health"
	"resume-scoring/internal/shared/config"
	"resume-scoring/internal/shared/server"
	"resume-scoring/internal/shared/storage/db"
	"resume-scoring/internal/shared/storage/object"
	localstore "resume-scoring/internal/shared/storage/object/local"
	s3store "resume-scoring/internal/shared/storage/object/s3"
	"resume-scoring/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Redis          *redis.Client
	Sources        object.Store
	Health         *health.Service
	AssetsRepo     assets.Repo
	AssetsService  *assets.Service
	Engine         *scoring.Engine
	ReportStore    reports.Store
	AssetsHandler  *assets.Handler
	ScoringHandler *scoring.Handler
	ReportsHandler *reports.Handler
}

// Build prepares shared dependencies and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := buildRedis(ctx, cfg)
	if err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	sources, err := buildSources(ctx, cfg)
	if err != nil {
		closeDB(sqlDB)
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Redis:   rdb,
		Sources: sources,
		Health:  buildHealth(sqlDB, rdb),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config: app.Config,
		Handlers: []server.RouteRegistrar{
			app.AssetsHandler,
			app.ScoringHandler,
			app.ReportsHandler,
		},
		Health: app.Health,
	})

	return app, nil
}

// Close releases the database and redis connections.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory_fallback", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory_fallback", map[string]any{"error": err})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		closeDB(sqlDB)
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, nil
	}
	rdb, err := reports.NewRedisClient(ctx, reports.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.redis.memory_fallback", map[string]any{"error": err})
			return nil, nil
		}
		return nil, err
	}
	return rdb, nil
}

// buildSources picks where imported files are archived. An empty
// ObjectStoreType disables archiving.
func buildSources(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.ObjectStoreType)) {
	case "":
		return nil, nil
	case "local":
		if strings.TrimSpace(cfg.LocalStoreDir) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=local requires LOCAL_STORE_DIR")
		}
		return localstore.New(cfg.LocalStoreDir), nil
	case "s3":
		store, err := s3store.New(ctx, s3store.Options{
			Region:          cfg.AWSRegion,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			KMSKeyID:        cfg.SSEKMSKeyID,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown OBJECT_STORE %q", cfg.ObjectStoreType)
	}
}

func buildHealth(sqlDB *sql.DB, rdb *redis.Client) *health.Service {
	svc := health.NewService()
	if sqlDB != nil {
		svc.Register("db", sqlDB.PingContext)
	}
	if rdb != nil {
		svc.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	return svc
}

func buildServices(app *App) {
	var assetRepo assets.Repo
	if app.DB != nil {
		assetRepo = &assets.PGRepo{DB: app.DB}
	} else {
		assetRepo = assets.NewMemoryRepo()
	}

	var reportStore reports.Store
	if app.Redis != nil {
		reportStore = reports.NewRedisStore(app.Redis, app.Config.ReportTTL)
	} else {
		reportStore = reports.NewMemoryStore(app.Config.ReportTTL)
	}

	store := NewScoringStore(assetRepo)
	assetSvc := assets.NewService(assetRepo)
	assetSvc.Sources = app.Sources
	engine := scoring.NewEngine(store, reports.NewRecorder(reportStore))

	app.AssetsRepo = assetRepo
	app.AssetsService = assetSvc
	app.Engine = engine
	app.ReportStore = reportStore
	app.AssetsHandler = assets.NewHandler(assetSvc)
	app.ScoringHandler = scoring.NewHandler(engine)
	app.ReportsHandler = reports.NewHandler(reportStore, store)
}

func closeDB(sqlDB *sql.DB) {
	if sqlDB != nil {
		_ = sqlDB.Close()
	}
}
