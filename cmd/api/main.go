package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/database/migration"
	handlers "portfolio/internal/http/handler"
	"portfolio/internal/http/middleware"
	"portfolio/internal/otel"
	"portfolio/internal/repository/postgres"
	"portfolio/internal/service"
	"portfolio/internal/session"
	"portfolio/internal/storage"
	"portfolio/web"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		log.Fatal("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if cfg.Session.Secret == config.DefaultSessionSecret && cfg.Environment != "development" {
		logEvent("warn", "default_session_secret_in_use", nil)
	}

	admin, err := auth.New(cfg.Admin)
	if err != nil {
		log.Fatalf("invalid admin credentials config: %v", err)
	}

	ctx := context.Background()

	// Tracing is best effort and never blocks startup
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		logEvent("error", "tracing_init_failed", err)
	} else {
		defer shutdownTracing(context.Background())
	}

	// Create the target database when it does not exist yet, then migrate the
	// schema and seed an empty table. Both steps log and continue on failure,
	// the server still serves its public page in a degraded mode.
	ensureDatabase(ctx, cfg.Database)

	// An unreachable store must not kill the process: fall back to a lazy
	// handle so the public page renders empty and /health reports 503 until
	// the pool recovers. Only a broken DSN is fatal.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logEvent("error", "database_unreachable", err)
		db, err = database.Open(cfg.Database)
		if err != nil {
			log.Fatalf("invalid database config: %v", err)
		}
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		logEvent("error", "migration_failed", err)
	}

	// Session store over Redis, cookies signed with a stable secret
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	sessionStore := session.NewRedisStore(redisClient, cfg.Session.TTL)
	codec := session.NewCodec(cfg.Session.Secret)
	sessions := middleware.NewSessionAuth(sessionStore, codec, cfg.Session.CookieName, cfg.Session.TTL)

	// Object storage for project images is optional; without it the upload
	// endpoint answers 503 and imageUrl values are supplied by hand.
	var images service.ImageService
	if cfg.MinIO.Endpoint != "" {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logEvent("error", "object_storage_init_failed", err)
		} else {
			images = service.NewImageService(objStore)
		}
	} else {
		logEvent("info", "object_storage_not_configured", nil)
	}

	projectRepo := postgres.NewProjectPostgres(db)
	projects := service.NewProjectService(projectRepo)

	app := fiber.New(fiber.Config{
		Views:        web.Engine(),
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	// Request counters on a private registry, exposed on /metrics
	registry := prometheus.NewRegistry()
	prom, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, projects, images, admin, sessions)

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// ensureDatabase connects to the maintenance database and creates the target
// database when missing. Failures are logged, not fatal: a locked-down
// PostgreSQL where the database already exists is a normal deployment.
func ensureDatabase(ctx context.Context, dbCfg config.DatabaseConfig) {
	adminCfg := dbCfg
	adminCfg.Name = "postgres"

	adminDB, err := database.NewPostgres(adminCfg)
	if err != nil {
		logEvent("error", "ensure_database_skipped", err)
		return
	}
	defer adminDB.Close()

	if err := migration.EnsureDatabase(ctx, adminDB, dbCfg.Name); err != nil {
		logEvent("error", "ensure_database_failed", err)
	}
}

func logEvent(level, event string, err error) {
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"event": event,
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	_ = json.NewEncoder(os.Stdout).Encode(entry)
}
