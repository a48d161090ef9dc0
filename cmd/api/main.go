package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dalahus/internal/infra/adapter/persistence/postgres"
	"dalahus/internal/infra/adapter/persistence/sqlite"
	"dalahus/internal/infra/db"
	"dalahus/internal/infra/seed"
	"dalahus/internal/observability/logging"
	"dalahus/internal/observability/metrics"
	"dalahus/internal/repository"
	"dalahus/internal/resilience/circuitbreaker"
	"dalahus/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	if config.GetEnvString("LOG_FORMAT", "json") == "text" {
		logger = logging.NewTextLogger()
	}
	slog.SetDefault(logger)

	cfg, err := config.Load(config.GetEnvString("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	store := circuitbreaker.NewDB(database)
	repos := buildRepositories(cfg.Database.Driver, store)

	if cfg.Seed.Enabled {
		loader := seed.NewLoader(repos, logger)
		if err := loader.Run(context.Background()); err != nil {
			logger.Error("seed failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	refreshRowGauges(logger, repos)

	runServer(logger, cfg, database)
}

// initDatabase opens the configured store and brings the schema up to date.
func initDatabase(logger *slog.Logger, cfg config.AppConfig) *sql.DB {
	var (
		database *sql.DB
		dialect  db.Dialect
		err      error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		dialect = db.DialectPostgres
		database, err = db.Open(cfg.Database.DSN, db.ConnectionConfig{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		})
	case config.DriverSQLite:
		dialect = db.DialectSQLite
		database, err = db.OpenSQLite(cfg.Database.Path)
	}
	if err != nil {
		logger.Error("failed to open database",
			slog.String("driver", cfg.Database.Driver),
			slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.MigrateUp(database, dialect); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// buildRepositories wires every repository against the chosen adapter. The
// store handle goes through the circuit breaker so open-circuit rejections
// surface as entity.ErrStoreUnavailable everywhere.
func buildRepositories(driver string, store repository.DB) seed.Repositories {
	if driver == config.DriverPostgres {
		return seed.Repositories{
			Brokers:  postgres.NewBrokerRepo(store),
			Housing:  postgres.NewHousingRepo(store),
			Offices:  postgres.NewOfficeRepo(store),
			Accounts: postgres.NewAccountRepo(store),
			Articles: postgres.NewArticleRepo(store),
			Comments: postgres.NewCommentRepo(store),
		}
	}
	return seed.Repositories{
		Brokers:  sqlite.NewBrokerRepo(store),
		Housing:  sqlite.NewHousingRepo(store),
		Offices:  sqlite.NewOfficeRepo(store),
		Accounts: sqlite.NewAccountRepo(store),
		Articles: sqlite.NewArticleRepo(store),
		Comments: sqlite.NewCommentRepo(store),
	}
}

// refreshRowGauges publishes the current row count of every entity table.
func refreshRowGauges(logger *slog.Logger, repos seed.Repositories) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	counts := []struct {
		name  string
		count func(context.Context) (int64, error)
	}{
		{"brokers", repos.Brokers.Count},
		{"housing", repos.Housing.Count},
		{"offices", repos.Offices.Count},
		{"accounts", repos.Accounts.Count},
		{"articles", repos.Articles.Count},
		{"comments", repos.Comments.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			logger.Warn("failed to count rows",
				slog.String("entity", c.name),
				slog.Any("error", err))
			continue
		}
		metrics.UpdateEntityRows(c.name, n)
	}
}

// runServer serves /metrics and /healthz until SIGINT or SIGTERM.
func runServer(logger *slog.Logger, cfg config.AppConfig, database *sql.DB) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := database.PingContext(ctx); err != nil {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Metrics.Addr),
			slog.String("driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
