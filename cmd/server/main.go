package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "survey-builder/docs"
	"survey-builder/internal/config"
	"survey-builder/internal/domain/backend"
	"survey-builder/internal/domain/form"
	api "survey-builder/internal/http"
	"survey-builder/internal/metrics"
	"survey-builder/internal/platform/database"
	"survey-builder/internal/platform/logger"
	mongorepo "survey-builder/internal/repository/mongo"
	"survey-builder/internal/repository/postgres"
	"survey-builder/internal/retry"
	"survey-builder/internal/viewguard"
	"survey-builder/internal/worker"
)

// @title           Survey Builder API
// @version         1.0
// @description     Form builder store with lifecycle status, responses and view counting
// @BasePath        /
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	metrics.Register()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, avail, closeBackend := openBackend(ctx, cfg, log)
	defer closeBackend()
	backendSvc := backend.NewService(repo, avail)
	log.Info("backend resolved",
		zap.String("driver", cfg.BackendDriver),
		zap.String("database", avail.Mode()),
	)

	opts := []form.StoreOption{}
	if cfg.SeedDemo {
		opts = append(opts, form.WithForms(form.DemoForms()))
	}
	store := form.NewStore(opts...)

	guard, closeGuard := openViewGuard(ctx, cfg, log)
	defer closeGuard()

	responseCh := make(chan worker.ResponseEvent, 100)
	responseWorker := worker.NewResponseWorker(responseCh, log.Named("response_worker"))
	statusWorker := worker.NewStatusWorker(store, cfg.StatusSyncInterval, log.Named("status_worker"))

	router := api.NewRouter(api.Deps{
		Forms:       store,
		Backend:     backendSvc,
		Guard:       guard,
		Events:      responseCh,
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go responseWorker.Run(ctx)
	go statusWorker.Run(ctx)

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.Int("forms", store.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

// openBackend connects the configured persistence driver. Any failure leaves
// the service in demo mode instead of aborting startup.
func openBackend(ctx context.Context, cfg config.Config, log *zap.Logger) (backend.Repository, backend.Availability, func()) {
	avail := backend.Availability{Driver: cfg.BackendDriver}
	noop := func() {}

	policy := retry.Policy{
		Attempts:  cfg.ConnectAttempts,
		BaseDelay: 500 * time.Millisecond,
		MaxDelay:  4 * time.Second,
		OnError: func(attempt int, err error) {
			log.Warn("backend connect attempt failed",
				zap.String("driver", cfg.BackendDriver),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		},
	}

	switch cfg.BackendDriver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.DBDSN, policy)
		if err != nil {
			log.Warn("postgres unavailable, running in demo mode", zap.Error(err))
			return nil, avail, noop
		}
		if err := postgres.EnsureSchema(ctx, db, form.Categories()); err != nil {
			log.Error("postgres schema setup failed, running in demo mode", zap.Error(err))
			_ = db.Close()
			return nil, avail, noop
		}
		avail.Available = true
		return postgres.NewRepo(db), avail, func() { _ = db.Close() }

	case config.DriverMongo:
		db, err := database.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB, policy)
		if err != nil {
			log.Warn("mongo unavailable, running in demo mode", zap.Error(err))
			return nil, avail, noop
		}
		disconnect := func() { _ = db.Client().Disconnect(context.Background()) }
		repo, err := mongorepo.NewRepo(ctx, db)
		if err != nil {
			log.Error("mongo index setup failed, running in demo mode", zap.Error(err))
			disconnect()
			return nil, avail, noop
		}
		if err := repo.SeedCategories(ctx, form.Categories()); err != nil {
			log.Warn("seeding categories failed", zap.Error(err))
		}
		avail.Available = true
		return repo, avail, disconnect
	}

	return nil, avail, noop
}

// openViewGuard returns a redis backed guard when REDIS_ADDR is set and
// reachable, and a guard that counts every view otherwise.
func openViewGuard(ctx context.Context, cfg config.Config, log *zap.Logger) (viewguard.Guard, func()) {
	if cfg.RedisAddr == "" {
		return viewguard.Noop{}, func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	err := retry.DoWithRetry(ctx, cfg.ConnectAttempts, 300*time.Millisecond, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return rdb.Ping(pingCtx).Err()
	})
	if err != nil {
		log.Warn("redis unavailable, view deduplication disabled", zap.Error(err))
		_ = rdb.Close()
		return viewguard.Noop{}, func() {}
	}

	log.Info("view deduplication enabled", zap.Duration("ttl", cfg.ViewDedupTTL))
	return viewguard.NewRedis(rdb, cfg.ViewDedupTTL), func() { _ = rdb.Close() }
}
