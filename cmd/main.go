package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/config"
	"github.com/workconnect/workconnect-core/internal/logger"
	"github.com/workconnect/workconnect-core/internal/metrics"
	"github.com/workconnect/workconnect-core/internal/repositories"
	"github.com/workconnect/workconnect-core/internal/services"
	"github.com/workconnect/workconnect-core/internal/store"
	"os/signal"
	"syscall"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Metrics.Port)

	secureStore, err := store.Open(cfg.Store.Path, cfg.Store.Passphrase)
	if err != nil {
		log.Fatalf("can't open store: %v", err)
	}
	defer secureStore.Close()

	var kv store.KV = secureStore
	if cfg.Store.CacheEnabled {
		kv = store.NewCached(secureStore)
	}

	bus := EventBus.New()

	jobsRepo := repositories.NewJobsRepository(ctx, kv)
	usersRepo := repositories.NewUsersRepository(ctx, kv)
	preferences := repositories.NewPreferences(kv)

	jobService := services.NewJobService(jobsRepo, bus)

	if _, err = services.NewNotifier(bus); err != nil {
		log.Fatalf("can't create notifier: %v", err)
	}

	session := services.NewSession(kv, usersRepo, bus).
		WithLoginRateLimit(cfg.Auth.LoginRatePerMinute)
	session.Bootstrap(ctx)

	maintenance, err := services.NewStoreMaintenance(secureStore)
	if err != nil {
		log.Fatalf("can't create store maintenance: %v", err)
	}
	defer maintenance.Stop()

	log.Infof("core ready: language %v, %v active jobs, authenticated: %v",
		preferences.Language(ctx), len(jobService.GetAllJobs(ctx)), session.IsAuthenticated())

	<-ctx.Done()

	log.Info("Shutting down...")
}
