package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contest_client/internal/api"
	"contest_client/internal/app/backend"
	"contest_client/internal/app/service"
	"contest_client/internal/app/session"
	"contest_client/internal/app/worker"
	"contest_client/internal/platform/config"
	"contest_client/internal/platform/logger"
	"contest_client/internal/platform/store"
)

func main() {
	// 1. Load Configuration
	config.Load()
	cfg := config.AppConfig

	// 2. Initialize Logger
	logger.Init(cfg.Environment, cfg.LogLevel)
	log := logger.Log
	log.Info().Int64("contest_id", cfg.ContestID).Str("backend", cfg.BackendBaseURL).Msg("configuration loaded")

	// 3. Initialize Identity Store
	ctx := context.Background()
	identityStore, cleanup, err := newIdentityStore(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize identity store")
	}
	defer cleanup()

	// 4. Initialize Backend Client & Session
	client := backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, cfg.FetchRetryAttempts, cfg.FetchRetryBaseDelay, log)
	sess := session.New(log)

	// 5. Initialize Services
	identityService := service.NewIdentityService(identityStore, client, sess, cfg.ContestID, log)
	contestService := service.NewContestService(client, sess, cfg.ContestID, log)
	submitService := service.NewSubmitService(client, sess, log)

	if err := identityService.Bootstrap(ctx); err != nil {
		log.Error().Err(err).Msg("identity bootstrap failed, continuing unjoined")
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	// 6. Load Contest (keeps retrying on a slow loop until it succeeds)
	go loadContestUntilReady(workerCtx, contestService)

	// 7. Start Recurring Workers
	refresh := make(chan struct{}, 16)
	poller := worker.NewSubmissionPoller(client, sess, cfg.PollInterval, refresh, log)
	syncer := worker.NewLeaderboardSyncer(client, sess, cfg.ContestID, cfg.LeaderboardInterval, refresh, log)
	go poller.Start(workerCtx)
	go syncer.Start(workerCtx)

	// 8. Gateway HTTP Server
	router := api.NewRouter(sess, identityService, contestService, submitService)
	server := &http.Server{
		Addr:         ":" + cfg.GatewayPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.GatewayPort).Msg("gateway listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("gateway server failed")
		}
	}()

	<-stop

	log.Info().Msg("shutting down")
	workerCancel() // stops scheduling ticks; in-flight fetches are not aborted

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("gateway shutdown failed")
	}
	log.Info().Msg("gateway and workers stopped")
}

func newIdentityStore(ctx context.Context) (store.IdentityStore, func(), error) {
	switch config.AppConfig.IdentityStoreBackend {
	case "redis":
		rdb, err := store.ConnectRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb), func() { rdb.Close() }, nil
	default:
		return store.NewFileStore(config.AppConfig.IdentityStorePath), func() {}, nil
	}
}

// loadContestUntilReady performs the one-shot contest load, retrying on a
// slow loop so a backend that comes up late still gets picked up. The
// gateway answers 503 for contest state until this succeeds.
func loadContestUntilReady(ctx context.Context, contestService *service.ContestService) {
	for {
		if err := contestService.Load(ctx); err == nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(config.AppConfig.ContestLoadInterval):
		}
	}
}
