package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	leaguefetcher "leagueprobe/fetcher/data/league"
	matchfetcher "leagueprobe/fetcher/data/match"
	playerfetcher "leagueprobe/fetcher/data/player"
	"leagueprobe/fetcher/pipeline"
	"leagueprobe/fetcher/requests"
	"leagueprobe/pkg/config"
	"leagueprobe/pkg/logger"
	"leagueprobe/pkg/messages"
	"leagueprobe/pkg/metrics"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code, so deferred cleanups still happen.
func run() int {
	config.LoadEnv()

	cfg, err := config.Load()
	if errors.Is(err, config.ErrMissingApiKey) {
		fmt.Fprintln(os.Stderr, messages.MissingApiKeyMsg)
		return 1
	}
	if err != nil {
		log.Printf("Couldn't load the configuration: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runLogger, err := logger.CreateLogger(os.Stdout)
	if err != nil {
		log.Printf("Couldn't create the run log: %v", err)
		return 1
	}
	defer runLogger.Close()

	runId := uuid.NewString()
	manager := metrics.NewManager()

	// Both regions are validated by Load.
	platform, _ := cfg.PlatformRegion()
	routing, _ := cfg.RoutingRegion()

	executor := requests.NewExecutor(cfg,
		requests.WithLogger(runLogger),
		requests.WithMetrics(manager),
	)

	probe := pipeline.NewPipeline(&pipeline.PipelineDeps{
		League:     leaguefetcher.NewLeagueFetcher(executor, platform.BaseURL()),
		Players:    playerfetcher.NewPlayerFetcher(executor, routing.BaseURL()),
		Matches:    matchfetcher.NewMatchFetcher(executor, routing.BaseURL()),
		Logger:     runLogger,
		Metrics:    manager,
		Division:   cfg.Division,
		Queue:      cfg.Queue,
		MatchCount: cfg.MatchCount,
	})

	runLogger.Infof("Starting run %s on %s/%s", runId, platform, routing)
	report, runErr := probe.Run(ctx)
	report.Print(os.Stdout)

	if cfg.MetricsFile != "" {
		if err := manager.WriteTextfile(cfg.MetricsFile); err != nil {
			runLogger.Warnf("Couldn't write the metrics file: %v", err)
		}
	}

	if cfg.UploadsLogs() {
		// The run context may be cancelled already, the upload gets its own.
		uploadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		key := logger.RunObjectKey(time.Now(), runId)
		if err := runLogger.UploadToS3Bucket(uploadCtx, cfg, key); err != nil {
			runLogger.Errorf("Couldn't upload the run log: %v", err)
		}
	}

	if runErr != nil {
		return 1
	}
	return 0
}
