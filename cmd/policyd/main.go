package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/rsubramani/policy-tracker/internal/common"
	"github.com/rsubramani/policy-tracker/internal/config"
	"github.com/rsubramani/policy-tracker/internal/dedupe"
	"github.com/rsubramani/policy-tracker/internal/export"
	"github.com/rsubramani/policy-tracker/internal/extract"
	"github.com/rsubramani/policy-tracker/internal/ingest"
	"github.com/rsubramani/policy-tracker/internal/pipeline"
	"github.com/rsubramani/policy-tracker/internal/reconcile"
	repo "github.com/rsubramani/policy-tracker/internal/repository"
	"github.com/rsubramani/policy-tracker/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	if dbResult.Pool != nil {
		if err := repo.HealthCheck(ctx, dbResult.Pool, 3*time.Second, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
		logger.Info("database health OK")
	}

	store := repo.NewEntStore(dbResult.Client, logger)

	tracker, err := config.LoadTracker(cfg.Batch.TrackerConfigPath)
	if err != nil {
		logger.Error("failed to load tracker config", "error", err)
		os.Exit(1)
	}

	agents, err := config.LoadAgents(cfg.Batch.AgentsConfigPath)
	if err != nil {
		logger.Error("failed to load agents config", "error", err)
		os.Exit(1)
	}
	for _, a := range agents {
		if err := store.Store().Agents.Upsert(ctx, a); err != nil {
			logger.Error("failed to provision agent", "code", a.Code, "error", err)
			os.Exit(1)
		}
	}

	detector := dedupe.NewDetector(tracker.GenericFilenamePatterns, tracker.ContentHashPrefixLen, store.Store().Documents, logger)
	engine := reconcile.NewEngine(store, tracker, logger)
	processor := pipeline.NewProcessor(logger, detector, engine, extract.Options{MinNameAlpha: tracker.MinNameAlpha})
	mover := ingest.NewMover(cfg.Folders.ProcessedDir, cfg.Folders.DuplicatesDir, cfg.Folders.ErrorsDir, logger)
	batch := pipeline.NewBatch(logger, processor, mover)
	exportService := export.NewService(store.Store(), logger)

	var health repo.HealthChecker
	if dbResult.Pool != nil {
		health = repo.PoolHealth{Pool: dbResult.Pool, Timeout: 3 * time.Second}
	}
	srv := server.New(logger, batch, exportService, health, cfg.Folders.IncomingDir)

	// Scheduled batch runs
	c := cron.New()
	if _, err := c.AddFunc(cfg.Batch.CronSchedule, func() {
		report, err := batch.Run(ctx, cfg.Folders.IncomingDir)
		if err != nil {
			logger.Error("scheduled batch failed", "error", err)
			return
		}
		srv.RecordReport(report)
	}); err != nil {
		logger.Error("invalid cron schedule", "schedule", cfg.Batch.CronSchedule, "error", err)
		os.Exit(1)
	}
	c.Start()
	logger.Info("batch schedule active", "schedule", cfg.Batch.CronSchedule)

	// Optional event-driven processing of files as they land
	if cfg.Batch.WatchIncoming {
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Root:     cfg.Folders.IncomingDir,
			Debounce: 2 * time.Second,
		})
		if err != nil {
			logger.Error("failed to start incoming watcher", "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range evCh {
				doc, err := ingest.Load(path)
				if err != nil {
					logger.Error("failed to load watched document", "path", path, "error", err)
					continue
				}
				out := processor.ProcessDocument(ctx, doc)
				if _, err := mover.Apply(doc.Path, out.Outcome); err != nil {
					logger.Error("failed to route watched document", "path", path, "error", err)
				}
			}
		}()
		go func() {
			for err := range errCh {
				logger.Error("incoming watcher error", "error", err)
			}
		}()
		logger.Info("watching incoming directory", "dir", cfg.Folders.IncomingDir)
	}

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Router(),
	}
	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	cronCtx := c.Stop()
	<-cronCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
