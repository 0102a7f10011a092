package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rsubramani/policy-tracker/internal/common"
	"github.com/rsubramani/policy-tracker/internal/config"
	"github.com/rsubramani/policy-tracker/internal/dedupe"
	"github.com/rsubramani/policy-tracker/internal/export"
	"github.com/rsubramani/policy-tracker/internal/extract"
	"github.com/rsubramani/policy-tracker/internal/ingest"
	"github.com/rsubramani/policy-tracker/internal/pipeline"
	"github.com/rsubramani/policy-tracker/internal/reconcile"
	repo "github.com/rsubramani/policy-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir        = flag.String("dir", "", "directory to process documents from (required)")
		configPath = flag.String("config", "", "tracker tunables YAML (optional, defaults to TRACKER_CONFIG)")
		out        = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		keep       = flag.Bool("keep", false, "leave processed files in place instead of routing them")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "policies.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	store := repo.NewEntStore(dbResult.Client, logger)

	trackerPath := cfg.Batch.TrackerConfigPath
	if *configPath != "" {
		trackerPath = *configPath
	}
	tracker, err := config.LoadTracker(trackerPath)
	if err != nil {
		logger.Error("failed to load tracker config", "path", trackerPath, "error", err)
		os.Exit(1)
	}

	// Provision agents from config, if present
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
	if len(agents) > 0 {
		logger.Info("agents provisioned", "count", len(agents))
	}

	detector := dedupe.NewDetector(tracker.GenericFilenamePatterns, tracker.ContentHashPrefixLen, store.Store().Documents, logger)
	engine := reconcile.NewEngine(store, tracker, logger)
	processor := pipeline.NewProcessor(logger, detector, engine, extract.Options{MinNameAlpha: tracker.MinNameAlpha})

	var mover *ingest.Mover
	if !*keep {
		mover = ingest.NewMover(cfg.Folders.ProcessedDir, cfg.Folders.DuplicatesDir, cfg.Folders.ErrorsDir, logger)
	}
	batch := pipeline.NewBatch(logger, processor, mover)

	logger.Info("starting batch", "dir", *dir)
	report, err := batch.Run(ctx, *dir)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	exportService := export.NewService(store.Store(), logger)
	xlsxBytes, err := exportService.ExportPoliciesXLSX(ctx)
	if err != nil {
		logger.Error("failed to export policies", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"scanned", report.Scanned,
		"processed", report.Processed,
		"duplicated", report.Duplicated,
		"errored", report.Errored,
		"output_file", *out)

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Documents scanned: %d\n", report.Scanned)
	fmt.Printf("- Processed: %d\n", report.Processed)
	fmt.Printf("- Duplicates: %d\n", report.Duplicated)
	fmt.Printf("- Errors: %d\n", report.Errored)
	fmt.Printf("- Policies created: %d, updated: %d\n", report.PoliciesCreated, report.PoliciesUpdated)
	fmt.Printf("- Premium records: %d\n", report.PremiumRecords)
	fmt.Printf("- Output: %s\n", *out)
}
