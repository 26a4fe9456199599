package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	mem "herd-analytics/internal/adapters/storage/memory"
	"herd-analytics/internal/domain/analytics"
	"herd-analytics/internal/platform/config"
	"herd-analytics/internal/platform/logger"
	"herd-analytics/internal/router"
)

func openService(ctx context.Context, flags *rootFlags) (*analytics.Service, func() error, error) {
	// stdout queda para el reporte
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
		Out:    os.Stderr,
	})

	tables, err := analytics.LoadConfig(flags.heuristics)
	if err != nil {
		return nil, nil, err
	}

	if flags.snapshot != "" {
		repo, err := mem.LoadSnapshotFile(flags.snapshot)
		if err != nil {
			return nil, nil, err
		}
		return analytics.NewService(repo, tables, log), func() error { return nil }, nil
	}

	cfg, err := config.LoadFrom(flags.envFile)
	if err != nil {
		return nil, nil, err
	}
	repo, closeFn, err := router.OpenHerdRepo(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return analytics.NewService(repo, tables, log), closeFn, nil
}

func runReport(ctx context.Context, w io.Writer, flags *rootFlags, rawMode, format string) error {
	mode, err := analytics.ParseMode(rawMode)
	if err != nil {
		return fmt.Errorf("%w: %q", err, rawMode)
	}

	svc, closeFn, err := openService(ctx, flags)
	if err != nil {
		return err
	}
	defer closeFn()

	rep, err := svc.Report(ctx, mode)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analytics.ToReportResponse(rep))
	case "text", "":
		return writeReport(w, rep)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runEstimate(ctx context.Context, w io.Writer, flags *rootFlags) error {
	svc, closeFn, err := openService(ctx, flags)
	if err != nil {
		return err
	}
	defer closeFn()

	items, err := svc.Assessments(ctx)
	if err != nil {
		return err
	}
	return writeAssessments(w, items)
}
