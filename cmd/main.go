package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"marketing-datagen/internal/adapter/generator"
	"marketing-datagen/internal/adapter/jsonfs"
	"marketing-datagen/internal/adapter/usecase"
	"marketing-datagen/internal/config"
	"marketing-datagen/internal/core/domain"
	"marketing-datagen/internal/core/port"
)

// main generates the marketing datasets for the fixed date range and
// prints a summary. Any write failure aborts the run with a non-zero exit
// status; files written before the failure are left in place.
func main() {
	if err := run(os.Stdout); err != nil {
		slog.Error("dataset generation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := cfg.Generator.EffectiveSeed()
	logger := cfg.Log.New(os.Stderr).With(
		slog.String("env", cfg.Env),
		slog.String("run_id", uuid.NewString()),
	)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("generating marketing datasets",
		slog.String("dir", cfg.Output.Dir),
		slog.Int64("seed", seed),
		slog.Time("from", domain.RangeStart),
		slog.Time("to", domain.RangeEnd),
	)

	writer := jsonfs.NewWriter(cfg.Output.Dir, logger)
	svc := usecase.NewDatasetUseCase(generator.New(seed, domain.RangeStart), writer, logger)

	summary, err := svc.Generate(ctx, domain.RangeStart, domain.RangeEnd)
	if err != nil {
		return err
	}
	printSummary(out, summary, writer.BaseDir())
	return nil
}

func printSummary(out io.Writer, s *port.Summary, dir string) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	fmt.Fprintln(out, "Dataset Generation Complete!")
	fmt.Fprintf(out, "  Ads: %d\n", s.Ads)
	fmt.Fprintf(out, "  Weekly impression files: %d\n", s.WeeklyImpressionFiles)
	fmt.Fprintf(out, "  Monthly impression files: %d\n", s.MonthlyImpressionFiles)
	fmt.Fprintf(out, "  Conversion files: %d\n", s.ConversionFiles)
	fmt.Fprintf(out, "  Revenue files: %d\n", s.RevenueFiles)
	fmt.Fprintf(out, "  Records: %d impressions, %d conversions, %d transactions\n",
		s.Impressions, s.Conversions, s.Transactions)
	fmt.Fprintf(out, "\nData location: %s\n", dir)
}
