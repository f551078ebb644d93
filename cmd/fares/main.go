package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rentalfare/internal/calculator"
	"github.com/mmynk/rentalfare/internal/config"
	"github.com/mmynk/rentalfare/internal/fixture"
	"github.com/mmynk/rentalfare/internal/metrics"
	"github.com/mmynk/rentalfare/internal/models"
	"github.com/mmynk/rentalfare/internal/service"
	"github.com/mmynk/rentalfare/pkg/logging"
)

var errOutputMismatch = errors.New("output does not match expected output")

func main() {
	cfg := config.Load()

	flag.StringVar(&cfg.InputPath, "input", cfg.InputPath, "input document with cars, rentals and options")
	flag.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "where to write the output document")
	flag.StringVar(&cfg.ExpectedPath, "expected", cfg.ExpectedPath, "expected output to compare against (empty to skip)")
	flag.StringVar(&cfg.MetricsPath, "metrics", cfg.MetricsPath, "Prometheus textfile to write metrics to (empty to skip)")
	debug := flag.Bool("debug", false, "log every rental calculation")
	flag.Parse()

	if *debug {
		logging.SetupWithLevel(slog.LevelDebug)
	} else {
		logging.Setup(cfg.LogLevel)
	}

	if err := run(cfg, slog.Default()); err != nil {
		slog.Error("Fare calculation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	logger = logger.With("run_id", uuid.New().String())
	start := time.Now()

	in, err := fixture.LoadInput(cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Info("Input loaded",
		"path", cfg.InputPath,
		"cars", len(in.Cars),
		"rentals", len(in.Rentals),
		"options", len(in.Options),
	)

	m := metrics.New()
	svc := service.NewFareService(service.WithLogger(logger), service.WithObserver(m))

	results, err := svc.CalculateFares(in)
	if err != nil {
		return err
	}

	logPartyTotals(logger, results)

	if err := fixture.WriteOutput(cfg.OutputPath, results); err != nil {
		return err
	}
	logger.Info("Output written",
		"path", cfg.OutputPath,
		"rentals", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if cfg.MetricsPath != "" {
		if err := m.WriteFile(cfg.MetricsPath); err != nil {
			return err
		}
		logger.Info("Metrics written", "path", cfg.MetricsPath)
	}

	if cfg.ExpectedPath == "" {
		return nil
	}
	diff, err := fixture.Compare(cfg.OutputPath, cfg.ExpectedPath)
	if err != nil {
		return err
	}
	if !diff.Empty() {
		logger.Warn("Result and expected output differ",
			"expected", cfg.ExpectedPath,
			"missing", diff.Missing,
			"unexpected", diff.Unexpected,
			"changed", diff.Changed,
			"reordered", diff.Reordered,
		)
		return errOutputMismatch
	}
	logger.Info("Result and expected output are the same", "expected", cfg.ExpectedPath)
	return nil
}

// logPartyTotals logs how much each party receives or pays over the whole run.
func logPartyTotals(logger *slog.Logger, results []models.RentalResult) {
	ledgers := make([][]models.LedgerEntry, 0, len(results))
	for _, r := range results {
		ledgers = append(ledgers, r.Actions)
	}
	for _, bal := range calculator.CalculatePartyBalances(ledgers) {
		logger.Info("Party total",
			"party", bal.Party,
			"debited", bal.Debited,
			"credited", bal.Credited,
			"net", bal.Net,
		)
	}
}
