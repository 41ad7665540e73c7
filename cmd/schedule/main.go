// Command schedule writes a batch flight schedule from one origin to every
// international destination as flights.json and flights.csv.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/marecop/yellowair-sub000/internal/airport"
	"github.com/marecop/yellowair-sub000/internal/cache"
	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/engine"
	"github.com/marecop/yellowair-sub000/internal/export"
	"github.com/marecop/yellowair-sub000/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "schedule: read .env:", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	if err := run(context.Background(), os.Args[1:], logger); err != nil {
		logger.Error("schedule failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	origin string
	start  time.Time
	days   int
	seed   int64
	out    string
}

func parseFlags(args []string, now time.Time) (options, error) {
	fset := flag.NewFlagSet("schedule", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var (
		o     options
		start string
	)
	fset.StringVar(&o.origin, "origin", "CAN", "origin airport code")
	fset.StringVar(&start, "start", now.Format(domain.DateLayout), "first day of the window (YYYY-MM-DD)")
	fset.IntVar(&o.days, "days", service.DefaultScheduleDays, "number of days in the window")
	fset.Int64Var(&o.seed, "seed", 0, "base random seed")
	fset.StringVar(&o.out, "out", "./dist", "output directory")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}

	t, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return options{}, fmt.Errorf("invalid -start %q: want YYYY-MM-DD", start)
	}
	o.start = t
	return o, nil
}

func run(ctx context.Context, args []string, logger *slog.Logger) error {
	opts, err := parseFlags(args, time.Now().UTC())
	if err != nil {
		return err
	}

	catalog, err := airport.Default()
	if err != nil {
		return err
	}
	search := service.NewSearchService(
		engine.NewSynthesizer(airport.NewResolver(catalog)),
		cache.NewFlightCache(cache.DefaultCapacity),
		opts.seed,
		logger,
	)
	flights, err := service.NewScheduleService(search, catalog, logger).Build(ctx, opts.origin, opts.start, opts.days)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, f := range []domain.ExportFormat{domain.ExportJSON, domain.ExportCSV} {
		path := filepath.Join(opts.out, "flights."+string(f))
		if err := writeFile(path, f, flights); err != nil {
			return err
		}
		logger.Info("schedule written", "path", path, "flights", len(flights))
	}
	return nil
}

func writeFile(path string, f domain.ExportFormat, flights []domain.Flight) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(file, f, flights); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
