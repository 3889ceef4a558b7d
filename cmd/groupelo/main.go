package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goserg/groupelo/internal/config"
	"github.com/goserg/groupelo/internal/engine"
	"github.com/goserg/groupelo/internal/logger"
	"github.com/goserg/groupelo/internal/report"
	"github.com/goserg/groupelo/internal/service"
	"github.com/goserg/groupelo/internal/storage"
	"github.com/goserg/groupelo/internal/storage/sqlite"
	"github.com/goserg/groupelo/internal/storage/text"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

type options struct {
	configPath    string
	fromDB        bool
	importOnly    bool
	categories    string
	normalization string
	exportFile    string
	metricsFile   string
	input         string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("groupelo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "path to TOML config")
	fs.BoolVar(&o.fromDB, "db", false, "read records from the sqlite record store instead of the input")
	fs.BoolVar(&o.importOnly, "import", false, "append input records to the sqlite record store and exit")
	fs.StringVar(&o.categories, "categories", "", "comma separated categories to rate")
	fs.StringVar(&o.normalization, "normalization", "", "contests or last-loser")
	fs.StringVar(&o.exportFile, "export", "", "write a JSON export of the run")
	fs.StringVar(&o.metricsFile, "metrics", "", "write prometheus metrics in textfile format")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 1 {
		return options{}, errors.New("at most one input file")
	}
	o.input = fs.Arg(0)
	if o.fromDB && o.importOnly {
		return options{}, errors.New("-db and -import are mutually exclusive")
	}
	return o, nil
}

func (o options) apply(cfg *config.Config) {
	if o.categories != "" {
		cfg.Report.Categories = strings.Split(o.categories, ",")
	}
	if o.normalization != "" {
		cfg.Engine.Normalization = o.normalization
	}
	if o.exportFile != "" {
		cfg.Report.ExportFile = o.exportFile
	}
	if o.metricsFile != "" {
		cfg.Report.MetricsFile = o.metricsFile
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.New(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetOutput(stderr)

	input := stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	var source storage.RecordSource = text.New(input)
	if opts.fromDB || opts.importOnly {
		db, err := sqlite.New(log, cfg.Storage.SqliteFile)
		if err != nil {
			return err
		}
		defer db.Close()
		if opts.importOnly {
			return importRecords(ctx, source, db)
		}
		source = db
	}

	return rate(ctx, log, cfg, source, stdout)
}

func importRecords(ctx context.Context, source storage.RecordSource, sink storage.RecordSink) error {
	records, err := source.ListRecords(ctx)
	if err != nil {
		return err
	}
	return sink.ImportRecords(ctx, records)
}

func rate(ctx context.Context, log *logrus.Logger, cfg config.Config, source storage.RecordSource, stdout io.Writer) error {
	registry := prometheus.NewRegistry()
	metrics, err := engine.NewMetrics(registry)
	if err != nil {
		return err
	}
	ratingService, err := service.New(log, cfg, source, service.WithMetrics(metrics))
	if err != nil {
		return err
	}
	result, err := ratingService.Rate(ctx)
	if err != nil {
		return err
	}

	for i, c := range result.Categories {
		if i > 0 {
			if _, err := fmt.Fprintln(stdout); err != nil {
				return err
			}
		}
		if err := report.WriteText(stdout, c.Name, c.Players); err != nil {
			return err
		}
	}

	if cfg.Report.ExportFile != "" {
		data, err := report.Export(result.ID, result.Categories)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Report.ExportFile, data, 0o644); err != nil {
			return err
		}
	}
	if cfg.Report.MetricsFile != "" {
		if err := engine.WriteTextfile(cfg.Report.MetricsFile, registry); err != nil {
			return err
		}
	}
	return nil
}
