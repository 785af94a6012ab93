package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/alfonsotech/philosophers-alliance/pkg/config"
	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/feed"
	"github.com/alfonsotech/philosophers-alliance/pkg/query"
	"github.com/alfonsotech/philosophers-alliance/pkg/refresh"
	"github.com/alfonsotech/philosophers-alliance/pkg/runlog"
	"github.com/alfonsotech/philosophers-alliance/pkg/scheduler"
	"github.com/alfonsotech/philosophers-alliance/pkg/store"
	"github.com/alfonsotech/philosophers-alliance/pkg/store/file"
	"github.com/alfonsotech/philosophers-alliance/pkg/store/mongo"
	"github.com/alfonsotech/philosophers-alliance/server"
)

// Opts with all CLI options
type Opts struct {
	Config     string `short:"c" long:"config" env:"CONFIG" default:"alliance.yml" description:"configuration file"`
	MongoURI   string `long:"mongo-uri" env:"MONGODB_URI" description:"MongoDB connection string, overrides config"`
	CronSecret string `long:"cron-secret" env:"CRON_SECRET" description:"bearer token required by refresh endpoint in production"`
	Production bool   `long:"production" env:"PRODUCTION" description:"production mode"`
	Listen     string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Once       bool   `long:"once" description:"refresh all sources once and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, secrets(opts)...)

	log.Printf("[INFO] starting philosophers-alliance version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.MongoURI != "" {
		cfg.Mongo.URI = opts.MongoURI
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if cfg.Mongo.URI == "" {
		return errors.New("mongo uri is not set, use --mongo-uri or MONGODB_URI")
	}
	if cfg.Mongo.URI != opts.MongoURI {
		// uri came from the config file, mask it as well
		setupLog(opts.Debug, secrets(opts, cfg.Mongo.URI)...)
	}
	if opts.Production && opts.CronSecret == "" {
		log.Print("[WARN] production mode without cron secret, refresh endpoint will reject all requests")
	}

	primary, err := mongo.New(ctx, mongo.Config{
		URI:                    cfg.Mongo.URI,
		Database:               cfg.Mongo.Database,
		ConnectTimeout:         cfg.Mongo.ConnectTimeout,
		ServerSelectionTimeout: cfg.Mongo.ServerSelectionTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to make mongo client: %w", err)
	}
	defer func() {
		if err := primary.Close(); err != nil {
			log.Printf("[WARN] %v", err)
		}
	}()

	idxCtx, idxCancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	if err := primary.EnsureIndexes(idxCtx); err != nil {
		log.Printf("[WARN] can't create mongo indexes, fallback storage will be used while mongo is down: %v", err)
	}
	idxCancel()

	fallback, err := file.New(cfg.Fallback.Dir)
	if err != nil {
		return fmt.Errorf("failed to open fallback storage: %w", err)
	}
	gw := store.NewGateway(primary, fallback, cfg.Mongo.ProbeTimeout)

	history, err := runlog.New(ctx, runlog.Config{DSN: cfg.History.DSN})
	if err != nil {
		return fmt.Errorf("failed to open refresh history: %w", err)
	}
	defer history.Close()

	fetcher := feed.NewFetcher(feed.NewParser(feed.ParserParams{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Retries:   cfg.Fetch.Retries,
	}))
	refresher := refresh.New(fetcher, gw, history, refresh.Params{
		Sources:    cfg.Sources,
		Pacing:     cfg.Fetch.Pacing,
		Aggregated: cfg.Fetch.Aggregated,
	})

	if opts.Once {
		summary, err := refresher.Run(ctx, domain.TriggerCLI)
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
		log.Printf("[INFO] refresh done, %d of %d sources updated, %d failed, %d posts",
			summary.Updated, summary.Sources, summary.Failed, summary.NewPostsCount)
		return nil
	}

	srv := server.New(cfg, server.Deps{
		Catalog:   query.New(gw),
		Refresher: refresher,
		History:   history,
		Storage:   gw,
	}, server.Params{
		Version:    revision,
		Debug:      opts.Debug,
		Production: opts.Production,
		CronSecret: opts.CronSecret,
		BaseURL:    cfg.Server.BaseURL,
		Sources:    cfg.Sources,
	})

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Schedule.Enabled {
		sched := scheduler.NewScheduler(refresher, scheduler.Params{
			Interval:   cfg.Schedule.Interval,
			RunOnStart: cfg.Schedule.RunOnStart,
		})
		sched.Start(gctx)
		g.Go(func() error {
			<-gctx.Done()
			sched.Stop()
			return nil
		})
	}
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// secrets returns values to be masked in logs, extra values come from the loaded config
func secrets(opts Opts, extra ...string) []string {
	var res []string
	for _, s := range append([]string{opts.CronSecret, opts.MongoURI}, extra...) {
		if s != "" && !slices.Contains(res, s) {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
