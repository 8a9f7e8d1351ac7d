package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/hoursreport/internal/cli"
	"github.com/alexanderramin/hoursreport/internal/config"
	"github.com/alexanderramin/hoursreport/internal/db"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/logger"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
	"github.com/alexanderramin/hoursreport/internal/repository"
	"github.com/alexanderramin/hoursreport/internal/service"
	"github.com/alexanderramin/hoursreport/internal/viewer"
	"github.com/alexanderramin/hoursreport/internal/xlsx"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(rerr.ExitCode(rerr.KindOf(err)))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var closers []func() error
	defer func() {
		for _, c := range closers {
			_ = c()
		}
	}()

	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	app.Setup = func(opts cli.GlobalOptions) error {
		closer, err := wire(app, opts)
		if closer != nil {
			closers = append(closers, closer)
		}
		return err
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// wire loads settings and builds the registry and services. The returned
// closer releases the history database.
func wire(app *cli.App, opts cli.GlobalOptions) (func() error, error) {
	v, err := config.New(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		v.Set("logging.level", opts.LogLevel)
	}
	if opts.LogFormat != "" {
		v.Set("logging.format", opts.LogFormat)
	}
	settings, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger.Init(logger.Options{Level: settings.Logging.Level, Format: settings.Logging.Format})
	log := logger.Named("main")

	registry, err := projectconfig.DefaultRegistry(settings.Configs.Dir)
	if err != nil {
		return nil, err
	}

	var (
		history service.HistoryService
		closer  func() error
	)
	if settings.History.Enabled {
		database, err := db.OpenDB(settings.History.DBPath)
		if err != nil {
			log.Warn().Err(err).Str("path", settings.History.DBPath).Msg("run history unavailable")
		} else {
			closer = database.Close
			history = service.NewHistoryService(
				repository.NewSQLiteRunRepo(database),
				db.NewSQLiteUnitOfWork(database),
				settings.History.Keep,
			)
		}
	}

	var vw viewer.Viewer = viewer.Noop{}
	if app.IsInteractive() {
		vw = viewer.NewPlatform()
	}

	writer := xlsx.NewWriter(settings.Persist.Retries, settings.Persist.RetryDelay(), logger.Named("xlsx"))

	app.Settings = settings
	app.Registry = registry
	app.History = history
	app.Reports = service.NewReportService(
		registry, writer, vw, history,
		logger.Named("report"),
		service.NewLogUseCaseObserver(logger.Named("usecase")),
	)
	return closer, nil
}
