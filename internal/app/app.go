package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_warehouse/internal/autofill"
	"github.com/kurochkinivan/device_warehouse/internal/changefeed"
	"github.com/kurochkinivan/device_warehouse/internal/config"
	v1 "github.com/kurochkinivan/device_warehouse/internal/controller/http/v1"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/device_warehouse/internal/pipeline"
	"github.com/kurochkinivan/device_warehouse/internal/placement"
	"github.com/kurochkinivan/device_warehouse/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer         = 100
	importResultsBuffer = 50
	reportsBuffer       = 100
	changesBuffer       = 256
	shutdownTimeout     = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type repositories struct {
	devices     *postgresql.DevicesRepository
	importFiles *postgresql.ImportFilesRepository
	warehouse   *postgresql.Warehouse
	tx          *postgresql.TxManager
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.App.DirectoryScanInterval),
		slog.String("resync_schedule", a.cfg.Sync.ResyncSchedule),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	devicesRepository := postgresql.NewDevicesRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	repos := repositories{
		devices:     devicesRepository,
		importFiles: postgresql.NewImportFilesRepository(pool),
		warehouse:   postgresql.NewWarehouse(devicesRepository, postgresql.NewShelvesRepository(pool), txManager),
		tx:          txManager,
	}

	if err := repos.importFiles.ResetProcessingFiles(ctx); err != nil {
		return fmt.Errorf("failed to reset processing files: %w", err)
	}

	return a.start(ctx, pool, repos)
}

func (a *App) start(ctx context.Context, pool *pgxpool.Pool, repos repositories) error {
	generator := report_generator.New()

	// the store starts empty and is filled by the first resync, which the
	// listener runs right after LISTEN so no change slips in between
	store := placement.New(a.log.With(slog.String("component", "placement")), repos.warehouse)
	resyncer := changefeed.NewResyncer(a.log, a.cfg.Sync.ResyncSchedule, store, repos.warehouse)

	changes := make(chan domain.Change, changesBuffer)
	listener := changefeed.NewListener(a.log, pool, a.cfg.Sync.ChangeChannel, changes, resyncer.Resync)
	subscriber := changefeed.NewSubscriber(a.log, changes, repos.warehouse, store)

	planner := autofill.New(a.log, store)
	server := v1.NewServer(a.cfg.HTTP, v1.NewRouter(a.log, store, planner, generator))

	files := make(chan string, filesBuffer)
	importResults := make(chan *domain.ImportResult, importResultsBuffer)
	reports := make(chan *domain.ImportResult, reportsBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.WatchDirectory,
		a.cfg.DirectoryScanInterval,
		files,
		repos.importFiles,
		repos.importFiles,
	)
	parser := pipeline.NewParser(a.log, files, importResults)
	writer := pipeline.NewWriter(a.log, importResults, reports, repos.importFiles, repos.devices, repos.tx)
	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, reports, generator)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "change listener started", slog.String("channel", a.cfg.Sync.ChangeChannel))
		return listener.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "change subscriber started")
		return subscriber.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "resyncer started")
		return resyncer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "parser started")
		return parser.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
