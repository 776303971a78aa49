package changefeed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/device_warehouse/internal/placement"
	"github.com/robfig/cron/v3"
)

type Reloader interface {
	Load(ctx context.Context, loader placement.Loader) error
}

type Resyncer struct {
	log      *slog.Logger
	schedule string
	store    Reloader
	loader   placement.Loader
}

func NewResyncer(log *slog.Logger, schedule string, store Reloader, loader placement.Loader) *Resyncer {
	return &Resyncer{
		log:      log,
		schedule: schedule,
		store:    store,
		loader:   loader,
	}
}

// Resync replaces the store contents with a fresh backend snapshot.
func (r *Resyncer) Resync(ctx context.Context) error {
	if err := r.store.Load(ctx, r.loader); err != nil {
		return fmt.Errorf("failed to reload store: %w", err)
	}
	return nil
}

// Run resyncs on the cron schedule until ctx is done. Runs never overlap.
func (r *Resyncer) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: r.log})))

	_, err := c.AddFunc(r.schedule, func() {
		if err := r.Resync(ctx); err != nil {
			r.log.ErrorContext(ctx, "scheduled resync failed", slog.String("err", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid resync schedule %q: %w", r.schedule, err)
	}

	c.Start()
	r.log.InfoContext(ctx, "resync scheduled", slog.String("schedule", r.schedule))

	<-ctx.Done()
	<-c.Stop().Done()

	return ctx.Err()
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, slog.String("err", err.Error()))...)
}
