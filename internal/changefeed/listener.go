// Package changefeed keeps the placement store in step with writes made by
// other sessions.
//
// Listener turns PostgreSQL notifications into domain.Change values, Subscriber
// refetches each changed record and merges it into the store, and Resyncer
// reloads everything on a schedule to cover notifications lost in transit.
package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

const reconnectDelay = 5 * time.Second

type Listener struct {
	log      *slog.Logger
	pool     *pgxpool.Pool
	channel  string
	changes  chan<- domain.Change
	onListen func(ctx context.Context) error
}

// NewListener creates a listener. onListen runs after every successful LISTEN,
// so that a reload covers whatever was missed before the subscription; an
// error from the first call stops the listener.
func NewListener(
	log *slog.Logger,
	pool *pgxpool.Pool,
	channel string,
	changes chan<- domain.Change,
	onListen func(ctx context.Context) error,
) *Listener {
	return &Listener{
		log:      log,
		pool:     pool,
		channel:  channel,
		changes:  changes,
		onListen: onListen,
	}
}

func (l *Listener) Run(ctx context.Context) error {
	defer close(l.changes)

	for attempt := 0; ; attempt++ {
		err := l.listen(ctx, attempt == 0)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var fatal *startupError
		if errors.As(err, &fatal) {
			return fatal.err
		}

		l.log.ErrorContext(ctx, "change listener disconnected, reconnecting",
			slog.String("channel", l.channel),
			slog.Duration("delay", reconnectDelay),
			slog.String("err", err.Error()),
		)

		select {
		case <-time.After(reconnectDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type startupError struct{ err error }

func (e *startupError) Error() string { return e.err.Error() }

func (l *Listener) listen(ctx context.Context, first bool) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", l.channel, err)
	}

	l.log.InfoContext(ctx, "listening for changes", slog.String("channel", l.channel))

	if l.onListen != nil {
		if err := l.onListen(ctx); err != nil {
			err = fmt.Errorf("failed to resync after listen: %w", err)
			if first {
				return &startupError{err: err}
			}
			l.log.ErrorContext(ctx, "resync after reconnect failed", slog.String("err", err.Error()))
		}
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("failed to wait for notification: %w", err)
		}

		change, err := DecodeChange([]byte(notification.Payload))
		if err != nil {
			l.log.WarnContext(ctx, "skipping malformed change notification",
				slog.String("payload", notification.Payload),
				slog.String("err", err.Error()),
			)
			continue
		}

		select {
		case l.changes <- change:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// DecodeChange parses a notification payload of the form
// {"table":"devices","op":"UPDATE","id":"..."}.
func DecodeChange(payload []byte) (domain.Change, error) {
	var change domain.Change
	if err := json.Unmarshal(payload, &change); err != nil {
		return domain.Change{}, fmt.Errorf("failed to decode change: %w", err)
	}

	switch change.Table {
	case domain.ChangeTableDevices, domain.ChangeTableShelves:
	default:
		return domain.Change{}, fmt.Errorf("unknown table %q", change.Table)
	}

	switch change.Op {
	case domain.ChangeOpInsert, domain.ChangeOpUpdate, domain.ChangeOpDelete:
	default:
		return domain.Change{}, fmt.Errorf("unknown operation %q", change.Op)
	}

	if change.ID == "" {
		return domain.Change{}, errors.New("change without id")
	}

	return change, nil
}
