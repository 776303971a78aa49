package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/kurochkinivan/device_warehouse/internal/placement"
)

const (
	eventsBuffer      = 256
	heartbeatInterval = 15 * time.Second
)

type EventsHandler struct {
	log    *slog.Logger
	source EventSource
}

func NewEventsHandler(log *slog.Logger, source EventSource) *EventsHandler {
	return &EventsHandler{
		log:    log,
		source: source,
	}
}

// Stream sends store events as server-sent events. A client that falls behind
// by more than the buffer is disconnected and is expected to refetch on reconnect.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	// the server write timeout would cut the stream
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.log.DebugContext(r.Context(), "failed to clear write deadline", slog.String("err", err.Error()))
	}

	events := make(chan placement.Event, eventsBuffer)
	var lagged atomic.Bool

	unsubscribe := h.source.Subscribe(func(e placement.Event) {
		select {
		case events <- e:
		default:
			lagged.Store(true)
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := rc.Flush(); err != nil {
		h.log.ErrorContext(r.Context(), "streaming unsupported", slog.String("err", err.Error()))
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case e := <-events:
			if lagged.Load() {
				h.log.WarnContext(r.Context(), "event stream fell behind, closing")
				return
			}

			if err := writeEvent(w, e); err != nil {
				return
			}

		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}

		case <-r.Context().Done():
			return
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, e placement.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Kind, data)
	return err
}
