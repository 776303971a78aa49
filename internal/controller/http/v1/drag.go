package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/drag"
)

// dragSessionTTL bounds how long an untouched session is kept.
const dragSessionTTL = 10 * time.Minute

type dragSession struct {
	controller *drag.Controller
	touched    time.Time
}

// DragHandler keeps one drag controller per UI session. A session lives from
// begin until its drop or cancel, or until it has been idle for the TTL.
type DragHandler struct {
	log     *slog.Logger
	devices DeviceReader
	store   drag.Store
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*dragSession
}

func NewDragHandler(log *slog.Logger, devices DeviceReader, store drag.Store) *DragHandler {
	return &DragHandler{
		log:      log,
		devices:  devices,
		store:    store,
		ttl:      dragSessionTTL,
		now:      time.Now,
		sessions: make(map[string]*dragSession),
	}
}

type BeginDragRequest struct {
	DeviceID string `json:"device_id"`
}

type DropResponse struct {
	Outcome drag.Outcome `json:"outcome"`
	Status  drag.Status  `json:"status"`
}

func (h *DragHandler) session(r *http.Request, create bool) (string, *drag.Controller) {
	id := chi.URLParam(r, "session")

	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	h.expire(now)

	sess, ok := h.sessions[id]
	if !ok {
		if !create {
			return id, nil
		}
		sess = &dragSession{controller: drag.New(h.log.With(slog.String("drag_session", id)), h.store)}
		h.sessions[id] = sess
	}
	sess.touched = now

	return id, sess.controller
}

// expire cancels and forgets sessions idle for longer than the TTL. Callers hold h.mu.
func (h *DragHandler) expire(now time.Time) {
	for id, sess := range h.sessions {
		if now.Sub(sess.touched) <= h.ttl {
			continue
		}

		sess.controller.CancelDrag()
		delete(h.sessions, id)

		h.log.Debug("drag session expired", slog.String("drag_session", id))
	}
}

func (h *DragHandler) end(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.sessions, id)
}

// Begin starts dragging a device from wherever the store currently has it.
func (h *DragHandler) Begin(w http.ResponseWriter, r *http.Request) {
	var req BeginDragRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	device, err := h.devices.Device(req.DeviceID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	_, c := h.session(r, true)
	if err := c.BeginDrag(device.ID, device.Location()); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, c.Status())
}

func (h *DragHandler) Hover(w http.ResponseWriter, r *http.Request) {
	var target domain.Location
	if err := decodeJSON(r, &target); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	_, c := h.session(r, false)
	if c == nil {
		writeError(w, r, h.log, fmt.Errorf("hover: %w", drag.ErrNotDragging))
		return
	}

	c.Hover(target)

	writeJSON(w, http.StatusOK, c.Status())
}

func (h *DragHandler) Drop(w http.ResponseWriter, r *http.Request) {
	var target domain.Location
	if err := decodeJSON(r, &target); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	id, c := h.session(r, false)
	if c == nil {
		writeError(w, r, h.log, fmt.Errorf("drop: %w", drag.ErrNotDragging))
		return
	}
	defer h.end(id)

	outcome, err := c.ResolveDrop(r.Context(), target)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, DropResponse{Outcome: outcome, Status: c.Status()})
}

func (h *DragHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, c := h.session(r, false)
	if c == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	defer h.end(id)

	c.CancelDrag()

	writeJSON(w, http.StatusOK, c.Status())
}
