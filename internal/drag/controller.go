// Package drag turns drag-and-drop gestures into placement store mutations.
//
// A gesture moves Idle -> Dragging -> Dropped or Cancelled. Every drop resolves
// to at most one store call; dropping onto a slot held by another device is
// rejected, exchanging two devices is a separate swap action.
package drag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

var (
	ErrDragInProgress = errors.New("drag already in progress")
	ErrNotDragging    = errors.New("no drag in progress")
)

type State string

const (
	StateIdle      State = "idle"
	StateDragging  State = "dragging"
	StateDropped   State = "dropped"
	StateCancelled State = "cancelled"
)

// Feedback is the visual signal for the location under the pointer.
type Feedback string

const (
	FeedbackNone    Feedback = "none"
	FeedbackValid   Feedback = "valid"
	FeedbackInvalid Feedback = "invalid"
)

type Outcome string

const (
	OutcomeNoop     Outcome = "noop"
	OutcomePlaced   Outcome = "placed"
	OutcomeUnplaced Outcome = "unplaced"
	OutcomeRejected Outcome = "rejected"
)

type Store interface {
	Occupant(loc domain.Location) (string, bool)
	CheckSlot(loc domain.Location) error
	PlaceDevice(ctx context.Context, deviceID, shelfID string, slotIndex int) error
	UnplaceDevice(ctx context.Context, deviceID string) error
}

// Status is a read-only view of the controller for rendering.
type Status struct {
	State    State           `json:"state"`
	DeviceID string          `json:"device_id,omitempty"`
	Source   domain.Location `json:"source"`
	Target   domain.Location `json:"target"`
	Feedback Feedback        `json:"feedback"`
}

type Controller struct {
	log   *slog.Logger
	store Store

	mu     sync.Mutex
	status Status
}

func New(log *slog.Logger, store Store) *Controller {
	return &Controller{
		log:    log,
		store:  store,
		status: Status{State: StateIdle, Feedback: FeedbackNone},
	}
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

func (c *Controller) BeginDrag(deviceID string, source domain.Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status.State == StateDragging {
		return ErrDragInProgress
	}

	if deviceID == "" {
		return fmt.Errorf("failed to begin drag: %w", domain.ErrDeviceNotFound)
	}

	c.status = Status{
		State:    StateDragging,
		DeviceID: deviceID,
		Source:   source,
		Target:   source,
		Feedback: FeedbackNone,
	}

	return nil
}

// Hover records the location under the pointer and returns its feedback.
func (c *Controller) Hover(target domain.Location) Feedback {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status.State != StateDragging {
		return FeedbackNone
	}

	c.status.Target = target
	c.status.Feedback = c.feedback(target)

	return c.status.Feedback
}

func (c *Controller) feedback(target domain.Location) Feedback {
	source := c.status.Source

	if target == source {
		return FeedbackNone
	}

	if target.IsPool() {
		return FeedbackValid
	}

	if err := c.store.CheckSlot(target); err != nil {
		return FeedbackInvalid
	}

	occupant, taken := c.store.Occupant(target)
	switch {
	case !taken:
		return FeedbackValid
	case occupant != c.status.DeviceID:
		return FeedbackInvalid
	default:
		return FeedbackNone
	}
}

// ResolveDrop ends the gesture at target. On a store failure the device keeps its
// previous location, since the store has already rolled its change back.
func (c *Controller) ResolveDrop(ctx context.Context, target domain.Location) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status.State != StateDragging {
		return OutcomeNoop, ErrNotDragging
	}

	deviceID, source := c.status.DeviceID, c.status.Source
	c.status = Status{State: StateDropped, DeviceID: deviceID, Source: source, Target: target, Feedback: FeedbackNone}

	log := c.log.With(
		slog.String("device_id", deviceID),
		slog.String("source", source.String()),
		slog.String("target", target.String()),
	)

	occupant, taken := c.store.Occupant(target)

	switch {
	case target.IsPool() && !source.IsPool():
		if err := c.store.UnplaceDevice(ctx, deviceID); err != nil {
			return OutcomeRejected, fmt.Errorf("failed to unplace device: %w", err)
		}
		log.DebugContext(ctx, "device dropped into pool")
		return OutcomeUnplaced, nil

	case !target.IsPool() && !taken:
		if err := c.store.PlaceDevice(ctx, deviceID, target.ShelfID, target.SlotIndex); err != nil {
			return OutcomeRejected, fmt.Errorf("failed to place device: %w", err)
		}
		log.DebugContext(ctx, "device dropped into slot")
		return OutcomePlaced, nil

	case !target.IsPool() && occupant != deviceID:
		log.DebugContext(ctx, "drop onto occupied slot rejected", slog.String("occupant", occupant))
		return OutcomeRejected, nil

	default:
		return OutcomeNoop, nil
	}
}

// CancelDrag discards the gesture without touching the store.
func (c *Controller) CancelDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status.State != StateDragging {
		return
	}

	c.status = Status{
		State:    StateCancelled,
		DeviceID: c.status.DeviceID,
		Source:   c.status.Source,
		Target:   c.status.Source,
		Feedback: FeedbackNone,
	}
}
