package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSlotOccupied      = errors.New("slot is occupied")
	ErrSlotOutOfRange    = errors.New("slot index is out of range")
	ErrNotBothPlaced     = errors.New("both devices must be placed")
	ErrInvalidDimensions = errors.New("rows and columns must be positive")
	ErrShelfNotFound     = errors.New("shelf not found")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrPersistence       = errors.New("persistence failure")
)

// PersistenceError reports a backend rejection of a mutation that passed the local checks.
// The optimistic change has already been rolled back when it is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrPersistence, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
