package domain

import "time"

// Status is the processing state of an intake file.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// ImportFile tracks an intake file found in the watch directory.
type ImportFile struct {
	Name         string     `db:"name"`
	Status       Status     `db:"status"`
	DeviceCount  int        `db:"device_count"`
	ErrorMessage string     `db:"error_message"`
	ProcessedAt  *time.Time `db:"processed_at"`
}

// Claimable reports whether the scanner may pick the file up. Files seen for
// the first time have no record yet and are always claimable.
func (f *ImportFile) Claimable() bool {
	return f.Status == StatusPending
}

type ImportResult struct {
	Filename string
	Devices  []*Device // filled in case of a success
	Error    error     // filled in case of an error
}
