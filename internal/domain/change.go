package domain

type ChangeTable string

const (
	ChangeTableDevices ChangeTable = "devices"
	ChangeTableShelves ChangeTable = "shelves"
)

type ChangeOp string

const (
	ChangeOpInsert ChangeOp = "INSERT"
	ChangeOpUpdate ChangeOp = "UPDATE"
	ChangeOpDelete ChangeOp = "DELETE"
)

// Change is a best-effort notification that a record was written by some session.
// It carries no record body; consumers refetch the whole record by id.
type Change struct {
	Table ChangeTable `json:"table"`
	Op    ChangeOp    `json:"op"`
	ID    string      `json:"id"`
}
