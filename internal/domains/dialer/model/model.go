package model

import (
	"database/sql"

	"hostline/shared/model"
)

const (
	TableName  = "call_queue"
	EntityName = "call_queue"

	FieldID          = "id"
	FieldWeekID      = "week_id"
	FieldApartmentID = "apartment_id"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldCallSID     = "call_sid"
)

const (
	StatusPending    = "pending"
	StatusCalling    = "calling"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusNoAnswer   = "no_answer"
)

// CallQueueEntry is one planned outbound call in a dialing run. Rows are
// ephemeral: built when a run starts, cleared when the run completes or is
// stopped. Lower priority values dial first.
type CallQueueEntry struct {
	ID          string         `db:"id"`
	WeekID      string         `db:"week_id"`
	ApartmentID string         `db:"apartment_id"`
	HostName    string         `db:"host_name"`
	PhoneNumber string         `db:"phone_number"`
	Priority    int            `db:"priority"`
	Status      string         `db:"status"`
	CallSID     sql.NullString `db:"call_sid"`
	model.Metadata
}

// InFlight reports whether the entry occupies the single dialing slot.
func (e *CallQueueEntry) InFlight() bool {
	return e.Status == StatusCalling || e.Status == StatusInProgress
}

// Terminal reports whether the entry has reached a final status.
func (e *CallQueueEntry) Terminal() bool {
	return e.Status == StatusCompleted || e.Status == StatusFailed || e.Status == StatusNoAnswer
}
