package model

import (
	"time"

	"hostline/shared/model"
)

const (
	TableName  = "weeks"
	EntityName = "week"

	FieldID        = "id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldIsCurrent = "is_current"
)

const (
	TrackingTableName  = "bed_tracking"
	TrackingEntityName = "bed_tracking"

	FieldWeekID        = "week_id"
	FieldBedsNeeded    = "beds_needed"
	FieldBedsConfirmed = "beds_confirmed"
)

// Week is one hosting week. Weeks run Friday through the following Thursday;
// exactly one week is current at a time.
type Week struct {
	ID        string    `db:"id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	IsCurrent bool      `db:"is_current"`
	model.Metadata
}

// Contains reports whether the given instant falls inside the week. The
// range is half-open: midnight on the starting Friday up to, not including,
// the midnight after the closing Thursday, so a Thursday afternoon still
// belongs to the week.
func (w *Week) Contains(day time.Time) bool {
	return !day.Before(w.StartDate) && day.Before(w.EndDate.AddDate(0, 0, 1))
}

// BedTracking carries the week's bed target and the running confirmed total.
// The confirmed counter is only ever moved by relative adjustments or by an
// explicit reconcile against the confirmation rows.
type BedTracking struct {
	WeekID        string `db:"week_id"`
	BedsNeeded    int    `db:"beds_needed"`
	BedsConfirmed int    `db:"beds_confirmed"`
	model.Metadata
}

// TargetMet reports whether enough beds are confirmed for the week.
func (t *BedTracking) TargetMet() bool {
	return t.BedsNeeded > 0 && t.BedsConfirmed >= t.BedsNeeded
}
