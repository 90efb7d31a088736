package model

import (
	"database/sql"

	"hostline/shared/model"
)

const (
	ConfirmationTableName  = "bed_confirmations"
	ConfirmationEntityName = "bed_confirmation"

	FieldID            = "id"
	FieldWeekID        = "week_id"
	FieldApartmentID   = "apartment_id"
	FieldBedsConfirmed = "beds_confirmed"
	FieldConfirmedVia  = "confirmed_via"
	FieldVoided        = "voided"
	FieldVoidedAt      = "voided_at"
	FieldVoidReason    = "void_reason"
)

const (
	CallLogTableName  = "weekly_availability_calls"
	CallLogEntityName = "availability_call"

	IncomingCallTableName  = "incoming_calls"
	IncomingCallEntityName = "incoming_call"
)

const (
	ResponseYes = "yes"
	ResponseNo  = "no"

	ViaIncomingCall = "incoming_call"
	ViaOutboundCall = "outbound_call"
	ViaAdmin        = "admin"

	VoidReasonReplaced = "replaced"
	VoidReasonDeclined = "declined"
	VoidReasonManual   = "manual"
)

// BedConfirmation is one host's bed pledge for a week. At most one non-voided
// row may exist per (week, apartment); a changed answer voids the old row and
// inserts a new one rather than updating in place, so history is preserved.
type BedConfirmation struct {
	ID            string         `db:"id"`
	WeekID        string         `db:"week_id"`
	ApartmentID   sql.NullString `db:"apartment_id"`
	PhoneNumber   string         `db:"phone_number"`
	BedsConfirmed int            `db:"beds_confirmed"`
	ConfirmedVia  string         `db:"confirmed_via"`
	Voided        bool           `db:"voided"`
	VoidedAt      sql.NullTime   `db:"voided_at"`
	VoidReason    sql.NullString `db:"void_reason"`
	model.Metadata
}

// AvailabilityCall is the raw log of a weekly availability answer, yes or no.
// Unlike confirmations these rows are append-only and never voided.
type AvailabilityCall struct {
	ID           string `db:"id"`
	WeekID       string `db:"week_id"`
	PhoneNumber  string `db:"phone_number"`
	ResponseType string `db:"response_type"`
	BedsOffered  int    `db:"beds_offered"`
	CallSID      string `db:"call_sid"`
	model.Metadata
}

// IncomingCall records every inbound call that reaches the system, matched or
// not, for audit and host-resolution debugging.
type IncomingCall struct {
	ID           string         `db:"id"`
	CallSID      string         `db:"call_sid"`
	CallerNumber string         `db:"caller_number"`
	ApartmentID  sql.NullString `db:"apartment_id"`
	MenuPath     string         `db:"menu_path"`
	model.Metadata
}
