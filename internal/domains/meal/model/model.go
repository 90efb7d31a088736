package model

import (
	"database/sql"

	"hostline/shared/model"
)

const (
	HostTableName  = "meal_hosts"
	HostEntityName = "meal_host"

	FieldID          = "id"
	FieldPhoneNumber = "phone_number"
	FieldPersonName  = "person_name"
)

const (
	AvailabilityTableName  = "meal_availability"
	AvailabilityEntityName = "meal_availability"

	FieldWeekID = "week_id"
	FieldHostID = "host_id"
)

const (
	StatusConfirmed   = "confirmed"
	StatusUnavailable = "unavailable"
)

// MealHost is a household that takes Shabbat meal guests. Kept separate from
// apartments: plenty of meal hosts have no beds to offer and vice versa.
type MealHost struct {
	ID          string `db:"id"`
	PhoneNumber string `db:"phone_number"`
	PersonName  string `db:"person_name"`
	Notes       string `db:"notes"`
	model.Metadata
}

// MealAvailability is one host's meal answer for a week, split into day and
// night guest counts. Changed answers void the old row and insert a new one,
// same as bed confirmations.
type MealAvailability struct {
	ID          string       `db:"id"`
	WeekID      string       `db:"week_id"`
	HostID      string       `db:"host_id"`
	DayGuests   int          `db:"day_guests"`
	NightGuests int          `db:"night_guests"`
	Status      string       `db:"status"`
	Voided      bool         `db:"voided"`
	VoidedAt    sql.NullTime `db:"voided_at"`
	model.Metadata
}
