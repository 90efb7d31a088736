package model

import (
	"database/sql"

	"hostline/shared/model"
)

const (
	TableName  = "apartments"
	EntityName = "apartment"

	FieldID               = "id"
	FieldPhoneNumber      = "phone_number"
	FieldPersonName       = "person_name"
	FieldNumberOfBeds     = "number_of_beds"
	FieldPreferences      = "preferences"
	FieldWantsWeeklyCalls = "wants_weekly_calls"
	FieldLastHelpedDate   = "last_helped_date"
	FieldTimesHelped      = "times_helped"
)

// Apartment is a registered host household. The phone number is the
// deduplication key; a caller registering twice updates the existing row.
type Apartment struct {
	ID               string       `db:"id"`
	PhoneNumber      string       `db:"phone_number"`
	PersonName       string       `db:"person_name"`
	NumberOfBeds     int          `db:"number_of_beds"`
	Preferences      string       `db:"preferences"`
	WantsWeeklyCalls bool         `db:"wants_weekly_calls"`
	LastHelpedDate   sql.NullTime `db:"last_helped_date"`
	TimesHelped      int          `db:"times_helped"`
	model.Metadata
}
