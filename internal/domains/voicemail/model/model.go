package model

import (
	"database/sql"

	"github.com/lib/pq"

	"hostline/shared/model"
)

const (
	BoxTableName  = "voicemail_boxes"
	BoxEntityName = "voicemail_box"

	FieldID        = "id"
	FieldBoxNumber = "box_number"
)

const (
	TableName  = "voicemails"
	EntityName = "voicemail"

	FieldBoxID    = "box_id"
	FieldListened = "listened"
	FieldStatus   = "status"
)

const (
	StatusNew      = "new"
	StatusEmailed  = "emailed"
	StatusArchived = "archived"

	// RegistrationBoxNumber receives name recordings from the host
	// registration flow.
	RegistrationBoxNumber = "99"
)

// VoicemailBox is a numbered destination for recordings. Email addresses
// listed on the box get a notification per message.
type VoicemailBox struct {
	ID             string         `db:"id"`
	BoxNumber      string         `db:"box_number"`
	Name           string         `db:"name"`
	GreetingURL    string         `db:"greeting_url"`
	EmailAddresses pq.StringArray `db:"email_addresses"`
	model.Metadata
}

// Voicemail is one recorded message filed into a box.
type Voicemail struct {
	ID            string         `db:"id"`
	BoxID         string         `db:"box_id"`
	CallerNumber  string         `db:"caller_number"`
	CallerName    string         `db:"caller_name"`
	RecordingURL  string         `db:"recording_url"`
	Duration      int            `db:"duration"`
	Transcription sql.NullString `db:"transcription"`
	Listened      bool           `db:"listened"`
	Status        string         `db:"status"`
	EmailedAt     sql.NullTime   `db:"emailed_at"`
	model.Metadata
}
