package dto

type WeeklyReportRequest struct {
	WeekID         string   `json:"week_id" validate:"required"`
	EmailAddresses []string `json:"email_addresses" validate:"omitempty,dive,email"`
}

type VoicemailReportRequest struct {
	VoicemailID string `json:"voicemail_id" validate:"required"`
}

type ReportResponse struct {
	MessageID  string   `json:"message_id"`
	Recipients []string `json:"recipients"`
}
