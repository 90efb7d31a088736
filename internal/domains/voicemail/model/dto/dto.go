package dto

import (
	"hostline/internal/domains/voicemail/model"
	"hostline/shared/constant"
	"hostline/shared/timezone"
)

type SaveRecordingRequest struct {
	BoxNumber    string `json:"box_number" validate:"required"`
	CallerNumber string `json:"caller_number"`
	CallerName   string `json:"caller_name"`
	RecordingURL string `json:"recording_url" validate:"required,url"`
	Duration     int    `json:"duration" validate:"min=0"`
	CallSID      string `json:"call_sid"`
}

type VoicemailResponse struct {
	ID           string `json:"id"`
	BoxID        string `json:"box_id"`
	CallerNumber string `json:"caller_number"`
	CallerName   string `json:"caller_name,omitempty"`
	RecordingURL string `json:"recording_url"`
	Duration     int    `json:"duration"`
	Listened     bool   `json:"listened"`
	Status       string `json:"status"`
	ReceivedAt   string `json:"received_at"`
}

func (r *VoicemailResponse) FromModel(voicemail model.Voicemail) {
	r.ID = voicemail.ID
	r.BoxID = voicemail.BoxID
	r.CallerNumber = voicemail.CallerNumber
	r.CallerName = voicemail.CallerName
	r.RecordingURL = voicemail.RecordingURL
	r.Duration = voicemail.Duration
	r.Listened = voicemail.Listened
	r.Status = voicemail.Status
	r.ReceivedAt = timezone.Format(voicemail.CreatedAt, constant.DateFormat)
}

type BoxResponse struct {
	ID             string   `json:"id"`
	BoxNumber      string   `json:"box_number"`
	Name           string   `json:"name"`
	GreetingURL    string   `json:"greeting_url,omitempty"`
	EmailAddresses []string `json:"email_addresses"`
}

func (r *BoxResponse) FromModel(box model.VoicemailBox) {
	r.ID = box.ID
	r.BoxNumber = box.BoxNumber
	r.Name = box.Name
	r.GreetingURL = box.GreetingURL
	r.EmailAddresses = box.EmailAddresses
}
