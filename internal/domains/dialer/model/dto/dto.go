package dto

import (
	"hostline/internal/domains/dialer/model"
)

const (
	ActionStart  = "start"
	ActionStop   = "stop"
	ActionStatus = "status"
	ActionNext   = "next"
)

type DialerRequest struct {
	WeekID string `json:"week_id" validate:"required"`
	Action string `json:"action" validate:"required,oneof=start stop status next"`
}

type QueueEntryResponse struct {
	ID          string `json:"id"`
	ApartmentID string `json:"apartment_id"`
	HostName    string `json:"host_name"`
	PhoneNumber string `json:"phone_number"`
	Priority    int    `json:"priority"`
	Status      string `json:"status"`
	CallSID     string `json:"call_sid,omitempty"`
}

func (r *QueueEntryResponse) FromModel(entry model.CallQueueEntry) {
	r.ID = entry.ID
	r.ApartmentID = entry.ApartmentID
	r.HostName = entry.HostName
	r.PhoneNumber = entry.PhoneNumber
	r.Priority = entry.Priority
	r.Status = entry.Status

	if entry.CallSID.Valid {
		r.CallSID = entry.CallSID.String
	}
}

type StatusResponse struct {
	WeekID        string               `json:"week_id"`
	Running       bool                 `json:"running"`
	TargetMet     bool                 `json:"target_met"`
	BedsNeeded    int                  `json:"beds_needed"`
	BedsConfirmed int                  `json:"beds_confirmed"`
	Pending       int                  `json:"pending"`
	InFlight      int                  `json:"in_flight"`
	Done          int                  `json:"done"`
	Queue         []QueueEntryResponse `json:"queue"`
}
