package dto

import (
	"hostline/internal/domains/availability/model"
	"hostline/shared/constant"
	"hostline/shared/timezone"
)

// RecordResponseRequest carries one weekly yes answer. ApartmentID may be
// empty for callers who answered without a registered apartment; the phone
// number is always kept so the call log stays complete.
type RecordResponseRequest struct {
	WeekID       string `json:"week_id" validate:"required"`
	ApartmentID  string `json:"apartment_id"`
	PhoneNumber  string `json:"phone_number" validate:"required,phone"`
	Beds         int    `json:"beds" validate:"required,min=1,max=20"`
	ConfirmedVia string `json:"confirmed_via" validate:"required,oneof=incoming_call outbound_call admin"`
	CallSID      string `json:"call_sid"`
}

type DeclineRequest struct {
	WeekID      string `json:"week_id" validate:"required"`
	ApartmentID string `json:"apartment_id"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	CallSID     string `json:"call_sid"`
}

type ConfirmationResponse struct {
	ID            string `json:"id"`
	WeekID        string `json:"week_id"`
	ApartmentID   string `json:"apartment_id,omitempty"`
	PhoneNumber   string `json:"phone_number"`
	BedsConfirmed int    `json:"beds_confirmed"`
	ConfirmedVia  string `json:"confirmed_via"`
	ConfirmedAt   string `json:"confirmed_at"`
}

func (r *ConfirmationResponse) FromModel(confirmation model.BedConfirmation) {
	r.ID = confirmation.ID
	r.WeekID = confirmation.WeekID
	r.PhoneNumber = confirmation.PhoneNumber
	r.BedsConfirmed = confirmation.BedsConfirmed
	r.ConfirmedVia = confirmation.ConfirmedVia
	r.ConfirmedAt = timezone.Format(confirmation.CreatedAt, constant.DateFormat)

	if confirmation.ApartmentID.Valid {
		r.ApartmentID = confirmation.ApartmentID.String
	}
}
