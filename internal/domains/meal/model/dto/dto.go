package dto

import (
	"hostline/internal/domains/meal/model"
)

type RecordMealRequest struct {
	WeekID      string `json:"week_id" validate:"required"`
	HostID      string `json:"host_id" validate:"required"`
	DayGuests   int    `json:"day_guests" validate:"min=0,max=20"`
	NightGuests int    `json:"night_guests" validate:"min=0,max=20"`
}

type MealAvailabilityResponse struct {
	ID          string `json:"id"`
	WeekID      string `json:"week_id"`
	HostID      string `json:"host_id"`
	HostName    string `json:"host_name,omitempty"`
	DayGuests   int    `json:"day_guests"`
	NightGuests int    `json:"night_guests"`
	Status      string `json:"status"`
}

func (r *MealAvailabilityResponse) FromModel(availability model.MealAvailability) {
	r.ID = availability.ID
	r.WeekID = availability.WeekID
	r.HostID = availability.HostID
	r.DayGuests = availability.DayGuests
	r.NightGuests = availability.NightGuests
	r.Status = availability.Status
}
