package dto

import (
	"hostline/internal/domains/host/model"
	"hostline/shared/constant"
	"hostline/shared/timezone"
)

type RegisterRequest struct {
	PhoneNumber      string `json:"phone_number" validate:"required,phone"`
	PersonName       string `json:"person_name"`
	NumberOfBeds     int    `json:"number_of_beds" validate:"required,min=1,max=9"`
	Preferences      string `json:"preferences"`
	WantsWeeklyCalls bool   `json:"wants_weekly_calls"`
}

type ApartmentResponse struct {
	ID               string `json:"id"`
	PhoneNumber      string `json:"phone_number"`
	PersonName       string `json:"person_name"`
	NumberOfBeds     int    `json:"number_of_beds"`
	Preferences      string `json:"preferences"`
	WantsWeeklyCalls bool   `json:"wants_weekly_calls"`
	LastHelpedDate   string `json:"last_helped_date,omitempty"`
	TimesHelped      int    `json:"times_helped"`
}

func (r *ApartmentResponse) FromModel(apartment model.Apartment) {
	r.ID = apartment.ID
	r.PhoneNumber = apartment.PhoneNumber
	r.PersonName = apartment.PersonName
	r.NumberOfBeds = apartment.NumberOfBeds
	r.Preferences = apartment.Preferences
	r.WantsWeeklyCalls = apartment.WantsWeeklyCalls
	r.TimesHelped = apartment.TimesHelped

	if apartment.LastHelpedDate.Valid {
		r.LastHelpedDate = timezone.Format(apartment.LastHelpedDate.Time, constant.DateOnly)
	}
}
