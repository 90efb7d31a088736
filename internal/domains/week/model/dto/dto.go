package dto

import (
	"hostline/internal/domains/week/model"
	"hostline/shared/constant"
	"hostline/shared/timezone"
)

type SetNeededRequest struct {
	BedsNeeded int `json:"beds_needed" validate:"required,min=1,max=500"`
}

type WeekResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsCurrent bool   `json:"is_current"`
}

func (r *WeekResponse) FromModel(week model.Week) {
	r.ID = week.ID
	r.StartDate = timezone.Format(week.StartDate, constant.DateOnly)
	r.EndDate = timezone.Format(week.EndDate, constant.DateOnly)
	r.IsCurrent = week.IsCurrent
}

type WeekStatusResponse struct {
	Week          WeekResponse `json:"week"`
	BedsNeeded    int          `json:"beds_needed"`
	BedsConfirmed int          `json:"beds_confirmed"`
	TargetMet     bool         `json:"target_met"`
}

type ReconcileResponse struct {
	WeekID        string `json:"week_id"`
	BedsConfirmed int    `json:"beds_confirmed"`
	Drift         int    `json:"drift"`
}
