package dto

import (
	"hostline/internal/domains/menu/model"
)

// MenuOptionResponse is one digit mapping as the coordinator UI sees it.
type MenuOptionResponse struct {
	Digit       string `json:"digit"`
	Description string `json:"description"`
	ActionType  string `json:"action_type"`
	ActionValue string `json:"action_value"`
}

func (r *MenuOptionResponse) FromModel(option model.MenuOption) {
	r.Digit = option.Digit
	r.Description = option.Description
	r.ActionType = option.ActionType
	r.ActionValue = option.ActionValue
}
