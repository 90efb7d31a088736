package model

import (
	"hostline/shared/model"
)

const (
	TableName  = "menu_options"
	EntityName = "menu_option"

	FieldID       = "id"
	FieldMenuName = "menu_name"
	FieldDigit    = "digit"
)

const (
	ActionTypeVoicemail = "voicemail"
	ActionTypeFunction  = "function"
	ActionTypeTransfer  = "transfer"
	ActionTypeSubmenu   = "submenu"
	ActionTypeHangup    = "hangup"
)

const (
	MainMenuName = "main"

	FunctionAvailability = "availability"
	FunctionRegistration = "registration"
	FunctionMeal         = "meal"
)

// MenuOption maps one digit within a named menu to an action. The action
// value is interpreted per type: a box number, a function name, a transfer
// number, or a submenu name.
type MenuOption struct {
	ID          string `db:"id"`
	MenuName    string `db:"menu_name"`
	Digit       string `db:"digit"`
	Description string `db:"description"`
	ActionType  string `db:"action_type"`
	ActionValue string `db:"action_value"`
	model.Metadata
}
