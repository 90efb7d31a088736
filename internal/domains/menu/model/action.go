package model

import (
	"fmt"
)

// Action is what a menu digit resolves to. Parsing happens once, when the
// option row is read; handlers switch on the concrete type instead of
// re-interpreting strings.
type Action interface {
	isAction()
}

// VoicemailAction sends the caller into a voicemail box.
type VoicemailAction struct {
	BoxNumber string
}

// FunctionAction hands the caller to a named application flow.
type FunctionAction struct {
	Name string
}

// TransferAction bridges the caller to an outside number.
type TransferAction struct {
	Number string
}

// SubmenuAction descends into another menu.
type SubmenuAction struct {
	Menu string
}

// HangupAction ends the call.
type HangupAction struct{}

func (VoicemailAction) isAction() {}
func (FunctionAction) isAction()  {}
func (TransferAction) isAction()  {}
func (SubmenuAction) isAction()   {}
func (HangupAction) isAction()    {}

// ParseAction turns an option row's type and value into its Action variant.
func ParseAction(actionType, actionValue string) (Action, error) {
	switch actionType {
	case ActionTypeVoicemail:
		if actionValue == "" {
			return nil, fmt.Errorf("voicemail action requires a box number")
		}

		return VoicemailAction{BoxNumber: actionValue}, nil
	case ActionTypeFunction:
		if actionValue == "" {
			return nil, fmt.Errorf("function action requires a function name")
		}

		return FunctionAction{Name: actionValue}, nil
	case ActionTypeTransfer:
		if actionValue == "" {
			return nil, fmt.Errorf("transfer action requires a number")
		}

		return TransferAction{Number: actionValue}, nil
	case ActionTypeSubmenu:
		if actionValue == "" {
			return nil, fmt.Errorf("submenu action requires a menu name")
		}

		return SubmenuAction{Menu: actionValue}, nil
	case ActionTypeHangup:
		return HangupAction{}, nil
	default:
		return nil, fmt.Errorf("unknown menu action type %q", actionType)
	}
}
