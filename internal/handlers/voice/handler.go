package voice

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go/twiml"

	"hostline/infras/otel"
	audioService "hostline/internal/domains/audio/service"
	availabilityService "hostline/internal/domains/availability/service"
	hostService "hostline/internal/domains/host/service"
	menuModel "hostline/internal/domains/menu/model"
	menuService "hostline/internal/domains/menu/service"
	"hostline/shared/constant"
	"hostline/shared/ivr"
	"hostline/transport/http/response"
)

const (
	StepMenuSelect = "menu_select"
)

type Handler struct {
	hosts        hostService.Host
	availability availabilityService.Availability
	menus        menuService.Menu
	audio        audioService.Audio
	otel         otel.Otel
}

func New(
	hosts hostService.Host,
	availability availabilityService.Availability,
	menus menuService.Menu,
	audio audioService.Audio,
	otl otel.Otel,
) Handler {
	return Handler{
		hosts:        hosts,
		availability: availability,
		menus:        menus,
		audio:        audio,
		otel:         otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/incoming", handler.Incoming)
	router.Post("/menu", handler.Menu)
}

// Incoming answers every inbound call: log it, greet the caller, and offer
// the main menu.
func (handler *Handler) Incoming(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".voice.Incoming")
	defer scope.End()

	from := request.PostFormValue(constant.FormFieldFrom)
	callSID := request.PostFormValue(constant.FormFieldCallSID)

	apartmentID := ""
	if apartment, err := handler.hosts.FindByPhone(ctx, from); err == nil {
		apartmentID = apartment.ID
	}

	// Logging must not block the call.
	if err := handler.availability.LogIncomingCall(ctx, callSID, from, apartmentID, menuModel.MainMenuName); err != nil {
		log.Warn().Err(err).Msg("failed to log incoming call")
	}

	greeting := handler.audio.ResolvePrompt(ctx, "main_greeting",
		"Welcome to the hospitality network.")
	menuPrompt := handler.audio.ResolvePrompt(ctx, "main_menu",
		"To answer this week's hosting call, press 1. To register as a new host, press 2. "+
			"For meal hosting, press 3. To leave a message for the coordinator, press 4.")

	verbs := append(greeting.Verbs(), menuPrompt.Verbs()...)
	gather := ivr.GatherDigits(menuActionURL(menuModel.MainMenuName), 1, verbs...)

	goodbye := handler.audio.ResolvePrompt(ctx, "no_input_goodbye", "We didn't receive a response. Goodbye.")
	doc := append([]twiml.Element{gather}, goodbye.Verbs()...)
	handler.render(writer, append(doc, ivr.Hangup())...)
}

// Menu resolves a gathered digit against the named menu and acts on the
// configured option. Submenus nest by re-entering this handler with the
// submenu's name.
func (handler *Handler) Menu(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".voice.Menu")
	defer scope.End()

	menuName := request.URL.Query().Get(constant.RequestParamMenu)
	if menuName == "" {
		menuName = menuModel.MainMenuName
	}

	digits := request.PostFormValue(constant.FormFieldDigits)

	action, err := handler.menus.Resolve(ctx, menuName, digits)
	if errors.Is(err, menuService.ErrNoOption) {
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_selection", "Sorry, that is not a valid choice.")
		gather := ivr.GatherDigits(menuActionURL(menuName), 1, prompt.Verbs()...)
		handler.render(writer, gather)

		return
	}

	if err != nil {
		handler.apologize(ctx, writer)

		return
	}

	handler.act(ctx, writer, action)
}

func (handler *Handler) act(ctx context.Context, writer http.ResponseWriter, action menuModel.Action) {
	switch a := action.(type) {
	case menuModel.VoicemailAction:
		handler.render(writer, ivr.Redirect("/voice/voicemail?step=record&box="+url.QueryEscape(a.BoxNumber)))
	case menuModel.FunctionAction:
		handler.function(ctx, writer, a.Name)
	case menuModel.TransferAction:
		prompt := handler.audio.ResolvePrompt(ctx, "transfer", "Please hold while we connect you.")
		handler.render(writer, append(prompt.Verbs(), ivr.DialNumber(a.Number))...)
	case menuModel.SubmenuAction:
		prompt := handler.audio.ResolvePrompt(ctx, "menu_"+a.Menu, "Please make a selection.")
		gather := ivr.GatherDigits(menuActionURL(a.Menu), 1, prompt.Verbs()...)
		handler.render(writer, gather)
	case menuModel.HangupAction:
		prompt := handler.audio.ResolvePrompt(ctx, "goodbye", "Goodbye.")
		handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
	default:
		handler.apologize(ctx, writer)
	}
}

func (handler *Handler) function(ctx context.Context, writer http.ResponseWriter, name string) {
	switch name {
	case menuModel.FunctionAvailability:
		handler.render(writer, ivr.Redirect("/voice/availability?step=initial"))
	case menuModel.FunctionRegistration:
		handler.render(writer, ivr.Redirect("/voice/registration?step=initial"))
	case menuModel.FunctionMeal:
		handler.render(writer, ivr.Redirect("/voice/meal?step=initial"))
	default:
		log.Error().Str("function", name).Msg("menu option points at unknown function")
		handler.apologize(ctx, writer)
	}
}

func menuActionURL(menuName string) string {
	q := url.Values{}
	q.Set(constant.RequestParamMenu, menuName)

	return "/voice/menu?" + q.Encode()
}

func (handler *Handler) render(writer http.ResponseWriter, verbs ...twiml.Element) {
	doc, err := ivr.Document(verbs...)
	if err != nil {
		log.Error().Err(err).Msg("failed to render call document")
		response.WithTwiML(writer, `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`)

		return
	}

	response.WithTwiML(writer, doc)
}

func (handler *Handler) apologize(ctx context.Context, writer http.ResponseWriter) {
	prompt := handler.audio.ResolvePrompt(ctx, "system_error",
		"We're sorry, a system error occurred. Please try again later. Goodbye.")
	handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
}
