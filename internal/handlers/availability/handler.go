package availability

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go/twiml"

	"hostline/infras/otel"
	availabilityModel "hostline/internal/domains/availability/model"
	availabilityDto "hostline/internal/domains/availability/model/dto"
	availabilityService "hostline/internal/domains/availability/service"
	audioService "hostline/internal/domains/audio/service"
	dialerService "hostline/internal/domains/dialer/service"
	hostService "hostline/internal/domains/host/service"
	weekService "hostline/internal/domains/week/service"
	"hostline/shared/constant"
	"hostline/shared/ivr"
	"hostline/transport/http/response"
)

const (
	StepInitial         = "initial"
	StepProcessResponse = "process_response"
	StepSaveBeds        = "save_beds"

	maxBeds = 20
)

type Handler struct {
	weeks        weekService.Week
	hosts        hostService.Host
	availability availabilityService.Availability
	dialer       dialerService.Dialer
	audio        audioService.Audio
	otel         otel.Otel
}

func New(
	weeks weekService.Week,
	hosts hostService.Host,
	availability availabilityService.Availability,
	dialer dialerService.Dialer,
	audio audioService.Audio,
	otl otel.Otel,
) Handler {
	return Handler{
		weeks:        weeks,
		hosts:        hosts,
		availability: availability,
		dialer:       dialer,
		audio:        audio,
		otel:         otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/availability", handler.Step)
}

// Step walks a caller through the weekly availability flow. Every branch
// renders a valid document; a broken store means the caller hears an apology,
// never silence or an HTTP error.
func (handler *Handler) Step(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".availability.Step")
	defer scope.End()

	step := request.URL.Query().Get(constant.RequestParamStep)
	if step == "" {
		step = StepInitial
	}

	switch step {
	case StepInitial:
		handler.initial(ctx, writer, request)
	case StepProcessResponse:
		handler.processResponse(ctx, writer, request)
	case StepSaveBeds:
		handler.saveBeds(ctx, writer, request)
	default:
		log.Warn().Str("step", step).Msg("unknown availability step")
		handler.apologize(ctx, writer)
	}
}

func (handler *Handler) initial(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	queueID := request.URL.Query().Get(constant.RequestParamQueueID)
	if queueID != "" {
		if err := handler.dialer.OnCallAnswered(ctx, queueID); err != nil {
			log.Warn().Err(err).Str("queue_id", queueID).Msg("failed to mark call answered")
		}
	}

	// Inbound callers are resolved by number; unknown ones are offered
	// registration instead of the availability questions.
	if request.URL.Query().Get(constant.RequestParamApartmentID) == "" {
		apartment, err := handler.hosts.FindByPhone(ctx, request.PostFormValue(constant.FormFieldFrom))
		if err != nil {
			handler.apologize(ctx, writer)

			return
		}

		if apartment.ID == "" {
			prompt := handler.audio.ResolvePrompt(ctx, "unknown_caller",
				"We don't recognize your phone number. Let's get you registered as a host.")
			verbs := append(prompt.Verbs(), ivr.Redirect("/voice/registration?step=initial"))
			handler.render(writer, verbs...)

			return
		}
	}

	greetingKey := "availability_greeting"
	greetingText := "Hello! This is the hospitality committee calling about hosting guests this Shabbat. " +
		"If you can host, press 1. If you cannot host this week, press 2."

	// An earlier answer is no bar to answering again; the caller is told the
	// new answer replaces it.
	if weekID := handler.weekID(ctx, request); weekID != "" {
		responded, err := handler.availability.HasResponded(ctx, weekID, callerNumber(request))
		if err != nil {
			log.Warn().Err(err).Msg("failed to check for an earlier answer")
		}

		if responded {
			greetingKey = "availability_answered"
			greetingText = "Hello again! We already have your answer for this week, and a new answer will replace it. " +
				"If you can host, press 1. If you cannot host this week, press 2."
		}
	}

	prompt := handler.audio.ResolvePrompt(ctx, greetingKey, greetingText)
	gather := ivr.GatherDigits(handler.actionURL(request, StepProcessResponse), 1, prompt.Verbs()...)

	goodbye := handler.audio.ResolvePrompt(ctx, "no_input_goodbye", "We didn't receive a response. Goodbye.")
	verbs := append([]twiml.Element{gather}, goodbye.Verbs()...)
	handler.render(writer, append(verbs, ivr.Hangup())...)
}

func (handler *Handler) processResponse(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	digits := request.PostFormValue(constant.FormFieldDigits)

	switch digits {
	case "1":
		prompt := handler.audio.ResolvePrompt(ctx, "availability_beds",
			"Great! How many beds can you offer this week? Enter the number followed by the pound key.")
		gather := ivr.GatherUntilPound(handler.actionURL(request, StepSaveBeds), prompt.Verbs()...)
		handler.render(writer, gather)
	case "2":
		req := availabilityDto.DeclineRequest{
			WeekID:      handler.weekID(ctx, request),
			ApartmentID: handler.apartmentID(ctx, request),
			PhoneNumber: callerNumber(request),
			CallSID:     request.PostFormValue(constant.FormFieldCallSID),
		}

		if req.WeekID == "" {
			handler.apologize(ctx, writer)

			return
		}

		if err := handler.availability.Decline(ctx, req); err != nil {
			handler.apologize(ctx, writer)

			return
		}

		prompt := handler.audio.ResolvePrompt(ctx, "decline_goodbye",
			"No problem, thank you for letting us know. Have a good week. Goodbye.")
		handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
	default:
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_selection", "Sorry, that is not a valid choice.")
		gather := ivr.GatherDigits(handler.actionURL(request, StepProcessResponse), 1, prompt.Verbs()...)
		handler.render(writer, gather)
	}
}

func (handler *Handler) saveBeds(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	digits := request.PostFormValue(constant.FormFieldDigits)

	beds, err := ivr.ParseCount(digits, maxBeds)
	if err != nil {
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_beds",
			"Sorry, that is not a valid number of beds. Please enter a number between 1 and 20, followed by the pound key.")
		gather := ivr.GatherUntilPound(handler.actionURL(request, StepSaveBeds), prompt.Verbs()...)
		handler.render(writer, gather)

		return
	}

	req := availabilityDto.RecordResponseRequest{
		WeekID:       handler.weekID(ctx, request),
		ApartmentID:  handler.apartmentID(ctx, request),
		PhoneNumber:  callerNumber(request),
		Beds:         beds,
		ConfirmedVia: availabilityModel.ViaIncomingCall,
		CallSID:      request.PostFormValue(constant.FormFieldCallSID),
	}

	if request.URL.Query().Get(constant.RequestParamQueueID) != "" {
		req.ConfirmedVia = availabilityModel.ViaOutboundCall
	}

	if req.WeekID == "" {
		handler.apologize(ctx, writer)

		return
	}

	if err := handler.availability.RecordResponse(ctx, req); err != nil {
		handler.apologize(ctx, writer)

		return
	}

	prompt := handler.audio.ResolvePrompt(ctx, "thank_you",
		"Thank you so much! The coordinator will be in touch with the details. Goodbye.")
	handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
}

// weekID resolves the week for this call: the correlation parameter on
// outbound calls, the current week otherwise. Empty means resolution failed.
func (handler *Handler) weekID(ctx context.Context, request *http.Request) string {
	if id := request.URL.Query().Get(constant.RequestParamWeekID); id != "" {
		return id
	}

	week, err := handler.weeks.GetOrCreateCurrent(ctx)
	if err != nil {
		return ""
	}

	return week.ID
}

func (handler *Handler) apartmentID(ctx context.Context, request *http.Request) string {
	if id := request.URL.Query().Get(constant.RequestParamApartmentID); id != "" {
		return id
	}

	apartment, err := handler.hosts.FindByPhone(ctx, callerNumber(request))
	if err != nil {
		return ""
	}

	return apartment.ID
}

// actionURL builds the next step's action, carrying the outbound correlation
// parameters through the whole flow.
func (handler *Handler) actionURL(request *http.Request, step string) string {
	q := url.Values{}
	q.Set(constant.RequestParamStep, step)

	for _, param := range []string{constant.RequestParamWeekID, constant.RequestParamApartmentID, constant.RequestParamQueueID} {
		if v := request.URL.Query().Get(param); v != "" {
			q.Set(param, v)
		}
	}

	return "/voice/availability?" + q.Encode()
}

func (handler *Handler) render(writer http.ResponseWriter, verbs ...twiml.Element) {
	doc, err := ivr.Document(verbs...)
	if err != nil {
		log.Error().Err(err).Msg("failed to render call document")
		response.WithTwiML(writer, fallbackDocument())

		return
	}

	response.WithTwiML(writer, doc)
}

func (handler *Handler) apologize(ctx context.Context, writer http.ResponseWriter) {
	prompt := handler.audio.ResolvePrompt(ctx, "system_error",
		"We're sorry, a system error occurred. Please try again later. Goodbye.")
	handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
}

// callerNumber prefers From; on outbound legs the host is the called party.
func callerNumber(request *http.Request) string {
	if request.URL.Query().Get(constant.RequestParamQueueID) != "" {
		if to := request.PostFormValue(constant.FormFieldTo); to != "" {
			return to
		}
	}

	return request.PostFormValue(constant.FormFieldFrom)
}

func fallbackDocument() string {
	doc, err := ivr.Document(ivr.Say("Goodbye."), ivr.Hangup())
	if err != nil {
		return `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`
	}

	return doc
}
