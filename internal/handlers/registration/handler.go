package registration

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go/twiml"

	"hostline/infras/otel"
	audioService "hostline/internal/domains/audio/service"
	hostDto "hostline/internal/domains/host/model/dto"
	hostService "hostline/internal/domains/host/service"
	voicemailModel "hostline/internal/domains/voicemail/model"
	voicemailDto "hostline/internal/domains/voicemail/model/dto"
	voicemailService "hostline/internal/domains/voicemail/service"
	"hostline/shared/constant"
	"hostline/shared/ivr"
	"hostline/transport/http/response"
)

const (
	StepInitial      = "initial"
	StepBeds         = "beds"
	StepNameRecorded = "name_recorded"
	StepConfirm      = "confirm"

	paramBeds = "beds"

	maxBeds          = 9
	nameRecordMaxSec = 10
)

type Handler struct {
	hosts      hostService.Host
	voicemails voicemailService.Voicemail
	audio      audioService.Audio
	otel       otel.Otel
}

func New(hosts hostService.Host, voicemails voicemailService.Voicemail, audio audioService.Audio, otl otel.Otel) Handler {
	return Handler{
		hosts:      hosts,
		voicemails: voicemails,
		audio:      audio,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/registration", handler.Step)
}

// Step walks a new caller through host registration: bed count, a spoken
// name recording, and a final confirmation.
func (handler *Handler) Step(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".registration.Step")
	defer scope.End()

	step := request.URL.Query().Get(constant.RequestParamStep)
	if step == "" {
		step = StepInitial
	}

	switch step {
	case StepInitial:
		handler.initial(ctx, writer, request)
	case StepBeds:
		handler.beds(ctx, writer, request)
	case StepNameRecorded:
		handler.nameRecorded(ctx, writer, request)
	case StepConfirm:
		handler.confirm(ctx, writer, request)
	default:
		log.Warn().Str("step", step).Msg("unknown registration step")
		handler.apologize(ctx, writer)
	}
}

func (handler *Handler) initial(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	prompt := handler.audio.ResolvePrompt(ctx, "registration_greeting",
		"Welcome! We're happy to add you as a host. How many beds can you usually offer? Press a number from 1 to 9.")
	gather := ivr.GatherDigits(handler.actionURL(StepBeds, 0), 1, prompt.Verbs()...)

	goodbye := handler.audio.ResolvePrompt(ctx, "no_input_goodbye", "We didn't receive a response. Goodbye.")
	verbs := append([]twiml.Element{gather}, goodbye.Verbs()...)
	handler.render(writer, append(verbs, ivr.Hangup())...)
}

func (handler *Handler) beds(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	digits := request.PostFormValue(constant.FormFieldDigits)

	beds, err := ivr.ParseCount(digits, maxBeds)
	if err != nil {
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_selection", "Sorry, that is not a valid choice. Please press a number from 1 to 9.")
		gather := ivr.GatherDigits(handler.actionURL(StepBeds, 0), 1, prompt.Verbs()...)
		handler.render(writer, gather)

		return
	}

	prompt := handler.audio.ResolvePrompt(ctx, "registration_record_name",
		"Thank you. After the beep, please say your name. Press the pound key when you are done.")
	verbs := append(prompt.Verbs(), ivr.Record(handler.actionURL(StepNameRecorded, beds), nameRecordMaxSec))
	handler.render(writer, verbs...)
}

func (handler *Handler) nameRecorded(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	beds := request.URL.Query().Get(paramBeds)

	recordingURL := request.PostFormValue(constant.FormFieldRecordingURL)
	if recordingURL != "" {
		duration, _ := strconv.Atoi(request.PostFormValue(constant.FormFieldRecordingDuration))

		// The name recording is filed as a voicemail so coordinators can
		// listen and fill in the spelled name later.
		req := voicemailDto.SaveRecordingRequest{
			BoxNumber:    voicemailModel.RegistrationBoxNumber,
			CallerNumber: request.PostFormValue(constant.FormFieldFrom),
			RecordingURL: recordingURL,
			Duration:     duration,
			CallSID:      request.PostFormValue(constant.FormFieldCallSID),
		}

		if _, err := handler.voicemails.SaveRecording(ctx, req); err != nil {
			handler.apologize(ctx, writer)

			return
		}
	}

	prompt := handler.audio.ResolvePrompt(ctx, "registration_confirm",
		"You are offering "+beds+" beds. Press 1 to confirm, or 2 to start over.")
	gather := ivr.GatherDigits(handler.confirmURL(beds), 1, prompt.Verbs()...)
	handler.render(writer, gather)
}

func (handler *Handler) confirm(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	switch request.PostFormValue(constant.FormFieldDigits) {
	case "1":
		beds, err := ivr.ParseCount(request.URL.Query().Get(paramBeds), maxBeds)
		if err != nil {
			handler.apologize(ctx, writer)

			return
		}

		req := hostDto.RegisterRequest{
			PhoneNumber:      request.PostFormValue(constant.FormFieldFrom),
			NumberOfBeds:     beds,
			WantsWeeklyCalls: true,
		}

		if _, err := handler.hosts.Register(ctx, req); err != nil {
			handler.apologize(ctx, writer)

			return
		}

		prompt := handler.audio.ResolvePrompt(ctx, "registration_done",
			"Wonderful, you are registered! We will call you each week to check your availability. Goodbye.")
		handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
	case "2":
		handler.render(writer, ivr.Redirect("/voice/registration?step="+StepInitial))
	default:
		beds := request.URL.Query().Get(paramBeds)
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_selection", "Sorry, that is not a valid choice.")
		gather := ivr.GatherDigits(handler.confirmURL(beds), 1, prompt.Verbs()...)
		handler.render(writer, gather)
	}
}

func (handler *Handler) actionURL(step string, beds int) string {
	q := url.Values{}
	q.Set(constant.RequestParamStep, step)

	if beds > 0 {
		q.Set(paramBeds, strconv.Itoa(beds))
	}

	return "/voice/registration?" + q.Encode()
}

func (handler *Handler) confirmURL(beds string) string {
	q := url.Values{}
	q.Set(constant.RequestParamStep, StepConfirm)
	q.Set(paramBeds, beds)

	return "/voice/registration?" + q.Encode()
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
