package voicemail

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
	voicemailDto "hostline/internal/domains/voicemail/model/dto"
	voicemailService "hostline/internal/domains/voicemail/service"
	"hostline/shared/constant"
	"hostline/shared/ivr"
	"hostline/transport/http/response"
)

const (
	StepRecord   = "record"
	StepRecorded = "recorded"

	messageMaxSec = 120
)

type Handler struct {
	voicemails voicemailService.Voicemail
	audio      audioService.Audio
	otel       otel.Otel
}

func New(voicemails voicemailService.Voicemail, audio audioService.Audio, otl otel.Otel) Handler {
	return Handler{
		voicemails: voicemails,
		audio:      audio,
		otel:       otl,
	}
}

// Router mounts the call-facing recording flow.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/voicemail", handler.Step)
}

// AdminRouter mounts the JSON endpoints the coordinator UI uses to manage
// messages.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/voicemails", func(routerGroup chi.Router) {
		routerGroup.Get("/boxes", handler.ListBoxes)
		routerGroup.Get("/boxes/{box}", handler.ListMessages)
		routerGroup.Patch("/{id}/listened", handler.MarkListened)
		routerGroup.Delete("/{id}", handler.Delete)
	})
}

func (handler *Handler) Step(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".voicemail.Step")
	defer scope.End()

	switch request.URL.Query().Get(constant.RequestParamStep) {
	case StepRecord, "":
		handler.record(ctx, writer, request)
	case StepRecorded:
		handler.recorded(ctx, writer, request)
	default:
		handler.apologize(ctx, writer)
	}
}

// record plays the box greeting and opens the recorder.
func (handler *Handler) record(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	boxNumber := request.URL.Query().Get(constant.RequestParamBox)
	if boxNumber == "" {
		handler.apologize(ctx, writer)

		return
	}

	var verbs []twiml.Element

	box, err := handler.voicemails.GetBoxByNumber(ctx, boxNumber)
	if err == nil && box.GreetingURL != "" {
		verbs = append(verbs, ivr.Play(box.GreetingURL))
	} else {
		prompt := handler.audio.ResolvePrompt(ctx, "voicemail_greeting",
			"Please leave your message after the beep. Press the pound key when you are done.")
		verbs = append(verbs, prompt.Verbs()...)
	}

	q := url.Values{}
	q.Set(constant.RequestParamStep, StepRecorded)
	q.Set(constant.RequestParamBox, boxNumber)

	verbs = append(verbs, ivr.Record("/voice/voicemail?"+q.Encode(), messageMaxSec))
	handler.render(writer, verbs...)
}

// recorded files the finished recording and says goodbye.
func (handler *Handler) recorded(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	recordingURL := request.PostFormValue(constant.FormFieldRecordingURL)
	if recordingURL == "" {
		handler.apologize(ctx, writer)

		return
	}

	duration, _ := strconv.Atoi(request.PostFormValue(constant.FormFieldRecordingDuration))

	req := voicemailDto.SaveRecordingRequest{
		BoxNumber:    request.URL.Query().Get(constant.RequestParamBox),
		CallerNumber: request.PostFormValue(constant.FormFieldFrom),
		RecordingURL: recordingURL,
		Duration:     duration,
		CallSID:      request.PostFormValue(constant.FormFieldCallSID),
	}

	if _, err := handler.voicemails.SaveRecording(ctx, req); err != nil {
		handler.apologize(ctx, writer)

		return
	}

	prompt := handler.audio.ResolvePrompt(ctx, "voicemail_saved", "Your message has been saved. Goodbye.")
	handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
}

func (handler *Handler) ListBoxes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".voicemail.ListBoxes")
	defer scope.End()

	boxes, err := handler.voicemails.ListBoxes(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, boxes)
}

func (handler *Handler) ListMessages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".voicemail.ListMessages")
	defer scope.End()

	boxNumber := chi.URLParam(request, constant.RequestParamBox)

	messages, err := handler.voicemails.ListMessages(ctx, boxNumber)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, messages)
}

func (handler *Handler) MarkListened(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".voicemail.MarkListened")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.voicemails.MarkListened(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Voicemail marked as listened")
}

func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".voicemail.Delete")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.voicemails.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Voicemail deleted")
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
