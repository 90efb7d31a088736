package meal

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
	mealModel "hostline/internal/domains/meal/model"
	mealDto "hostline/internal/domains/meal/model/dto"
	mealService "hostline/internal/domains/meal/service"
	weekService "hostline/internal/domains/week/service"
	"hostline/shared/constant"
	"hostline/shared/ivr"
	"hostline/transport/http/response"
)

const (
	StepInitial         = "initial"
	StepProcessResponse = "process_response"
	StepDayGuests       = "day_guests"
	StepNightGuests     = "night_guests"

	paramDayGuests = "day_guests"

	maxGuests = 20
)

type Handler struct {
	weeks weekService.Week
	meals mealService.Meal
	audio audioService.Audio
	otel  otel.Otel
}

func New(weeks weekService.Week, meals mealService.Meal, audio audioService.Audio, otl otel.Otel) Handler {
	return Handler{
		weeks: weeks,
		meals: meals,
		audio: audio,
		otel:  otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/meal", handler.Step)
}

// Step walks a caller through the meal hosting flow: whether they can host,
// then day and night guest counts.
func (handler *Handler) Step(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".meal.Step")
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
	case StepDayGuests:
		handler.dayGuests(ctx, writer, request)
	case StepNightGuests:
		handler.nightGuests(ctx, writer, request)
	default:
		log.Warn().Str("step", step).Msg("unknown meal step")
		handler.apologize(ctx, writer)
	}
}

func (handler *Handler) initial(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	prompt := handler.audio.ResolvePrompt(ctx, "meal_greeting",
		"This is about hosting Shabbat meal guests. If you can host guests for a meal this week, press 1. If not this week, press 2.")
	gather := ivr.GatherDigits(actionURL(StepProcessResponse, 0), 1, prompt.Verbs()...)

	goodbye := handler.audio.ResolvePrompt(ctx, "no_input_goodbye", "We didn't receive a response. Goodbye.")
	verbs := append([]twiml.Element{gather}, goodbye.Verbs()...)
	handler.render(writer, append(verbs, ivr.Hangup())...)
}

func (handler *Handler) processResponse(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	switch request.PostFormValue(constant.FormFieldDigits) {
	case "1":
		prompt := handler.audio.ResolvePrompt(ctx, "meal_day_guests",
			"How many guests can you host for the day meal? Enter the number followed by the pound key, or just pound for none.")
		gather := ivr.GatherUntilPound(actionURL(StepDayGuests, 0), prompt.Verbs()...)
		handler.render(writer, gather)
	case "2":
		host, err := handler.resolveHost(ctx, request)
		if err != nil {
			handler.apologize(ctx, writer)

			return
		}

		week, err := handler.weeks.GetOrCreateCurrent(ctx)
		if err != nil {
			handler.apologize(ctx, writer)

			return
		}

		if err := handler.meals.RecordUnavailable(ctx, week.ID, host.ID); err != nil {
			handler.apologize(ctx, writer)

			return
		}

		prompt := handler.audio.ResolvePrompt(ctx, "decline_goodbye",
			"No problem, thank you for letting us know. Have a good week. Goodbye.")
		handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
	default:
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_selection", "Sorry, that is not a valid choice.")
		gather := ivr.GatherDigits(actionURL(StepProcessResponse, 0), 1, prompt.Verbs()...)
		handler.render(writer, gather)
	}
}

func (handler *Handler) dayGuests(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	day, ok := handler.parseGuests(request.PostFormValue(constant.FormFieldDigits))
	if !ok {
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_guests",
			"Sorry, that is not a valid number. Please enter a number up to 20, followed by the pound key.")
		gather := ivr.GatherUntilPound(actionURL(StepDayGuests, 0), prompt.Verbs()...)
		handler.render(writer, gather)

		return
	}

	prompt := handler.audio.ResolvePrompt(ctx, "meal_night_guests",
		"And how many guests for the night meal? Enter the number followed by the pound key, or just pound for none.")
	gather := ivr.GatherUntilPound(actionURL(StepNightGuests, day), prompt.Verbs()...)
	handler.render(writer, gather)
}

func (handler *Handler) nightGuests(ctx context.Context, writer http.ResponseWriter, request *http.Request) {
	night, ok := handler.parseGuests(request.PostFormValue(constant.FormFieldDigits))
	if !ok {
		day, _ := strconv.Atoi(request.URL.Query().Get(paramDayGuests))
		prompt := handler.audio.ResolvePrompt(ctx, "invalid_guests",
			"Sorry, that is not a valid number. Please enter a number up to 20, followed by the pound key.")
		gather := ivr.GatherUntilPound(actionURL(StepNightGuests, day), prompt.Verbs()...)
		handler.render(writer, gather)

		return
	}

	day, _ := strconv.Atoi(request.URL.Query().Get(paramDayGuests))

	host, err := handler.resolveHost(ctx, request)
	if err != nil {
		handler.apologize(ctx, writer)

		return
	}

	week, err := handler.weeks.GetOrCreateCurrent(ctx)
	if err != nil {
		handler.apologize(ctx, writer)

		return
	}

	req := mealDto.RecordMealRequest{
		WeekID:      week.ID,
		HostID:      host.ID,
		DayGuests:   day,
		NightGuests: night,
	}

	if err := handler.meals.RecordAvailability(ctx, req); err != nil {
		handler.apologize(ctx, writer)

		return
	}

	prompt := handler.audio.ResolvePrompt(ctx, "thank_you",
		"Thank you so much! The coordinator will be in touch with the details. Goodbye.")
	handler.render(writer, append(prompt.Verbs(), ivr.Hangup())...)
}

// resolveHost finds the meal host by caller number, registering the number on
// the spot for first-time callers.
func (handler *Handler) resolveHost(ctx context.Context, request *http.Request) (mealModel.MealHost, error) {
	return handler.meals.RegisterHost(ctx, request.PostFormValue(constant.FormFieldFrom), "")
}

// parseGuests allows zero, entered as a bare pound key.
func (handler *Handler) parseGuests(digits string) (int, bool) {
	if digits == "" || digits == "#" {
		return 0, true
	}

	count, err := ivr.ParseCount(digits, maxGuests)
	if err != nil {
		return 0, false
	}

	return count, true
}

func actionURL(step string, dayGuests int) string {
	q := url.Values{}
	q.Set(constant.RequestParamStep, step)

	if step == StepNightGuests {
		q.Set(paramDayGuests, strconv.Itoa(dayGuests))
	}

	return "/voice/meal?" + q.Encode()
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
