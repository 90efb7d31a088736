package audio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostline/infras/otel"
	audioService "hostline/internal/domains/audio/service"
	"hostline/shared/constant"
	"hostline/shared/validator"
	"hostline/transport/http/response"
)

type updateRequest struct {
	RecordingURL string `json:"recording_url" validate:"omitempty,url"`
	TTSText      string `json:"tts_text"`
}

type Handler struct {
	service audioService.Audio
	otel    otel.Otel
}

func New(service audioService.Audio, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/audio", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.List)
		routerGroup.Put("/{id}", handler.Update)
	})
}

func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".audio.List")
	defer scope.End()

	configs, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, configs)
}

// Update reconfigures one prompt; callers hear the change on the next call.
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".audio.Update")
	defer scope.End()

	req := updateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	promptKey := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Update(ctx, promptKey, req.RecordingURL, req.TTSText); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Audio config updated")
}
