package dialer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostline/infras/otel"
	"hostline/internal/domains/dialer/model/dto"
	dialerService "hostline/internal/domains/dialer/service"
	"hostline/shared/constant"
	"hostline/shared/failure"
	"hostline/shared/validator"
	"hostline/transport/http/response"
)

type Handler struct {
	service dialerService.Dialer
	otel    otel.Otel
}

func New(service dialerService.Dialer, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

// Router mounts the provider's status callback on the open voice group.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/dialer/call-ended", handler.CallEnded)
}

// AdminRouter mounts the coordinator's control endpoint.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/dialer", handler.Control)
}

// Control starts, stops, advances, or inspects a dialing run.
func (handler *Handler) Control(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".dialer.Control")
	defer scope.End()

	req := dto.DialerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	switch req.Action {
	case dto.ActionStart:
		res, err := handler.service.Start(ctx, req.WeekID)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.InternalError(err))

			return
		}

		response.WithJSON(writer, http.StatusOK, res)
	case dto.ActionStop:
		if err := handler.service.Stop(ctx, req.WeekID); err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.InternalError(err))

			return
		}

		response.WithMessage(writer, http.StatusOK, "Dialing run stopped")
	case dto.ActionNext:
		if err := handler.service.Advance(ctx, req.WeekID); err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.InternalError(err))

			return
		}

		fallthrough
	case dto.ActionStatus:
		res, err := handler.service.Status(ctx, req.WeekID)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.InternalError(err))

			return
		}

		response.WithJSON(writer, http.StatusOK, res)
	}
}

// CallEnded receives the provider's terminal status for one outbound call.
// It always answers 200: the provider retries non-2xx responses and a retry
// storm on a dead store helps nobody.
func (handler *Handler) CallEnded(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".dialer.CallEnded")
	defer scope.End()

	queueID := request.URL.Query().Get(constant.RequestParamQueueID)
	callStatus := request.PostFormValue(constant.FormFieldCallStatus)

	if queueID == "" {
		log.Warn().Msg("call-ended callback without queue id")
		writer.WriteHeader(http.StatusOK)

		return
	}

	if err := handler.service.OnCallEnded(ctx, queueID, callStatus); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("queue_id", queueID).Msg("failed to process call-ended callback")
	}

	writer.WriteHeader(http.StatusOK)
}
