package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostline/infras/otel"
	"hostline/internal/domains/report/model/dto"
	reportService "hostline/internal/domains/report/service"
	"hostline/shared/constant"
	"hostline/shared/validator"
	"hostline/transport/http/response"
)

type Handler struct {
	service reportService.Report
	otel    otel.Otel
}

func New(service reportService.Report, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Post("/weekly", handler.SendWeekly)
		routerGroup.Post("/voicemail", handler.SendVoicemail)
	})
}

// SendWeekly emails the week's bed and meal summary.
func (handler *Handler) SendWeekly(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".report.SendWeekly")
	defer scope.End()

	req := dto.WeeklyReportRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SendWeekly(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SendVoicemail emails one voicemail with its recording attached.
func (handler *Handler) SendVoicemail(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".report.SendVoicemail")
	defer scope.End()

	req := dto.VoicemailReportRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SendVoicemail(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
