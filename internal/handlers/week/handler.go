package week

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostline/infras/otel"
	availabilityService "hostline/internal/domains/availability/service"
	"hostline/internal/domains/week/model/dto"
	weekService "hostline/internal/domains/week/service"
	"hostline/shared/constant"
	"hostline/shared/validator"
	"hostline/transport/http/response"
)

type Handler struct {
	service      weekService.Week
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service weekService.Week, availability availabilityService.Availability, otl otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otl,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/weeks", func(routerGroup chi.Router) {
		routerGroup.Get("/current", handler.GetCurrent)
		routerGroup.Get("/{id}/status", handler.GetStatus)
		routerGroup.Get("/{id}/confirmations", handler.GetConfirmations)
		routerGroup.Put("/{id}/needed", handler.SetNeeded)
		routerGroup.Post("/{id}/reconcile", handler.Reconcile)
	})
}

// GetCurrent resolves the week containing today, creating it if needed.
func (handler *Handler) GetCurrent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".week.GetCurrent")
	defer scope.End()

	week, err := handler.service.GetOrCreateCurrent(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res := dto.WeekResponse{}
	res.FromModel(week)

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".week.GetStatus")
	defer scope.End()

	res, err := handler.service.Status(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetConfirmations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".week.GetConfirmations")
	defer scope.End()

	res, err := handler.availability.ActiveConfirmations(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) SetNeeded(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".week.SetNeeded")
	defer scope.End()

	req := dto.SetNeededRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.SetNeeded(ctx, chi.URLParam(request, constant.RequestParamID), req.BedsNeeded); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Beds needed updated")
}

// Reconcile recomputes the confirmed counter from the confirmation rows.
func (handler *Handler) Reconcile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".week.Reconcile")
	defer scope.End()

	res, err := handler.service.Reconcile(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
