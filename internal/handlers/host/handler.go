package host

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostline/infras/otel"
	"hostline/internal/domains/host/model/dto"
	hostService "hostline/internal/domains/host/service"
	"hostline/shared/constant"
	"hostline/shared/validator"
	"hostline/transport/http/response"
)

type Handler struct {
	service hostService.Host
	otel    otel.Otel
}

func New(service hostService.Host, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/hosts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Register)
		routerGroup.Get("/{id}", handler.Get)
	})
}

// Register creates or refreshes a host apartment from the admin UI, the same
// dedup-by-phone path the phone registration flow uses.
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".host.Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	apartment, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res := dto.ApartmentResponse{}
	res.FromModel(apartment)

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".host.Get")
	defer scope.End()

	apartment, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res := dto.ApartmentResponse{}
	res.FromModel(apartment)

	response.WithJSON(writer, http.StatusOK, res)
}
