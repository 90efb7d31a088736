package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hostline/infras/otel"
	"hostline/internal/domains/menu/model/dto"
	menuService "hostline/internal/domains/menu/service"
	"hostline/shared/constant"
	"hostline/transport/http/response"
)

type Handler struct {
	service menuService.Menu
	otel    otel.Otel
}

func New(service menuService.Menu, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/menus", func(routerGroup chi.Router) {
		routerGroup.Get("/{menu}", handler.List)
	})
}

// List returns the digit mappings of one named menu, ordered by digit.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".menu.List")
	defer scope.End()

	options, err := handler.service.ListMenu(ctx, chi.URLParam(request, constant.RequestParamMenu))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res := make([]dto.MenuOptionResponse, 0, len(options))

	for _, option := range options {
		item := dto.MenuOptionResponse{}
		item.FromModel(option)
		res = append(res, item)
	}

	response.WithJSON(writer, http.StatusOK, res)
}
