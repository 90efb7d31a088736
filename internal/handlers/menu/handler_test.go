package menu_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostline/infras/otel/mocks"
	menuModel "hostline/internal/domains/menu/model"
	menuMocks "hostline/internal/domains/menu/service/mocks"
	"hostline/internal/handlers/menu"
)

func getMenu(t *testing.T, handler menu.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	handler.AdminRouter(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestMenuHandler_List(t *testing.T) {
	t.Run("lists the digit mappings of a menu", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		service := menuMocks.NewMockMenu(ctrl)
		handler := menu.New(service, mocks.NewOtel())

		service.EXPECT().
			ListMenu(gomock.Any(), menuModel.MainMenuName).
			Return([]menuModel.MenuOption{
				{
					MenuName:    menuModel.MainMenuName,
					Digit:       "1",
					Description: "Weekly hosting call",
					ActionType:  menuModel.ActionTypeFunction,
					ActionValue: menuModel.FunctionAvailability,
				},
				{
					MenuName:    menuModel.MainMenuName,
					Digit:       "4",
					Description: "Coordinator voicemail",
					ActionType:  menuModel.ActionTypeVoicemail,
					ActionValue: "1",
				},
			}, nil)

		recorder := getMenu(t, handler, "/menus/main")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"digit":"1"`)
		assert.Contains(t, recorder.Body.String(), `"action_type":"voicemail"`)
		assert.Contains(t, recorder.Body.String(), "Weekly hosting call")
	})

	t.Run("empty menu lists as an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		service := menuMocks.NewMockMenu(ctrl)
		handler := menu.New(service, mocks.NewOtel())

		service.EXPECT().
			ListMenu(gomock.Any(), "after_hours").
			Return([]menuModel.MenuOption{}, nil)

		recorder := getMenu(t, handler, "/menus/after_hours")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "[]")
	})

	t.Run("listing failure returns an error response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		service := menuMocks.NewMockMenu(ctrl)
		handler := menu.New(service, mocks.NewOtel())

		service.EXPECT().
			ListMenu(gomock.Any(), "main").
			Return(nil, errors.New("db down"))

		recorder := getMenu(t, handler, "/menus/main")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
