package voice_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostline/infras/otel/mocks"
	audioMocks "hostline/internal/domains/audio/service/mocks"
	availabilityMocks "hostline/internal/domains/availability/service/mocks"
	hostModel "hostline/internal/domains/host/model"
	hostMocks "hostline/internal/domains/host/service/mocks"
	menuModel "hostline/internal/domains/menu/model"
	menuService "hostline/internal/domains/menu/service"
	menuMocks "hostline/internal/domains/menu/service/mocks"
	"hostline/internal/handlers/voice"
	"hostline/shared/ivr"
)

type handlerFixture struct {
	hosts        *hostMocks.MockHost
	availability *availabilityMocks.MockAvailability
	menus        *menuMocks.MockMenu
	audio        *audioMocks.MockAudio
	handler      voice.Handler
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	fixture := handlerFixture{
		hosts:        hostMocks.NewMockHost(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		menus:        menuMocks.NewMockMenu(ctrl),
		audio:        audioMocks.NewMockAudio(ctrl),
	}
	fixture.handler = voice.New(
		fixture.hosts,
		fixture.availability,
		fixture.menus,
		fixture.audio,
		mocks.NewOtel(),
	)

	return fixture
}

func (f *handlerFixture) anyPrompt() {
	f.audio.EXPECT().
		ResolvePrompt(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ string, fallback string) ivr.Prompt {
			return ivr.Prompt{Text: fallback}
		}).
		AnyTimes()
}

func post(t *testing.T, serve http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	serve(recorder, request)

	return recorder
}

func TestVoiceHandler_Incoming(t *testing.T) {
	t.Run("greets and gathers against the main menu", func(t *testing.T) {
		fixture := newHandlerFixture(t)
		fixture.anyPrompt()

		fixture.hosts.EXPECT().
			FindByPhone(gomock.Any(), "+15550001111").
			Return(hostModel.Apartment{ID: "apt-1"}, nil)
		fixture.availability.EXPECT().
			LogIncomingCall(gomock.Any(), "CA100", "+15550001111", "apt-1", menuModel.MainMenuName).
			Return(nil)

		recorder := post(t, fixture.handler.Incoming, "/voice/incoming", url.Values{
			"From":    {"+15550001111"},
			"CallSid": {"CA100"},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/xml", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Body.String(), "<Gather")
		assert.Contains(t, recorder.Body.String(), "menu=main")
		assert.Contains(t, recorder.Body.String(), "press 1")
	})

	t.Run("unknown callers are still answered and logged", func(t *testing.T) {
		fixture := newHandlerFixture(t)
		fixture.anyPrompt()

		fixture.hosts.EXPECT().
			FindByPhone(gomock.Any(), "+15559999999").
			Return(hostModel.Apartment{}, assert.AnError)
		fixture.availability.EXPECT().
			LogIncomingCall(gomock.Any(), "CA101", "+15559999999", "", menuModel.MainMenuName).
			Return(nil)

		recorder := post(t, fixture.handler.Incoming, "/voice/incoming", url.Values{
			"From":    {"+15559999999"},
			"CallSid": {"CA101"},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "<Gather")
	})

	t.Run("call log failure does not block the call", func(t *testing.T) {
		fixture := newHandlerFixture(t)
		fixture.anyPrompt()

		fixture.hosts.EXPECT().
			FindByPhone(gomock.Any(), "+15550001111").
			Return(hostModel.Apartment{ID: "apt-1"}, nil)
		fixture.availability.EXPECT().
			LogIncomingCall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		recorder := post(t, fixture.handler.Incoming, "/voice/incoming", url.Values{
			"From":    {"+15550001111"},
			"CallSid": {"CA102"},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "<Gather")
	})
}

func TestVoiceHandler_Menu(t *testing.T) {
	tests := []struct {
		name     string
		action   menuModel.Action
		contains []string
	}{
		{
			name:     "function option redirects into the flow",
			action:   menuModel.FunctionAction{Name: menuModel.FunctionAvailability},
			contains: []string{"<Redirect", "/voice/availability?step=initial"},
		},
		{
			name:     "registration option redirects to registration",
			action:   menuModel.FunctionAction{Name: menuModel.FunctionRegistration},
			contains: []string{"<Redirect", "/voice/registration?step=initial"},
		},
		{
			name:     "voicemail option redirects into the box",
			action:   menuModel.VoicemailAction{BoxNumber: "1"},
			contains: []string{"<Redirect", "step=record", "box=1"},
		},
		{
			name:     "transfer option dials out",
			action:   menuModel.TransferAction{Number: "+15557770000"},
			contains: []string{"<Dial", "+15557770000"},
		},
		{
			name:     "submenu option gathers against the submenu",
			action:   menuModel.SubmenuAction{Menu: "after_hours"},
			contains: []string{"<Gather", "menu=after_hours"},
		},
		{
			name:     "hangup option says goodbye",
			action:   menuModel.HangupAction{},
			contains: []string{"Goodbye", "<Hangup"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fixture := newHandlerFixture(t)
			fixture.anyPrompt()

			fixture.menus.EXPECT().
				Resolve(gomock.Any(), menuModel.MainMenuName, "1").
				Return(test.action, nil)

			recorder := post(t, fixture.handler.Menu, "/voice/menu?menu=main", url.Values{
				"Digits": {"1"},
			})

			require.Equal(t, http.StatusOK, recorder.Code)
			for _, fragment := range test.contains {
				assert.Contains(t, recorder.Body.String(), fragment)
			}
		})
	}

	t.Run("defaults to the main menu when no menu is named", func(t *testing.T) {
		fixture := newHandlerFixture(t)
		fixture.anyPrompt()

		fixture.menus.EXPECT().
			Resolve(gomock.Any(), menuModel.MainMenuName, "9").
			Return(menuModel.HangupAction{}, nil)

		recorder := post(t, fixture.handler.Menu, "/voice/menu", url.Values{
			"Digits": {"9"},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "<Hangup")
	})

	t.Run("unmapped digit re-gathers on the same menu", func(t *testing.T) {
		fixture := newHandlerFixture(t)
		fixture.anyPrompt()

		fixture.menus.EXPECT().
			Resolve(gomock.Any(), menuModel.MainMenuName, "8").
			Return(nil, menuService.ErrNoOption)

		recorder := post(t, fixture.handler.Menu, "/voice/menu?menu=main", url.Values{
			"Digits": {"8"},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "not a valid choice")
		assert.Contains(t, recorder.Body.String(), "menu=main")
		assert.NotContains(t, recorder.Body.String(), "<Hangup")
	})

	t.Run("resolution failure apologizes and hangs up", func(t *testing.T) {
		fixture := newHandlerFixture(t)
		fixture.anyPrompt()

		fixture.menus.EXPECT().
			Resolve(gomock.Any(), menuModel.MainMenuName, "4").
			Return(nil, assert.AnError)

		recorder := post(t, fixture.handler.Menu, "/voice/menu?menu=main", url.Values{
			"Digits": {"4"},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "system error")
		assert.Contains(t, recorder.Body.String(), "<Hangup")
	})
}
