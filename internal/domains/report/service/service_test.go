package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostline/config"
	"hostline/infras/mailer"
	mailerMocks "hostline/infras/mailer/mocks"
	"hostline/infras/otel/mocks"
	availabilityDto "hostline/internal/domains/availability/model/dto"
	availabilityMocks "hostline/internal/domains/availability/service/mocks"
	hostModel "hostline/internal/domains/host/model"
	hostMocks "hostline/internal/domains/host/repository/mocks"
	mealDto "hostline/internal/domains/meal/model/dto"
	mealMocks "hostline/internal/domains/meal/service/mocks"
	"hostline/internal/domains/report/model/dto"
	"hostline/internal/domains/report/service"
	voicemailModel "hostline/internal/domains/voicemail/model"
	voicemailMocks "hostline/internal/domains/voicemail/service/mocks"
	weekModel "hostline/internal/domains/week/model"
	weekDto "hostline/internal/domains/week/model/dto"
	weekMocks "hostline/internal/domains/week/service/mocks"
	"hostline/shared/failure"
)

type reportFixture struct {
	mailer       *mailerMocks.MockMailer
	weeks        *weekMocks.MockWeek
	availability *availabilityMocks.MockAvailability
	meals        *mealMocks.MockMeal
	voicemails   *voicemailMocks.MockVoicemail
	hosts        *hostMocks.MockHost
	cfg          *config.Config
	service      service.Report
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	fixture := reportFixture{
		mailer:       mailerMocks.NewMockMailer(ctrl),
		weeks:        weekMocks.NewMockWeek(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		meals:        mealMocks.NewMockMeal(ctrl),
		voicemails:   voicemailMocks.NewMockVoicemail(ctrl),
		hosts:        hostMocks.NewMockHost(ctrl),
		cfg:          &config.Config{},
	}
	fixture.service = service.New(
		fixture.mailer,
		fixture.weeks,
		fixture.availability,
		fixture.meals,
		fixture.voicemails,
		fixture.hosts,
		fixture.cfg,
		mocks.NewOtel(),
	)

	return fixture
}

func (f *reportFixture) expectWeekData() {
	start := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	f.weeks.EXPECT().
		Get(gomock.Any(), "week-1").
		Return(weekModel.Week{ID: "week-1", StartDate: start, EndDate: start.AddDate(0, 0, 6)}, nil)
	f.weeks.EXPECT().
		Status(gomock.Any(), "week-1").
		Return(weekDto.WeekStatusResponse{BedsNeeded: 10, BedsConfirmed: 7}, nil)
	f.availability.EXPECT().
		ActiveConfirmations(gomock.Any(), "week-1").
		Return([]availabilityDto.ConfirmationResponse{
			{ID: "conf-1", WeekID: "week-1", ApartmentID: "apt-1", PhoneNumber: "+15550000001", BedsConfirmed: 4, ConfirmedVia: "incoming_call"},
			{ID: "conf-2", WeekID: "week-1", PhoneNumber: "+15550000002", BedsConfirmed: 3, ConfirmedVia: "incoming_call"},
		}, nil)
	f.meals.EXPECT().
		ActiveAvailability(gomock.Any(), "week-1").
		Return([]mealDto.MealAvailabilityResponse{
			{ID: "meal-1", HostName: "Rivka", DayGuests: 4, NightGuests: 2},
		}, nil)
}

func TestReportService_SendWeekly(t *testing.T) {
	t.Run("renders the week summary and mails the requested recipients", func(t *testing.T) {
		fixture := newReportFixture(t)
		fixture.expectWeekData()

		fixture.hosts.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hostModel.Apartment{ID: "apt-1", PersonName: "Chaim"}, nil)

		var sent mailer.Message
		fixture.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg mailer.Message) (string, error) {
				sent = msg
				return "msg-1", nil
			})

		res, err := fixture.service.SendWeekly(context.Background(), dto.WeeklyReportRequest{
			WeekID:         "week-1",
			EmailAddresses: []string{"coordinator@example.org"},
		})

		require.NoError(t, err)
		assert.Equal(t, "msg-1", res.MessageID)
		assert.Equal(t, []string{"coordinator@example.org"}, res.Recipients)
		assert.Equal(t, []string{"coordinator@example.org"}, sent.To)
		assert.Contains(t, sent.Subject, "2026-08-28")
		assert.Contains(t, sent.HTML, "Chaim")
		assert.Contains(t, sent.HTML, "Unregistered caller")
		assert.Contains(t, sent.HTML, "Rivka")
		assert.Contains(t, sent.Text, "7")
		assert.NotEmpty(t, sent.Text)
	})

	t.Run("falls back to configured default recipients", func(t *testing.T) {
		fixture := newReportFixture(t)
		fixture.cfg.Email.DefaultRecipients = []string{"office@example.org"}
		fixture.expectWeekData()

		fixture.hosts.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hostModel.Apartment{ID: "apt-1", PersonName: "Chaim"}, nil)
		fixture.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return("msg-2", nil)

		res, err := fixture.service.SendWeekly(context.Background(), dto.WeeklyReportRequest{WeekID: "week-1"})

		require.NoError(t, err)
		assert.Equal(t, []string{"office@example.org"}, res.Recipients)
	})

	t.Run("no recipients anywhere is a bad request", func(t *testing.T) {
		fixture := newReportFixture(t)
		fixture.expectWeekData()

		fixture.hosts.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hostModel.Apartment{ID: "apt-1", PersonName: "Chaim"}, nil)

		_, err := fixture.service.SendWeekly(context.Background(), dto.WeeklyReportRequest{WeekID: "week-1"})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("week lookup failure aborts before any mail", func(t *testing.T) {
		fixture := newReportFixture(t)

		fixture.weeks.EXPECT().
			Get(gomock.Any(), "week-1").
			Return(weekModel.Week{}, assert.AnError)

		_, err := fixture.service.SendWeekly(context.Background(), dto.WeeklyReportRequest{WeekID: "week-1"})

		require.Error(t, err)
	})
}

func TestReportService_SendVoicemail(t *testing.T) {
	message := voicemailModel.Voicemail{
		ID:           "vm-1",
		BoxID:        "box-1",
		CallerNumber: "+15550000003",
		CallerName:   "Leah",
		RecordingURL: "https://api.twilio.com/recordings/RE1",
		Duration:     34,
	}
	box := voicemailModel.VoicemailBox{
		ID:             "box-1",
		BoxNumber:      "1",
		Name:           "Coordinator",
		EmailAddresses: pq.StringArray{"box@example.org"},
	}

	t.Run("mails the recording as an attachment and marks the message", func(t *testing.T) {
		fixture := newReportFixture(t)

		fixture.voicemails.EXPECT().Get(gomock.Any(), "vm-1").Return(message, nil)
		fixture.voicemails.EXPECT().GetBox(gomock.Any(), "box-1").Return(box, nil)
		fixture.mailer.EXPECT().
			FetchAttachment(gomock.Any(), "https://api.twilio.com/recordings/RE1.mp3", "voicemail-vm-1.mp3").
			Return(mailer.Attachment{Filename: "voicemail-vm-1.mp3", Content: []byte("beep")}, nil)

		var sent mailer.Message
		fixture.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg mailer.Message) (string, error) {
				sent = msg
				return "msg-3", nil
			})
		fixture.voicemails.EXPECT().MarkEmailed(gomock.Any(), "vm-1").Return(nil)

		res, err := fixture.service.SendVoicemail(context.Background(), dto.VoicemailReportRequest{VoicemailID: "vm-1"})

		require.NoError(t, err)
		assert.Equal(t, "msg-3", res.MessageID)
		assert.Equal(t, []string{"box@example.org"}, sent.To)
		assert.Contains(t, sent.Subject, "box 1")
		assert.Contains(t, sent.HTML, "Leah")
		require.Len(t, sent.Attachments, 1)
		assert.Equal(t, "voicemail-vm-1.mp3", sent.Attachments[0].Filename)
	})

	t.Run("attachment fetch failure still delivers the notification", func(t *testing.T) {
		fixture := newReportFixture(t)

		fixture.voicemails.EXPECT().Get(gomock.Any(), "vm-1").Return(message, nil)
		fixture.voicemails.EXPECT().GetBox(gomock.Any(), "box-1").Return(box, nil)
		fixture.mailer.EXPECT().
			FetchAttachment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mailer.Attachment{}, assert.AnError)

		var sent mailer.Message
		fixture.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg mailer.Message) (string, error) {
				sent = msg
				return "msg-4", nil
			})
		fixture.voicemails.EXPECT().MarkEmailed(gomock.Any(), "vm-1").Return(nil)

		_, err := fixture.service.SendVoicemail(context.Background(), dto.VoicemailReportRequest{VoicemailID: "vm-1"})

		require.NoError(t, err)
		assert.Empty(t, sent.Attachments)
	})

	t.Run("delivery failure leaves the message unmarked", func(t *testing.T) {
		fixture := newReportFixture(t)

		fixture.voicemails.EXPECT().Get(gomock.Any(), "vm-1").Return(message, nil)
		fixture.voicemails.EXPECT().GetBox(gomock.Any(), "box-1").Return(box, nil)
		fixture.mailer.EXPECT().
			FetchAttachment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mailer.Attachment{Filename: "voicemail-vm-1.mp3"}, nil)
		fixture.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return("", assert.AnError)

		_, err := fixture.service.SendVoicemail(context.Background(), dto.VoicemailReportRequest{VoicemailID: "vm-1"})

		require.Error(t, err)
	})

	t.Run("empty box recipient list falls back to defaults", func(t *testing.T) {
		fixture := newReportFixture(t)
		fixture.cfg.Email.DefaultRecipients = []string{"office@example.org"}

		bare := box
		bare.EmailAddresses = nil

		fixture.voicemails.EXPECT().Get(gomock.Any(), "vm-1").Return(message, nil)
		fixture.voicemails.EXPECT().GetBox(gomock.Any(), "box-1").Return(bare, nil)
		fixture.mailer.EXPECT().
			FetchAttachment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mailer.Attachment{Filename: "voicemail-vm-1.mp3"}, nil)
		fixture.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return("msg-5", nil)
		fixture.voicemails.EXPECT().MarkEmailed(gomock.Any(), "vm-1").Return(nil)

		res, err := fixture.service.SendVoicemail(context.Background(), dto.VoicemailReportRequest{VoicemailID: "vm-1"})

		require.NoError(t, err)
		assert.Equal(t, []string{"office@example.org"}, res.Recipients)
	})
}
