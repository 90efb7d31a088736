package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostline/config"
	"hostline/infras/otel/mocks"
	"hostline/infras/telephony"
	telephonyMocks "hostline/infras/telephony/mocks"
	"hostline/internal/domains/dialer/model"
	dialerMocks "hostline/internal/domains/dialer/repository/mocks"
	"hostline/internal/domains/dialer/service"
	hostModel "hostline/internal/domains/host/model"
	hostMocks "hostline/internal/domains/host/repository/mocks"
	weekModel "hostline/internal/domains/week/model"
	weekMocks "hostline/internal/domains/week/repository/mocks"
)

type dialerFixture struct {
	repo      *dialerMocks.MockDialer
	weeks     *weekMocks.MockWeek
	hosts     *hostMocks.MockHost
	telephony *telephonyMocks.MockClient
	svc       service.Dialer
}

func newDialerFixture(t *testing.T) dialerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.App.PublicBaseURL = "https://hostline.example.org"

	fixture := dialerFixture{
		repo:      dialerMocks.NewMockDialer(ctrl),
		weeks:     weekMocks.NewMockWeek(ctrl),
		hosts:     hostMocks.NewMockHost(ctrl),
		telephony: telephonyMocks.NewMockClient(ctrl),
	}
	fixture.svc = service.New(fixture.repo, fixture.weeks, fixture.hosts, fixture.telephony, cfg, mocks.NewOtel())

	return fixture
}

func TestDialerService_Start(t *testing.T) {
	t.Run("target already met places no calls", func(t *testing.T) {
		f := newDialerFixture(t)

		f.weeks.EXPECT().
			GetTracking(gomock.Any(), "week-1").
			Return(weekModel.BedTracking{WeekID: "week-1", BedsNeeded: 4, BedsConfirmed: 5}, nil).
			Times(2)
		f.repo.EXPECT().
			ClearWeek(gomock.Any(), "week-1").
			Return(nil)
		f.repo.EXPECT().
			ListWeek(gomock.Any(), "week-1").
			Return(nil, nil)

		res, err := f.svc.Start(context.Background(), "week-1")

		require.NoError(t, err)
		assert.True(t, res.TargetMet)
		assert.False(t, res.Running)
	})

	t.Run("queues eligible hosts in order and dials the first", func(t *testing.T) {
		f := newDialerFixture(t)

		tracking := weekModel.BedTracking{WeekID: "week-1", BedsNeeded: 6, BedsConfirmed: 1}
		eligible := []hostModel.Apartment{
			{ID: "apt-1", PersonName: "First Host", PhoneNumber: "+15550000001"},
			{ID: "apt-2", PersonName: "Second Host", PhoneNumber: "+15550000002"},
		}

		f.weeks.EXPECT().
			GetTracking(gomock.Any(), "week-1").
			Return(tracking, nil).
			Times(3)
		f.repo.EXPECT().
			ClearWeek(gomock.Any(), "week-1").
			Return(nil)
		f.hosts.EXPECT().
			EligibleForWeek(gomock.Any(), "week-1").
			Return(eligible, nil)

		var queued []model.CallQueueEntry

		f.repo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entries []model.CallQueueEntry) error {
				queued = entries
				return nil
			})
		f.repo.EXPECT().
			InFlight(gomock.Any(), "week-1").
			Return(model.CallQueueEntry{}, nil)
		f.repo.EXPECT().
			NextPending(gomock.Any(), "week-1").
			DoAndReturn(func(context.Context, string) (model.CallQueueEntry, error) {
				return queued[0], nil
			})
		f.repo.EXPECT().
			SetStatus(gomock.Any(), gomock.Any(), model.StatusCalling, "").
			Return(nil)
		f.telephony.EXPECT().
			CreateCall(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params telephony.CreateCallParams) (string, error) {
				assert.Equal(t, "+15550000001", params.To)
				assert.Contains(t, params.AnswerURL, "/voice/availability?")
				assert.Contains(t, params.StatusCallbackURL, "/voice/dialer/call-ended?")
				return "CA001", nil
			})
		f.repo.EXPECT().
			SetStatus(gomock.Any(), gomock.Any(), model.StatusCalling, "CA001").
			Return(nil)
		f.repo.EXPECT().
			ListWeek(gomock.Any(), "week-1").
			DoAndReturn(func(context.Context, string) ([]model.CallQueueEntry, error) {
				queued[0].Status = model.StatusCalling
				return queued, nil
			})

		res, err := f.svc.Start(context.Background(), "week-1")

		require.NoError(t, err)
		require.Len(t, queued, 2)
		assert.Equal(t, 1, queued[0].Priority)
		assert.Equal(t, 2, queued[1].Priority)
		assert.Equal(t, "apt-1", queued[0].ApartmentID)
		assert.True(t, res.Running)
		assert.Equal(t, 1, res.InFlight)
		assert.Equal(t, 1, res.Pending)
	})
}

func TestDialerService_Advance(t *testing.T) {
	shortOfTarget := weekModel.BedTracking{WeekID: "week-1", BedsNeeded: 6, BedsConfirmed: 1}

	t.Run("does nothing while a call is in flight", func(t *testing.T) {
		f := newDialerFixture(t)

		f.weeks.EXPECT().
			GetTracking(gomock.Any(), "week-1").
			Return(shortOfTarget, nil)
		f.repo.EXPECT().
			InFlight(gomock.Any(), "week-1").
			Return(model.CallQueueEntry{ID: "queue-1", Status: model.StatusCalling}, nil)

		err := f.svc.Advance(context.Background(), "week-1")

		require.NoError(t, err)
	})

	t.Run("clears the queue once the target is met", func(t *testing.T) {
		f := newDialerFixture(t)

		f.weeks.EXPECT().
			GetTracking(gomock.Any(), "week-1").
			Return(weekModel.BedTracking{WeekID: "week-1", BedsNeeded: 4, BedsConfirmed: 4}, nil)
		f.repo.EXPECT().
			ClearWeek(gomock.Any(), "week-1").
			Return(nil)

		err := f.svc.Advance(context.Background(), "week-1")

		require.NoError(t, err)
	})

	t.Run("placement failure marks the entry failed and dials the next", func(t *testing.T) {
		f := newDialerFixture(t)

		first := model.CallQueueEntry{ID: "queue-1", WeekID: "week-1", PhoneNumber: "+15550000001", Status: model.StatusPending}
		second := model.CallQueueEntry{ID: "queue-2", WeekID: "week-1", PhoneNumber: "+15550000002", Status: model.StatusPending}

		f.weeks.EXPECT().
			GetTracking(gomock.Any(), "week-1").
			Return(shortOfTarget, nil).
			Times(2)
		f.repo.EXPECT().
			InFlight(gomock.Any(), "week-1").
			Return(model.CallQueueEntry{}, nil).
			Times(2)

		gomock.InOrder(
			f.repo.EXPECT().NextPending(gomock.Any(), "week-1").Return(first, nil),
			f.repo.EXPECT().SetStatus(gomock.Any(), "queue-1", model.StatusCalling, "").Return(nil),
			f.telephony.EXPECT().CreateCall(gomock.Any(), gomock.Any()).Return("", errors.New("unreachable")),
			f.repo.EXPECT().SetStatus(gomock.Any(), "queue-1", model.StatusFailed, "").Return(nil),
			f.repo.EXPECT().NextPending(gomock.Any(), "week-1").Return(second, nil),
			f.repo.EXPECT().SetStatus(gomock.Any(), "queue-2", model.StatusCalling, "").Return(nil),
			f.telephony.EXPECT().CreateCall(gomock.Any(), gomock.Any()).Return("CA002", nil),
			f.repo.EXPECT().SetStatus(gomock.Any(), "queue-2", model.StatusCalling, "CA002").Return(nil),
		)

		err := f.svc.Advance(context.Background(), "week-1")

		require.NoError(t, err)
	})

	t.Run("exhausted queue is not an error", func(t *testing.T) {
		f := newDialerFixture(t)

		f.weeks.EXPECT().
			GetTracking(gomock.Any(), "week-1").
			Return(shortOfTarget, nil)
		f.repo.EXPECT().
			InFlight(gomock.Any(), "week-1").
			Return(model.CallQueueEntry{}, nil)
		f.repo.EXPECT().
			NextPending(gomock.Any(), "week-1").
			Return(model.CallQueueEntry{}, nil)

		err := f.svc.Advance(context.Background(), "week-1")

		require.NoError(t, err)
	})
}

func TestDialerService_OnCallEnded(t *testing.T) {
	tests := []struct {
		name       string
		callStatus string
		wantStatus string
	}{
		{name: "completed", callStatus: "completed", wantStatus: model.StatusCompleted},
		{name: "busy maps to no answer", callStatus: "busy", wantStatus: model.StatusNoAnswer},
		{name: "no-answer maps to no answer", callStatus: "no-answer", wantStatus: model.StatusNoAnswer},
		{name: "anything else is a failure", callStatus: "canceled", wantStatus: model.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDialerFixture(t)

			entry := model.CallQueueEntry{ID: "queue-1", WeekID: "week-1", Status: model.StatusInProgress}

			f.repo.EXPECT().
				Get(gomock.Any(), "queue-1").
				Return(entry, nil)
			f.repo.EXPECT().
				SetStatus(gomock.Any(), "queue-1", tt.wantStatus, "").
				Return(nil)

			// Advance after the terminal status lands.
			f.weeks.EXPECT().
				GetTracking(gomock.Any(), "week-1").
				Return(weekModel.BedTracking{WeekID: "week-1", BedsNeeded: 4, BedsConfirmed: 4}, nil)
			f.repo.EXPECT().
				ClearWeek(gomock.Any(), "week-1").
				Return(nil)

			err := f.svc.OnCallEnded(context.Background(), "queue-1", tt.callStatus)

			require.NoError(t, err)
		})
	}

	t.Run("stale callback after stop is ignored", func(t *testing.T) {
		f := newDialerFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), "queue-9").
			Return(model.CallQueueEntry{}, nil)

		err := f.svc.OnCallEnded(context.Background(), "queue-9", "completed")

		require.NoError(t, err)
	})
}

func TestDialerService_OnCallAnswered(t *testing.T) {
	t.Run("moves a dialed entry into in progress", func(t *testing.T) {
		f := newDialerFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), "queue-1").
			Return(model.CallQueueEntry{ID: "queue-1", Status: model.StatusCalling}, nil)
		f.repo.EXPECT().
			SetStatus(gomock.Any(), "queue-1", model.StatusInProgress, "").
			Return(nil)

		err := f.svc.OnCallAnswered(context.Background(), "queue-1")

		require.NoError(t, err)
	})

	t.Run("terminal entry is left alone", func(t *testing.T) {
		f := newDialerFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), "queue-1").
			Return(model.CallQueueEntry{ID: "queue-1", Status: model.StatusCompleted}, nil)

		err := f.svc.OnCallAnswered(context.Background(), "queue-1")

		require.NoError(t, err)
	})
}

func TestDialerService_Stop(t *testing.T) {
	f := newDialerFixture(t)

	f.repo.EXPECT().
		ClearWeek(gomock.Any(), "week-1").
		Return(nil)

	err := f.svc.Stop(context.Background(), "week-1")

	require.NoError(t, err)
}
