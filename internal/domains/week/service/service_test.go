package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostline/config"
	"hostline/infras/otel/mocks"
	"hostline/internal/domains/week/model"
	weekMocks "hostline/internal/domains/week/repository/mocks"
	"hostline/internal/domains/week/service"
	"hostline/shared/timezone"
)

func TestWeekService_GetOrCreateCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := weekMocks.NewMockWeek(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("returns existing week", func(t *testing.T) {
		existing := model.Week{ID: "week-1", IsCurrent: true}

		mockRepo.EXPECT().
			GetContaining(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		week, err := svc.GetOrCreateCurrent(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "week-1", week.ID)
	})

	t.Run("creates week and tracking when none contains today", func(t *testing.T) {
		mockRepo.EXPECT().
			GetContaining(gomock.Any(), gomock.Any()).
			Return(model.Week{}, nil)
		mockRepo.EXPECT().
			CreateCurrent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, week model.Week, tracking model.BedTracking) error {
				assert.True(t, week.IsCurrent)
				assert.Equal(t, week.ID, tracking.WeekID)
				assert.Zero(t, tracking.BedsNeeded)
				assert.Zero(t, tracking.BedsConfirmed)
				return nil
			})

		week, err := svc.GetOrCreateCurrent(context.Background())

		require.NoError(t, err)
		assert.NotEmpty(t, week.ID)
		assert.True(t, week.IsCurrent)
		assert.Equal(t, time.Friday, week.StartDate.Weekday())
		assert.Equal(t, week.StartDate.AddDate(0, 0, 6), week.EndDate)
		assert.True(t, week.Contains(timezone.Now()))
	})

	t.Run("creation failure surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			GetContaining(gomock.Any(), gomock.Any()).
			Return(model.Week{}, nil)
		mockRepo.EXPECT().
			CreateCurrent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("constraint violation"))

		_, err := svc.GetOrCreateCurrent(context.Background())

		assert.Error(t, err)
	})

	t.Run("lookup error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetContaining(gomock.Any(), gomock.Any()).
			Return(model.Week{}, errors.New("db down"))

		_, err := svc.GetOrCreateCurrent(context.Background())

		assert.Error(t, err)
	})
}

func TestWeekService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := weekMocks.NewMockWeek(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Week{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestWeekService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := weekMocks.NewMockWeek(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name          string
		tracking      model.BedTracking
		wantTargetMet bool
	}{
		{
			name:          "target met",
			tracking:      model.BedTracking{WeekID: "week-1", BedsNeeded: 5, BedsConfirmed: 6},
			wantTargetMet: true,
		},
		{
			name:          "target not met",
			tracking:      model.BedTracking{WeekID: "week-1", BedsNeeded: 5, BedsConfirmed: 4},
			wantTargetMet: false,
		},
		{
			name:          "no target set",
			tracking:      model.BedTracking{WeekID: "week-1", BedsNeeded: 0, BedsConfirmed: 3},
			wantTargetMet: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Week{ID: "week-1"}, nil)
			mockRepo.EXPECT().
				GetTracking(gomock.Any(), "week-1").
				Return(tt.tracking, nil)

			res, err := svc.Status(context.Background(), "week-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantTargetMet, res.TargetMet)
			assert.Equal(t, tt.tracking.BedsConfirmed, res.BedsConfirmed)
		})
	}
}

func TestWeekService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := weekMocks.NewMockWeek(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		GetTracking(gomock.Any(), "week-1").
		Return(model.BedTracking{WeekID: "week-1", BedsConfirmed: 8}, nil)
	mockRepo.EXPECT().
		Reconcile(gomock.Any(), "week-1").
		Return(6, nil)

	res, err := svc.Reconcile(context.Background(), "week-1")

	require.NoError(t, err)
	assert.Equal(t, 6, res.BedsConfirmed)
	assert.Equal(t, 2, res.Drift)
}
