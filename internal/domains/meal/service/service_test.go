package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostline/config"
	"hostline/infras/otel/mocks"
	"hostline/internal/domains/meal/model"
	"hostline/internal/domains/meal/model/dto"
	mealMocks "hostline/internal/domains/meal/repository/mocks"
	"hostline/internal/domains/meal/service"
)

func TestMealService_RegisterHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mealMocks.NewMockMeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("known number reuses the existing host", func(t *testing.T) {
		mockRepo.EXPECT().
			FindHostByPhone(gomock.Any(), "+15551234567").
			Return(model.MealHost{ID: "host-1", PhoneNumber: "+15551234567"}, nil)

		host, err := svc.RegisterHost(context.Background(), "+15551234567", "")

		require.NoError(t, err)
		assert.Equal(t, "host-1", host.ID)
	})

	t.Run("first contact creates the host", func(t *testing.T) {
		mockRepo.EXPECT().
			FindHostByPhone(gomock.Any(), "+15550009999").
			Return(model.MealHost{}, nil)
		mockRepo.EXPECT().
			InsertHost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, host model.MealHost) error {
				assert.Equal(t, "+15550009999", host.PhoneNumber)
				return nil
			})

		host, err := svc.RegisterHost(context.Background(), "+15550009999", "")

		require.NoError(t, err)
		assert.NotEmpty(t, host.ID)
	})
}

func TestMealService_RecordAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mealMocks.NewMockMeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		SwapAvailability(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, availability model.MealAvailability) error {
			assert.Equal(t, "week-1", availability.WeekID)
			assert.Equal(t, "host-1", availability.HostID)
			assert.Equal(t, 4, availability.DayGuests)
			assert.Equal(t, 2, availability.NightGuests)
			assert.Equal(t, model.StatusConfirmed, availability.Status)
			return nil
		})

	err := svc.RecordAvailability(context.Background(), dto.RecordMealRequest{
		WeekID:      "week-1",
		HostID:      "host-1",
		DayGuests:   4,
		NightGuests: 2,
	})

	require.NoError(t, err)
}

func TestMealService_RecordUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mealMocks.NewMockMeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		SwapAvailability(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, availability model.MealAvailability) error {
			assert.Equal(t, model.StatusUnavailable, availability.Status)
			assert.Zero(t, availability.DayGuests)
			return nil
		})

	err := svc.RecordUnavailable(context.Background(), "week-1", "host-1")

	require.NoError(t, err)
}

func TestMealService_ActiveAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mealMocks.NewMockMeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "week-1").
		Return([]model.MealAvailability{
			{ID: "meal-1", WeekID: "week-1", HostID: "host-1", DayGuests: 4},
		}, nil)
	mockRepo.EXPECT().
		GetHost(gomock.Any(), "host-1").
		Return(model.MealHost{ID: "host-1", PersonName: "Rivka"}, nil)

	res, err := svc.ActiveAvailability(context.Background(), "week-1")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Rivka", res[0].HostName)
	assert.Equal(t, 4, res[0].DayGuests)
}
