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
	"hostline/internal/domains/availability/model"
	"hostline/internal/domains/availability/model/dto"
	availabilityMocks "hostline/internal/domains/availability/repository/mocks"
	"hostline/internal/domains/availability/service"
	hostMocks "hostline/internal/domains/host/repository/mocks"
)

func TestAvailabilityService_RecordResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockHosts := hostMocks.NewMockHost(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockHosts, &config.Config{}, mockOtel)

	req := dto.RecordResponseRequest{
		WeekID:       "week-1",
		ApartmentID:  "apt-1",
		PhoneNumber:  "+15551234567",
		Beds:         3,
		ConfirmedVia: model.ViaOutboundCall,
		CallSID:      "CA123",
	}

	t.Run("first answer marks the apartment helped", func(t *testing.T) {
		mockRepo.EXPECT().
			SwapActive(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, confirmation model.BedConfirmation) (int, error) {
				assert.Equal(t, "week-1", confirmation.WeekID)
				assert.Equal(t, 3, confirmation.BedsConfirmed)
				assert.True(t, confirmation.ApartmentID.Valid)
				assert.Equal(t, "apt-1", confirmation.ApartmentID.String)
				return 0, nil
			})
		mockRepo.EXPECT().
			InsertCallLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, call model.AvailabilityCall) error {
				assert.Equal(t, model.ResponseYes, call.ResponseType)
				assert.Equal(t, 3, call.BedsOffered)
				return nil
			})
		mockHosts.EXPECT().
			MarkHelped(gomock.Any(), "apt-1").
			Return(nil)

		err := svc.RecordResponse(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("corrected answer does not mark helped again", func(t *testing.T) {
		mockRepo.EXPECT().
			SwapActive(gomock.Any(), gomock.Any()).
			Return(3, nil)
		mockRepo.EXPECT().
			InsertCallLog(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.RecordResponse(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("unregistered caller has no apartment to mark", func(t *testing.T) {
		anonymous := req
		anonymous.ApartmentID = ""

		mockRepo.EXPECT().
			SwapActive(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, confirmation model.BedConfirmation) (int, error) {
				assert.False(t, confirmation.ApartmentID.Valid)
				return 0, nil
			})
		mockRepo.EXPECT().
			InsertCallLog(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.RecordResponse(context.Background(), anonymous)

		require.NoError(t, err)
	})

	t.Run("swap failure", func(t *testing.T) {
		mockRepo.EXPECT().
			SwapActive(gomock.Any(), gomock.Any()).
			Return(0, errors.New("tx failed"))

		err := svc.RecordResponse(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAvailabilityService_Decline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockHosts := hostMocks.NewMockHost(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockHosts, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		VoidActive(gomock.Any(), "week-1", "apt-1", "+15551234567", model.VoidReasonDeclined).
		Return(2, nil)
	mockRepo.EXPECT().
		InsertCallLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, call model.AvailabilityCall) error {
			assert.Equal(t, model.ResponseNo, call.ResponseType)
			assert.Zero(t, call.BedsOffered)
			return nil
		})

	err := svc.Decline(context.Background(), dto.DeclineRequest{
		WeekID:      "week-1",
		ApartmentID: "apt-1",
		PhoneNumber: "+15551234567",
	})

	require.NoError(t, err)
}

func TestAvailabilityService_VoidConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockHosts := hostMocks.NewMockHost(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockHosts, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		VoidActive(gomock.Any(), "week-1", "apt-1", "", model.VoidReasonManual).
		Return(0, nil)

	err := svc.VoidConfirmation(context.Background(), "week-1", "apt-1", "")

	require.NoError(t, err)
}

func TestAvailabilityService_ActiveConfirmations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockHosts := hostMocks.NewMockHost(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockHosts, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "week-1").
		Return([]model.BedConfirmation{
			{ID: "conf-1", WeekID: "week-1", BedsConfirmed: 2},
			{ID: "conf-2", WeekID: "week-1", BedsConfirmed: 4},
		}, nil)

	res, err := svc.ActiveConfirmations(context.Background(), "week-1")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 2, res[0].BedsConfirmed)
	assert.Equal(t, 4, res[1].BedsConfirmed)
}
