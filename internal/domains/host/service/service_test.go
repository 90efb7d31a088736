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
	"hostline/internal/domains/host/model"
	"hostline/internal/domains/host/model/dto"
	hostMocks "hostline/internal/domains/host/repository/mocks"
	"hostline/internal/domains/host/service"
)

func TestHostService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hostMocks.NewMockHost(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	req := dto.RegisterRequest{
		PhoneNumber:      "+15551234567",
		PersonName:       "Chana",
		NumberOfBeds:     3,
		WantsWeeklyCalls: true,
	}

	t.Run("creates a new apartment for an unknown number", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByPhone(gomock.Any(), "+15551234567").
			Return(model.Apartment{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, apartment model.Apartment) error {
				assert.Equal(t, "+15551234567", apartment.PhoneNumber)
				assert.Equal(t, 3, apartment.NumberOfBeds)
				assert.True(t, apartment.WantsWeeklyCalls)
				return nil
			})

		apartment, err := svc.Register(context.Background(), req)

		require.NoError(t, err)
		assert.NotEmpty(t, apartment.ID)
	})

	t.Run("refreshes the existing row for a known number", func(t *testing.T) {
		existing := model.Apartment{ID: "apt-1", PhoneNumber: "+15551234567", NumberOfBeds: 2}

		mockRepo.EXPECT().
			FindByPhone(gomock.Any(), "+15551234567").
			Return(existing, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update map[string]any, _ any) error {
				assert.Equal(t, 3, update[model.FieldNumberOfBeds])
				assert.Equal(t, "Chana", update[model.FieldPersonName])
				return nil
			})
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Apartment{ID: "apt-1", NumberOfBeds: 3}, nil)

		apartment, err := svc.Register(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "apt-1", apartment.ID)
		assert.Equal(t, 3, apartment.NumberOfBeds)
	})

	t.Run("blank name does not clobber the stored one", func(t *testing.T) {
		nameless := req
		nameless.PersonName = ""

		mockRepo.EXPECT().
			FindByPhone(gomock.Any(), "+15551234567").
			Return(model.Apartment{ID: "apt-1", PersonName: "Chana"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update map[string]any, _ any) error {
				_, hasName := update[model.FieldPersonName]
				assert.False(t, hasName)
				return nil
			})
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Apartment{ID: "apt-1", PersonName: "Chana"}, nil)

		_, err := svc.Register(context.Background(), nameless)

		require.NoError(t, err)
	})

	t.Run("lookup failure", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByPhone(gomock.Any(), "+15551234567").
			Return(model.Apartment{}, errors.New("db down"))

		_, err := svc.Register(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestHostService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hostMocks.NewMockHost(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Apartment{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}
