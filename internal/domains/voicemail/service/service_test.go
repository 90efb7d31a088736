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
	"hostline/internal/domains/voicemail/model"
	"hostline/internal/domains/voicemail/model/dto"
	voicemailMocks "hostline/internal/domains/voicemail/repository/mocks"
	"hostline/internal/domains/voicemail/service"
)

func TestVoicemailService_SaveRecording(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := voicemailMocks.NewMockVoicemail(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	req := dto.SaveRecordingRequest{
		BoxNumber:    "1",
		CallerNumber: "+15551234567",
		RecordingURL: "https://api.twilio.com/recordings/RE123",
		Duration:     42,
	}

	t.Run("files the recording into an existing box", func(t *testing.T) {
		mockRepo.EXPECT().
			GetBoxByNumber(gomock.Any(), "1").
			Return(model.VoicemailBox{ID: "box-1", BoxNumber: "1"}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, voicemail model.Voicemail) error {
				assert.Equal(t, "box-1", voicemail.BoxID)
				assert.Equal(t, model.StatusNew, voicemail.Status)
				assert.Equal(t, 42, voicemail.Duration)
				return nil
			})

		voicemail, err := svc.SaveRecording(context.Background(), req)

		require.NoError(t, err)
		assert.NotEmpty(t, voicemail.ID)
	})

	t.Run("creates a missing box instead of losing the recording", func(t *testing.T) {
		var createdBoxID string

		mockRepo.EXPECT().
			GetBoxByNumber(gomock.Any(), "1").
			Return(model.VoicemailBox{}, nil)
		mockRepo.EXPECT().
			InsertBox(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, box model.VoicemailBox) error {
				createdBoxID = box.ID
				assert.Equal(t, "1", box.BoxNumber)
				assert.Equal(t, "Box 1", box.Name)
				return nil
			})
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, voicemail model.Voicemail) error {
				assert.Equal(t, createdBoxID, voicemail.BoxID)
				return nil
			})

		_, err := svc.SaveRecording(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("insert failure", func(t *testing.T) {
		mockRepo.EXPECT().
			GetBoxByNumber(gomock.Any(), "1").
			Return(model.VoicemailBox{ID: "box-1"}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := svc.SaveRecording(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestVoicemailService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := voicemailMocks.NewMockVoicemail(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Voicemail{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestVoicemailService_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := voicemailMocks.NewMockVoicemail(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("unknown box", func(t *testing.T) {
		mockRepo.EXPECT().
			GetBoxByNumber(gomock.Any(), "7").
			Return(model.VoicemailBox{}, nil)

		_, err := svc.ListMessages(context.Background(), "7")

		assert.Error(t, err)
	})

	t.Run("lists messages for the box", func(t *testing.T) {
		mockRepo.EXPECT().
			GetBoxByNumber(gomock.Any(), "1").
			Return(model.VoicemailBox{ID: "box-1", BoxNumber: "1"}, nil)
		mockRepo.EXPECT().
			ListByBox(gomock.Any(), "box-1").
			Return([]model.Voicemail{
				{ID: "vm-1", BoxID: "box-1"},
				{ID: "vm-2", BoxID: "box-1", Listened: true},
			}, nil)

		res, err := svc.ListMessages(context.Background(), "1")

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "vm-1", res[0].ID)
		assert.True(t, res[1].Listened)
	})
}
