package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostline/config"
	"hostline/infras/otel/mocks"
	"hostline/internal/domains/audio/model"
	audioMocks "hostline/internal/domains/audio/repository/mocks"
	"hostline/internal/domains/audio/service"
	"hostline/shared/cache"
	cacheMocks "hostline/shared/cache/mocks"
)

func TestAudioService_ResolvePrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := audioMocks.NewMockAudio(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCache, &config.Config{}, mockOtel)

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "audio:greeting", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				cfg, _ := value.(*model.AudioConfig)
				cfg.PromptKey = "greeting"
				cfg.RecordingURL = "https://cdn.example.org/greeting.mp3"
				return nil
			})

		prompt := svc.ResolvePrompt(context.Background(), "greeting", "Hello.")

		assert.Equal(t, "https://cdn.example.org/greeting.mp3", prompt.RecordingURL)
	})

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "audio:greeting", gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			GetByKey(gomock.Any(), "greeting").
			Return(model.AudioConfig{PromptKey: "greeting", TTSText: "Welcome to the hostline."}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), "audio:greeting", gomock.Any(), gomock.Any()).
			Return(nil)

		prompt := svc.ResolvePrompt(context.Background(), "greeting", "Hello.")

		assert.Empty(t, prompt.RecordingURL)
		assert.Equal(t, "Welcome to the hostline.", prompt.Text)
	})

	t.Run("empty configured text falls back to the default wording", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "audio:greeting", gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			GetByKey(gomock.Any(), "greeting").
			Return(model.AudioConfig{PromptKey: "greeting"}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), "audio:greeting", gomock.Any(), gomock.Any()).
			Return(nil)

		prompt := svc.ResolvePrompt(context.Background(), "greeting", "Hello.")

		assert.Equal(t, "Hello.", prompt.Text)
	})

	t.Run("store failure still produces a prompt", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "audio:greeting", gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			GetByKey(gomock.Any(), "greeting").
			Return(model.AudioConfig{}, errors.New("db down"))

		prompt := svc.ResolvePrompt(context.Background(), "greeting", "Hello.")

		assert.Equal(t, "Hello.", prompt.Text)
		assert.Empty(t, prompt.RecordingURL)
	})
}

func TestAudioService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := audioMocks.NewMockAudio(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCache, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg model.AudioConfig) error {
			assert.Equal(t, "greeting", cfg.PromptKey)
			assert.Equal(t, "New wording.", cfg.TTSText)
			return nil
		})
	mockCache.EXPECT().
		Delete(gomock.Any(), "audio:greeting").
		Return(nil)

	err := svc.Update(context.Background(), "greeting", "", "New wording.")

	assert.NoError(t, err)
}
