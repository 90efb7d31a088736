package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/internal/domains/audio/model"
	"hostline/internal/domains/audio/repository"
	"hostline/shared"
	"hostline/shared/cache"
	"hostline/shared/constant"
	"hostline/shared/ivr"
	gModel "hostline/shared/model"
	"hostline/shared/timezone"
)

const (
	cachePrefix     = "audio"
	cacheTTLSeconds = 300
)

type Audio interface {
	ResolvePrompt(ctx context.Context, promptKey, fallbackText string) ivr.Prompt
	List(ctx context.Context) ([]model.AudioConfig, error)
	Update(ctx context.Context, promptKey, recordingURL, ttsText string) error
}

type serviceImpl struct {
	repo  repository.Audio
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Audio, redisCache cache.RedisCache, cfg *config.Config, otl otel.Otel) Audio {
	return &serviceImpl{
		repo:  repo,
		cache: redisCache,
		cfg:   cfg,
		otel:  otl,
	}
}

// ResolvePrompt picks what a prompt should play: an uploaded recording first,
// then configured text, then the hardcoded fallback. It never fails; a broken
// cache or store just means the caller hears the default wording.
func (s *serviceImpl) ResolvePrompt(ctx context.Context, promptKey, fallbackText string) ivr.Prompt {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".audio.ResolvePrompt")
	defer scope.End()

	config, err := s.configFor(ctx, promptKey)
	if err != nil {
		log.Warn().Err(err).Str("prompt_key", promptKey).Msg("falling back to default prompt")

		return ivr.Prompt{Text: fallbackText}
	}

	prompt := ivr.Prompt{
		RecordingURL: config.RecordingURL,
		Text:         config.TTSText,
	}

	if prompt.Text == "" {
		prompt.Text = fallbackText
	}

	return prompt
}

func (s *serviceImpl) configFor(ctx context.Context, promptKey string) (config model.AudioConfig, err error) {
	key := shared.BuildCacheKey(cachePrefix, promptKey)

	err = s.cache.Get(ctx, key, &config)
	if err == nil {
		return config, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("audio cache read failed")
	}

	config, err = s.repo.GetByKey(ctx, promptKey)
	if err != nil {
		return config, err
	}

	if cacheErr := s.cache.Save(ctx, key, config, cacheTTLSeconds); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("audio cache write failed")
	}

	return config, nil
}

func (s *serviceImpl) List(ctx context.Context) (configs []model.AudioConfig, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".audio.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	configs, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audio config: %w", err)
	}

	return configs, nil
}

// Update reconfigures a prompt and drops its cache entry so the next call
// hears the new version.
func (s *serviceImpl) Update(ctx context.Context, promptKey, recordingURL, ttsText string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".audio.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	config := model.AudioConfig{
		ID:           uuid.NewString(),
		PromptKey:    promptKey,
		RecordingURL: recordingURL,
		TTSText:      ttsText,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.Upsert(ctx, config); err != nil {
		return fmt.Errorf("failed to update audio config: %w", err)
	}

	if cacheErr := s.cache.Delete(ctx, shared.BuildCacheKey(cachePrefix, promptKey)); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("audio cache invalidation failed")
	}

	log.Info().Str("prompt_key", promptKey).Msg("Updated audio config")

	return nil
}
