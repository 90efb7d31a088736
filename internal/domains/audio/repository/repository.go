package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	"hostline/internal/domains/audio/model"
	"hostline/shared/constant"
	"hostline/shared/logger"
	gRepo "hostline/shared/repository"
	"hostline/shared/timezone"
)

type Audio interface {
	Insert(ctx context.Context, config model.AudioConfig) error
	GetByKey(ctx context.Context, promptKey string) (model.AudioConfig, error)
	List(ctx context.Context) ([]model.AudioConfig, error)
	Upsert(ctx context.Context, config model.AudioConfig) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AudioConfig]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Audio {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AudioConfig](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) GetByKey(ctx context.Context, promptKey string) (config model.AudioConfig, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audio.GetByKey")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE prompt_key = $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &config, query, promptKey)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AudioConfig{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.AudioConfig{}, fmt.Errorf("failed to get audio config: %w", err)
	}

	return config, nil
}

func (repo *repositoryImpl) List(ctx context.Context) (configs []model.AudioConfig, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audio.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY prompt_key ASC", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &configs, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list audio config: %w", err)
	}

	return configs, nil
}

func (repo *repositoryImpl) Upsert(ctx context.Context, config model.AudioConfig) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audio.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`INSERT INTO %s (id, prompt_key, recording_url, tts_text, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (prompt_key) DO UPDATE
		SET recording_url = EXCLUDED.recording_url, tts_text = EXCLUDED.tts_text, modified_at = EXCLUDED.modified_at`,
		model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, config.ID, config.PromptKey, config.RecordingURL, config.TTSText, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert audio config: %w", err)
	}

	return nil
}
