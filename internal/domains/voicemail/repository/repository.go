package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	"hostline/internal/domains/voicemail/model"
	"hostline/shared/constant"
	gDto "hostline/shared/dto"
	"hostline/shared/logger"
	gRepo "hostline/shared/repository"
	"hostline/shared/timezone"
)

type Voicemail interface {
	InsertBox(ctx context.Context, box model.VoicemailBox) error
	GetBox(ctx context.Context, boxID string) (model.VoicemailBox, error)
	GetBoxByNumber(ctx context.Context, boxNumber string) (model.VoicemailBox, error)
	ListBoxes(ctx context.Context) ([]model.VoicemailBox, error)

	Insert(ctx context.Context, voicemail model.Voicemail) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Voicemail, error)
	ListByBox(ctx context.Context, boxID string) ([]model.Voicemail, error)
	MarkListened(ctx context.Context, voicemailID string) error
	MarkEmailed(ctx context.Context, voicemailID string) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Voicemail]
	boxes gRepo.Repository[model.VoicemailBox]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Voicemail {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Voicemail](model.EntityName, model.TableName, model.FieldID, db, otl),
		boxes:      gRepo.NewRepository[model.VoicemailBox](model.BoxEntityName, model.BoxTableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) InsertBox(ctx context.Context, box model.VoicemailBox) error {
	return repo.boxes.Insert(ctx, box) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBox(ctx context.Context, boxID string) (box model.VoicemailBox, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".voicemail.GetBox")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", model.BoxTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &box, query, boxID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.VoicemailBox{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.VoicemailBox{}, fmt.Errorf("failed to get voicemail box: %w", err)
	}

	return box, nil
}

func (repo *repositoryImpl) GetBoxByNumber(ctx context.Context, boxNumber string) (box model.VoicemailBox, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".voicemail.GetBoxByNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE box_number = $1", model.BoxTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &box, query, boxNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return model.VoicemailBox{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.VoicemailBox{}, fmt.Errorf("failed to get voicemail box by number: %w", err)
	}

	return box, nil
}

func (repo *repositoryImpl) ListBoxes(ctx context.Context) (boxes []model.VoicemailBox, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".voicemail.ListBoxes")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY box_number ASC", model.BoxTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &boxes, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list voicemail boxes: %w", err)
	}

	return boxes, nil
}

func (repo *repositoryImpl) ListByBox(ctx context.Context, boxID string) (voicemails []model.Voicemail, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".voicemail.ListByBox")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE box_id = $1 ORDER BY created_at DESC", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &voicemails, query, boxID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list voicemails: %w", err)
	}

	return voicemails, nil
}

func (repo *repositoryImpl) MarkListened(ctx context.Context, voicemailID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".voicemail.MarkListened")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET listened = true, modified_at = $1 WHERE id = $2", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, timezone.Now(), voicemailID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to mark voicemail listened: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) MarkEmailed(ctx context.Context, voicemailID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".voicemail.MarkEmailed")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET status = $1, emailed_at = $2, modified_at = $2 WHERE id = $3", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, model.StatusEmailed, timezone.Now(), voicemailID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to mark voicemail emailed: %w", err)
	}

	return nil
}
