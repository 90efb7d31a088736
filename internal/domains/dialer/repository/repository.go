package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	"hostline/internal/domains/dialer/model"
	"hostline/shared/constant"
	"hostline/shared/logger"
	gRepo "hostline/shared/repository"
	"hostline/shared/timezone"
)

type Dialer interface {
	InsertBulk(ctx context.Context, entries []model.CallQueueEntry) error
	Get(ctx context.Context, queueID string) (model.CallQueueEntry, error)
	NextPending(ctx context.Context, weekID string) (model.CallQueueEntry, error)
	InFlight(ctx context.Context, weekID string) (model.CallQueueEntry, error)
	SetStatus(ctx context.Context, queueID, status, callSID string) error
	ListWeek(ctx context.Context, weekID string) ([]model.CallQueueEntry, error)
	ClearWeek(ctx context.Context, weekID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CallQueueEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Dialer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CallQueueEntry](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, queueID string) (entry model.CallQueueEntry, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dialer.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &entry, query, queueID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CallQueueEntry{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.CallQueueEntry{}, fmt.Errorf("failed to get queue entry: %w", err)
	}

	return entry, nil
}

// NextPending pops the highest-priority pending entry. Reads go through the
// write connection so a freshly built queue is visible immediately.
func (repo *repositoryImpl) NextPending(ctx context.Context, weekID string) (entry model.CallQueueEntry, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dialer.NextPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE week_id = $1 AND status = $2 ORDER BY priority ASC LIMIT 1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &entry, query, weekID, model.StatusPending)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CallQueueEntry{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.CallQueueEntry{}, fmt.Errorf("failed to get next pending entry: %w", err)
	}

	return entry, nil
}

func (repo *repositoryImpl) InFlight(ctx context.Context, weekID string) (entry model.CallQueueEntry, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dialer.InFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE week_id = $1 AND status IN ($2, $3) LIMIT 1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &entry, query, weekID, model.StatusCalling, model.StatusInProgress)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CallQueueEntry{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.CallQueueEntry{}, fmt.Errorf("failed to get in-flight entry: %w", err)
	}

	return entry, nil
}

func (repo *repositoryImpl) SetStatus(ctx context.Context, queueID, status, callSID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dialer.SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET status = $1, call_sid = COALESCE(NULLIF($2, ''), call_sid), modified_at = $3 WHERE id = $4", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, status, callSID, timezone.Now(), queueID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to set queue entry status: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) ListWeek(ctx context.Context, weekID string) (entries []model.CallQueueEntry, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dialer.ListWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE week_id = $1 ORDER BY priority ASC", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Write.SelectContext(ctx, &entries, query, weekID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list queue entries: %w", err)
	}

	return entries, nil
}

func (repo *repositoryImpl) ClearWeek(ctx context.Context, weekID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dialer.ClearWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("DELETE FROM %s WHERE week_id = $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, weekID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to clear queue entries: %w", err)
	}

	return nil
}
