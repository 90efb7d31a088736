package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	availabilityModel "hostline/internal/domains/availability/model"
	"hostline/internal/domains/week/model"
	"hostline/shared/constant"
	gDto "hostline/shared/dto"
	"hostline/shared/logger"
	gRepo "hostline/shared/repository"
	"hostline/shared/timezone"
)

type Week interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Week, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Week, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	GetContaining(ctx context.Context, day time.Time) (model.Week, error)
	CreateCurrent(ctx context.Context, week model.Week, tracking model.BedTracking) error
	GetTracking(ctx context.Context, weekID string) (model.BedTracking, error)
	SetNeeded(ctx context.Context, weekID string, bedsNeeded int) error
	AdjustConfirmed(ctx context.Context, weekID string, delta int) error
	AdjustConfirmedTx(ctx context.Context, tx *sqlx.Tx, weekID string, delta int) error
	Reconcile(ctx context.Context, weekID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Week]
	tracking gRepo.Repository[model.BedTracking]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Week {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Week](model.EntityName, model.TableName, model.FieldID, db, otl),
		tracking:   gRepo.NewRepository[model.BedTracking](model.TrackingEntityName, model.TrackingTableName, model.FieldWeekID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// GetContaining finds the week covering the given instant. The range is
// half-open: midnight on the starting Friday up to, not including, the
// midnight after the closing Thursday, so boundary days resolve the same way
// regardless of the database session timezone. Reads through Write so a week
// created moments ago by another call is always visible. A zero-ID week means
// none exists yet.
func (repo *repositoryImpl) GetContaining(ctx context.Context, day time.Time) (week model.Week, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".week.GetContaining")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE start_date <= $1 AND $1 < end_date + interval '1 day' ORDER BY start_date DESC LIMIT 1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &week, query, day)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Week{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Week{}, fmt.Errorf("failed to get containing week: %w", err)
	}

	return week, nil
}

// CreateCurrent installs a new current week and its zeroed tracking row in
// one transaction. The previous week's current flag is cleared before the
// insert so the single-current unique index holds through the rollover.
func (repo *repositoryImpl) CreateCurrent(ctx context.Context, week model.Week, tracking model.BedTracking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".week.CreateCurrent")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := fmt.Sprintf("UPDATE %s SET is_current = false, modified_at = $1 WHERE is_current", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to retire previous current week: %w", err)
	}

	if err = repo.InsertTx(ctx, tx, week); err != nil {
		return fmt.Errorf("failed to insert week: %w", err)
	}

	if err = repo.tracking.InsertTx(ctx, tx, tracking); err != nil {
		return fmt.Errorf("failed to insert bed tracking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit week creation: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetTracking(ctx context.Context, weekID string) (tracking model.BedTracking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".week.GetTracking")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE week_id = $1", model.TrackingTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &tracking, query, weekID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BedTracking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.BedTracking{}, fmt.Errorf("failed to get bed tracking: %w", err)
	}

	return tracking, nil
}

func (repo *repositoryImpl) SetNeeded(ctx context.Context, weekID string, bedsNeeded int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".week.SetNeeded")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET beds_needed = $1, modified_at = $2 WHERE week_id = $3", model.TrackingTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, bedsNeeded, timezone.Now(), weekID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to set beds needed: %w", err)
	}

	return nil
}

// AdjustConfirmed moves the confirmed counter by a relative delta in a single
// statement, never read-modify-write in the caller.
func (repo *repositoryImpl) AdjustConfirmed(ctx context.Context, weekID string, delta int) error {
	return repo.adjustConfirmed(ctx, repo.db.Write, weekID, delta)
}

func (repo *repositoryImpl) AdjustConfirmedTx(ctx context.Context, tx *sqlx.Tx, weekID string, delta int) error {
	return repo.adjustConfirmed(ctx, tx, weekID, delta)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (repo *repositoryImpl) adjustConfirmed(ctx context.Context, exec execer, weekID string, delta int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".week.adjustConfirmed")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET beds_confirmed = beds_confirmed + $1, modified_at = $2 WHERE week_id = $3", model.TrackingTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = exec.ExecContext(ctx, query, delta, timezone.Now(), weekID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to adjust confirmed beds: %w", err)
	}

	return nil
}

// Reconcile recomputes the confirmed counter from the non-voided confirmation
// rows and returns the corrected total.
func (repo *repositoryImpl) Reconcile(ctx context.Context, weekID string) (confirmed int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".week.Reconcile")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`UPDATE %s SET beds_confirmed = (
			SELECT COALESCE(SUM(beds_confirmed), 0) FROM %s
			WHERE week_id = $1 AND voided = false
		), modified_at = $2
		WHERE week_id = $1
		RETURNING beds_confirmed`,
		model.TrackingTableName, availabilityModel.ConfirmationTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &confirmed, query, weekID, timezone.Now())
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to reconcile bed tracking: %w", err)
	}

	return confirmed, nil
}
