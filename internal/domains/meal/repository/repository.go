package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	"hostline/internal/domains/meal/model"
	"hostline/shared/constant"
	"hostline/shared/logger"
	"hostline/shared/phone"
	gRepo "hostline/shared/repository"
	"hostline/shared/timezone"
)

type Meal interface {
	InsertHost(ctx context.Context, host model.MealHost) error
	FindHostByPhone(ctx context.Context, phoneNumber string) (model.MealHost, error)
	SwapAvailability(ctx context.Context, availability model.MealAvailability) error
	ListActive(ctx context.Context, weekID string) ([]model.MealAvailability, error)
	GetHost(ctx context.Context, hostID string) (model.MealHost, error)
}

type repositoryImpl struct {
	hosts        gRepo.Repository[model.MealHost]
	availability gRepo.Repository[model.MealAvailability]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Meal {
	return &repositoryImpl{
		hosts:        gRepo.NewRepository[model.MealHost](model.HostEntityName, model.HostTableName, model.FieldID, db, otl),
		availability: gRepo.NewRepository[model.MealAvailability](model.AvailabilityEntityName, model.AvailabilityTableName, model.FieldID, db, otl),
		db:           db,
		otel:         otl,
	}
}

func (repo *repositoryImpl) InsertHost(ctx context.Context, host model.MealHost) error {
	return repo.hosts.Insert(ctx, host) //nolint:wrapcheck
}

func (repo *repositoryImpl) FindHostByPhone(ctx context.Context, phoneNumber string) (host model.MealHost, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".meal.FindHostByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE RIGHT(regexp_replace(phone_number, '[^0-9]', '', 'g'), 10) = $1 LIMIT 1", model.HostTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &host, query, phone.Last10(phoneNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return model.MealHost{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.MealHost{}, fmt.Errorf("failed to find meal host by phone: %w", err)
	}

	return host, nil
}

func (repo *repositoryImpl) GetHost(ctx context.Context, hostID string) (host model.MealHost, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".meal.GetHost")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", model.HostTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &host, query, hostID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MealHost{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.MealHost{}, fmt.Errorf("failed to get meal host: %w", err)
	}

	return host, nil
}

// SwapAvailability voids the host's earlier answer for the week and inserts
// the new one inside one transaction.
func (repo *repositoryImpl) SwapAvailability(ctx context.Context, availability model.MealAvailability) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".meal.SwapAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	voidQuery := fmt.Sprintf(`UPDATE %s SET voided = true, voided_at = $1, modified_at = $1
		WHERE week_id = $2 AND host_id = $3 AND voided = false`, model.AvailabilityTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, voidQuery)

	if _, err = tx.ExecContext(ctx, voidQuery, timezone.Now(), availability.WeekID, availability.HostID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to void meal availability: %w", err)
	}

	if err = repo.availability.InsertTx(ctx, tx, availability); err != nil {
		return fmt.Errorf("failed to insert meal availability: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit meal availability swap: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) ListActive(ctx context.Context, weekID string) (availability []model.MealAvailability, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".meal.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE week_id = $1 AND voided = false ORDER BY created_at ASC", model.AvailabilityTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &availability, query, weekID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list meal availability: %w", err)
	}

	return availability, nil
}
