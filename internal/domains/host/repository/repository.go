package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	availabilityModel "hostline/internal/domains/availability/model"
	"hostline/internal/domains/host/model"
	"hostline/shared/constant"
	gDto "hostline/shared/dto"
	"hostline/shared/logger"
	"hostline/shared/phone"
	gRepo "hostline/shared/repository"
	"hostline/shared/timezone"
)

type Host interface {
	Insert(ctx context.Context, model model.Apartment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Apartment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Apartment, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	FindByPhone(ctx context.Context, phoneNumber string) (model.Apartment, error)
	EligibleForWeek(ctx context.Context, weekID string) ([]model.Apartment, error)
	MarkHelped(ctx context.Context, apartmentID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Apartment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Host {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Apartment](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// FindByPhone resolves a caller to an apartment in three passes: exact match,
// digits-only match, then last-10-digits match. The widening passes absorb
// formatting drift between how Twilio reports numbers and how they were
// stored. A zero-ID apartment means no match.
func (repo *repositoryImpl) FindByPhone(ctx context.Context, phoneNumber string) (apartment model.Apartment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".host.FindByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	digits := phone.Normalize(phoneNumber)

	queries := []struct {
		query string
		arg   string
	}{
		{fmt.Sprintf("SELECT * FROM %s WHERE phone_number = $1 LIMIT 1", model.TableName), phoneNumber},
		{fmt.Sprintf("SELECT * FROM %s WHERE regexp_replace(phone_number, '[^0-9]', '', 'g') = $1 LIMIT 1", model.TableName), digits},
		{fmt.Sprintf("SELECT * FROM %s WHERE RIGHT(regexp_replace(phone_number, '[^0-9]', '', 'g'), 10) = $1 LIMIT 1", model.TableName), phone.Last10(phoneNumber)},
	}

	for _, q := range queries {
		if q.arg == "" {
			continue
		}

		scope.SetAttribute(constant.OtelQueryAttributeKey, q.query)

		err = repo.db.Read.GetContext(ctx, &apartment, q.query, q.arg)
		if err == nil {
			return apartment, nil
		}

		if !errors.Is(err, sql.ErrNoRows) {
			logger.ErrorWithStack(err)

			return model.Apartment{}, fmt.Errorf("failed to find apartment by phone: %w", err)
		}
	}

	return model.Apartment{}, nil
}

// EligibleForWeek lists apartments that opted into weekly calls and have not
// yet responded for the given week, either with an active confirmation or a
// logged decline.
func (repo *repositoryImpl) EligibleForWeek(ctx context.Context, weekID string) (apartments []model.Apartment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".host.EligibleForWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT a.* FROM %s a
		WHERE a.wants_weekly_calls = true
		AND NOT EXISTS (
			SELECT 1 FROM %s c
			WHERE c.week_id = $1 AND c.apartment_id = a.id AND c.voided = false
		)
		AND NOT EXISTS (
			SELECT 1 FROM %s l
			WHERE l.week_id = $1
			AND RIGHT(regexp_replace(l.phone_number, '[^0-9]', '', 'g'), 10) = RIGHT(regexp_replace(a.phone_number, '[^0-9]', '', 'g'), 10)
		)
		ORDER BY a.last_helped_date ASC NULLS FIRST, a.times_helped ASC`,
		model.TableName, availabilityModel.ConfirmationTableName, availabilityModel.CallLogTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &apartments, query, weekID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list eligible apartments: %w", err)
	}

	return apartments, nil
}

func (repo *repositoryImpl) MarkHelped(ctx context.Context, apartmentID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".host.MarkHelped")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET times_helped = times_helped + 1, last_helped_date = $1, modified_at = $1 WHERE id = $2", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, timezone.Now(), apartmentID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to mark apartment helped: %w", err)
	}

	return nil
}
