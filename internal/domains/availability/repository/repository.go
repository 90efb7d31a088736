package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	"hostline/internal/domains/availability/model"
	weekRepo "hostline/internal/domains/week/repository"
	"hostline/shared/constant"
	"hostline/shared/logger"
	"hostline/shared/phone"
	gRepo "hostline/shared/repository"
	"hostline/shared/timezone"
)

type Availability interface {
	GetActive(ctx context.Context, weekID, apartmentID, phoneNumber string) (model.BedConfirmation, error)
	SwapActive(ctx context.Context, confirmation model.BedConfirmation) (oldBeds int, err error)
	VoidActive(ctx context.Context, weekID, apartmentID, phoneNumber, reason string) (oldBeds int, err error)
	ListActive(ctx context.Context, weekID string) ([]model.BedConfirmation, error)
	InsertCallLog(ctx context.Context, call model.AvailabilityCall) error
	InsertIncoming(ctx context.Context, call model.IncomingCall) error
	HasResponded(ctx context.Context, weekID, phoneNumber string) (bool, error)
}

type repositoryImpl struct {
	confirmations gRepo.Repository[model.BedConfirmation]
	callLog       gRepo.Repository[model.AvailabilityCall]
	incoming      gRepo.Repository[model.IncomingCall]
	weeks         weekRepo.Week
	db            *postgres.Connection
	otel          otel.Otel
}

func New(db *postgres.Connection, weeks weekRepo.Week, otl otel.Otel) Availability {
	return &repositoryImpl{
		confirmations: gRepo.NewRepository[model.BedConfirmation](model.ConfirmationEntityName, model.ConfirmationTableName, model.FieldID, db, otl),
		callLog:       gRepo.NewRepository[model.AvailabilityCall](model.CallLogEntityName, model.CallLogTableName, model.FieldID, db, otl),
		incoming:      gRepo.NewRepository[model.IncomingCall](model.IncomingCallEntityName, model.IncomingCallTableName, model.FieldID, db, otl),
		weeks:         weeks,
		db:            db,
		otel:          otl,
	}
}

// activeWhere matches the active confirmation rows for one responder within a
// week. Registered callers match on apartment id; unregistered ones fall back
// to the last 10 digits of the phone number.
func activeWhere(apartmentID string) (string, func(phoneNumber string) string) {
	if apartmentID != "" {
		return "week_id = $1 AND voided = false AND apartment_id = $2", func(string) string { return apartmentID }
	}

	return "week_id = $1 AND voided = false AND RIGHT(regexp_replace(phone_number, '[^0-9]', '', 'g'), 10) = $2", phone.Last10
}

func (repo *repositoryImpl) GetActive(ctx context.Context, weekID, apartmentID, phoneNumber string) (confirmation model.BedConfirmation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, arg := activeWhere(apartmentID)
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s ORDER BY created_at DESC LIMIT 1", model.ConfirmationTableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.BedConfirmation
	if err = repo.db.Read.SelectContext(ctx, &rows, query, weekID, arg(phoneNumber)); err != nil {
		logger.ErrorWithStack(err)

		return confirmation, fmt.Errorf("failed to get active confirmation: %w", err)
	}

	if len(rows) > 0 {
		confirmation = rows[0]
	}

	return confirmation, nil
}

// SwapActive replaces a responder's active confirmation for the week in a
// single transaction: void the old rows, insert the new one, and move the
// bed tracking counter by the difference. Either every step lands or none
// does, so the counter cannot drift from the rows.
func (repo *repositoryImpl) SwapActive(ctx context.Context, confirmation model.BedConfirmation) (oldBeds int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.SwapActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	apartmentID := ""
	if confirmation.ApartmentID.Valid {
		apartmentID = confirmation.ApartmentID.String
	}

	oldBeds, err = repo.voidActive(ctx, tx, confirmation.WeekID, apartmentID, confirmation.PhoneNumber, model.VoidReasonReplaced)
	if err != nil {
		return 0, err
	}

	if err = repo.confirmations.InsertTx(ctx, tx, confirmation); err != nil {
		return 0, fmt.Errorf("failed to insert confirmation: %w", err)
	}

	if delta := confirmation.BedsConfirmed - oldBeds; delta != 0 {
		if err = repo.weeks.AdjustConfirmedTx(ctx, tx, confirmation.WeekID, delta); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to commit confirmation swap: %w", err)
	}

	return oldBeds, nil
}

// VoidActive retires a responder's active confirmation without a replacement,
// decrementing the tracking counter symmetrically.
func (repo *repositoryImpl) VoidActive(ctx context.Context, weekID, apartmentID, phoneNumber, reason string) (oldBeds int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.VoidActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	oldBeds, err = repo.voidActive(ctx, tx, weekID, apartmentID, phoneNumber, reason)
	if err != nil {
		return 0, err
	}

	if oldBeds != 0 {
		if err = repo.weeks.AdjustConfirmedTx(ctx, tx, weekID, -oldBeds); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to commit confirmation void: %w", err)
	}

	return oldBeds, nil
}

func (repo *repositoryImpl) voidActive(ctx context.Context, tx *sqlx.Tx, weekID, apartmentID, phoneNumber, reason string) (oldBeds int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.voidActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, arg := activeWhere(apartmentID)
	query := fmt.Sprintf(`UPDATE %s SET voided = true, voided_at = $3, void_reason = $4, modified_at = $3
		WHERE %s RETURNING beds_confirmed`, model.ConfirmationTableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var voided []int
	if err = tx.SelectContext(ctx, &voided, query, weekID, arg(phoneNumber), timezone.Now(), reason); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to void active confirmations: %w", err)
	}

	for _, beds := range voided {
		oldBeds += beds
	}

	return oldBeds, nil
}

func (repo *repositoryImpl) ListActive(ctx context.Context, weekID string) (confirmations []model.BedConfirmation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE week_id = $1 AND voided = false ORDER BY created_at ASC", model.ConfirmationTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &confirmations, query, weekID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list active confirmations: %w", err)
	}

	return confirmations, nil
}

func (repo *repositoryImpl) InsertCallLog(ctx context.Context, call model.AvailabilityCall) error {
	return repo.callLog.Insert(ctx, call) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertIncoming(ctx context.Context, call model.IncomingCall) error {
	return repo.incoming.Insert(ctx, call) //nolint:wrapcheck
}

// HasResponded reports whether any answer, yes or no, was recorded for the
// phone number this week.
func (repo *repositoryImpl) HasResponded(ctx context.Context, weekID, phoneNumber string) (responded bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.HasResponded")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT EXISTS(
		SELECT 1 FROM %s WHERE week_id = $1 AND RIGHT(regexp_replace(phone_number, '[^0-9]', '', 'g'), 10) = $2
	)`, model.CallLogTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &responded, query, weekID, phone.Last10(phoneNumber)); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check weekly response: %w", err)
	}

	return responded, nil
}
