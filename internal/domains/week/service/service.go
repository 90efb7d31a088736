package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/internal/domains/week/model"
	"hostline/internal/domains/week/model/dto"
	"hostline/internal/domains/week/repository"
	"hostline/shared"
	"hostline/shared/constant"
	"hostline/shared/failure"
	gModel "hostline/shared/model"
	"hostline/shared/timezone"
)

const daysPerWeek = 7

type Week interface {
	GetOrCreateCurrent(ctx context.Context) (model.Week, error)
	Get(ctx context.Context, id string) (model.Week, error)
	Status(ctx context.Context, weekID string) (dto.WeekStatusResponse, error)
	SetNeeded(ctx context.Context, weekID string, bedsNeeded int) error
	Reconcile(ctx context.Context, weekID string) (dto.ReconcileResponse, error)
}

type serviceImpl struct {
	repo repository.Week
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Week, cfg *config.Config, otl otel.Otel) Week {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

// GetOrCreateCurrent resolves the week containing today, creating it (with a
// zeroed tracking row) when none exists yet. This is the only definition of
// "current week" in the system; weeks start on Friday, and the rollover
// retires the previous week's current flag in the same transaction that
// creates the new one.
func (s *serviceImpl) GetOrCreateCurrent(ctx context.Context) (week model.Week, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".week.GetOrCreateCurrent")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Now()

	week, err = s.repo.GetContaining(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up current week")

		return week, fmt.Errorf("failed to look up current week: %w", err)
	}

	if week.ID != "" {
		return week, nil
	}

	start := weekStart(today)
	week = model.Week{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, daysPerWeek-1),
		IsCurrent: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tracking := model.BedTracking{
		WeekID: week.ID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.CreateCurrent(ctx, week, tracking); err != nil {
		log.Error().Err(err).Msg("failed to create current week")

		return model.Week{}, fmt.Errorf("failed to create current week: %w", err)
	}

	scope.AddEvent("Created week " + week.ID)
	log.Info().
		Str("week_id", week.ID).
		Str("start", week.StartDate.Format(constant.DateOnly)).
		Msg("Created current week")

	return week, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (week model.Week, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".week.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	week, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get week")

		return week, fmt.Errorf("failed to get week: %w", err)
	}

	if week.ID == "" {
		return week, failure.NotFound("week not found") //nolint:wrapcheck
	}

	return week, nil
}

func (s *serviceImpl) Status(ctx context.Context, weekID string) (res dto.WeekStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".week.Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	week, err := s.Get(ctx, weekID)
	if err != nil {
		return res, err
	}

	tracking, err := s.repo.GetTracking(ctx, weekID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bed tracking")

		return res, fmt.Errorf("failed to get bed tracking: %w", err)
	}

	res.Week.FromModel(week)
	res.BedsNeeded = tracking.BedsNeeded
	res.BedsConfirmed = tracking.BedsConfirmed
	res.TargetMet = tracking.TargetMet()

	return res, nil
}

func (s *serviceImpl) SetNeeded(ctx context.Context, weekID string, bedsNeeded int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".week.SetNeeded")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, weekID); err != nil {
		return err
	}

	if err = s.repo.SetNeeded(ctx, weekID, bedsNeeded); err != nil {
		log.Error().Err(err).Msg("failed to set beds needed")

		return fmt.Errorf("failed to set beds needed: %w", err)
	}

	return nil
}

// Reconcile recomputes the confirmed counter from confirmation rows. Drift can
// accumulate from partial failures on older rows written before the swap
// became transactional; this is the manual correction path.
func (s *serviceImpl) Reconcile(ctx context.Context, weekID string) (res dto.ReconcileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".week.Reconcile")
	defer scope.End()
	defer scope.TraceIfError(err)

	tracking, err := s.repo.GetTracking(ctx, weekID)
	if err != nil {
		return res, fmt.Errorf("failed to get bed tracking: %w", err)
	}

	confirmed, err := s.repo.Reconcile(ctx, weekID)
	if err != nil {
		log.Error().Err(err).Msg("failed to reconcile bed tracking")

		return res, fmt.Errorf("failed to reconcile bed tracking: %w", err)
	}

	res = dto.ReconcileResponse{
		WeekID:        weekID,
		BedsConfirmed: confirmed,
		Drift:         tracking.BedsConfirmed - confirmed,
	}

	if res.Drift != 0 {
		log.Warn().Str("week_id", weekID).Int("drift", res.Drift).Msg("Bed tracking drift corrected")
	}

	return res, nil
}

// weekStart returns the Friday on or before the given day, at midnight in the
// application timezone.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) - int(time.Friday) + daysPerWeek) % daysPerWeek
	start := day.AddDate(0, 0, -offset)

	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, timezone.GetLocation())
}
