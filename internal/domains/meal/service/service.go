package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/internal/domains/meal/model"
	"hostline/internal/domains/meal/model/dto"
	"hostline/internal/domains/meal/repository"
	"hostline/shared/constant"
	gModel "hostline/shared/model"
	"hostline/shared/timezone"
)

type Meal interface {
	FindHostByPhone(ctx context.Context, phoneNumber string) (model.MealHost, error)
	RegisterHost(ctx context.Context, phoneNumber, personName string) (model.MealHost, error)
	RecordAvailability(ctx context.Context, req dto.RecordMealRequest) error
	RecordUnavailable(ctx context.Context, weekID, hostID string) error
	ActiveAvailability(ctx context.Context, weekID string) ([]dto.MealAvailabilityResponse, error)
}

type serviceImpl struct {
	repo repository.Meal
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Meal, cfg *config.Config, otl otel.Otel) Meal {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *serviceImpl) FindHostByPhone(ctx context.Context, phoneNumber string) (host model.MealHost, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".meal.FindHostByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	host, err = s.repo.FindHostByPhone(ctx, phoneNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to find meal host")

		return host, fmt.Errorf("failed to find meal host: %w", err)
	}

	return host, nil
}

// RegisterHost creates a meal host on first contact; known numbers reuse the
// existing row.
func (s *serviceImpl) RegisterHost(ctx context.Context, phoneNumber, personName string) (host model.MealHost, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".meal.RegisterHost")
	defer scope.End()
	defer scope.TraceIfError(err)

	host, err = s.repo.FindHostByPhone(ctx, phoneNumber)
	if err != nil {
		return host, fmt.Errorf("failed to check existing meal host: %w", err)
	}

	if host.ID != "" {
		return host, nil
	}

	host = model.MealHost{
		ID:          uuid.NewString(),
		PhoneNumber: phoneNumber,
		PersonName:  personName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.InsertHost(ctx, host); err != nil {
		log.Error().Err(err).Msg("failed to register meal host")

		return model.MealHost{}, fmt.Errorf("failed to register meal host: %w", err)
	}

	log.Info().Str("meal_host_id", host.ID).Msg("Registered new meal host")

	return host, nil
}

// RecordAvailability stores a host's meal answer for the week, replacing any
// earlier answer so the latest one always wins.
func (s *serviceImpl) RecordAvailability(ctx context.Context, req dto.RecordMealRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".meal.RecordAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	availability := model.MealAvailability{
		ID:          uuid.NewString(),
		WeekID:      req.WeekID,
		HostID:      req.HostID,
		DayGuests:   req.DayGuests,
		NightGuests: req.NightGuests,
		Status:      model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.SwapAvailability(ctx, availability); err != nil {
		log.Error().Err(err).Msg("failed to record meal availability")

		return fmt.Errorf("failed to record meal availability: %w", err)
	}

	log.Info().
		Str("week_id", req.WeekID).
		Int("day_guests", req.DayGuests).
		Int("night_guests", req.NightGuests).
		Msg("Recorded meal availability")

	return nil
}

func (s *serviceImpl) RecordUnavailable(ctx context.Context, weekID, hostID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".meal.RecordUnavailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	availability := model.MealAvailability{
		ID:     uuid.NewString(),
		WeekID: weekID,
		HostID: hostID,
		Status: model.StatusUnavailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.SwapAvailability(ctx, availability); err != nil {
		log.Error().Err(err).Msg("failed to record meal unavailability")

		return fmt.Errorf("failed to record meal unavailability: %w", err)
	}

	return nil
}

func (s *serviceImpl) ActiveAvailability(ctx context.Context, weekID string) (res []dto.MealAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".meal.ActiveAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	availability, err := s.repo.ListActive(ctx, weekID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list meal availability")

		return nil, fmt.Errorf("failed to list meal availability: %w", err)
	}

	res = make([]dto.MealAvailabilityResponse, 0, len(availability))

	for _, item := range availability {
		row := dto.MealAvailabilityResponse{}
		row.FromModel(item)

		if host, hostErr := s.repo.GetHost(ctx, item.HostID); hostErr == nil {
			row.HostName = host.PersonName
		}

		res = append(res, row)
	}

	return res, nil
}
