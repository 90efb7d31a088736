package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/internal/domains/host/model"
	"hostline/internal/domains/host/model/dto"
	"hostline/internal/domains/host/repository"
	"hostline/shared"
	"hostline/shared/constant"
	"hostline/shared/failure"
	gModel "hostline/shared/model"
	"hostline/shared/timezone"
)

type Host interface {
	FindByPhone(ctx context.Context, phoneNumber string) (model.Apartment, error)
	Get(ctx context.Context, id string) (model.Apartment, error)
	Register(ctx context.Context, req dto.RegisterRequest) (model.Apartment, error)
	EligibleForWeek(ctx context.Context, weekID string) ([]model.Apartment, error)
	MarkHelped(ctx context.Context, apartmentID string) error
}

type serviceImpl struct {
	repo repository.Host
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Host, cfg *config.Config, otl otel.Otel) Host {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *serviceImpl) FindByPhone(ctx context.Context, phoneNumber string) (apartment model.Apartment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".host.FindByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	apartment, err = s.repo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to find apartment by phone")

		return apartment, fmt.Errorf("failed to find apartment by phone: %w", err)
	}

	return apartment, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (apartment model.Apartment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".host.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	apartment, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get apartment")

		return apartment, fmt.Errorf("failed to get apartment: %w", err)
	}

	if apartment.ID == "" {
		return apartment, failure.NotFound("apartment not found") //nolint:wrapcheck
	}

	return apartment, nil
}

// Register creates an apartment for a first-time caller, or refreshes the
// existing row when the phone number is already known. The phone number is
// the dedup key, matched with the same widening passes used for inbound
// caller resolution.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (apartment model.Apartment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".host.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.repo.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing apartment")

		return apartment, fmt.Errorf("failed to check existing apartment: %w", err)
	}

	if existing.ID != "" {
		update := map[string]any{
			model.FieldNumberOfBeds:     req.NumberOfBeds,
			model.FieldWantsWeeklyCalls: req.WantsWeeklyCalls,
		}

		if req.PersonName != "" {
			update[model.FieldPersonName] = req.PersonName
		}

		if req.Preferences != "" {
			update[model.FieldPreferences] = req.Preferences
		}

		update[constant.FieldModifiedAt] = timezone.Now()

		if err = s.repo.Update(ctx, update, shared.FilterByID(existing.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update apartment")

			return apartment, fmt.Errorf("failed to update apartment: %w", err)
		}

		return s.Get(ctx, existing.ID)
	}

	apartment = model.Apartment{
		ID:               uuid.NewString(),
		PhoneNumber:      req.PhoneNumber,
		PersonName:       req.PersonName,
		NumberOfBeds:     req.NumberOfBeds,
		Preferences:      req.Preferences,
		WantsWeeklyCalls: req.WantsWeeklyCalls,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.Insert(ctx, apartment); err != nil {
		log.Error().Err(err).Msg("failed to register apartment")

		return model.Apartment{}, fmt.Errorf("failed to register apartment: %w", err)
	}

	log.Info().
		Str("apartment_id", apartment.ID).
		Int("beds", apartment.NumberOfBeds).
		Msg("Registered new apartment")

	return apartment, nil
}

func (s *serviceImpl) EligibleForWeek(ctx context.Context, weekID string) (apartments []model.Apartment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".host.EligibleForWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	apartments, err = s.repo.EligibleForWeek(ctx, weekID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list eligible apartments")

		return nil, fmt.Errorf("failed to list eligible apartments: %w", err)
	}

	return apartments, nil
}

func (s *serviceImpl) MarkHelped(ctx context.Context, apartmentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".host.MarkHelped")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.MarkHelped(ctx, apartmentID); err != nil {
		log.Error().Err(err).Msg("failed to mark apartment helped")

		return fmt.Errorf("failed to mark apartment helped: %w", err)
	}

	return nil
}
