package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/internal/domains/availability/model"
	"hostline/internal/domains/availability/model/dto"
	"hostline/internal/domains/availability/repository"
	hostRepo "hostline/internal/domains/host/repository"
	"hostline/shared/constant"
	gModel "hostline/shared/model"
	"hostline/shared/timezone"
)

type Availability interface {
	RecordResponse(ctx context.Context, req dto.RecordResponseRequest) error
	Decline(ctx context.Context, req dto.DeclineRequest) error
	VoidConfirmation(ctx context.Context, weekID, apartmentID, phoneNumber string) error
	ActiveConfirmations(ctx context.Context, weekID string) ([]dto.ConfirmationResponse, error)
	LogIncomingCall(ctx context.Context, callSID, callerNumber, apartmentID, menuPath string) error
	HasResponded(ctx context.Context, weekID, phoneNumber string) (bool, error)
}

type serviceImpl struct {
	repo  repository.Availability
	hosts hostRepo.Host
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Availability, hosts hostRepo.Host, cfg *config.Config, otl otel.Otel) Availability {
	return &serviceImpl{
		repo:  repo,
		hosts: hosts,
		cfg:   cfg,
		otel:  otl,
	}
}

// RecordResponse stores one yes answer for the week. Calling it again for the
// same responder replaces the earlier answer instead of stacking a second
// one: the swap voids the old confirmation and moves the counter by the
// difference, so the net effect of any number of answers is the latest one.
func (s *serviceImpl) RecordResponse(ctx context.Context, req dto.RecordResponseRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.RecordResponse")
	defer scope.End()
	defer scope.TraceIfError(err)

	confirmation := model.BedConfirmation{
		ID:            uuid.NewString(),
		WeekID:        req.WeekID,
		PhoneNumber:   req.PhoneNumber,
		BedsConfirmed: req.Beds,
		ConfirmedVia:  req.ConfirmedVia,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if req.ApartmentID != "" {
		confirmation.ApartmentID = sql.NullString{String: req.ApartmentID, Valid: true}
	}

	oldBeds, err := s.repo.SwapActive(ctx, confirmation)
	if err != nil {
		log.Error().Err(err).Msg("failed to record availability response")

		return fmt.Errorf("failed to record availability response: %w", err)
	}

	callLog := model.AvailabilityCall{
		ID:           uuid.NewString(),
		WeekID:       req.WeekID,
		PhoneNumber:  req.PhoneNumber,
		ResponseType: model.ResponseYes,
		BedsOffered:  req.Beds,
		CallSID:      req.CallSID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.InsertCallLog(ctx, callLog); err != nil {
		log.Error().Err(err).Msg("failed to log availability call")

		return fmt.Errorf("failed to log availability call: %w", err)
	}

	// Helped stats move only on the first answer of the week; a corrected
	// answer is still one helping.
	if oldBeds == 0 && req.ApartmentID != "" {
		if err = s.hosts.MarkHelped(ctx, req.ApartmentID); err != nil {
			log.Error().Err(err).Msg("failed to mark apartment helped")

			return fmt.Errorf("failed to mark apartment helped: %w", err)
		}
	}

	log.Info().
		Str("week_id", req.WeekID).
		Int("beds", req.Beds).
		Int("replaced_beds", oldBeds).
		Msg("Recorded availability response")

	return nil
}

// Decline logs a no answer and retires any earlier yes for the week.
func (s *serviceImpl) Decline(ctx context.Context, req dto.DeclineRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Decline")
	defer scope.End()
	defer scope.TraceIfError(err)

	oldBeds, err := s.repo.VoidActive(ctx, req.WeekID, req.ApartmentID, req.PhoneNumber, model.VoidReasonDeclined)
	if err != nil {
		log.Error().Err(err).Msg("failed to void confirmation on decline")

		return fmt.Errorf("failed to void confirmation on decline: %w", err)
	}

	callLog := model.AvailabilityCall{
		ID:           uuid.NewString(),
		WeekID:       req.WeekID,
		PhoneNumber:  req.PhoneNumber,
		ResponseType: model.ResponseNo,
		CallSID:      req.CallSID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.InsertCallLog(ctx, callLog); err != nil {
		log.Error().Err(err).Msg("failed to log availability decline")

		return fmt.Errorf("failed to log availability decline: %w", err)
	}

	if oldBeds > 0 {
		log.Info().Str("week_id", req.WeekID).Int("released_beds", oldBeds).Msg("Decline released earlier confirmation")
	}

	return nil
}

func (s *serviceImpl) VoidConfirmation(ctx context.Context, weekID, apartmentID, phoneNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.VoidConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.VoidActive(ctx, weekID, apartmentID, phoneNumber, model.VoidReasonManual); err != nil {
		log.Error().Err(err).Msg("failed to void confirmation")

		return fmt.Errorf("failed to void confirmation: %w", err)
	}

	return nil
}

func (s *serviceImpl) ActiveConfirmations(ctx context.Context, weekID string) (res []dto.ConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.ActiveConfirmations")
	defer scope.End()
	defer scope.TraceIfError(err)

	confirmations, err := s.repo.ListActive(ctx, weekID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active confirmations")

		return nil, fmt.Errorf("failed to list active confirmations: %w", err)
	}

	res = make([]dto.ConfirmationResponse, 0, len(confirmations))

	for _, confirmation := range confirmations {
		item := dto.ConfirmationResponse{}
		item.FromModel(confirmation)
		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) LogIncomingCall(ctx context.Context, callSID, callerNumber, apartmentID, menuPath string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.LogIncomingCall")
	defer scope.End()
	defer scope.TraceIfError(err)

	call := model.IncomingCall{
		ID:           uuid.NewString(),
		CallSID:      callSID,
		CallerNumber: callerNumber,
		MenuPath:     menuPath,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if apartmentID != "" {
		call.ApartmentID = sql.NullString{String: apartmentID, Valid: true}
	}

	if err = s.repo.InsertIncoming(ctx, call); err != nil {
		log.Error().Err(err).Msg("failed to log incoming call")

		return fmt.Errorf("failed to log incoming call: %w", err)
	}

	return nil
}

func (s *serviceImpl) HasResponded(ctx context.Context, weekID, phoneNumber string) (responded bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.HasResponded")
	defer scope.End()
	defer scope.TraceIfError(err)

	responded, err = s.repo.HasResponded(ctx, weekID, phoneNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check weekly response")

		return false, fmt.Errorf("failed to check weekly response: %w", err)
	}

	return responded, nil
}
