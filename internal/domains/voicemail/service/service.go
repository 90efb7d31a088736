package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/internal/domains/voicemail/model"
	"hostline/internal/domains/voicemail/model/dto"
	"hostline/internal/domains/voicemail/repository"
	"hostline/shared"
	"hostline/shared/constant"
	"hostline/shared/failure"
	gModel "hostline/shared/model"
	"hostline/shared/timezone"
)

type Voicemail interface {
	SaveRecording(ctx context.Context, req dto.SaveRecordingRequest) (model.Voicemail, error)
	Get(ctx context.Context, voicemailID string) (model.Voicemail, error)
	GetBox(ctx context.Context, boxID string) (model.VoicemailBox, error)
	GetBoxByNumber(ctx context.Context, boxNumber string) (model.VoicemailBox, error)
	ListBoxes(ctx context.Context) ([]dto.BoxResponse, error)
	ListMessages(ctx context.Context, boxNumber string) ([]dto.VoicemailResponse, error)
	MarkListened(ctx context.Context, voicemailID string) error
	Delete(ctx context.Context, voicemailID string) error
	MarkEmailed(ctx context.Context, voicemailID string) error
}

type serviceImpl struct {
	repo repository.Voicemail
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Voicemail, cfg *config.Config, otl otel.Otel) Voicemail {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

// SaveRecording files a completed recording into its box. A missing box is
// created on the fly rather than rejecting the call: the recording already
// happened and losing it over configuration is worse than auto-creating an
// unnamed box.
func (s *serviceImpl) SaveRecording(ctx context.Context, req dto.SaveRecordingRequest) (voicemail model.Voicemail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.SaveRecording")
	defer scope.End()
	defer scope.TraceIfError(err)

	box, err := s.repo.GetBoxByNumber(ctx, req.BoxNumber)
	if err != nil {
		return voicemail, fmt.Errorf("failed to get voicemail box: %w", err)
	}

	if box.ID == "" {
		box = model.VoicemailBox{
			ID:        uuid.NewString(),
			BoxNumber: req.BoxNumber,
			Name:      "Box " + req.BoxNumber,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		}

		if err = s.repo.InsertBox(ctx, box); err != nil {
			return voicemail, fmt.Errorf("failed to create voicemail box: %w", err)
		}

		log.Warn().Str("box_number", req.BoxNumber).Msg("Created missing voicemail box")
	}

	voicemail = model.Voicemail{
		ID:           uuid.NewString(),
		BoxID:        box.ID,
		CallerNumber: req.CallerNumber,
		CallerName:   req.CallerName,
		RecordingURL: req.RecordingURL,
		Duration:     req.Duration,
		Status:       model.StatusNew,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.Insert(ctx, voicemail); err != nil {
		log.Error().Err(err).Msg("failed to save voicemail")

		return model.Voicemail{}, fmt.Errorf("failed to save voicemail: %w", err)
	}

	log.Info().
		Str("voicemail_id", voicemail.ID).
		Str("box_number", req.BoxNumber).
		Int("duration", req.Duration).
		Msg("Saved voicemail")

	return voicemail, nil
}

func (s *serviceImpl) Get(ctx context.Context, voicemailID string) (voicemail model.Voicemail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	voicemail, err = s.repo.Get(ctx, shared.FilterByID(voicemailID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get voicemail")

		return voicemail, fmt.Errorf("failed to get voicemail: %w", err)
	}

	if voicemail.ID == "" {
		return voicemail, failure.NotFound("voicemail not found") //nolint:wrapcheck
	}

	return voicemail, nil
}

func (s *serviceImpl) GetBox(ctx context.Context, boxID string) (box model.VoicemailBox, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.GetBox")
	defer scope.End()
	defer scope.TraceIfError(err)

	box, err = s.repo.GetBox(ctx, boxID)
	if err != nil {
		return box, fmt.Errorf("failed to get voicemail box: %w", err)
	}

	if box.ID == "" {
		return box, failure.NotFound("voicemail box not found") //nolint:wrapcheck
	}

	return box, nil
}

func (s *serviceImpl) GetBoxByNumber(ctx context.Context, boxNumber string) (box model.VoicemailBox, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.GetBoxByNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	box, err = s.repo.GetBoxByNumber(ctx, boxNumber)
	if err != nil {
		return box, fmt.Errorf("failed to get voicemail box: %w", err)
	}

	return box, nil
}

func (s *serviceImpl) ListBoxes(ctx context.Context) (res []dto.BoxResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.ListBoxes")
	defer scope.End()
	defer scope.TraceIfError(err)

	boxes, err := s.repo.ListBoxes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voicemail boxes: %w", err)
	}

	res = make([]dto.BoxResponse, 0, len(boxes))

	for _, box := range boxes {
		item := dto.BoxResponse{}
		item.FromModel(box)
		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) ListMessages(ctx context.Context, boxNumber string) (res []dto.VoicemailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.ListMessages")
	defer scope.End()
	defer scope.TraceIfError(err)

	box, err := s.repo.GetBoxByNumber(ctx, boxNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get voicemail box: %w", err)
	}

	if box.ID == "" {
		return nil, failure.NotFound("voicemail box not found") //nolint:wrapcheck
	}

	voicemails, err := s.repo.ListByBox(ctx, box.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list voicemails: %w", err)
	}

	res = make([]dto.VoicemailResponse, 0, len(voicemails))

	for _, voicemail := range voicemails {
		item := dto.VoicemailResponse{}
		item.FromModel(voicemail)
		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) MarkListened(ctx context.Context, voicemailID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.MarkListened")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, voicemailID); err != nil {
		return err
	}

	if err = s.repo.MarkListened(ctx, voicemailID); err != nil {
		return fmt.Errorf("failed to mark voicemail listened: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, voicemailID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, voicemailID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(voicemailID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete voicemail: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkEmailed(ctx context.Context, voicemailID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".voicemail.MarkEmailed")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.MarkEmailed(ctx, voicemailID); err != nil {
		return fmt.Errorf("failed to mark voicemail emailed: %w", err)
	}

	return nil
}
