package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/infras/telephony"
	"hostline/internal/domains/dialer/model"
	"hostline/internal/domains/dialer/model/dto"
	"hostline/internal/domains/dialer/repository"
	hostRepo "hostline/internal/domains/host/repository"
	weekRepo "hostline/internal/domains/week/repository"
	"hostline/shared/constant"
	gModel "hostline/shared/model"
	"hostline/shared/timezone"
)

type Dialer interface {
	Start(ctx context.Context, weekID string) (dto.StatusResponse, error)
	Advance(ctx context.Context, weekID string) error
	OnCallAnswered(ctx context.Context, queueID string) error
	OnCallEnded(ctx context.Context, queueID, callStatus string) error
	Status(ctx context.Context, weekID string) (dto.StatusResponse, error)
	Stop(ctx context.Context, weekID string) error
}

type serviceImpl struct {
	repo      repository.Dialer
	weeks     weekRepo.Week
	hosts     hostRepo.Host
	telephony telephony.Client
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Dialer, weeks weekRepo.Week, hosts hostRepo.Host, tel telephony.Client, cfg *config.Config, otl otel.Otel) Dialer {
	return &serviceImpl{
		repo:      repo,
		weeks:     weeks,
		hosts:     hosts,
		telephony: tel,
		cfg:       cfg,
		otel:      otl,
	}
}

// Start builds a fresh call queue for the week and dials the first host. The
// queue is ordered so hosts who helped least recently go first, with total
// times helped as the tiebreak. When the bed target is already met no queue
// is built and no call is placed.
func (s *serviceImpl) Start(ctx context.Context, weekID string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dialer.Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	tracking, err := s.weeks.GetTracking(ctx, weekID)
	if err != nil {
		return res, fmt.Errorf("failed to get bed tracking: %w", err)
	}

	if err = s.repo.ClearWeek(ctx, weekID); err != nil {
		return res, err
	}

	if tracking.TargetMet() {
		log.Info().Str("week_id", weekID).Msg("Bed target already met, not dialing")

		return s.Status(ctx, weekID)
	}

	hosts, err := s.hosts.EligibleForWeek(ctx, weekID)
	if err != nil {
		return res, fmt.Errorf("failed to list eligible hosts: %w", err)
	}

	if len(hosts) == 0 {
		log.Info().Str("week_id", weekID).Msg("No eligible hosts to dial")

		return s.Status(ctx, weekID)
	}

	entries := make([]model.CallQueueEntry, 0, len(hosts))

	for i, host := range hosts {
		entries = append(entries, model.CallQueueEntry{
			ID:          uuid.NewString(),
			WeekID:      weekID,
			ApartmentID: host.ID,
			HostName:    host.PersonName,
			PhoneNumber: host.PhoneNumber,
			Priority:    i + 1,
			Status:      model.StatusPending,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		})
	}

	if err = s.repo.InsertBulk(ctx, entries); err != nil {
		return res, fmt.Errorf("failed to build call queue: %w", err)
	}

	log.Info().Str("week_id", weekID).Int("queued", len(entries)).Msg("Built call queue")

	if err = s.Advance(ctx, weekID); err != nil {
		return res, err
	}

	return s.Status(ctx, weekID)
}

// Advance moves the dialing run forward one step. It re-checks the bed
// target, respects the single in-flight slot, and dials the next pending
// host. A placement failure marks the entry failed and tries the next one,
// so one bad number never stalls the run.
func (s *serviceImpl) Advance(ctx context.Context, weekID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dialer.Advance")
	defer scope.End()
	defer scope.TraceIfError(err)

	for {
		tracking, err := s.weeks.GetTracking(ctx, weekID)
		if err != nil {
			return fmt.Errorf("failed to get bed tracking: %w", err)
		}

		if tracking.TargetMet() {
			log.Info().Str("week_id", weekID).Msg("Bed target met, stopping dialing run")

			return s.repo.ClearWeek(ctx, weekID)
		}

		inFlight, err := s.repo.InFlight(ctx, weekID)
		if err != nil {
			return err
		}

		if inFlight.ID != "" {
			return nil
		}

		next, err := s.repo.NextPending(ctx, weekID)
		if err != nil {
			return err
		}

		if next.ID == "" {
			log.Info().Str("week_id", weekID).Msg("Call queue exhausted")

			return nil
		}

		if err = s.repo.SetStatus(ctx, next.ID, model.StatusCalling, ""); err != nil {
			return err
		}

		sid, err := s.telephony.CreateCall(ctx, telephony.CreateCallParams{
			To:                next.PhoneNumber,
			AnswerURL:         s.answerURL(weekID, next),
			StatusCallbackURL: s.callEndedURL(next.ID, weekID),
		})
		if err != nil {
			log.Error().Err(err).
				Str("queue_id", next.ID).
				Str("host", next.HostName).
				Msg("Failed to place outbound call")

			if err = s.repo.SetStatus(ctx, next.ID, model.StatusFailed, ""); err != nil {
				return err
			}

			continue
		}

		log.Info().
			Str("queue_id", next.ID).
			Str("host", next.HostName).
			Str("call_sid", sid).
			Msg("Placed outbound call")

		return s.repo.SetStatus(ctx, next.ID, model.StatusCalling, sid)
	}
}

// OnCallAnswered moves a dialed entry into in_progress once the host picks
// up. A stale id after a stop is ignored.
func (s *serviceImpl) OnCallAnswered(ctx context.Context, queueID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dialer.OnCallAnswered")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry, err := s.repo.Get(ctx, queueID)
	if err != nil {
		return err
	}

	if entry.ID == "" || entry.Terminal() {
		return nil
	}

	return s.repo.SetStatus(ctx, queueID, model.StatusInProgress, "")
}

// OnCallEnded handles the provider's terminal status callback for one queue
// entry, then advances the run after a short settle delay so a response
// recorded at the very end of the call lands before the target re-check.
func (s *serviceImpl) OnCallEnded(ctx context.Context, queueID, callStatus string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dialer.OnCallEnded")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry, err := s.repo.Get(ctx, queueID)
	if err != nil {
		return err
	}

	// Stale callback after a stop or completed run.
	if entry.ID == "" {
		log.Debug().Str("queue_id", queueID).Msg("Ignoring callback for unknown queue entry")

		return nil
	}

	status := terminalStatus(callStatus)

	if err = s.repo.SetStatus(ctx, queueID, status, ""); err != nil {
		return err
	}

	log.Info().
		Str("queue_id", queueID).
		Str("call_status", callStatus).
		Str("status", status).
		Msg("Outbound call ended")

	if delay := s.cfg.Dialer.SettleDelaySeconds; delay > 0 {
		time.Sleep(time.Duration(delay) * time.Second)
	}

	return s.Advance(ctx, entry.WeekID)
}

func (s *serviceImpl) Status(ctx context.Context, weekID string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dialer.Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	tracking, err := s.weeks.GetTracking(ctx, weekID)
	if err != nil {
		return res, fmt.Errorf("failed to get bed tracking: %w", err)
	}

	entries, err := s.repo.ListWeek(ctx, weekID)
	if err != nil {
		return res, err
	}

	res = dto.StatusResponse{
		WeekID:        weekID,
		TargetMet:     tracking.TargetMet(),
		BedsNeeded:    tracking.BedsNeeded,
		BedsConfirmed: tracking.BedsConfirmed,
		Queue:         make([]dto.QueueEntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		switch {
		case entry.Status == model.StatusPending:
			res.Pending++
		case entry.InFlight():
			res.InFlight++
		case entry.Terminal():
			res.Done++
		}

		item := dto.QueueEntryResponse{}
		item.FromModel(entry)
		res.Queue = append(res.Queue, item)
	}

	res.Running = res.Pending > 0 || res.InFlight > 0

	return res, nil
}

// Stop clears the week's queue. Callbacks from calls already in the air find
// no matching entry and are ignored.
func (s *serviceImpl) Stop(ctx context.Context, weekID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dialer.Stop")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.ClearWeek(ctx, weekID); err != nil {
		return err
	}

	log.Info().Str("week_id", weekID).Msg("Stopped dialing run")

	return nil
}

func (s *serviceImpl) answerURL(weekID string, entry model.CallQueueEntry) string {
	q := url.Values{}
	q.Set(constant.RequestParamStep, "initial")
	q.Set(constant.RequestParamWeekID, weekID)
	q.Set(constant.RequestParamApartmentID, entry.ApartmentID)
	q.Set(constant.RequestParamQueueID, entry.ID)

	return s.cfg.App.PublicBaseURL + "/voice/availability?" + q.Encode()
}

func (s *serviceImpl) callEndedURL(queueID, weekID string) string {
	q := url.Values{}
	q.Set(constant.RequestParamQueueID, queueID)
	q.Set(constant.RequestParamWeekID, weekID)

	return s.cfg.App.PublicBaseURL + "/voice/dialer/call-ended?" + q.Encode()
}

// terminalStatus maps a provider call status onto a queue entry status.
func terminalStatus(callStatus string) string {
	switch callStatus {
	case constant.CallStatusCompleted:
		return model.StatusCompleted
	case constant.CallStatusBusy, constant.CallStatusNoAnswer:
		return model.StatusNoAnswer
	default:
		return model.StatusFailed
	}
}
