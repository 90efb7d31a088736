package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/mailer"
	"hostline/infras/otel"
	availabilityService "hostline/internal/domains/availability/service"
	hostModel "hostline/internal/domains/host/model"
	hostRepo "hostline/internal/domains/host/repository"
	mealService "hostline/internal/domains/meal/service"
	"hostline/internal/domains/report/model/dto"
	voicemailService "hostline/internal/domains/voicemail/service"
	weekService "hostline/internal/domains/week/service"
	"hostline/shared"
	"hostline/shared/constant"
	"hostline/shared/failure"
	"hostline/shared/timezone"
)

type Report interface {
	SendWeekly(ctx context.Context, req dto.WeeklyReportRequest) (dto.ReportResponse, error)
	SendVoicemail(ctx context.Context, req dto.VoicemailReportRequest) (dto.ReportResponse, error)
}

type serviceImpl struct {
	mailer       mailer.Mailer
	weeks        weekService.Week
	availability availabilityService.Availability
	meals        mealService.Meal
	voicemails   voicemailService.Voicemail
	hosts        hostRepo.Host
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	mail mailer.Mailer,
	weeks weekService.Week,
	availability availabilityService.Availability,
	meals mealService.Meal,
	voicemails voicemailService.Voicemail,
	hosts hostRepo.Host,
	cfg *config.Config,
	otl otel.Otel,
) Report {
	return &serviceImpl{
		mailer:       mail,
		weeks:        weeks,
		availability: availability,
		meals:        meals,
		voicemails:   voicemails,
		hosts:        hosts,
		cfg:          cfg,
		otel:         otl,
	}
}

// SendWeekly mails the week's bed and meal picture to the coordinators.
func (s *serviceImpl) SendWeekly(ctx context.Context, req dto.WeeklyReportRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.SendWeekly")
	defer scope.End()
	defer scope.TraceIfError(err)

	week, err := s.weeks.Get(ctx, req.WeekID)
	if err != nil {
		return res, err
	}

	status, err := s.weeks.Status(ctx, req.WeekID)
	if err != nil {
		return res, err
	}

	confirmations, err := s.availability.ActiveConfirmations(ctx, req.WeekID)
	if err != nil {
		return res, err
	}

	meals, err := s.meals.ActiveAvailability(ctx, req.WeekID)
	if err != nil {
		return res, err
	}

	data := weeklyReportData{
		WeekStart:     timezone.Format(week.StartDate, constant.DateOnly),
		WeekEnd:       timezone.Format(week.EndDate, constant.DateOnly),
		BedsNeeded:    status.BedsNeeded,
		BedsConfirmed: status.BedsConfirmed,
		TargetMet:     status.TargetMet,
	}

	for _, confirmation := range confirmations {
		row := bedRow{
			HostName:    "Unregistered caller",
			PhoneNumber: confirmation.PhoneNumber,
			Beds:        confirmation.BedsConfirmed,
			Via:         confirmation.ConfirmedVia,
		}

		if confirmation.ApartmentID != "" {
			if apartment, hostErr := s.hosts.Get(ctx, shared.FilterByID(confirmation.ApartmentID, hostModel.FieldID, hostModel.TableName)); hostErr == nil && apartment.ID != "" {
				row.HostName = apartment.PersonName
			}
		}

		data.BedRows = append(data.BedRows, row)
	}

	for _, meal := range meals {
		data.MealRows = append(data.MealRows, mealRow{
			HostName:    meal.HostName,
			DayGuests:   meal.DayGuests,
			NightGuests: meal.NightGuests,
		})
	}

	var htmlBuf, textBuf bytes.Buffer

	if err = weeklyHTML.Execute(&htmlBuf, data); err != nil {
		return res, fmt.Errorf("failed to render weekly report: %w", err)
	}

	if err = weeklyText.Execute(&textBuf, data); err != nil {
		return res, fmt.Errorf("failed to render weekly report: %w", err)
	}

	recipients := req.EmailAddresses
	if len(recipients) == 0 {
		recipients = s.cfg.Email.DefaultRecipients
	}

	if len(recipients) == 0 {
		return res, failure.BadRequestFromString("no recipients configured for weekly report") //nolint:wrapcheck
	}

	id, err := s.mailer.Send(ctx, mailer.Message{
		To:      recipients,
		Subject: "Hospitality summary for week of " + data.WeekStart,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send weekly report")

		return res, fmt.Errorf("failed to send weekly report: %w", err)
	}

	log.Info().
		Str("week_id", req.WeekID).
		Strs("recipients", recipients).
		Str("message_id", id).
		Msg("Sent weekly report")

	return dto.ReportResponse{MessageID: id, Recipients: recipients}, nil
}

// SendVoicemail mails one voicemail's details with the recording attached,
// then marks the message emailed.
func (s *serviceImpl) SendVoicemail(ctx context.Context, req dto.VoicemailReportRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.SendVoicemail")
	defer scope.End()
	defer scope.TraceIfError(err)

	voicemail, err := s.voicemails.Get(ctx, req.VoicemailID)
	if err != nil {
		return res, err
	}

	box, err := s.voicemails.GetBox(ctx, voicemail.BoxID)
	if err != nil {
		return res, err
	}

	recipients := []string(box.EmailAddresses)
	if len(recipients) == 0 {
		recipients = s.cfg.Email.DefaultRecipients
	}

	if len(recipients) == 0 {
		return res, failure.BadRequestFromString("no recipients configured for voicemail box") //nolint:wrapcheck
	}

	data := voicemailReportData{
		BoxName:      box.Name,
		BoxNumber:    box.BoxNumber,
		CallerNumber: voicemail.CallerNumber,
		CallerName:   voicemail.CallerName,
		Duration:     voicemail.Duration,
		ReceivedAt:   timezone.Format(voicemail.CreatedAt, constant.DateFormat),
	}

	var htmlBuf, textBuf bytes.Buffer

	if err = voicemailHTML.Execute(&htmlBuf, data); err != nil {
		return res, fmt.Errorf("failed to render voicemail report: %w", err)
	}

	if err = voicemailText.Execute(&textBuf, data); err != nil {
		return res, fmt.Errorf("failed to render voicemail report: %w", err)
	}

	msg := mailer.Message{
		To:      recipients,
		Subject: fmt.Sprintf("New voicemail in box %s (%s)", box.BoxNumber, box.Name),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}

	// Twilio serves the recording as mp3 when the URL gets the extension.
	attachment, err := s.mailer.FetchAttachment(ctx, voicemail.RecordingURL+".mp3", "voicemail-"+voicemail.ID+".mp3")
	if err != nil {
		log.Warn().Err(err).Str("voicemail_id", voicemail.ID).Msg("sending voicemail report without attachment")
	} else {
		msg.Attachments = []mailer.Attachment{attachment}
	}

	id, err := s.mailer.Send(ctx, msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to send voicemail report")

		return res, fmt.Errorf("failed to send voicemail report: %w", err)
	}

	if err = s.voicemails.MarkEmailed(ctx, voicemail.ID); err != nil {
		return res, err
	}

	log.Info().
		Str("voicemail_id", voicemail.ID).
		Strs("recipients", recipients).
		Str("message_id", id).
		Msg("Sent voicemail report")

	return dto.ReportResponse{MessageID: id, Recipients: recipients}, nil
}
