package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/shared/constant"
)

const (
	otelAttrSubject    = "email.subject"
	otelAttrRecipients = "email.recipients"
)

type Attachment struct {
	Filename string
	Content  []byte
}

type Message struct {
	To          []string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, msg Message) (id string, err error)
	FetchAttachment(ctx context.Context, url, filename string) (Attachment, error)
}

type sendRequest struct {
	From        string              `json:"from"`
	To          []string            `json:"to"`
	Subject     string              `json:"subject"`
	HTML        string              `json:"html,omitempty"`
	Text        string              `json:"text,omitempty"`
	Attachments []sendRequestAttach `json:"attachments,omitempty"`
}

type sendRequestAttach struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type mailerImpl struct {
	client *resty.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	client := resty.New().
		SetBaseURL(cfg.Email.Endpoint).
		SetAuthToken(cfg.Email.APIKey).
		SetHeader(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	return &mailerImpl{
		client: client,
		cfg:    cfg,
		otel:   otl,
	}
}

func (m *mailerImpl) Send(ctx context.Context, msg Message) (id string, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrSubject:    msg.Subject,
		otelAttrRecipients: msg.To,
	})

	to := msg.To
	if len(to) == 0 {
		to = m.cfg.Email.DefaultRecipients
	}

	req := sendRequest{
		From:    m.cfg.Email.FromAddress,
		To:      to,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}

	for _, attachment := range msg.Attachments {
		req.Attachments = append(req.Attachments, sendRequestAttach{
			Filename: attachment.Filename,
			Content:  base64.StdEncoding.EncodeToString(attachment.Content),
		})
	}

	result := sendResponse{}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		log.Error().Err(err).Str("subject", msg.Subject).Msg("failed to send email")

		return constant.Empty, fmt.Errorf("failed to send email: %w", err)
	}

	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("email provider rejected message")

		return constant.Empty, fmt.Errorf("email provider rejected message: status %d", resp.StatusCode())
	}

	log.Info().Str("message_id", result.ID).Strs("to", to).Msg("Email sent")

	return result.ID, nil
}

// FetchAttachment downloads a provider-hosted resource (a voicemail recording)
// so it can be attached to an outgoing email.
func (m *mailerImpl) FetchAttachment(ctx context.Context, url, filename string) (attachment Attachment, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.FetchAttachment")
	defer scope.End()
	defer scope.TraceIfError(err)

	resp, err := resty.New().R().SetContext(ctx).Get(url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to fetch attachment")

		return attachment, fmt.Errorf("failed to fetch attachment: %w", err)
	}

	if resp.IsError() {
		return attachment, fmt.Errorf("failed to fetch attachment: status %d", resp.StatusCode())
	}

	return Attachment{
		Filename: filename,
		Content:  resp.Body(),
	}, nil
}
