package telephony

//go:generate go run go.uber.org/mock/mockgen -source=./telephony.go -destination=./mocks/telephony_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/shared/constant"
)

const (
	otelAttrTo      = "call.to"
	otelAttrCallSID = "call.sid"
)

// CreateCallParams describes an outbound call: where the answered call should
// fetch its first instructions, and where the provider should report the
// terminal call status.
type CreateCallParams struct {
	To                string
	AnswerURL         string
	StatusCallbackURL string
}

type Client interface {
	CreateCall(ctx context.Context, params CreateCallParams) (sid string, err error)
}

type clientImpl struct {
	rest *twilio.RestClient
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.Telephony.AccountSID,
		Password: cfg.Telephony.AuthToken,
	})

	return &clientImpl{
		rest: rest,
		cfg:  cfg,
		otel: otl,
	}
}

func (c *clientImpl) CreateCall(ctx context.Context, params CreateCallParams) (sid string, err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".telephony.CreateCall")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrTo, params.To)

	callParams := &twilioApi.CreateCallParams{}
	callParams.SetTo(params.To)
	callParams.SetFrom(c.cfg.Telephony.FromNumber)
	callParams.SetUrl(params.AnswerURL)
	callParams.SetMethod("POST")
	callParams.SetTimeout(c.cfg.Telephony.TimeoutSeconds)

	if params.StatusCallbackURL != "" {
		callParams.SetStatusCallback(params.StatusCallbackURL)
		callParams.SetStatusCallbackMethod("POST")
		callParams.SetStatusCallbackEvent([]string{constant.CallStatusCompleted})
	}

	resp, err := c.rest.Api.CreateCall(callParams)
	if err != nil {
		log.Error().Err(err).Str("to", params.To).Msg("failed to place outbound call")

		return constant.Empty, fmt.Errorf("failed to place outbound call: %w", err)
	}

	if resp.Sid != nil {
		sid = *resp.Sid
	}

	scope.SetAttribute(otelAttrCallSID, sid)
	log.Info().Str("to", params.To).Str("call_sid", sid).Msg("Outbound call placed")

	return sid, nil
}
