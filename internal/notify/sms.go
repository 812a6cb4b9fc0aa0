package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Texter sends an SMS.
type Texter interface {
	Send(ctx context.Context, to, body string) error
}

type TexterConfig struct {
	Provider   string
	AccountSID string
	AuthToken  string
	FromNumber string
}

func NewTexter(config TexterConfig, logger logrus.FieldLogger) (Texter, error) {
	switch config.Provider {
	case "twilio":
		if config.AccountSID == "" || config.AuthToken == "" || config.FromNumber == "" {
			return nil, fmt.Errorf("twilio requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER")
		}
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AccountSID,
			Password: config.AuthToken,
		})
		return &twilioTexter{
			api:    client.Api,
			from:   NormalizePhone(config.FromNumber),
			logger: logger,
		}, nil
	case "noop", "":
		return &noopTexter{logger: logger}, nil
	default:
		logger.WithField("provider", config.Provider).Warn("unknown sms provider, using noop")
		return &noopTexter{logger: logger}, nil
	}
}

type twilioAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type twilioTexter struct {
	api    twilioAPI
	from   string
	logger logrus.FieldLogger
}

// Send ignores ctx: the twilio-go REST client has no context support.
func (t *twilioTexter) Send(_ context.Context, to, body string) error {
	recipient := NormalizePhone(to)
	if recipient == "" {
		return fmt.Errorf("recipient number missing or invalid")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send message error: %w", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	t.logger.WithField("sid", sid).Info("sms sent via twilio")

	return nil
}

type noopTexter struct {
	logger logrus.FieldLogger
}

func (n *noopTexter) Send(_ context.Context, to, body string) error {
	n.logger.WithFields(logrus.Fields{
		"to":     to,
		"length": len(body),
	}).Info("sms would be sent (noop)")
	return nil
}

// NormalizePhone strips formatting characters, keeping a leading "+".
func NormalizePhone(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "" || out == "+" {
		return ""
	}
	return out
}
