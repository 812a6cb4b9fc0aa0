package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/sirupsen/logrus"
)

// Mailer sends a plain-text email.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
}

// NewMailer returns an SES mailer for provider "ses" and a logging no-op
// otherwise. awsConfig is only read for SES.
func NewMailer(config MailerConfig, awsConfig aws.Config, logger logrus.FieldLogger) Mailer {
	switch config.Provider {
	case "ses":
		return &sesMailer{
			client:      ses.NewFromConfig(awsConfig),
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
			logger:      logger,
		}
	case "noop", "":
		return &noopMailer{logger: logger}
	default:
		logger.WithField("provider", config.Provider).Warn("unknown mail provider, using noop")
		return &noopMailer{logger: logger}
	}
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client      sesAPI
	fromAddress string
	fromName    string
	logger      logrus.FieldLogger
}

func (s *sesMailer) Send(ctx context.Context, to, subject, text string) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &sestypes.Body{
				Text: &sestypes.Content{
					Data:    aws.String(text),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	s.logger.WithField("message_id", aws.ToString(result.MessageId)).Info("email sent via SES")
	return nil
}

type noopMailer struct {
	logger logrus.FieldLogger
}

func (n *noopMailer) Send(_ context.Context, to, subject, _ string) error {
	n.logger.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("email would be sent (noop)")
	return nil
}
