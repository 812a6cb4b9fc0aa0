// Package notify delivers generated reminders and coordinator contact
// requests over email and SMS.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bloodconnect/internal/reminder"
	"bloodconnect/internal/utils"
	"bloodconnect/pkg/types"

	"github.com/sirupsen/logrus"
)

const reminderSubject = "Time to save lives again"

type Notifier struct {
	mailer           Mailer
	texter           Texter
	coordinatorEmail string
	schedulingURL    string
	logger           logrus.FieldLogger
	now              func() time.Time
}

type Option func(*Notifier)

// WithSchedulingURL appends a booking link to reminder emails that do not
// already contain it.
func WithSchedulingURL(url string) Option {
	return func(n *Notifier) {
		n.schedulingURL = strings.TrimSpace(url)
	}
}

func New(mailer Mailer, texter Texter, coordinatorEmail string, logger logrus.FieldLogger, opts ...Option) *Notifier {
	n := &Notifier{
		mailer:           mailer,
		texter:           texter,
		coordinatorEmail: coordinatorEmail,
		logger:           logger,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SendReminder delivers result over each requested channel. Every channel
// is attempted; failures are joined.
func (n *Notifier) SendReminder(ctx context.Context, form *types.SendReminderForm) error {
	verr := types.NewValidationError()

	channels := dedupe(form.Channels)
	if len(channels) == 0 {
		verr.Add("channels", "Select at least one channel.")
	}

	for _, c := range channels {
		switch c {
		case types.ChannelEmail:
			if !reminder.ValidEmail(form.DonorEmail) {
				verr.Add("donorEmail", "A valid donor email is required to send an email.")
			}
			if strings.TrimSpace(form.EmailContent) == "" {
				verr.Add("emailContent", "Email content is empty.")
			}
		case types.ChannelSMS:
			if !reminder.ValidPhone(form.DonorPhone) {
				verr.Add("donorPhone", "A valid donor phone is required to send an SMS.")
			}
			if strings.TrimSpace(form.SMSContent) == "" {
				verr.Add("smsContent", "SMS content is empty.")
			}
		default:
			verr.Add("channels", fmt.Sprintf("Unknown channel %q.", c))
		}
	}

	if err := verr.OrNil(); err != nil {
		return err
	}

	var errs []error
	for _, c := range channels {
		var err error
		switch c {
		case types.ChannelEmail:
			err = n.mailer.Send(ctx, strings.TrimSpace(form.DonorEmail), reminderSubject, n.emailBody(form.EmailContent))
		case types.ChannelSMS:
			err = n.texter.Send(ctx, form.DonorPhone, form.SMSContent)
		}

		if err != nil {
			n.logger.WithError(err).WithField("channel", c).Error("failed to deliver reminder")
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
			continue
		}

		n.logger.WithField("channel", c).Info("reminder delivered")
	}

	return errors.Join(errs...)
}

// RequestContact asks the coordinator to connect the requester with donor.
// The email identifies the donor by id, blood type and location only.
func (n *Notifier) RequestContact(ctx context.Context, donor *types.Donor, req *types.ContactRequest) (*types.ContactRequest, error) {
	out := *req
	out.ID = utils.NanoID()
	out.DonorID = donor.ID
	out.BloodType = donor.BloodType
	out.Location = donor.Location
	out.CreatedAt = n.now()

	subject := fmt.Sprintf("Contact request for %s donor in %s", donor.BloodType, donor.Location)

	var body strings.Builder
	fmt.Fprintf(&body, "Contact request %s\n\n", out.ID)
	fmt.Fprintf(&body, "Donor id: %s\n", donor.ID)
	fmt.Fprintf(&body, "Blood type: %s\nLocation: %s\n\n", donor.BloodType, donor.Location)
	if out.RequesterName != "" || out.RequesterEmail != "" {
		fmt.Fprintf(&body, "Requested by: %s <%s>\n", out.RequesterName, out.RequesterEmail)
	}
	if out.Message != "" {
		fmt.Fprintf(&body, "Message:\n%s\n", out.Message)
	}

	if err := n.mailer.Send(ctx, n.coordinatorEmail, subject, body.String()); err != nil {
		return nil, fmt.Errorf("notify coordinator: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"contact_request_id": out.ID,
		"donor_id":           donor.ID,
	}).Info("coordinator notified of contact request")

	return &out, nil
}

func (n *Notifier) emailBody(content string) string {
	if n.schedulingURL == "" || strings.Contains(content, n.schedulingURL) {
		return content
	}
	return content + "\n\nSchedule your next donation: " + n.schedulingURL
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
