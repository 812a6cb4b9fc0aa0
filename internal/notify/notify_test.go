package notify

import (
	"context"
	"errors"
	"io"
	"testing"

	"bloodconnect/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, text string
}

// fakeMailer implements Mailer for tests.
type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, text: text})
	return nil
}

// fakeTexter implements Texter for tests.
type fakeTexter struct {
	to, body string
	calls    int
	err      error
}

func (f *fakeTexter) Send(_ context.Context, to, body string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.to, f.body = to, body
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func sendForm(channels ...string) *types.SendReminderForm {
	return &types.SendReminderForm{
		DonorName:    "Jane Doe",
		DonorEmail:   "jane@x.com",
		DonorPhone:   "+1 (555) 123-4567",
		EmailContent: "Dear Jane...",
		SMSContent:   "Jane, donate again!",
		Channels:     channels,
	}
}

func TestSendReminder_BothChannels(t *testing.T) {
	mailer, texter := &fakeMailer{}, &fakeTexter{}
	n := New(mailer, texter, "coord@x.com", testLogger())

	err := n.SendReminder(context.Background(), sendForm("email", "SMS", "email"))
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@x.com", mailer.sent[0].to)
	assert.Equal(t, "Dear Jane...", mailer.sent[0].text)
	assert.Equal(t, 1, texter.calls)
	assert.Equal(t, "Jane, donate again!", texter.body)
}

func TestSendReminder_Validation(t *testing.T) {
	n := New(&fakeMailer{}, &fakeTexter{}, "coord@x.com", testLogger())

	err := n.SendReminder(context.Background(), sendForm())
	assert.ErrorIs(t, err, types.ErrValidation)

	err = n.SendReminder(context.Background(), sendForm("fax"))
	assert.ErrorIs(t, err, types.ErrValidation)

	form := sendForm("sms")
	form.SMSContent = ""
	err = n.SendReminder(context.Background(), form)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "smsContent")
}

func TestSendReminder_AttemptsEveryChannel(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("ses down")}
	texter := &fakeTexter{}
	n := New(mailer, texter, "coord@x.com", testLogger())

	err := n.SendReminder(context.Background(), sendForm("email", "sms"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ses down")
	assert.Equal(t, 1, texter.calls)
}

func TestRequestContact(t *testing.T) {
	mailer := &fakeMailer{}
	n := New(mailer, &fakeTexter{}, "coord@x.com", testLogger())

	donor := &types.Donor{ID: "1", Name: "Jane Doe", Email: "jane.doe@example.com", Phone: "555-1234", BloodType: types.BloodTypeAPos, Location: "Springfield, IL"}
	out, err := n.RequestContact(context.Background(), donor, &types.ContactRequest{RequesterName: "Sam", RequesterEmail: "sam@x.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "1", out.DonorID)
	assert.Equal(t, types.BloodTypeAPos, out.BloodType)
	assert.False(t, out.CreatedAt.IsZero())

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "coord@x.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].subject, "A+")
	assert.Contains(t, mailer.sent[0].text, "Sam <sam@x.com>")
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+1 (555) 123-4567": "+15551234567",
		"555-1234":          "5551234",
		"  ":                "",
		"+":                 "",
		"1+2":               "12",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestRequestContact_OmitsDonorContactDetails(t *testing.T) {
	mailer := &fakeMailer{}
	n := New(mailer, &fakeTexter{}, "coord@x.com", testLogger())

	donor := &types.Donor{ID: "2", Name: "John Smith", Email: "john.smith@example.com", Phone: "555-5678", BloodType: types.BloodTypeONeg, Location: "Shelbyville, IL"}
	_, err := n.RequestContact(context.Background(), donor, &types.ContactRequest{})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	text := mailer.sent[0].text
	assert.Contains(t, text, "Shelbyville, IL")
	assert.NotContains(t, text, "John Smith")
	assert.NotContains(t, text, "john.smith@example.com")
	assert.NotContains(t, text, "555-5678")
}

func TestRequestContact_MailerFailure(t *testing.T) {
	n := New(&fakeMailer{err: errors.New("boom")}, &fakeTexter{}, "coord@x.com", testLogger())

	_, err := n.RequestContact(context.Background(), &types.Donor{ID: "1"}, &types.ContactRequest{})
	assert.Error(t, err)
}

func TestSendReminder_AppendsSchedulingURL(t *testing.T) {
	mailer := &fakeMailer{}
	n := New(mailer, &fakeTexter{}, "coord@x.com", testLogger(), WithSchedulingURL("https://book.example.com"))

	require.NoError(t, n.SendReminder(context.Background(), sendForm("email")))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Dear Jane...\n\nSchedule your next donation: https://book.example.com", mailer.sent[0].text)

	form := sendForm("email")
	form.EmailContent = "Book at https://book.example.com today"
	require.NoError(t, n.SendReminder(context.Background(), form))
	assert.Equal(t, form.EmailContent, mailer.sent[1].text)
}

func TestSendReminder_RejectsInvalidRecipients(t *testing.T) {
	mailer, texter := &fakeMailer{}, &fakeTexter{}
	n := New(mailer, texter, "coord@x.com", testLogger())

	form := sendForm("email", "sms")
	form.DonorEmail = "not-an-email, victim@evil.example"
	form.DonorPhone = "spam http://spam.example"

	err := n.SendReminder(context.Background(), form)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "donorEmail")
	assert.Contains(t, verr.Fields, "donorPhone")
	assert.Empty(t, mailer.sent)
	assert.Equal(t, 0, texter.calls)
}
