package server

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"bloodconnect/internal/reminder"
	"bloodconnect/pkg/types"
)

const generationFailedMessage = "Failed to generate reminders. Please try again."

func (s *Service) remindersPageData() *types.RemindersPageData {
	return &types.RemindersPageData{
		BasePageData: types.BasePageData{Title: "Generate Donation Reminders"},
		BloodTypes:   types.BloodTypes(),
		Today:        s.generator.Now().Format(time.DateOnly),
	}
}

func (s *Service) handleGetReminders(w http.ResponseWriter, r *http.Request) {
	if err := s.renderTemplate(w, r, "page.reminders", s.remindersPageData()); err != nil {
		s.logger.WithError(err).Error("failed to render reminders page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/reminders", "Invalid form payload.")
		return
	}

	req := new(types.ReminderRequest)
	if err := decoder.Decode(req, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode reminder form")
		s.redirectWithError(w, r, "/reminders", "Invalid form payload.")
		return
	}
	s.prepareReminderRequest(req)

	data := s.remindersPageData()
	data.Form = *req

	status := http.StatusOK
	result, err := s.generator.Generate(ctx, req)

	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		data.FieldErrors = verr.Fields
		status = http.StatusBadRequest
	case err != nil:
		s.logger.WithError(err).Error("reminder generation failed")
		data.Error = generationFailedMessage
		status = http.StatusBadGateway
	default:
		data.Result = result
		data.Notice = "Personalized email and SMS content are ready."

		token, err := s.issueReminderTicket(req, result)
		if err != nil {
			s.logger.WithError(err).Error("failed to issue reminder ticket")
		}
		data.SendToken = token
	}

	if err := s.renderTemplateStatus(w, r, status, "page.reminders", data); err != nil {
		s.logger.WithError(err).Error("failed to render reminders page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostSendReminder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/reminders", "Invalid form payload.")
		return
	}

	req := new(sendReminderRequest)
	if err := decoder.Decode(req, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode send reminder form")
		s.redirectWithError(w, r, "/reminders", "Invalid form payload.")
		return
	}

	form, err := s.redeemReminderTicket(req.Token, req.Channels)
	if err != nil {
		s.logger.WithError(err).Warn("rejected reminder send without a valid ticket")
		s.redirectWithError(w, r, "/reminders", "This reminder could not be verified. Please generate it again.")
		return
	}

	err = s.notifier.SendReminder(r.Context(), form)

	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		s.redirectWithError(w, r, "/reminders", "Could not send reminder: "+firstMessage(verr))
	case err != nil:
		s.logger.WithError(err).Error("failed to deliver reminder")
		s.redirectWithError(w, r, "/reminders", "Failed to deliver the reminder. Please try again.")
	default:
		s.redirectWithNotice(w, r, "/reminders", "Reminder sent to "+form.DonorName+".")
	}
}

// prepareReminderRequest trims input and derives the days since the last
// donation from the server clock. An unparseable date leaves the count at
// zero; validation reports the date itself.
func (s *Service) prepareReminderRequest(req *types.ReminderRequest) {
	req.DonorName = strings.TrimSpace(req.DonorName)
	req.DonorEmail = strings.TrimSpace(req.DonorEmail)
	req.DonorPhone = strings.TrimSpace(req.DonorPhone)
	req.LastDonationDate = strings.TrimSpace(req.LastDonationDate)
	req.DaysSinceLastDonation = 0

	now := s.generator.Now()
	if date, err := reminder.ParseDate(req.LastDonationDate, now.Location()); err == nil {
		req.DaysSinceLastDonation = reminder.DaysSince(date, now)
	}
}

func firstMessage(verr *types.ValidationError) string {
	keys := make([]string, 0, len(verr.Fields))
	for k := range verr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return ""
	}
	return verr.Fields[keys[0]]
}
