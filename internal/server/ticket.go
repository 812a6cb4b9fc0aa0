package server

import (
	"fmt"
	"time"

	"bloodconnect/pkg/types"
)

const (
	reminderTicketName = "reminder_ticket"
	reminderTicketTTL  = time.Hour
)

// reminderTicket binds generated copy to the donor it was generated for.
// Only copy carried in a valid ticket is ever delivered.
type reminderTicket struct {
	DonorName    string
	DonorEmail   string
	DonorPhone   string
	EmailContent string
	SMSContent   string
}

type sendReminderRequest struct {
	Token    string   `form:"token"`
	Channels []string `form:"channels"`
}

func (s *Service) issueReminderTicket(req *types.ReminderRequest, result *types.ReminderResult) (string, error) {
	return s.tickets.Encode(reminderTicketName, reminderTicket{
		DonorName:    req.DonorName,
		DonorEmail:   req.DonorEmail,
		DonorPhone:   req.DonorPhone,
		EmailContent: result.EmailContent,
		SMSContent:   result.SMSContent,
	})
}

// redeemReminderTicket verifies token and turns it into a send form for
// channels. Forged, tampered and expired tickets are rejected.
func (s *Service) redeemReminderTicket(token string, channels []string) (*types.SendReminderForm, error) {
	if token == "" {
		return nil, fmt.Errorf("reminder ticket missing")
	}

	var t reminderTicket
	if err := s.tickets.Decode(reminderTicketName, token, &t); err != nil {
		return nil, fmt.Errorf("decode reminder ticket: %w", err)
	}

	return &types.SendReminderForm{
		DonorName:    t.DonorName,
		DonorEmail:   t.DonorEmail,
		DonorPhone:   t.DonorPhone,
		EmailContent: t.EmailContent,
		SMSContent:   t.SMSContent,
		Channels:     channels,
	}, nil
}
