package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bloodconnect/internal/reminder"
	"bloodconnect/pkg/types"

	"github.com/urfave/cli/v2"
)

var remindCommand = &cli.Command{
	Name:  "remind",
	Usage: "Generate reminder copy for a donor and optionally deliver it",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Donor name", Required: true},
		&cli.StringFlag{Name: "email", Usage: "Donor email", Required: true},
		&cli.StringFlag{Name: "phone", Usage: "Donor phone", Required: true},
		&cli.StringFlag{Name: "last-donation", Usage: "Last donation date (YYYY-MM-DD)", Required: true},
		&cli.StringFlag{Name: "blood-type", Usage: "Donor blood type", Required: true},
		&cli.StringSliceFlag{Name: "send", Usage: "Deliver the result over these channels (email, sms)"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		ctx := context.Background()
		logger := newLogger(cfg)

		generator, err := newGenerator(ctx, cfg, logger)
		if err != nil {
			return err
		}

		req := &types.ReminderRequest{
			DonorName:        c.String("name"),
			DonorEmail:       c.String("email"),
			DonorPhone:       c.String("phone"),
			LastDonationDate: c.String("last-donation"),
			BloodType:        types.BloodType(c.String("blood-type")),
		}

		now := generator.Now()
		if date, err := reminder.ParseDate(req.LastDonationDate, now.Location()); err == nil {
			req.DaysSinceLastDonation = reminder.DaysSince(date, now)
		}

		result, err := generator.Generate(ctx, req)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}

		channels := c.StringSlice("send")
		if len(channels) == 0 {
			return nil
		}

		notifier, err := newNotifier(ctx, cfg, logger)
		if err != nil {
			return err
		}

		sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		err = notifier.SendReminder(sendCtx, &types.SendReminderForm{
			DonorName:    req.DonorName,
			DonorEmail:   req.DonorEmail,
			DonorPhone:   req.DonorPhone,
			EmailContent: result.EmailContent,
			SMSContent:   result.SMSContent,
			Channels:     channels,
		})
		if err != nil {
			return fmt.Errorf("deliver reminder: %w", err)
		}

		return nil
	},
}
