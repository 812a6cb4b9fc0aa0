package seed

import (
	"bloodconnect/internal/utils"
	"bloodconnect/pkg/types"
	"context"
)

func Drives() []*types.BloodDrive {
	drives := []*types.BloodDrive{
		{
			ID:          "bd1",
			Name:        "Community Blood Drive - City Center",
			Date:        "2024-08-15",
			Time:        "10:00 AM - 04:00 PM",
			Location:    "City Center Mall, 123 Main St, Springfield",
			Description: "Join us for our monthly community blood drive. Your donation can save up to three lives!",
			Organizer:   utils.StringPtr("Springfield Community Hospital"),
			Contact:     utils.StringPtr("donations@schosp.org"),
			ImageURL:    utils.StringPtr("https://placehold.co/600x400.png"),
		},
		{
			ID:          "bd2",
			Name:        "University Campus Blood Donation Event",
			Date:        "2024-09-05",
			Time:        "09:00 AM - 03:00 PM",
			Location:    "Springfield University, Student Union Building",
			Description: "Students and faculty, make a difference! Donate blood and help those in need. Refreshments provided.",
			Organizer:   utils.StringPtr("Red Cross Society - University Chapter"),
			Contact:     utils.StringPtr("university.blood.drive@example.com"),
			ImageURL:    utils.StringPtr("https://placehold.co/600x400.png"),
		},
		{
			ID:          "bd3",
			Name:        "Emergency Blood Drive - Northwood",
			Date:        "2024-07-30",
			Time:        "12:00 PM - 06:00 PM",
			Location:    "Northwood Community Center, 456 Oak Ave",
			Description: "Urgent need for all blood types. Please donate if you can.",
			Organizer:   utils.StringPtr("City Blood Bank"),
			Contact:     utils.StringPtr("urgent@citybloodbank.org"),
			ImageURL:    utils.StringPtr("https://placehold.co/600x400.png"),
		},
	}

	for i, d := range drives {
		d.DisplayOrder = i + 1
	}

	return drives
}

type DriveSyncer interface {
	Drives(ctx context.Context) ([]*types.BloodDrive, error)
	UpsertDrive(ctx context.Context, drive *types.BloodDrive) error
	DeleteDrive(ctx context.Context, id string) error
}

func SeedDrives(ctx context.Context, repo DriveSyncer) error {
	drives := Drives()

	existing, err := repo.Drives(ctx)
	if err != nil {
		return err
	}

	existingIDs := make([]string, 0, len(existing))
	for _, d := range existing {
		existingIDs = append(existingIDs, d.ID)
	}

	seedIDs := make([]string, 0, len(drives))
	for _, d := range drives {
		seedIDs = append(seedIDs, d.ID)
	}

	return syncRecords(ctx, "blood drive", seedIDs, existingIDs, repo.DeleteDrive, func(ctx context.Context, i int) error {
		return repo.UpsertDrive(ctx, drives[i])
	})
}
