package seed

import (
	"bloodconnect/pkg/types"
	"context"
)

// Donors returns the directory seed. This file is the source of truth for
// the built-in donor directory and for `bloodconnect seed`.
//
// To generate new IDs: `go run ./cmd/bloodconnect nanoid`
func Donors() []*types.Donor {
	donors := []*types.Donor{
		{ID: "1", Name: "Jane Doe", Email: "jane.doe@example.com", Phone: "555-1234", BloodType: types.BloodTypeAPos, Availability: "Weekend mornings", Location: "Springfield, IL"},
		{ID: "2", Name: "John Smith", Email: "john.smith@example.com", Phone: "555-5678", BloodType: types.BloodTypeONeg, Availability: "Weekdays after 5 PM", Location: "Shelbyville, IL"},
		{ID: "3", Name: "Alice Brown", Email: "alice.brown@example.com", Phone: "555-8765", BloodType: types.BloodTypeBPos, Availability: "Anytime with 24hr notice", Location: "Capital City, IL"},
		{ID: "4", Name: "Bob Green", Email: "bob.green@example.com", Phone: "555-4321", BloodType: types.BloodTypeABPos, Availability: "First Monday of the month", Location: "Springfield, IL"},
	}

	for i, d := range donors {
		d.DisplayOrder = i + 1
	}

	return donors
}

type DonorSyncer interface {
	Donors(ctx context.Context) ([]*types.Donor, error)
	UpsertDonor(ctx context.Context, donor *types.Donor) error
	DeleteDonor(ctx context.Context, id string) error
}

// SeedDonors inserts or updates every seeded donor and deletes donors that
// are no longer in the seed.
func SeedDonors(ctx context.Context, repo DonorSyncer) error {
	donors := Donors()

	existing, err := repo.Donors(ctx)
	if err != nil {
		return err
	}

	existingIDs := make([]string, 0, len(existing))
	for _, d := range existing {
		existingIDs = append(existingIDs, d.ID)
	}

	seedIDs := make([]string, 0, len(donors))
	for _, d := range donors {
		seedIDs = append(seedIDs, d.ID)
	}

	return syncRecords(ctx, "donor", seedIDs, existingIDs, repo.DeleteDonor, func(ctx context.Context, i int) error {
		return repo.UpsertDonor(ctx, donors[i])
	})
}
