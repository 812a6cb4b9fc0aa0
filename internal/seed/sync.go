package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// syncRecords deletes every existing ID missing from seedIDs, then upserts each
// seed record by index.
func syncRecords(
	ctx context.Context,
	kind string,
	seedIDs, existingIDs []string,
	deleteFn func(ctx context.Context, id string) error,
	upsertFn func(ctx context.Context, i int) error,
) error {
	entry := logrus.WithField("kind", kind)
	entry.WithFields(logrus.Fields{
		"seed":     len(seedIDs),
		"existing": len(existingIDs),
	}).Info("starting sync")

	keep := make(map[string]bool, len(seedIDs))
	for _, id := range seedIDs {
		keep[id] = true
	}

	deleted := 0
	for _, id := range existingIDs {
		if keep[id] {
			continue
		}
		entry.WithField("id", id).Info("deleting record missing from seed")
		if err := deleteFn(ctx, id); err != nil {
			return fmt.Errorf("failed to delete %s %s: %w", kind, id, err)
		}
		deleted++
	}

	for i, id := range seedIDs {
		if err := upsertFn(ctx, i); err != nil {
			return fmt.Errorf("failed to upsert %s %s: %w", kind, id, err)
		}
	}

	entry.WithFields(logrus.Fields{
		"upserted": len(seedIDs),
		"deleted":  deleted,
	}).Info("sync complete")

	return nil
}
