package main

import (
	"context"
	"fmt"

	"bloodconnect/internal/db"
	"bloodconnect/internal/seed"
	"bloodconnect/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Sync donors, blood drives and articles into the database",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := requireDatabase(cfg); err != nil {
			return err
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		logrus.Info("Seeding blood drives...")
		if err := seed.SeedDrives(ctx, store.NewDriveRepository(pool)); err != nil {
			return fmt.Errorf("failed to seed blood drives: %w", err)
		}

		logrus.Info("Seeding donors...")
		if err := seed.SeedDonors(ctx, store.NewDonorRepository(pool)); err != nil {
			return fmt.Errorf("failed to seed donors: %w", err)
		}

		logrus.Info("Seeding articles...")
		if err := seed.SeedArticles(ctx, store.NewArticleRepository(pool)); err != nil {
			return fmt.Errorf("failed to seed articles: %w", err)
		}

		logrus.Info("Seed data synced successfully")

		return nil
	},
}
