package main

import (
	"context"

	"bloodconnect/internal/directory"
	"bloodconnect/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var searchCommand = &cli.Command{
	Name:  "search",
	Usage: "Search the donor directory from the command line",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "blood-type",
			Aliases: []string{"b"},
			Usage:   "Exact blood type, e.g. O-",
		},
		&cli.StringFlag{
			Name:    "location",
			Aliases: []string{"l"},
			Usage:   "Case-insensitive location substring",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		ctx := context.Background()
		logger := newLogger(cfg)

		src, closeSources, err := openSources(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeSources()

		donors, err := directory.New(src.donors).Search(ctx, types.SearchFilters{
			BloodType: types.BloodType(c.String("blood-type")),
			Location:  c.String("location"),
		})
		if err != nil {
			return err
		}

		_, err = pp.Println(donors)
		return err
	},
}
