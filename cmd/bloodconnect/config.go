package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"bloodconnect/internal/content"
	"bloodconnect/internal/db"
	"bloodconnect/internal/directory"
	"bloodconnect/internal/llm"
	"bloodconnect/internal/notify"
	"bloodconnect/internal/reminder"
	"bloodconnect/internal/seed"
	"bloodconnect/internal/store"
	"bloodconnect/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func loadConfig(cCtx *cli.Context) (*types.Config, error) {
	envFile := cCtx.String("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 60
	}

	return c, nil
}

func requireDatabase(c *types.Config) error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("set DATABASE_URL")
	}
	return nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}

func newLogger(c *types.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if c.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.WithField("log_level", c.LogLevel).Warn("invalid LOG_LEVEL, defaulting to info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

type sources struct {
	donors   directory.DonorSource
	drives   content.DriveSource
	articles content.ArticleSource
}

// openSources returns Postgres repositories when DATABASE_URL is set and the
// built-in seed data otherwise. The returned func releases the pool.
func openSources(ctx context.Context, c *types.Config, logger *logrus.Logger) (*sources, func(), error) {
	if c.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, serving built-in seed data")
		mem := store.NewMemoryStore(seed.Donors(), seed.Drives(), seed.Articles())
		return &sources{donors: mem, drives: mem, articles: mem}, func() {}, nil
	}

	pool, err := db.Connect(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to database")

	return &sources{
		donors:   store.NewDonorRepository(pool),
		drives:   store.NewDriveRepository(pool),
		articles: store.NewArticleRepository(pool),
	}, pool.Close, nil
}

func newGenerator(ctx context.Context, c *types.Config, logger *logrus.Logger) (*reminder.Generator, error) {
	provider, err := llm.New(ctx, c)
	if err != nil {
		return nil, err
	}

	if _, disabled := provider.(llm.Disabled); disabled {
		logger.Warn("LLM_PROVIDER not set, reminder generation will fail")
	}

	return reminder.New(
		provider,
		reminder.WithTimeout(time.Duration(c.ReminderTimeoutSec)*time.Second),
		reminder.WithLogger(logger),
	), nil
}

func newNotifier(ctx context.Context, c *types.Config, logger *logrus.Logger) (*notify.Notifier, error) {
	var awsConfig aws.Config
	if c.MailProvider == "ses" {
		var err error
		awsConfig, err = loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
	}

	mailer := notify.NewMailer(notify.MailerConfig{
		Provider:    c.MailProvider,
		FromAddress: c.MailFromAddress,
		FromName:    c.MailFromName,
	}, awsConfig, logger)

	texter, err := notify.NewTexter(notify.TexterConfig{
		Provider:   c.SMSProvider,
		AccountSID: c.TwilioAccountSID,
		AuthToken:  c.TwilioAuthToken,
		FromNumber: c.TwilioFromNumber,
	}, logger)
	if err != nil {
		return nil, err
	}

	return notify.New(mailer, texter, c.CoordinatorEmail, logger, notify.WithSchedulingURL(c.SchedulingURL)), nil
}
