// Package reminder turns donor facts into email and SMS reminder copy by
// delegating text generation to a Provider.
package reminder

import (
	"context"
	"fmt"
	"io"
	"time"

	"bloodconnect/pkg/types"

	"github.com/sirupsen/logrus"
)

// Provider sends a rendered prompt to a text-generation service and returns
// its raw JSON answer.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Generator struct {
	provider Provider
	now      func() time.Time
	timeout  time.Duration
	logger   logrus.FieldLogger
}

type Option func(*Generator)

// WithClock sets the clock used to judge whether a donation date is in the
// future.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithTimeout bounds each provider call. Zero leaves the caller's context
// in charge.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

func New(provider Provider, opts ...Option) *Generator {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	g := &Generator{
		provider: provider,
		now:      time.Now,
		logger:   discard,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Now exposes the generator's clock so callers derive DaysSinceLastDonation
// from the same notion of today.
func (g *Generator) Now() time.Time {
	return g.now()
}

// Generate validates req, renders the prompt, makes exactly one provider
// call and checks the answer. It returns a *types.ValidationError before
// any provider call, or an error wrapping types.ErrGenerationFailed or
// types.ErrMalformedResponse. Partial results are never returned.
func (g *Generator) Generate(ctx context.Context, req *types.ReminderRequest) (*types.ReminderResult, error) {
	if err := Validate(req, g.now()); err != nil {
		return nil, err
	}

	prompt, err := RenderPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("%w: render prompt: %w", types.ErrGenerationFailed, err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	entry := g.logger.WithFields(logrus.Fields{
		"blood_type": req.BloodType,
		"days_since": req.DaysSinceLastDonation,
	})

	started := time.Now()
	raw, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		entry.WithError(err).Warn("reminder provider call failed")
		return nil, fmt.Errorf("%w: %w", types.ErrGenerationFailed, err)
	}

	result, err := ParseResult(raw)
	if err != nil {
		entry.WithError(err).Warn("reminder provider returned malformed response")
		return nil, err
	}

	entry.WithField("duration_ms", time.Since(started).Milliseconds()).Info("reminder generated")

	return result, nil
}
