package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
	"github.com/google/uuid"
)

// Advisor classifies a sample and ranks the recommended actions.
type Advisor struct {
	selector Selector
	now      func() time.Time
	retry    service.RetryOptions
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithRetry retries ErrClassificationUnavailable up to opts.MaxAttempts times.
func WithRetry(opts service.RetryOptions) Option {
	return func(a *Advisor) {
		a.retry = opts
	}
}

// WithClock overrides the time source used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) {
		a.now = now
	}
}

// New creates an advisor around selector. Without WithRetry each failure is
// returned to the caller, who decides whether to try again.
func New(selector Selector, opts ...Option) *Advisor {
	a := &Advisor{
		selector: selector,
		now:      time.Now,
		retry:    service.RetryOptions{MaxAttempts: 1},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Advise selects a profile for sample and returns it with ranked actions.
func (a *Advisor) Advise(ctx context.Context, sample Sample) (*model.ClassificationResult, error) {
	start := a.now()

	var profile model.MaterialProfile
	classify := func() error {
		var err error
		profile, err = a.selector.Classify(ctx, sample)
		return err
	}

	var err error
	if a.retry.MaxAttempts > 1 {
		err = common.WithRetry(ctx, classify, a.retry)
	} else {
		err = classify()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to classify %q: %w", sample.Name, err)
	}

	result := &model.ClassificationResult{
		ID:           uuid.NewString(),
		Profile:      profile,
		Actions:      Rank(profile),
		ClassifiedAt: a.now(),
	}

	slog.Debug("Classified sample",
		"sample", sample.Name,
		"material", profile.Material,
		"category", profile.Category,
		"best_action", result.Actions[0].Title,
		"duration", result.ClassifiedAt.Sub(start))

	return result, nil
}
