// Package advisor selects a material profile for a waste sample and ranks what to do with it.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Veraticus/wastewise/internal/catalog"
	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/model"
)

// DefaultLatency models the round trip to an inference service.
const DefaultLatency = 2 * time.Second

// Sample is one uploaded waste item.
type Sample struct {
	Name        string
	ContentType string
	Data        []byte
	Size        int64
}

// Selector chooses a material profile for a sample. It is the extension point
// for a real image classifier: implementations that fail should return an error
// wrapping common.ErrClassificationUnavailable.
type Selector interface {
	Classify(ctx context.Context, sample Sample) (model.MaterialProfile, error)
}

// RandomSelector picks a catalog profile uniformly at random and ignores the sample content.
type RandomSelector struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	latency time.Duration
	mu      sync.Mutex
}

// NewRandomSelector creates a selector over cat drawing from rng.
// A nil rng is replaced with a time-seeded generator.
func NewRandomSelector(cat *catalog.Catalog, rng *rand.Rand, latency time.Duration) *RandomSelector {
	if rng == nil {
		rng = NewRand(0)
	}
	if latency < 0 {
		latency = 0
	}
	return &RandomSelector{
		catalog: cat,
		rng:     rng,
		latency: latency,
	}
}

// NewRand returns a PCG generator for seed; zero seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Classify waits out the simulated latency and returns a random profile.
func (s *RandomSelector) Classify(ctx context.Context, _ Sample) (model.MaterialProfile, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return model.MaterialProfile{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return model.MaterialProfile{}, err
	}

	s.mu.Lock()
	i := s.rng.IntN(s.catalog.Len())
	s.mu.Unlock()

	return s.catalog.Profile(i), nil
}

// TimeoutSelector bounds another selector with a deadline.
type TimeoutSelector struct {
	next    Selector
	timeout time.Duration
}

// WithTimeout wraps next so each call fails with ErrClassificationUnavailable
// once timeout elapses. A non-positive timeout disables the bound but still
// maps inference failures.
func WithTimeout(next Selector, timeout time.Duration) *TimeoutSelector {
	return &TimeoutSelector{next: next, timeout: timeout}
}

// Classify delegates to the wrapped selector.
func (t *TimeoutSelector) Classify(ctx context.Context, sample Sample) (model.MaterialProfile, error) {
	callCtx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	profile, err := t.next.Classify(callCtx, sample)
	if err == nil {
		return profile, nil
	}

	// The caller's own cancellation is not an inference failure.
	if ctx.Err() != nil {
		return model.MaterialProfile{}, ctx.Err()
	}

	if errors.Is(err, common.ErrClassificationUnavailable) {
		return model.MaterialProfile{}, err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return model.MaterialProfile{}, fmt.Errorf("%w: timed out after %s", common.ErrClassificationUnavailable, t.timeout)
	}
	return model.MaterialProfile{}, fmt.Errorf("%w: %w", common.ErrClassificationUnavailable, err)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(ctx context.Context, sample Sample) (model.MaterialProfile, error)

// Classify calls f.
func (f SelectorFunc) Classify(ctx context.Context, sample Sample) (model.MaterialProfile, error) {
	return f(ctx, sample)
}
