package advisor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Veraticus/wastewise/internal/service"
	"golang.org/x/sync/errgroup"
)

// Coverage runs independent classifications across workers and counts how
// often each material comes back. Selector failures are counted, not fatal.
func Coverage(ctx context.Context, selector Selector, runs, workers int) (service.CoverageReport, error) {
	if runs <= 0 {
		return service.CoverageReport{}, fmt.Errorf("runs must be positive, got %d", runs)
	}
	if workers <= 0 {
		workers = 1
	}

	report := service.CoverageReport{
		Counts: make(map[string]int),
		Runs:   runs,
	}
	start := time.Now()

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := 0; i < runs; i++ {
		sample := Sample{Name: fmt.Sprintf("simulated-%d", i+1)}
		eg.Go(func() error {
			profile, err := selector.Classify(egCtx, sample)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if egCtx.Err() != nil {
					return egCtx.Err()
				}
				report.Failures++
				return nil
			}
			report.Counts[profile.Material]++
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return report, err
	}

	report.Duration = time.Since(start)
	return report, nil
}
