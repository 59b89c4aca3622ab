// Package service defines the interfaces shared between application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/wastewise/internal/model"
)

// ListingFilter defines filtering options for listing queries.
type ListingFilter struct {
	Status   model.ListingStatus
	Material string
	Limit    int
	Offset   int
}

// MarketStore defines the contract for the marketplace persistence layer.
type MarketStore interface {
	CreateListing(ctx context.Context, listing *model.Listing) error
	GetListing(ctx context.Context, id string) (*model.Listing, error)
	ListListings(ctx context.Context, filter ListingFilter) ([]model.Listing, error)
	MarkSold(ctx context.Context, id, buyer string) (*model.Trade, error)
	ListTrades(ctx context.Context) ([]model.Trade, error)

	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// CoverageReport summarizes a batch of independent classifications.
type CoverageReport struct {
	Counts   map[string]int
	Failures int
	Runs     int
	Duration time.Duration
}

// Unreached returns catalog materials that were never selected.
func (r CoverageReport) Unreached(materials []string) []string {
	var out []string
	for _, m := range materials {
		if r.Counts[m] == 0 {
			out = append(out, m)
		}
	}
	return out
}
