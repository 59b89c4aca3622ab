// Package marketplace turns a Sell recommendation into a marketplace listing.
package marketplace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
)

// ErrNotSellable is returned when a classification offers no sell action.
var ErrNotSellable = errors.New("material cannot be sold")

// Draft is a listing pre-filled from a classification, awaiting weight and location.
type Draft struct {
	Material   string
	Category   model.Category
	ActionName string
	PricePerKg float64
}

// DraftFromResult pre-fills a listing from a classification's sell action.
func DraftFromResult(result *model.ClassificationResult) (Draft, error) {
	if result == nil {
		return Draft{}, fmt.Errorf("%w: no classification", ErrNotSellable)
	}

	sell, ok := result.Actions.Sell()
	if !ok {
		return Draft{}, fmt.Errorf("%w: %s has no sell action", ErrNotSellable, result.Profile.Material)
	}

	price, ok := result.Profile.Price()
	if !ok {
		return Draft{}, fmt.Errorf("%w: %s has no estimated price", ErrNotSellable, result.Profile.Material)
	}

	return Draft{
		Material:   result.Profile.Material,
		Category:   result.Profile.Category,
		ActionName: sell.Title,
		PricePerKg: price,
	}, nil
}

// Listing completes the draft. A non-positive price keeps the estimate.
func (d Draft) Listing(weightKg, pricePerKg float64, location string) *model.Listing {
	if pricePerKg <= 0 {
		pricePerKg = d.PricePerKg
	}
	return &model.Listing{
		Material:   d.Material,
		Category:   d.Category,
		WeightKg:   weightKg,
		PricePerKg: pricePerKg,
		Location:   location,
		Status:     model.ListingAvailable,
	}
}

// Market wraps a store with the sell hand-off.
type Market struct {
	store service.MarketStore
}

// New creates a market backed by store.
func New(store service.MarketStore) *Market {
	return &Market{store: store}
}

// ListRequest carries the fields the user supplies when listing.
type ListRequest struct {
	Location   string  `json:"location"`
	WeightKg   float64 `json:"weight_kg"`
	PricePerKg float64 `json:"price_per_kg,omitempty"`
}

// ListFromResult creates a listing from a classified sample.
func (m *Market) ListFromResult(ctx context.Context, result *model.ClassificationResult, req ListRequest) (*model.Listing, error) {
	draft, err := DraftFromResult(result)
	if err != nil {
		return nil, err
	}

	listing := draft.Listing(req.WeightKg, req.PricePerKg, req.Location)
	if err := m.store.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	slog.Info("Listed on marketplace",
		"listing_id", listing.ID,
		"material", listing.Material,
		"weight_kg", listing.WeightKg,
		"price_per_kg", listing.PricePerKg)

	return listing, nil
}

// Listings returns listings matching filter.
func (m *Market) Listings(ctx context.Context, filter service.ListingFilter) ([]model.Listing, error) {
	return m.store.ListListings(ctx, filter)
}

// Sell marks a listing sold to buyer.
func (m *Market) Sell(ctx context.Context, id, buyer string) (*model.Trade, error) {
	return m.store.MarkSold(ctx, id, buyer)
}

// Trades returns the trade history.
func (m *Market) Trades(ctx context.Context) ([]model.Trade, error) {
	return m.store.ListTrades(ctx)
}
