package model

import (
	"fmt"
	"strings"
	"time"
)

// ListingStatus indicates whether a marketplace listing can still be bought.
type ListingStatus string

// Listing status constants.
const (
	ListingAvailable ListingStatus = "available"
	ListingSold      ListingStatus = "sold"
)

// TradeAction records which side of a trade the user was on.
type TradeAction string

// Trade action constants.
const (
	TradeSold   TradeAction = "sold"
	TradeBought TradeAction = "bought"
)

// Listing is a marketplace offer for a quantity of sorted waste.
type Listing struct {
	CreatedAt  time.Time     `json:"created_at"`
	ID         string        `json:"id"`
	Material   string        `json:"material"`
	Category   Category      `json:"category"`
	Location   string        `json:"location"`
	Status     ListingStatus `json:"status"`
	WeightKg   float64       `json:"weight_kg"`
	PricePerKg float64       `json:"price_per_kg"`
}

// Total returns the asking price for the whole listing.
func (l *Listing) Total() float64 {
	return l.WeightKg * l.PricePerKg
}

// Validate ensures the listing can be offered.
func (l *Listing) Validate() error {
	if strings.TrimSpace(l.Material) == "" {
		return fmt.Errorf("material is required")
	}
	if l.Category != "" && !l.Category.Valid() {
		return fmt.Errorf("unknown category %q", l.Category)
	}
	if l.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive, got %.2f", l.WeightKg)
	}
	if l.PricePerKg <= 0 {
		return fmt.Errorf("price must be positive, got %.2f", l.PricePerKg)
	}
	if strings.TrimSpace(l.Location) == "" {
		return fmt.Errorf("location is required")
	}
	return nil
}

// Trade is a completed marketplace exchange.
type Trade struct {
	At           time.Time   `json:"at"`
	ID           string      `json:"id"`
	ListingID    string      `json:"listing_id"`
	Material     string      `json:"material"`
	Action       TradeAction `json:"action"`
	Counterparty string      `json:"counterparty"`
	Amount       float64     `json:"amount"`
}
