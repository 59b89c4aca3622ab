package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/wastewise/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidListing = errors.New("invalid listing")
	ErrListingNotOpen = errors.New("listing is not available")
	ErrInvalidStatus  = errors.New("invalid listing status")
	ErrNegativeLimit  = errors.New("limit and offset cannot be negative")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateListing validates a listing before insert.
func validateListing(listing *model.Listing) error {
	if listing == nil {
		return fmt.Errorf("%w: listing", ErrNilParameter)
	}
	if err := listing.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidListing, err)
	}
	switch listing.Status {
	case "", model.ListingAvailable, model.ListingSold:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, listing.Status)
	}
	return nil
}
