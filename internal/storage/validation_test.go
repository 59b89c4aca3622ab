package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "non-empty", value: "listing-1", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: "  \t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.value, "id")
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrEmptyString) {
				t.Errorf("validateString() error = %v, want ErrEmptyString", err)
			}
		})
	}
}

func TestValidateListing(t *testing.T) {
	valid := func() *model.Listing {
		return &model.Listing{
			Material:   "Cardboard",
			Category:   model.CategoryRecyclable,
			WeightKg:   4,
			PricePerKg: 80,
			Location:   "Sector 62, Noida",
		}
	}

	tests := []struct {
		listing *model.Listing
		wantErr error
		name    string
	}{
		{name: "valid", listing: valid()},
		{name: "nil", listing: nil, wantErr: ErrNilParameter},
		{
			name: "zero weight",
			listing: func() *model.Listing {
				l := valid()
				l.WeightKg = 0
				return l
			}(),
			wantErr: ErrInvalidListing,
		},
		{
			name: "missing location",
			listing: func() *model.Listing {
				l := valid()
				l.Location = " "
				return l
			}(),
			wantErr: ErrInvalidListing,
		},
		{
			name: "unknown status",
			listing: func() *model.Listing {
				l := valid()
				l.Status = "reserved"
				return l
			}(),
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateListing(tt.listing)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateListing() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateListing() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStorageValidation_NilContext(t *testing.T) {
	store := createTestStorage(t)

	//nolint:staticcheck // nil contexts are the point of this test
	calls := map[string]func() error{
		"CreateListing": func() error { return store.CreateListing(nil, &model.Listing{}) },
		"Migrate":       func() error { return store.Migrate(nil) },
		"GetListing": func() error {
			_, err := store.GetListing(nil, "id")
			return err
		},
		"ListListings": func() error {
			_, err := store.ListListings(nil, service.ListingFilter{})
			return err
		},
		"MarkSold": func() error {
			_, err := store.MarkSold(nil, "id", "buyer")
			return err
		},
		"ListTrades": func() error {
			_, err := store.ListTrades(nil)
			return err
		},
	}

	for name, call := range calls {
		if err := call(); !errors.Is(err, ErrNilContext) {
			t.Errorf("%s with nil context: got %v, want ErrNilContext", name, err)
		}
	}
}
