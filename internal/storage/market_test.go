package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testListing(material string, weight, price float64) *model.Listing {
	return &model.Listing{
		Material:   material,
		Category:   model.CategoryRecyclable,
		WeightKg:   weight,
		PricePerKg: price,
		Location:   "Sector 15, Noida",
	}
}

func TestSQLiteStorage_MigrateIsIdempotent(t *testing.T) {
	store := createTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
	assert.Equal(t, MemoryPath, store.Path())
}

func TestSQLiteStorage_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "market.db")

	store, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.CreateListing(context.Background(), testListing("Glass Jars", 3, 50)))
}

func TestSQLiteStorage_MemoryDatabasesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := createTestStorage(t)
	b := createTestStorage(t)

	require.NoError(t, a.CreateListing(ctx, testListing("Cardboard", 5, 16)))

	listings, err := b.ListListings(ctx, service.ListingFilter{})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestSQLiteStorage_CreateListing(t *testing.T) {
	tests := []struct {
		listing *model.Listing
		wantErr error
		name    string
	}{
		{
			name:    "valid listing",
			listing: testListing("Plastic Bottles", 2.5, 48),
		},
		{
			name:    "nil listing",
			listing: nil,
			wantErr: ErrNilParameter,
		},
		{
			name:    "zero weight",
			listing: testListing("Plastic Bottles", 0, 48),
			wantErr: ErrInvalidListing,
		},
		{
			name: "unknown status",
			listing: func() *model.Listing {
				l := testListing("Metal Cans", 1.5, 130)
				l.Status = "reserved"
				return l
			}(),
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := createTestStorage(t)
			ctx := context.Background()

			err := store.CreateListing(ctx, tt.listing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tt.listing.ID)
			assert.Equal(t, model.ListingAvailable, tt.listing.Status)

			got, err := store.GetListing(ctx, tt.listing.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.listing.Material, got.Material)
			assert.Equal(t, tt.listing.Category, got.Category)
			assert.InDelta(t, tt.listing.WeightKg, got.WeightKg, 0.001)
		})
	}
}

func TestSQLiteStorage_GetListingNotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetListing(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = store.GetListing(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestSQLiteStorage_ListListings(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	base := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	for i, material := range []string{"Cardboard", "Plastic (PET)", "Cardboard"} {
		l := testListing(material, 1, 10)
		l.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.CreateListing(ctx, l))
	}

	all, err := store.ListListings(ctx, service.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))

	cardboard, err := store.ListListings(ctx, service.ListingFilter{Material: "cardboard"})
	require.NoError(t, err)
	assert.Len(t, cardboard, 2)

	page, err := store.ListListings(ctx, service.ListingFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	rest, err := store.ListListings(ctx, service.ListingFilter{Offset: 1})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, all[1].ID, rest[0].ID)

	_, err = store.ListListings(ctx, service.ListingFilter{Limit: -1})
	assert.ErrorIs(t, err, ErrNegativeLimit)
}

func TestSQLiteStorage_MarkSold(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	listing := testListing("Cardboard Boxes", 5, 16)
	require.NoError(t, store.CreateListing(ctx, listing))

	trade, err := store.MarkSold(ctx, listing.ID, "Priya S.")
	require.NoError(t, err)
	assert.Equal(t, model.TradeSold, trade.Action)
	assert.InDelta(t, 80.0, trade.Amount, 0.001)

	got, err := store.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ListingSold, got.Status)

	available, err := store.ListListings(ctx, service.ListingFilter{Status: model.ListingAvailable})
	require.NoError(t, err)
	assert.Empty(t, available)

	_, err = store.MarkSold(ctx, listing.ID, "Amit K.")
	assert.ErrorIs(t, err, ErrListingNotOpen)

	_, err = store.MarkSold(ctx, "missing", "Amit K.")
	assert.ErrorIs(t, err, common.ErrNotFound)

	trades, err := store.ListTrades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "Priya S.", trades[0].Counterparty)
	assert.Equal(t, "Cardboard Boxes", trades[0].Material)
}
