package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
	"github.com/google/uuid"
)

// CreateListing inserts a new listing, assigning an ID and timestamp when missing.
func (s *SQLiteStorage) CreateListing(ctx context.Context, listing *model.Listing) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateListing(listing); err != nil {
		return err
	}

	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	if listing.Status == "" {
		listing.Status = model.ListingAvailable
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = s.now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO listings (
			id, material, category, weight_kg, price_per_kg,
			location, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		listing.ID,
		listing.Material,
		string(listing.Category),
		listing.WeightKg,
		listing.PricePerKg,
		listing.Location,
		string(listing.Status),
		listing.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	return nil
}

// GetListing returns the listing with id.
func (s *SQLiteStorage) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return getListing(ctx, s.db, id)
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getListing(ctx context.Context, q queryer, id string) (*model.Listing, error) {
	var (
		listing  model.Listing
		category sql.NullString
		status   string
	)

	err := q.QueryRowContext(ctx, `
		SELECT id, material, category, weight_kg, price_per_kg, location, status, created_at
		FROM listings
		WHERE id = ?
	`, id).Scan(
		&listing.ID,
		&listing.Material,
		&category,
		&listing.WeightKg,
		&listing.PricePerKg,
		&listing.Location,
		&status,
		&listing.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	listing.Category = model.Category(category.String)
	listing.Status = model.ListingStatus(status)
	return &listing, nil
}

// ListListings returns listings newest first.
func (s *SQLiteStorage) ListListings(ctx context.Context, filter service.ListingFilter) ([]model.Listing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, ErrNegativeLimit
	}

	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Material != "" {
		where = append(where, "LOWER(material) = LOWER(?)")
		args = append(args, filter.Material)
	}

	query := `SELECT id, material, category, weight_kg, price_per_kg, location, status, created_at FROM listings`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	switch {
	case filter.Limit > 0:
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	case filter.Offset > 0:
		// SQLite needs a LIMIT before OFFSET; -1 means no limit.
		query += " LIMIT -1 OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var listings []model.Listing
	for rows.Next() {
		var (
			listing  model.Listing
			category sql.NullString
			status   string
		)
		if err := rows.Scan(
			&listing.ID,
			&listing.Material,
			&category,
			&listing.WeightKg,
			&listing.PricePerKg,
			&listing.Location,
			&status,
			&listing.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listing.Category = model.Category(category.String)
		listing.Status = model.ListingStatus(status)
		listings = append(listings, listing)
	}

	return listings, rows.Err()
}
