package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/wastewise/internal/model"
	"github.com/google/uuid"
)

// MarkSold closes an available listing and records the sale.
func (s *SQLiteStorage) MarkSold(ctx context.Context, id, buyer string) (*model.Trade, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	listing, err := getListing(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if listing.Status != model.ListingAvailable {
		return nil, fmt.Errorf("%w: %s is %s", ErrListingNotOpen, id, listing.Status)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE listings SET status = ? WHERE id = ?`, string(model.ListingSold), id); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	trade := &model.Trade{
		ID:           uuid.NewString(),
		ListingID:    id,
		Material:     listing.Material,
		Action:       model.TradeSold,
		Counterparty: buyer,
		Amount:       listing.Total(),
		At:           s.now(),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trades (id, listing_id, material, action, counterparty, amount, traded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		trade.ID,
		trade.ListingID,
		trade.Material,
		string(trade.Action),
		trade.Counterparty,
		trade.Amount,
		trade.At,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record trade: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	return trade, nil
}

// ListTrades returns the trade history, newest first.
func (s *SQLiteStorage) ListTrades(ctx context.Context) ([]model.Trade, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, listing_id, material, action, counterparty, amount, traded_at
		FROM trades
		ORDER BY traded_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var trades []model.Trade
	for rows.Next() {
		var (
			trade        model.Trade
			action       string
			counterparty sql.NullString
		)
		if err := rows.Scan(
			&trade.ID,
			&trade.ListingID,
			&trade.Material,
			&action,
			&counterparty,
			&trade.Amount,
			&trade.At,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trade.Action = model.TradeAction(action)
		trade.Counterparty = counterparty.String
		trades = append(trades, trade)
	}

	return trades, rows.Err()
}
