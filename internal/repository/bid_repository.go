package repository

import (
	"context"
	"database/sql"

	"github.com/cargolink/freight-backend/internal/model"
)

// BidRepo persists bids. The schema enforces UNIQUE(quote_id,
// transporter_id), so a duplicate bid surfaces as a constraint violation
// regardless of how the check-then-insert interleaves.
type BidRepo struct{ db *sql.DB }

func NewBidRepo(db *sql.DB) *BidRepo { return &BidRepo{db: db} }

// Create inserts a bid and populates the generated ID and timestamp. A
// duplicate-key violation is translated to ErrDuplicateBid.
func (r *BidRepo) Create(ctx context.Context, b *model.Bid) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO bids (quote_id, transporter_id, amount, estimated_days, notes) VALUES (?,?,?,?,?)",
		b.QuoteID, b.TransporterID, b.Amount, b.EstimatedDays, b.Notes)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateBid
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM bids WHERE id=?", b.ID).Scan(&b.CreatedAt)
}

// ListByQuote returns all bids on a quote, cheapest first.
func (r *BidRepo) ListByQuote(ctx context.Context, quoteID uint64) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, quote_id, transporter_id, amount, estimated_days, notes, is_accepted, created_at FROM bids WHERE quote_id=? ORDER BY amount ASC",
		quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bids := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bids, nil
}

// GetByQuoteTx fetches one bid belonging to a quote within tx. A bid id
// from a different quote reads as not found.
func (r *BidRepo) GetByQuoteTx(ctx context.Context, tx *sql.Tx, quoteID, bidID uint64) (model.Bid, error) {
	row := tx.QueryRowContext(ctx,
		"SELECT id, quote_id, transporter_id, amount, estimated_days, notes, is_accepted, created_at FROM bids WHERE id=? AND quote_id=? LIMIT 1",
		bidID, quoteID)
	b, err := scanBid(row)
	if err == sql.ErrNoRows {
		return model.Bid{}, ErrBidNotFound
	}
	return b, err
}

// MarkAcceptedTx flags the bid accepted within tx.
func (r *BidRepo) MarkAcceptedTx(ctx context.Context, tx *sql.Tx, bidID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE bids SET is_accepted=1 WHERE id=?", bidID)
	return err
}

func scanBid(row rowScanner) (model.Bid, error) {
	var (
		b     model.Bid
		notes sql.NullString
	)
	err := row.Scan(&b.ID, &b.QuoteID, &b.TransporterID, &b.Amount, &b.EstimatedDays, &notes, &b.IsAccepted, &b.CreatedAt)
	if err != nil {
		return model.Bid{}, err
	}
	b.Notes = nullStr(notes)
	return b, nil
}
