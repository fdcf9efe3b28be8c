package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargolink/freight-backend/internal/model"
)

// QuoteRepo provides persistence for quotes. Acceptance-path reads go
// through the *Tx variants so the quote row stays locked for the duration
// of the atomic unit.
type QuoteRepo struct{ db *sql.DB }

func NewQuoteRepo(db *sql.DB) *QuoteRepo { return &QuoteRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions that
// span quotes, bids and shipments.
func (r *QuoteRepo) DB() *sql.DB { return r.db }

const quoteColumns = `id, cargo_owner_id, cargo, cargo_type, cargo_description,
	from_location, from_address, to_location, to_address, weight, distance,
	dimensions, estimated_value, insurance_required, special_instructions,
	pickup_date, delivery_date, status, expires_at, created_at, updated_at`

// Create inserts a quote and reads the full row back to populate generated
// defaults and timestamps.
func (r *QuoteRepo) Create(ctx context.Context, q *model.Quote) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO quotes (cargo_owner_id, cargo, cargo_type, cargo_description,
			from_location, from_address, to_location, to_address, weight, distance,
			dimensions, estimated_value, insurance_required, special_instructions,
			pickup_date, delivery_date, status, expires_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		q.CargoOwnerID, q.Cargo, q.CargoType, q.CargoDescription,
		q.FromLocation, q.FromAddress, q.ToLocation, q.ToAddress, q.Weight, q.Distance,
		q.Dimensions, q.EstimatedValue, q.InsuranceRequired, q.SpecialInstructions,
		q.PickupDate, q.DeliveryDate, string(q.Status), q.ExpiresAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*q = got
	return nil
}

// GetByID fetches a single quote.
func (r *QuoteRepo) GetByID(ctx context.Context, id uint64) (model.Quote, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes WHERE id=? LIMIT 1", id)
	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return model.Quote{}, ErrQuoteNotFound
	}
	return q, err
}

// GetForUpdateTx fetches a quote within tx while taking a row lock. Two
// concurrent acceptances on the same quote serialize here; the loser then
// observes the committed status and fails its precondition checks.
func (r *QuoteRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Quote, error) {
	row := tx.QueryRowContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes WHERE id=? FOR UPDATE", id)
	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return model.Quote{}, ErrQuoteNotFound
	}
	return q, err
}

// MarkAcceptedTx transitions the quote to ACCEPTED within tx.
func (r *QuoteRepo) MarkAcceptedTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE quotes SET status=?, updated_at=NOW() WHERE id=?",
		string(model.QuoteAccepted), id)
	return err
}

// Cancel transitions an ACTIVE quote owned by ownerID to CANCELLED. The
// status predicate makes the update conditional; zero rows affected means
// the quote was already terminal.
func (r *QuoteRepo) Cancel(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE quotes SET status=?, updated_at=NOW() WHERE id=? AND cargo_owner_id=? AND status=?",
		string(model.QuoteCancelled), id, ownerID, string(model.QuoteActive))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		q, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if q.CargoOwnerID != ownerID {
			return ErrForbidden
		}
		return ErrConflict
	}
	return nil
}

// ListByOwner returns all quotes posted by a cargo owner, newest first.
func (r *QuoteRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Quote, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes WHERE cargo_owner_id=? ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	return collectQuotes(rows)
}

// ListOpen returns ACTIVE, unexpired quotes for transporters to browse,
// newest first.
func (r *QuoteRepo) ListOpen(ctx context.Context) ([]model.Quote, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes WHERE status=? AND expires_at >= NOW() ORDER BY created_at DESC",
		string(model.QuoteActive))
	if err != nil {
		return nil, err
	}
	return collectQuotes(rows)
}

// ListActiveByOwner returns the owner's ACTIVE unexpired quotes, soonest
// expiry first, capped at limit.
func (r *QuoteRepo) ListActiveByOwner(ctx context.Context, ownerID uint64, limit int) ([]model.Quote, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes WHERE cargo_owner_id=? AND status=? AND expires_at >= NOW() ORDER BY expires_at ASC LIMIT ?",
		ownerID, string(model.QuoteActive), limit)
	if err != nil {
		return nil, err
	}
	return collectQuotes(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (model.Quote, error) {
	var (
		q            model.Quote
		cargoType    sql.NullString
		cargoDesc    sql.NullString
		fromAddr     sql.NullString
		toAddr       sql.NullString
		distance     sql.NullFloat64
		dimensions   sql.NullString
		estValue     sql.NullFloat64
		instructions sql.NullString
		pickupDate   sql.NullTime
		deliveryDate sql.NullTime
		status       string
	)
	err := row.Scan(&q.ID, &q.CargoOwnerID, &q.Cargo, &cargoType, &cargoDesc,
		&q.FromLocation, &fromAddr, &q.ToLocation, &toAddr, &q.Weight, &distance,
		&dimensions, &estValue, &q.InsuranceRequired, &instructions,
		&pickupDate, &deliveryDate, &status, &q.ExpiresAt, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return model.Quote{}, err
	}
	q.Status = model.QuoteStatus(status)
	q.CargoType = nullStr(cargoType)
	q.CargoDescription = nullStr(cargoDesc)
	q.FromAddress = nullStr(fromAddr)
	q.ToAddress = nullStr(toAddr)
	q.Distance = nullFloat(distance)
	q.Dimensions = nullStr(dimensions)
	q.EstimatedValue = nullFloat(estValue)
	q.SpecialInstructions = nullStr(instructions)
	q.PickupDate = nullTime(pickupDate)
	q.DeliveryDate = nullTime(deliveryDate)
	return q, nil
}

func collectQuotes(rows *sql.Rows) ([]model.Quote, error) {
	defer rows.Close()
	quotes := make([]model.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return quotes, nil
}

func nullStr(v sql.NullString) *string {
	if v.Valid {
		s := v.String
		return &s
	}
	return nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if v.Valid {
		f := v.Float64
		return &f
	}
	return nil
}

func nullTime(v sql.NullTime) *time.Time {
	if v.Valid {
		t := v.Time.UTC()
		return &t
	}
	return nil
}
