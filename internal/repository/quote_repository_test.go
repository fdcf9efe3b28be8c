package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargolink/freight-backend/internal/model"
)

var quoteCols = []string{
	"id", "cargo_owner_id", "cargo", "cargo_type", "cargo_description",
	"from_location", "from_address", "to_location", "to_address", "weight", "distance",
	"dimensions", "estimated_value", "insurance_required", "special_instructions",
	"pickup_date", "delivery_date", "status", "expires_at", "created_at", "updated_at",
}

func quoteRow(id, ownerID uint64, status model.QuoteStatus, expires time.Time) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(quoteCols).AddRow(
		id, ownerID, "steel coils", nil, nil,
		"Rotterdam", nil, "Munich", nil, 12000.0, nil,
		nil, nil, false, nil,
		nil, nil, string(status), expires, now, now)
}

func TestQuoteGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepo(db)

	mock.ExpectQuery("FROM quotes WHERE id=\\? LIMIT 1").
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows(quoteCols))

	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestQuoteGetByIDNullableFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepo(db)

	expires := time.Now().UTC().Add(48 * time.Hour)
	mock.ExpectQuery("FROM quotes WHERE id=\\? LIMIT 1").
		WithArgs(uint64(1)).
		WillReturnRows(quoteRow(1, 10, model.QuoteActive, expires))

	q, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), q.CargoOwnerID)
	assert.Equal(t, model.QuoteActive, q.Status)
	assert.Nil(t, q.Distance, "absent distance must stay unknown, not zero")
	assert.Nil(t, q.DeliveryDate)
}

func TestQuoteCancelActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE quotes SET status=?, updated_at=NOW() WHERE id=? AND cargo_owner_id=? AND status=?")).
		WithArgs(string(model.QuoteCancelled), uint64(1), uint64(10), string(model.QuoteActive)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Cancel(context.Background(), 1, 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A conditional cancel that touches zero rows re-reads the quote to decide
// between ownership and state failures.
func TestQuoteCancelTerminalState(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE quotes SET status=?, updated_at=NOW() WHERE id=? AND cargo_owner_id=? AND status=?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM quotes WHERE id=\\? LIMIT 1").
		WithArgs(uint64(1)).
		WillReturnRows(quoteRow(1, 10, model.QuoteAccepted, time.Now().UTC().Add(time.Hour)))

	assert.ErrorIs(t, repo.Cancel(context.Background(), 1, 10), ErrConflict)
}

func TestQuoteCancelNotOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE quotes SET status=?, updated_at=NOW() WHERE id=? AND cargo_owner_id=? AND status=?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM quotes WHERE id=\\? LIMIT 1").
		WithArgs(uint64(1)).
		WillReturnRows(quoteRow(1, 99, model.QuoteActive, time.Now().UTC().Add(time.Hour)))

	assert.ErrorIs(t, repo.Cancel(context.Background(), 1, 10), ErrForbidden)
}

func TestBidCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBidRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids (quote_id, transporter_id, amount, estimated_days, notes) VALUES (?,?,?,?,?)")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	b := model.Bid{QuoteID: 1, TransporterID: 20, Amount: 9000, EstimatedDays: 3}
	assert.ErrorIs(t, repo.Create(context.Background(), &b), ErrDuplicateBid)
}

func TestBidCreateOK(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBidRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids (quote_id, transporter_id, amount, estimated_days, notes) VALUES (?,?,?,?,?)")).
		WithArgs(uint64(1), uint64(20), 9000.0, 3, nil).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT created_at FROM bids WHERE id=?")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()))

	b := model.Bid{QuoteID: 1, TransporterID: 20, Amount: 9000, EstimatedDays: 3}
	require.NoError(t, repo.Create(context.Background(), &b))
	assert.Equal(t, uint64(7), b.ID)
	assert.InDelta(t, 7200.0, b.Payout(), 0.001)
}

// A racing acceptance that slips past the row lock dies on the UNIQUE
// constraint on shipments.quote_id.
func TestShipmentCreateTxDuplicateQuote(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO shipments").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry for key quote_id"})
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	s := model.Shipment{QuoteID: 1, CargoOwnerID: 10, TransporterID: 20, Amount: 9000, Status: model.ShipmentPendingPickup}
	assert.ErrorIs(t, repo.CreateTx(context.Background(), tx, &s), ErrShipmentExists)
}

func TestShipmentExistsForQuoteTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM shipments WHERE quote_id=? LIMIT 1")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	exists, err := repo.ExistsForQuoteTx(context.Background(), tx, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}
