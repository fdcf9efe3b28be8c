package repository

import (
	"context"
	"database/sql"

	"github.com/cargolink/freight-backend/internal/model"
)

// ShipmentRepo persists shipments. shipments.quote_id carries a UNIQUE
// constraint so at most one shipment can ever be materialized per quote.
type ShipmentRepo struct{ db *sql.DB }

func NewShipmentRepo(db *sql.DB) *ShipmentRepo { return &ShipmentRepo{db: db} }

const shipmentColumns = `id, quote_id, cargo_owner_id, transporter_id, cargo,
	cargo_description, from_location, from_address, to_location, to_address,
	weight, distance, dimensions, amount, eta, pickup_date, status, created_at`

// ExistsForQuoteTx reports whether a shipment row is already linked to the
// quote, within tx.
func (r *ShipmentRepo) ExistsForQuoteTx(ctx context.Context, tx *sql.Tx, quoteID uint64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx,
		"SELECT 1 FROM shipments WHERE quote_id=? LIMIT 1", quoteID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateTx inserts the shipment within tx and populates its generated ID.
// A duplicate-key violation on quote_id means another acceptance committed
// first and is translated to ErrShipmentExists.
func (r *ShipmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, s *model.Shipment) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO shipments (quote_id, cargo_owner_id, transporter_id, cargo,
			cargo_description, from_location, from_address, to_location, to_address,
			weight, distance, dimensions, amount, eta, pickup_date, status)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.QuoteID, s.CargoOwnerID, s.TransporterID, s.Cargo,
		s.CargoDescription, s.FromLocation, s.FromAddress, s.ToLocation, s.ToAddress,
		s.Weight, s.Distance, s.Dimensions, s.Amount, s.ETA, s.PickupDate, string(s.Status))
	if err != nil {
		if isDuplicateKey(err) {
			return ErrShipmentExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByQuote fetches the shipment materialized from a quote.
func (r *ShipmentRepo) GetByQuote(ctx context.Context, quoteID uint64) (model.Shipment, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+shipmentColumns+" FROM shipments WHERE quote_id=? LIMIT 1", quoteID)
	s, err := scanShipment(row)
	if err == sql.ErrNoRows {
		return model.Shipment{}, ErrShipmentNotFound
	}
	return s, err
}

func scanShipment(row rowScanner) (model.Shipment, error) {
	var (
		s          model.Shipment
		cargoDesc  sql.NullString
		fromAddr   sql.NullString
		toAddr     sql.NullString
		distance   sql.NullFloat64
		dimensions sql.NullString
		pickupDate sql.NullTime
		status     string
	)
	err := row.Scan(&s.ID, &s.QuoteID, &s.CargoOwnerID, &s.TransporterID, &s.Cargo,
		&cargoDesc, &s.FromLocation, &fromAddr, &s.ToLocation, &toAddr,
		&s.Weight, &distance, &dimensions, &s.Amount, &s.ETA, &pickupDate, &status, &s.CreatedAt)
	if err != nil {
		return model.Shipment{}, err
	}
	s.Status = model.ShipmentStatus(status)
	s.CargoDescription = nullStr(cargoDesc)
	s.FromAddress = nullStr(fromAddr)
	s.ToAddress = nullStr(toAddr)
	s.Distance = nullFloat(distance)
	s.Dimensions = nullStr(dimensions)
	s.PickupDate = nullTime(pickupDate)
	return s, nil
}
