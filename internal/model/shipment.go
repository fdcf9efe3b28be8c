package model

import "time"

// ShipmentStatus enumerates the `shipments.status` column. Only
// PENDING_PICKUP is written by this service; later transitions belong to
// the tracking surface.
type ShipmentStatus string

const (
	ShipmentPendingPickup ShipmentStatus = "PENDING_PICKUP"
	ShipmentInTransit     ShipmentStatus = "IN_TRANSIT"
	ShipmentDelivered     ShipmentStatus = "DELIVERED"
)

// Shipment mirrors the `shipments` table. It is materialized exactly once
// per quote when a bid is accepted and snapshots the quote's cargo and
// route fields, because the quote can expire or change independently of an
// in-flight shipment. quote_id carries a UNIQUE constraint; that constraint
// is the final guard against double materialization.
type Shipment struct {
	ID               uint64         // shipments.id
	QuoteID          uint64         // shipments.quote_id (unique)
	CargoOwnerID     uint64         // shipments.cargo_owner_id
	TransporterID    uint64         // shipments.transporter_id
	Cargo            string         // shipments.cargo
	CargoDescription *string        // shipments.cargo_description (nullable)
	FromLocation     string         // shipments.from_location
	FromAddress      *string        // shipments.from_address (nullable)
	ToLocation       string         // shipments.to_location
	ToAddress        *string        // shipments.to_address (nullable)
	Weight           float64        // shipments.weight
	Distance         *float64       // shipments.distance (nullable when unknown)
	Dimensions       *string        // shipments.dimensions (nullable)
	Amount           float64        // shipments.amount (accepted bid amount)
	ETA              time.Time      // shipments.eta
	PickupDate       *time.Time     // shipments.pickup_date (nullable)
	Status           ShipmentStatus // shipments.status
	CreatedAt        time.Time      // shipments.created_at
}
