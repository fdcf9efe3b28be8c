// Package queue defines message payloads exchanged over the message broker.
package queue

// ShipmentCreatedEvent is published when a bid acceptance materializes a
// shipment. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type ShipmentCreatedEvent struct {
	ShipmentID    uint64  `json:"shipment_id"`
	QuoteID       uint64  `json:"quote_id"`
	BidID         uint64  `json:"bid_id"`
	CargoOwnerID  uint64  `json:"cargo_owner_id"`
	TransporterID uint64  `json:"transporter_id"`
	Cargo         string  `json:"cargo"`
	FromLocation  string  `json:"from_location"`
	ToLocation    string  `json:"to_location"`
	WeightKg      float64 `json:"weight_kg"`
	Amount        float64 `json:"amount"`
	Payout        float64 `json:"payout"`
	ETA           string  `json:"eta"`
	CreatedAt     string  `json:"created_at"`
}
