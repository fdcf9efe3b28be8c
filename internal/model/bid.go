package model

import "time"

// PlatformFeeRate is the marketplace cut deducted from an accepted bid.
// The payout is a display-time computation; nothing is disbursed here.
const PlatformFeeRate = 0.20

// Bid mirrors the `bids` table: a transporter's priced offer against a
// quote. The schema enforces UNIQUE(quote_id, transporter_id) so a
// transporter holds at most one bid per quote, and at most one bid per
// quote ever carries is_accepted = true.
type Bid struct {
	ID            uint64    // bids.id
	QuoteID       uint64    // bids.quote_id
	TransporterID uint64    // bids.transporter_id
	Amount        float64   // bids.amount (what the cargo owner pays)
	EstimatedDays int       // bids.estimated_days
	Notes         *string   // bids.notes (nullable)
	IsAccepted    bool      // bids.is_accepted
	CreatedAt     time.Time // bids.created_at
}

// Payout returns what the transporter receives after the platform fee.
func (b Bid) Payout() float64 {
	return b.Amount * (1 - PlatformFeeRate)
}
