package model

import "time"

// QuoteStatus is the stored lifecycle state of a quote. EXPIRED is never
// written; it is derived at read time from ExpiresAt.
type QuoteStatus string

const (
	QuoteActive    QuoteStatus = "ACTIVE"
	QuoteAccepted  QuoteStatus = "ACCEPTED"
	QuoteCancelled QuoteStatus = "CANCELLED"
	// QuoteExpired is the derived read-time state for an ACTIVE quote whose
	// expires_at has passed. No writer ever stores it.
	QuoteExpired QuoteStatus = "EXPIRED"
)

// Quote mirrors the `quotes` table: a cargo owner's open request for
// transport pricing. Distance is nullable; when the caller supplied none it
// stays unknown rather than being recorded as a misleading zero.
type Quote struct {
	ID                  uint64      // quotes.id
	CargoOwnerID        uint64      // quotes.cargo_owner_id
	Cargo               string      // quotes.cargo
	CargoType           *string     // quotes.cargo_type (nullable)
	CargoDescription    *string     // quotes.cargo_description (nullable)
	FromLocation        string      // quotes.from_location
	FromAddress         *string     // quotes.from_address (nullable)
	ToLocation          string      // quotes.to_location
	ToAddress           *string     // quotes.to_address (nullable)
	Weight              float64     // quotes.weight (kg)
	Distance            *float64    // quotes.distance (km, nullable when unknown)
	Dimensions          *string     // quotes.dimensions (nullable)
	EstimatedValue      *float64    // quotes.estimated_value (nullable)
	InsuranceRequired   bool        // quotes.insurance_required
	SpecialInstructions *string     // quotes.special_instructions (nullable)
	PickupDate          *time.Time  // quotes.pickup_date (nullable)
	DeliveryDate        *time.Time  // quotes.delivery_date (nullable)
	Status              QuoteStatus // quotes.status
	ExpiresAt           time.Time   // quotes.expires_at
	CreatedAt           time.Time   // quotes.created_at
	UpdatedAt           time.Time   // quotes.updated_at
}

// StatusAt returns the effective status at the given instant: an ACTIVE
// quote past its expiry reads as EXPIRED, everything else reads as stored.
func (q Quote) StatusAt(now time.Time) QuoteStatus {
	if q.Status == QuoteActive && now.After(q.ExpiresAt) {
		return QuoteExpired
	}
	return q.Status
}
