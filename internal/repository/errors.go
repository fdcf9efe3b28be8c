// Package repository defines the data access layer and the sentinel errors
// shared across it. Handlers translate these sentinels into HTTP failures;
// storage-level constraint violations (duplicate keys racing another
// writer) are converted here and never surface as internal errors.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate it into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an operation cannot proceed because the
// target is already in a terminal or incompatible state. Handlers translate
// it into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned by user creation when the email is taken.
var ErrEmailExists = errors.New("email already exists")

// ErrSessionInvalid is returned when a refresh token digest is unknown,
// revoked or expired. The three cases are deliberately indistinguishable.
var ErrSessionInvalid = errors.New("invalid refresh token")

// ErrQuoteNotFound is returned when a quote id does not exist.
var ErrQuoteNotFound = errors.New("quote not found")

// ErrBidNotFound is returned when a bid id does not exist on the quote.
var ErrBidNotFound = errors.New("bid not found")

// ErrDuplicateBid is returned when a transporter already holds a bid on the
// quote. Backed by UNIQUE(quote_id, transporter_id).
var ErrDuplicateBid = errors.New("bid already placed on this quote")

// ErrShipmentExists is returned when a shipment is already materialized for
// the quote. Backed by the UNIQUE constraint on shipments.quote_id, which
// is the final guard when two acceptances race.
var ErrShipmentExists = errors.New("shipment already exists for this quote")

// ErrShipmentNotFound is returned when no shipment exists for a quote.
var ErrShipmentNotFound = errors.New("shipment not found")

// isDuplicateKey reports whether err is a MySQL duplicate-entry violation
// (error 1062), raised when an insert loses a race against a unique index.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
