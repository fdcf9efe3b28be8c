package model

import "time"

// Role is the closed set of account roles. Authorization checks match on
// these values exhaustively; an unrecognized role is rejected, never
// defaulted.
type Role string

const (
	RoleCargoOwner  Role = "CARGO_OWNER"
	RoleTransporter Role = "TRANSPORTER"
	RoleAdmin       Role = "ADMIN"
)

// ParseRole maps the wire values accepted at signup onto the Role enum.
// Admin accounts are provisioned out of band and cannot be self-registered.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "cargo-owner":
		return RoleCargoOwner, true
	case "transporter":
		return RoleTransporter, true
	}
	return "", false
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCargoOwner, RoleTransporter, RoleAdmin:
		return true
	}
	return false
}

// User mirrors the `users` table. PasswordHash holds a bcrypt digest and is
// never serialized; handlers build separate response projections.
//
// Fields:
//  ID           – primary key identifier.
//  FullName     – contact name shown to counterparties.
//  Email        – unique, stored lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  CompanyName  – company the account acts for.
//  PhoneNumber  – contact phone.
//  Role         – CARGO_OWNER, TRANSPORTER or ADMIN.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	FullName     string    // users.full_name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CompanyName  string    // users.company_name
	PhoneNumber  string    // users.phone_number
	Role         Role      // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// UserRef is the public projection of a user attached to quotes, bids and
// shipments. It never carries credentials.
type UserRef struct {
	ID          uint64 `json:"id"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Ref builds the public projection for u.
func (u User) Ref() UserRef {
	return UserRef{
		ID:          u.ID,
		FullName:    u.FullName,
		CompanyName: u.CompanyName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}
