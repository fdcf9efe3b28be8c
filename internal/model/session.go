package model

import "time"

// Session models an entry in the `sessions` table. One row is created per
// issued refresh token. The plain token is never stored; only its SHA-256
// hex digest.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the session.
//  TokenHash – SHA-256 hex digest of the refresh token.
//  ExpiresAt – absolute expiry of the refresh token.
//  RevokedAt – when the session was revoked (null while active).
//  CreatedAt – timestamp of creation.
type Session struct {
	ID        uint64     // sessions.id
	UserID    uint64     // sessions.user_id
	TokenHash string     // sessions.token_hash
	ExpiresAt time.Time  // sessions.expires_at
	RevokedAt *time.Time // sessions.revoked_at (nullable)
	CreatedAt time.Time  // sessions.created_at
}
