package utils // utils provides token issuance, verification and hashing helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cargolink/freight-backend/internal/model"
)

// Token bundles a signed JWT with its expiry. Access tokens are short-lived
// and sent in the Authorization header; refresh tokens are long-lived and
// exchanged only at /auth/refresh. Both carry the same claim payload but are
// signed with distinct secrets.
type Token struct {
	Value string    // the serialized JWT string
	Exp   time.Time // UTC expiration time
}

// Claims is the payload carried by both token kinds: subject id, email and
// role, plus the registered expiry and issued-at claims.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var errInvalidToken = errors.New("invalid token")

// NewAccessToken signs a short-lived HS256 access token for a user.
func NewAccessToken(secret string, userID uint64, email string, role model.Role, ttl time.Duration) (Token, error) {
	return signToken(secret, userID, email, role, ttl)
}

// NewRefreshToken signs a long-lived HS256 refresh token. The raw value goes
// back to the client; only its SHA-256 digest is ever persisted.
func NewRefreshToken(secret string, userID uint64, email string, role model.Role, ttl time.Duration) (Token, error) {
	return signToken(secret, userID, email, role, ttl)
}

func signToken(secret string, userID uint64, email string, role model.Role, ttl time.Duration) (Token, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := Claims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, Exp: exp}, nil
}

// VerifyToken parses a token signed by signToken and returns its claims. It
// rejects non-HMAC signing methods, bad signatures and expired tokens.
func VerifyToken(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// HashRefreshRaw returns the SHA-256 hex digest of a raw refresh token.
// Only the digest is stored, so a leaked sessions table cannot be replayed.
func HashRefreshRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// UserID extracts the numeric subject from verified claims.
func (c *Claims) UserID() (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}
