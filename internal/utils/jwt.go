package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and validating signed tokens
)

// ErrInvalidToken is returned by ParseToken for every verification failure:
// bad signature, wrong algorithm, malformed input or expiry.  The cases are
// deliberately not distinguished; callers answer 401 either way.
var ErrInvalidToken = errors.New("token inválido o expirado")

// Claims is the payload carried by a session token.  It embeds the identity
// fields the frontend and the audit stamps need, so protected handlers never
// have to look the user up again: the claims are trusted for the token's
// whole lifetime.
type Claims struct {
	ID      uint64 `json:"id"`      // usuarios.id
	Nombre  string `json:"nombre"`  // display name
	Usuario string `json:"usuario"` // unique login name
	Rol     string `json:"rol"`     // "admin" | "usuario"
	jwt.RegisteredClaims
}

// NewToken builds and signs an HS256 JWT with the given identity claims and
// time-to-live.  The secret must be the configured JWT_SECRET; there is no
// default.
func NewToken(secret string, id uint64, nombre, usuario, rol string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		ID:      id,
		Nombre:  nombre,
		Usuario: usuario,
		Rol:     rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry of a serialized token and returns
// its claims.  Verification is a pure computation; it never touches the
// database, so a deactivated user keeps a previously issued token valid
// until it expires.
func ParseToken(secret, raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; reject tokens claiming another algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
