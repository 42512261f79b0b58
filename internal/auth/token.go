// Package auth mints and parses the session tokens returned by the simulated
// login endpoint. Tokens are HS256 JWTs; there is no real identity provider
// behind them.
package auth

import (
	"time"

	"github.com/formlab/formlab/errors"
	"github.com/formlab/formlab/internal/utils"
	"github.com/formlab/formlab/types"
	"github.com/golang-jwt/jwt/v5"
)

// defaultSecret keeps the demo usable without configuration. Production
// deployments must set AUTH_TOKEN_SECRET (enforced by config validation).
const defaultSecret = "formlab-demo-insecure-secret-0000"

// SessionClaims are the JWT claims carried by a simulated session token.
type SessionClaims struct {
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  types.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenMinter issues and validates session tokens.
type TokenMinter struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenMinter creates a minter. An empty secret falls back to the demo
// default; a non-positive ttl defaults to 24 hours.
func NewTokenMinter(secret string, ttl time.Duration) *TokenMinter {
	if secret == "" {
		secret = defaultSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenMinter{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Mint issues a signed session token for the given user.
func (m *TokenMinter) Mint(user types.User) (string, error) {
	now := m.now().UTC()
	claims := SessionClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps tokens distinct even when two logins for the same
			// user land within the same second.
			ID:        utils.RandomString(16),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "formlab",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, errors.ServerError, "Failed to sign session token")
	}
	return signed, nil
}

// Parse validates a session token and returns its claims.
func (m *TokenMinter) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now))

	if err != nil || !token.Valid {
		return nil, errors.AuthenticationFailed("Invalid session token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, errors.AuthenticationFailed("Invalid token structure")
	}
	return claims, nil
}
