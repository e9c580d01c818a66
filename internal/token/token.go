// Package token signs and verifies the bearer tokens that authenticate API
// requests. Signing is asymmetric (RS384): only the private key can mint
// tokens, so a verifying party needs nothing but the public key.
package token

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pixiapp/pixi-go/internal/apperror"
)

const (
	issuer   = "https://issuer.pixiapp.demo"
	audience = "pixiUsers"
)

// Claims carries the user id alongside the registered claims. The profile
// itself is deliberately not embedded: it is mutable and contains the
// credential hash, so handlers re-fetch it by id instead.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Codec issues and verifies tokens with a fixed key pair and lifetime.
type Codec struct {
	priv *rsa.PrivateKey
	pub  *rsa.PublicKey
	ttl  time.Duration
}

func NewCodec(priv *rsa.PrivateKey, pub *rsa.PublicKey, ttl time.Duration) *Codec {
	return &Codec{priv: priv, pub: pub, ttl: ttl}
}

// Issue creates a signed token for the user. Subject is the login email,
// expiry is now plus the codec's lifetime.
func (c *Codec) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodRS384, claims)
	signed, err := tok.SignedString(c.priv)
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "signing token", err)
	}
	return signed, nil
}

// Verify validates signature, expiry, issuer, audience and algorithm.
// Every failure mode collapses into InvalidToken; the caller does not need
// to distinguish a forged token from an expired one.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, apperror.New(apperror.InvalidToken, "unexpected signing method")
		}
		return c.pub, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience), jwt.WithValidMethods([]string{"RS384"}))
	if err != nil {
		return nil, apperror.Wrap(apperror.InvalidToken, "invalid or expired token", err)
	}

	if !tok.Valid || claims.UserID == "" {
		return nil, apperror.New(apperror.InvalidToken, "invalid or expired token")
	}

	return claims, nil
}
