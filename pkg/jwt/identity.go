package jwt

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
)

var ErrIdentityNotValid error = errors.New("identity token is not valid")

// Identity is the subset of a social login id token the service relies on.
type Identity struct {
	Email         string
	Name          string
	Provider      string
	WalletAddress string
}

// IdentityVerifier checks ES256 id tokens issued by the wallet/auth provider.
type IdentityVerifier struct {
	key      *ecdsa.PublicKey
	audience string
}

func NewIdentityVerifier(publicKeyPEM []byte, audience string) (*IdentityVerifier, error) {
	key, err := jwt.ParseECPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse verifier public key: %w", err)
	}
	return &IdentityVerifier{
		key:      key,
		audience: audience,
	}, nil
}

func (v *IdentityVerifier) Verify(idToken string) (Identity, error) {
	token, err := jwt.Parse(idToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("jwt parse: %w: %w", err, ErrIdentityNotValid)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrIdentityNotValid
	}

	if !claims.VerifyAudience(v.audience, true) {
		return Identity{}, fmt.Errorf("audience mismatch: %w", ErrIdentityNotValid)
	}

	identity := Identity{
		Email:         stringClaim(claims, "email"),
		Name:          stringClaim(claims, "name"),
		Provider:      stringClaim(claims, "provider"),
		WalletAddress: stringClaim(claims, "wallet_address"),
	}
	if identity.Email == "" {
		return Identity{}, fmt.Errorf("missing email claim: %w", ErrIdentityNotValid)
	}

	return identity, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
