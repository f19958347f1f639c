package jwt_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"time"

	tokenIssuer "stekfinance/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Subject:    "user-1",
			Email:      "alice@example.com",
			Type:       tokenIssuer.TypeAccess,
			Expiration: time.Hour,
		}
	})

	It("validates a token it signed", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["email"]).To(Equal("alice@example.com"))
		Expect(claims["typ"]).To(Equal(tokenIssuer.TypeAccess))
		Expect(claims["jti"]).NotTo(BeEmpty())
	})

	It("rejects an expired token", func() {
		info.Expiration = -time.Minute
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("rejects a token signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("refuses to sign without a secret", func() {
		_, err := tokenIssuer.NewJWTService(nil).Sign(service.Generate(info))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("IdentityVerifier", func() {
	var (
		key      *ecdsa.PrivateKey
		verifier *tokenIssuer.IdentityVerifier
		claims   jwt.MapClaims
		identity tokenIssuer.Identity
		err      error
	)

	BeforeEach(func() {
		key, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		Expect(err).NotTo(HaveOccurred())
		pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

		verifier, err = tokenIssuer.NewIdentityVerifier(pemBytes, "client-id")
		Expect(err).NotTo(HaveOccurred())

		claims = jwt.MapClaims{
			"aud":            "client-id",
			"email":          "alice@example.com",
			"name":           "Alice",
			"provider":       "google",
			"wallet_address": "0x00000000000000000000000000000000000000aa",
			"exp":            time.Now().Add(time.Hour).Unix(),
		}
	})

	JustBeforeEach(func() {
		signed, signErr := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
		Expect(signErr).NotTo(HaveOccurred())
		identity, err = verifier.Verify(signed)
	})

	When("the token is valid", func() {
		It("returns the identity", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(identity).To(Equal(tokenIssuer.Identity{
				Email:         "alice@example.com",
				Name:          "Alice",
				Provider:      "google",
				WalletAddress: "0x00000000000000000000000000000000000000aa",
			}))
		})
	})

	When("the audience does not match", func() {
		BeforeEach(func() {
			claims["aud"] = "someone-else"
		})

		It("rejects the token", func() {
			Expect(err).To(MatchError(tokenIssuer.ErrIdentityNotValid))
		})
	})

	When("the email claim is missing", func() {
		BeforeEach(func() {
			delete(claims, "email")
		})

		It("rejects the token", func() {
			Expect(err).To(MatchError(tokenIssuer.ErrIdentityNotValid))
		})
	})
})
