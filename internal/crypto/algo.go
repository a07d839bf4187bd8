package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"strings"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"sigbox/internal/domain"
	"sigbox/internal/util/memzero"
)

// Algorithm names a key scheme.
type Algorithm string

const (
	// Ed25519 is the signature scheme used by Sign and Verify.
	Ed25519 Algorithm = "ed25519"
	// Curve25519xSalsa20Poly1305 is the box scheme used by Encrypt and Decrypt.
	Curve25519xSalsa20Poly1305 Algorithm = "curve25519xsalsa20poly1305"
)

func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm returns the Algorithm named by s, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case Ed25519, Curve25519xSalsa20Poly1305:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// GenKeyPair returns a fresh raw key pair for algo.
//
// For Ed25519 the private half is the 32-byte seed accepted by Sign.
func GenKeyPair(algo Algorithm) (pub, priv []byte, err error) {
	switch algo {
	case Ed25519:
		pk, sk, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, nil, err
		}
		seed := append([]byte(nil), sk.Seed()...)
		memzero.Zero(sk)
		return pk, seed, nil
	case Curve25519xSalsa20Poly1305:
		pk, sk, err := box.GenerateKey(rand.Reader)
		if err != nil {
			return nil, nil, err
		}
		return pk[:], sk[:], nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algo)
	}
}

// VerifyKeyFromSigningKey derives the Ed25519 public key for a 32-byte seed.
func VerifyKeyFromSigningKey(signingKey []byte) ([]byte, error) {
	seed, err := domain.ParseSigningKey(signingKey)
	if err != nil {
		return nil, keyFormat(err)
	}
	priv := ed25519.NewKeyFromSeed(seed.Slice())
	defer memzero.Zero(seed[:], priv)
	return append([]byte(nil), priv.Public().(ed25519.PublicKey)...), nil
}

// BoxPublicKey derives the Curve25519 public key for a box private key.
func BoxPublicKey(privateKey []byte) ([]byte, error) {
	priv, err := domain.ParseBoxPrivateKey(privateKey)
	if err != nil {
		return nil, keyFormat(err)
	}
	defer memzero.Zero(priv[:])
	pub, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("deriving box public key: %w", err)
	}
	return pub, nil
}
