package crypto

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"golang.org/x/crypto/nacl/sign"

	"sigbox/internal/domain"
	"sigbox/internal/util/memzero"
)

// Sign signs message with the 32-byte Ed25519 seed signingKey and returns the
// 64-byte detached signature.
func Sign(message, signingKey []byte) ([]byte, error) {
	seed, err := domain.ParseSigningKey(signingKey)
	if err != nil {
		return nil, keyFormat(err)
	}
	expanded := ed25519.NewKeyFromSeed(seed.Slice())
	var priv [ed25519.PrivateKeySize]byte
	copy(priv[:], expanded)
	defer memzero.Zero(seed[:], expanded, priv[:])

	// sign.Sign emits signature || message; only the signature is kept.
	signed := sign.Sign(nil, message, &priv)
	sig := make([]byte, domain.SignatureSize)
	copy(sig, signed)
	return sig, nil
}

// Verify checks signature over message with the 32-byte Ed25519 public key
// verifyKey.
//
// It returns true and a nil error only when the signature is valid. Any
// verification failure returns false and an error wrapping ErrVerification.
func Verify(message, signature, verifyKey []byte) (bool, error) {
	vk, err := domain.ParseVerifyKey(verifyKey)
	if err != nil {
		return false, keyFormat(err)
	}
	sig, err := domain.ParseSignature(signature)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrVerification, err)
	}

	signed := make([]byte, 0, domain.SignatureSize+len(message))
	signed = append(signed, sig.Slice()...)
	signed = append(signed, message...)

	recovered, ok := sign.Open(nil, signed, (*[domain.KeySize]byte)(&vk))
	if !ok {
		return false, ErrVerification
	}
	// Unreachable with a correct nacl/sign; kept so a substituted message can
	// never be reported as verified.
	if !bytes.Equal(recovered, message) {
		return false, fmt.Errorf("%w: recovered message differs", ErrVerification)
	}
	return true, nil
}
