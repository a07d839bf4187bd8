package domain

import "fmt"

// Sizes of the raw encodings, in bytes.
const (
	KeySize       = 32
	SignatureSize = 64
	NonceSize     = 24
)

// ------------- Ed25519 -------------

// SigningKey is an Ed25519 seed.
type SigningKey [KeySize]byte

// VerifyKey is an Ed25519 public key.
type VerifyKey [KeySize]byte

// Signature is a detached Ed25519 signature.
type Signature [SignatureSize]byte

func (k SigningKey) Slice() []byte { return k[:] }
func (s Signature) Slice() []byte  { return s[:] }

// ------------- Curve25519 box -------------

// BoxPrivateKey is a Curve25519 private key.
type BoxPrivateKey [KeySize]byte

// BoxPublicKey is a Curve25519 public key.
type BoxPublicKey [KeySize]byte

// Nonce is a crypto_box nonce.
type Nonce [NonceSize]byte

func (k BoxPrivateKey) Slice() []byte { return k[:] }

// LengthError reports a buffer of the wrong size for its role.
type LengthError struct {
	Role string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: want %d bytes, got %d", e.Role, e.Want, e.Got)
}

func checkLen(role string, b []byte, want int) error {
	if len(b) != want {
		return &LengthError{Role: role, Want: want, Got: len(b)}
	}
	return nil
}

// ParseSigningKey copies b into a SigningKey.
func ParseSigningKey(b []byte) (k SigningKey, err error) {
	if err = checkLen("signing key", b, KeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// ParseVerifyKey copies b into a VerifyKey.
func ParseVerifyKey(b []byte) (k VerifyKey, err error) {
	if err = checkLen("verify key", b, KeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// ParseSignature copies b into a Signature.
func ParseSignature(b []byte) (s Signature, err error) {
	if err = checkLen("signature", b, SignatureSize); err != nil {
		return s, err
	}
	copy(s[:], b)
	return s, nil
}

// ParseBoxPrivateKey copies b into a BoxPrivateKey.
func ParseBoxPrivateKey(b []byte) (k BoxPrivateKey, err error) {
	if err = checkLen("box private key", b, KeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// ParseBoxPublicKey copies b into a BoxPublicKey.
func ParseBoxPublicKey(b []byte) (k BoxPublicKey, err error) {
	if err = checkLen("box public key", b, KeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// ParseNonce copies b into a Nonce.
func ParseNonce(b []byte) (n Nonce, err error) {
	if err = checkLen("nonce", b, NonceSize); err != nil {
		return n, err
	}
	copy(n[:], b)
	return n, nil
}
