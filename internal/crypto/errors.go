package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyFormat is returned when key bytes have the wrong length for the scheme.
	ErrKeyFormat = errors.New("invalid key format")
	// ErrVerification is returned when a signature does not verify.
	ErrVerification = errors.New("signature corrupt or forged")
	// ErrDecryption is returned when a ciphertext fails authentication or is truncated.
	ErrDecryption = errors.New("decryption failed")
	// ErrNonceFormat is returned when a caller-supplied nonce has the wrong length.
	ErrNonceFormat = errors.New("invalid nonce format")
	// ErrUnsupportedAlgorithm is returned for an unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

func keyFormat(err error) error {
	return fmt.Errorf("%w: %w", ErrKeyFormat, err)
}
