package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"sigbox/internal/domain"
	"sigbox/internal/util/memzero"
)

// Overhead is the number of bytes Encrypt adds to a message.
const Overhead = domain.NonceSize + box.Overhead

// Encrypt seals message from senderPrivateKey to recipientPublicKey under a
// fresh random nonce. The result is nonce || box, the NaCl crypto_box layout
// with the 24-byte nonce prefixed.
func Encrypt(message, senderPrivateKey, recipientPublicKey []byte) ([]byte, error) {
	shared, err := sharedKey(senderPrivateKey, recipientPublicKey)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(shared[:])

	var nonce domain.Nonce
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return seal(shared, &nonce, message), nil
}

// EncryptWithNonce is Encrypt with a caller-supplied nonce. It exists for
// known-answer tests; a nonce must never be reused for the same key pair.
func EncryptWithNonce(message, nonce, senderPrivateKey, recipientPublicKey []byte) ([]byte, error) {
	n, err := domain.ParseNonce(nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonceFormat, err)
	}
	shared, err := sharedKey(senderPrivateKey, recipientPublicKey)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(shared[:])
	return seal(shared, &n, message), nil
}

// Decrypt opens a ciphertext produced by Encrypt using the recipient's
// private key and the sender's public key.
func Decrypt(ciphertext, recipientPrivateKey, senderPublicKey []byte) ([]byte, error) {
	shared, err := sharedKey(recipientPrivateKey, senderPublicKey)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(shared[:])

	if len(ciphertext) < Overhead {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, need at least %d",
			ErrDecryption, len(ciphertext), Overhead)
	}
	var nonce [domain.NonceSize]byte
	copy(nonce[:], ciphertext[:domain.NonceSize])

	plaintext, ok := box.OpenAfterPrecomputation(nil, ciphertext[domain.NonceSize:], &nonce, shared)
	if !ok {
		return nil, ErrDecryption
	}
	return plaintext, nil
}

// sharedKey validates both keys and precomputes the box shared key.
func sharedKey(privateKey, publicKey []byte) (*[domain.KeySize]byte, error) {
	priv, err := domain.ParseBoxPrivateKey(privateKey)
	if err != nil {
		return nil, keyFormat(err)
	}
	defer memzero.Zero(priv[:])
	pub, err := domain.ParseBoxPublicKey(publicKey)
	if err != nil {
		return nil, keyFormat(err)
	}

	shared := new([domain.KeySize]byte)
	box.Precompute(shared, (*[domain.KeySize]byte)(&pub), (*[domain.KeySize]byte)(&priv))
	return shared, nil
}

func seal(shared *[domain.KeySize]byte, nonce *domain.Nonce, message []byte) []byte {
	out := make([]byte, domain.NonceSize, domain.NonceSize+len(message)+box.Overhead)
	copy(out, nonce[:])
	return box.SealAfterPrecomputation(out, message, (*[domain.NonceSize]byte)(nonce), shared)
}
