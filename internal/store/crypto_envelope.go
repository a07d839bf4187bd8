package store

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"sigbox/internal/util/memzero"
)

const (
	// DefaultScryptLogN is log2 of the scrypt cost used when none is configured.
	DefaultScryptLogN = 15

	scryptR = 8
	scryptP = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed key has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")
)

// sealedKey holds the ciphertext and KDF parameters of a private key.
type sealedKey struct {
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and encrypts raw, binding ad.
func seal(passphrase string, raw, ad []byte, logN int) (*sealedKey, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	sk := &sealedKey{Salt: salt[:], N: 1 << logN, R: scryptR, P: scryptP}
	aead, err := sk.aead(passphrase)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	sk.Cipher = aead.Seal(nil, nonce[:], raw, append(salt[:], ad...))
	return sk, nil
}

// open decrypts a sealed key using a key derived from passphrase.
func (sk *sealedKey) open(passphrase string, ad []byte) ([]byte, error) {
	aead, err := sk.aead(passphrase)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], sk.Cipher, append(append([]byte(nil), sk.Salt...), ad...))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func (sk *sealedKey) aead(passphrase string) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), sk.Salt, sk.N, sk.R, sk.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key-encryption key: %w", err)
	}
	defer memzero.Zero(key)
	return chacha20poly1305.New(key)
}
