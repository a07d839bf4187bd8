package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Encoding is a text (or raw) representation for keys, signatures and
// ciphertexts on the command line.
type Encoding string

// Supported encodings. Hex is the default.
const (
	Hex    Encoding = "hex"    // lowercase hex
	Base64 Encoding = "base64" // standard alphabet, padded
	Raw    Encoding = "raw"    // bytes as-is
)

// ParseEncoding returns the Encoding named by s.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(s)); e {
	case Hex, Base64, Raw:
		return e, nil
	default:
		return "", fmt.Errorf("unknown encoding %q", s)
	}
}

// Encode renders b in encoding e.
func (e Encoding) Encode(b []byte) []byte {
	switch e {
	case Base64:
		return []byte(B64(b))
	case Raw:
		return append([]byte(nil), b...)
	default:
		return []byte(hex.EncodeToString(b))
	}
}

// Decode parses data in encoding e. Surrounding whitespace is ignored for
// text encodings.
func (e Encoding) Decode(data []byte) ([]byte, error) {
	switch e {
	case Base64:
		return base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	case Raw:
		return append([]byte(nil), data...), nil
	default:
		return hex.DecodeString(strings.TrimSpace(string(data)))
	}
}

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// fingerprintLen is the number of digest bytes kept in a fingerprint.
const fingerprintLen = 10

// Fingerprint returns a 20-character hex fingerprint of the public key pub.
// The algorithm name is hashed ahead of the key, so the same 32 bytes used
// as an Ed25519 and as a box key do not share a fingerprint.
func Fingerprint(algo Algorithm, pub []byte) string {
	h := sha256.New()
	h.Write([]byte(algo))
	h.Write([]byte{0})
	h.Write(pub)
	return hex.EncodeToString(h.Sum(nil)[:fingerprintLen])
}
