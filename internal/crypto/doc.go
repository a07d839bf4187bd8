// Package crypto exposes the signing and public-key encryption primitives used
// by sigbox.
//
// Contents
//
//   - Ed25519 detached signatures over raw byte keys (Sign, Verify)
//   - NaCl crypto_box authenticated encryption with a random nonce prefixed to
//     the ciphertext (Encrypt, Decrypt)
//   - Algorithm-tagged key generation (GenKeyPair) and public key derivation
//     (VerifyKeyFromSigningKey, BoxPublicKey)
//   - Short public-key fingerprints and text encodings for display
//
// # Errors
//
// Failures are reported by wrapping one of the sentinel errors below, so
// callers test with errors.Is. A failed signature check is always an error
// wrapping ErrVerification; Verify never returns a bare false.
//
// # Notes
//
// All functions are stateless and safe for concurrent use. Expanded private
// keys and precomputed shared keys are wiped before each call returns.
package crypto
