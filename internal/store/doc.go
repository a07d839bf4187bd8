// Package store persists sigbox key pairs as JSON files on disk.
//
// Each key pair is written as two files in the store directory:
//   - <name>.pub  the public half, mode 0644
//   - <name>.key  the private half, mode 0600, optionally sealed under a
//     passphrase (scrypt + ChaCha20-Poly1305)
//
// Writes go through a temp file and rename, so a crash never leaves a
// half-written key behind. All methods are concurrency-safe via internal
// locking.
package store
