// Package commands defines the sigbox CLI.
//
// Commands
//
//   - keygen       Generate and store an ed25519 or box key pair
//   - sign         Produce a detached ed25519 signature
//   - verify       Check a detached signature
//   - encrypt      Seal a message to a peer's box public key
//   - decrypt      Open a message from a peer
//   - fingerprint  Print a stored public key's fingerprint
//
// # Implementation
//
// The root command loads config.Config from the environment, applies flag
// overrides and builds an app.App before any subcommand runs. Keys are named
// entries in the home directory (see internal/store) or explicit file paths.
// Messages are read from --in or stdin; binary outputs are written in the
// configured encoding.
package commands
