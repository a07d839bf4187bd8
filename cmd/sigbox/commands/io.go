package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sigbox/internal/crypto"
)

// readInput reads path, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// writeOutput writes b to path, or stdout when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// encoded renders b in enc, newline-terminated for text encodings.
func encoded(enc crypto.Encoding, b []byte) []byte {
	out := enc.Encode(b)
	if enc != crypto.Raw {
		out = append(out, '\n')
	}
	return out
}

func requireAlgorithm(ref string, got, want crypto.Algorithm) error {
	if got != want {
		return fmt.Errorf("key %q is %s, want %s", ref, got, want)
	}
	return nil
}
