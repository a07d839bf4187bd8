package commands

import (
	"github.com/spf13/cobra"

	"sigbox/internal/crypto"
	"sigbox/internal/util/memzero"
)

func signCmd(o *rootOptions) *cobra.Command {
	var keyRef, in string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with an ed25519 key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, seed, err := o.app.Keys.LoadPrivate(keyRef, o.passphrase)
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)
			if err := requireAlgorithm(keyRef, algo, crypto.Ed25519); err != nil {
				return err
			}

			msg, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			sig, err := crypto.Sign(msg, seed)
			if err != nil {
				return err
			}
			o.app.Log.Debug().Str("key", keyRef).Int("bytes", len(msg)).Msg("message signed")
			return writeOutput(cmd, "", encoded(o.app.Encoding, sig))
		},
	}
	cmd.Flags().StringVar(&keyRef, "key", "", "signing key name or path")
	cmd.Flags().StringVar(&in, "in", "", "message file (default stdin)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
