package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigbox/internal/crypto"
	"sigbox/internal/store"
	"sigbox/internal/util/memzero"
)

func keygenCmd(o *rootOptions) *cobra.Command {
	var algoName string
	cmd := &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate a key pair and store it under <name>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := crypto.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}
			pub, priv, err := crypto.GenKeyPair(algo)
			if err != nil {
				return err
			}
			defer memzero.Zero(priv)

			kp := store.KeyPair{Algorithm: algo, Public: pub, Private: priv}
			pubPath, privPath, err := o.app.Keys.Save(args[0], kp, o.passphrase)
			if err != nil {
				return err
			}
			o.app.Log.Debug().
				Str("algo", algo.String()).
				Str("public", pubPath).
				Str("private", privPath).
				Bool("sealed", o.passphrase != "").
				Msg("key pair written")

			fmt.Fprintf(cmd.OutOrStdout(), "Key pair %q created.\nFingerprint: %s\n",
				args[0], crypto.Fingerprint(algo, pub))
			return nil
		},
	}
	cmd.Flags().StringVar(&algoName, "algo", string(crypto.Ed25519),
		"key algorithm: ed25519 or curve25519xsalsa20poly1305")
	return cmd
}
