package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigbox/internal/crypto"
)

func verifyCmd(o *rootOptions) *cobra.Command {
	var pubRef, sigText, sigFile, in string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a detached ed25519 signature",
		Long: "Verify a detached ed25519 signature. Prints OK on success; " +
			"a corrupt or forged signature is reported as an error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, vk, err := o.app.Keys.LoadPublic(pubRef)
			if err != nil {
				return err
			}
			if err := requireAlgorithm(pubRef, algo, crypto.Ed25519); err != nil {
				return err
			}

			var rawSig []byte
			switch {
			case sigText != "" && sigFile != "":
				return errors.New("use only one of --sig and --sig-file")
			case sigText != "":
				if o.app.Encoding == crypto.Raw {
					return errors.New("--sig needs a text encoding; use --sig-file for raw signatures")
				}
				rawSig = []byte(sigText)
			case sigFile != "":
				if rawSig, err = os.ReadFile(sigFile); err != nil {
					return err
				}
			default:
				return errors.New("one of --sig or --sig-file is required")
			}
			sig, err := o.app.Encoding.Decode(rawSig)
			if err != nil {
				return fmt.Errorf("decoding signature: %w", err)
			}

			msg, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			if _, err := crypto.Verify(msg, sig, vk); err != nil {
				o.app.Log.Debug().Str("key", pubRef).Err(err).Msg("verification failed")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubRef, "pub", "", "verify key name or path")
	cmd.Flags().StringVar(&sigText, "sig", "", "encoded signature")
	cmd.Flags().StringVar(&sigFile, "sig-file", "", "file holding the encoded signature")
	cmd.Flags().StringVar(&in, "in", "", "message file (default stdin)")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}
