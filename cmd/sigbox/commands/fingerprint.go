package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigbox/internal/crypto"
)

func fingerprintCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <name>",
		Short: "Print the fingerprint of a stored public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, pub, err := o.app.Keys.LoadPublic(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s (%s)\n", crypto.Fingerprint(algo, pub), algo)
			return nil
		},
	}
}
