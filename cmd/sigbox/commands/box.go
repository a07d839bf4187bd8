package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigbox/internal/crypto"
	"sigbox/internal/util/memzero"
)

type boxFlags struct {
	keyRef, peerRef string
	in, out         string
}

func (f *boxFlags) register(cmd *cobra.Command, peerHelp string) {
	cmd.Flags().StringVar(&f.keyRef, "key", "", "your box private key name or path")
	cmd.Flags().StringVar(&f.peerRef, "peer", "", peerHelp)
	cmd.Flags().StringVar(&f.in, "in", "", "input file (default stdin)")
	cmd.Flags().StringVar(&f.out, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("peer")
}

// loadKeys returns our box private key and the peer's box public key.
func (f *boxFlags) loadKeys(o *rootOptions) (priv, peer []byte, err error) {
	algo, priv, err := o.app.Keys.LoadPrivate(f.keyRef, o.passphrase)
	if err != nil {
		return nil, nil, err
	}
	if err := requireAlgorithm(f.keyRef, algo, crypto.Curve25519xSalsa20Poly1305); err != nil {
		memzero.Zero(priv)
		return nil, nil, err
	}
	algo, peer, err = o.app.Keys.LoadPublic(f.peerRef)
	if err != nil {
		memzero.Zero(priv)
		return nil, nil, err
	}
	if err := requireAlgorithm(f.peerRef, algo, crypto.Curve25519xSalsa20Poly1305); err != nil {
		memzero.Zero(priv)
		return nil, nil, err
	}
	return priv, peer, nil
}

func encryptCmd(o *rootOptions) *cobra.Command {
	var f boxFlags
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message to a peer's box public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, peer, err := f.loadKeys(o)
			if err != nil {
				return err
			}
			defer memzero.Zero(priv)

			msg, err := readInput(cmd, f.in)
			if err != nil {
				return err
			}
			ct, err := crypto.Encrypt(msg, priv, peer)
			if err != nil {
				return err
			}
			o.app.Log.Debug().
				Str("key", f.keyRef).
				Str("peer", f.peerRef).
				Int("bytes", len(msg)).
				Msg("message encrypted")
			return writeOutput(cmd, f.out, encoded(o.app.Encoding, ct))
		},
	}
	f.register(cmd, "recipient's box public key name or path")
	return cmd
}

func decryptCmd(o *rootOptions) *cobra.Command {
	var f boxFlags
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a message from a peer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, peer, err := f.loadKeys(o)
			if err != nil {
				return err
			}
			defer memzero.Zero(priv)

			input, err := readInput(cmd, f.in)
			if err != nil {
				return err
			}
			ct, err := o.app.Encoding.Decode(input)
			if err != nil {
				return fmt.Errorf("decoding ciphertext: %w", err)
			}
			pt, err := crypto.Decrypt(ct, priv, peer)
			if err != nil {
				o.app.Log.Debug().Str("peer", f.peerRef).Err(err).Msg("decryption failed")
				return err
			}
			o.app.Log.Debug().Str("peer", f.peerRef).Int("bytes", len(pt)).Msg("message decrypted")
			return writeOutput(cmd, f.out, pt)
		},
	}
	f.register(cmd, "sender's box public key name or path")
	return cmd
}
