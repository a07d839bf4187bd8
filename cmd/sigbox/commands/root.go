package commands

import (
	"github.com/spf13/cobra"

	"sigbox/internal/app"
	"sigbox/internal/config"
)

type rootOptions struct {
	home       string
	passphrase string
	encoding   string
	logLevel   string

	app *app.App
}

// Execute runs the sigbox CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:           "sigbox",
		Short:         "Ed25519 signatures and NaCl box encryption over raw keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags win over the environment; NewWire validates the merged result.
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = o.home
			}
			if flags.Changed("encoding") {
				cfg.Encoding = o.encoding
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = o.logLevel
			}

			o.app, err = app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			o.app.Log.Debug().
				Str("command", cmd.Name()).
				Str("home", cfg.Home).
				Str("encoding", cfg.Encoding).
				Msg("starting")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.home, "home", "", "key directory (default $SIGBOX_HOME or ~/.sigbox)")
	pf.StringVarP(&o.passphrase, "passphrase", "p", "", "passphrase protecting private keys")
	pf.StringVar(&o.encoding, "encoding", "hex", "encoding for signatures and ciphertexts: hex, base64 or raw")
	pf.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(
		keygenCmd(o),
		signCmd(o),
		verifyCmd(o),
		encryptCmd(o),
		decryptCmd(o),
		fingerprintCmd(o),
	)
	return root
}
