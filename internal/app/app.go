package app

import (
	"github.com/rs/zerolog"

	"sigbox/internal/config"
	"sigbox/internal/crypto"
	"sigbox/internal/store"
)

// App bundles the dependencies shared by CLI commands.
type App struct {
	Config   config.Config
	Log      zerolog.Logger
	Keys     *store.KeyFileStore
	Encoding crypto.Encoding
}
