// Package app wires application dependencies for the CLI.
//
// It builds the logger, key store and output encoding from config.Config,
// exposing them via the App struct for commands to use.
package app
