// Package commands provides the command-line interface for the
// assetseal tool.
//
// It implements commands for:
//   - packing an asset tree (selective encryption)
//   - unpacking a packed tree back to plaintext
//   - verifying a packed tree in place
//   - generating fresh embedded key material
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/haneulworks/assetseal/internal/config"
)

// preRun returns a PreRunE handler that records the command mode,
// resolves positional arguments into the source and destination paths,
// and validates the configuration.
func preRun(cfg *config.Config, mode string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Mode = mode
		cfg.Source = args[0]

		if len(args) > 1 {
			cfg.Dest = args[1]
		}

		return cobraext.Validate(cfg, cfg)
	}
}
