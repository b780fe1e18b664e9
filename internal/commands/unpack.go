package commands

import (
	"github.com/spf13/cobra"

	"github.com/haneulworks/assetseal/internal/config"
	"github.com/haneulworks/assetseal/internal/logic"
)

// NewUnpackCommand creates a new cobra command for the unpack
// subcommand, the inverse of pack for pipeline audits.
func NewUnpackCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "unpack [flags] source destination",
		Short:   "Restore a packed asset tree to plaintext",
		Args:    cobra.ExactArgs(2),
		PreRunE: preRun(cfg, "unpack"),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
