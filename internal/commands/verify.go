package commands

import (
	"github.com/spf13/cobra"

	"github.com/haneulworks/assetseal/internal/config"
	"github.com/haneulworks/assetseal/internal/logic"
)

// NewVerifyCommand creates a new cobra command for the verify
// subcommand: every plain file in the descriptor must be present and
// every target file must authenticate and decrypt.
func NewVerifyCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "verify [flags] source",
		Short:   "Check a packed asset tree against the descriptor",
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg, "verify"),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
