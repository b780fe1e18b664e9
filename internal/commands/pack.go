package commands

import (
	"github.com/spf13/cobra"

	"github.com/haneulworks/assetseal/internal/config"
	"github.com/haneulworks/assetseal/internal/logic"
)

// NewPackCommand creates a new cobra command for the pack subcommand.
func NewPackCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "pack [flags] source destination",
		Short:   "Package an asset tree, encrypting the files marked in the descriptor",
		Args:    cobra.ExactArgs(2),
		PreRunE: preRun(cfg, "pack"),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
