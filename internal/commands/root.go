package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/haneulworks/assetseal/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "assetseal [flags] command [flags]"
	root.Short = "Game asset protection packager"
	root.Long = `Packages a game's asset tree for shipping: files marked in a hierarchy
descriptor are encrypted with AES-256-GCM under a key reconstructed from
embedded material, everything else is copied verbatim. Runs as a
pre-build step; the runtime loaders reverse the transformation at load
time.`

	root.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.Flags().Bool("stats", false, "Print a summary of the run")

	root.Flags().String("hierarchy", "", "Path to the hierarchy descriptor (JSON, comments allowed)")
	root.Flags().String("hierarchy-json", "", "Inline hierarchy descriptor")

	root.AddCommand(NewPackCommand(cfg), NewUnpackCommand(cfg), NewVerifyCommand(cfg), NewKeygenCommand())

	return root
}
