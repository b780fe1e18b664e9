// The assetseal command packages game assets for shipping and
// generates the key material the runtime loaders decrypt with.
package main

import (
	"os"

	"github.com/haneulworks/assetseal/internal/commands"
	"github.com/haneulworks/assetseal/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}
