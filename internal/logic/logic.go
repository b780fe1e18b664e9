// Package logic implements the core business logic for the packaging
// commands: descriptor loading, the packaging run, and the stats
// summary.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/haneulworks/assetseal/internal/config"
	"github.com/haneulworks/assetseal/internal/hierarchy"
	"github.com/haneulworks/assetseal/internal/packager"
)

// Run is the main logic of the application: load the hierarchy
// descriptor and run the configured pass over the asset tree.
func Run(cfg *config.Config) error {
	start := time.Now()

	root, err := loadHierarchy(cfg)
	if err != nil {
		return err
	}

	summary, err := packager.New(cfg, root).Run()

	if cfg.Stats {
		printStats(summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running %s: %w", cfg.Mode, err)
	}

	return nil
}

// loadHierarchy parses the descriptor from the inline flag or from the
// descriptor file.
func loadHierarchy(cfg *config.Config) (*hierarchy.Node, error) {
	if cfg.HierarchyJSON != "" {
		return hierarchy.Parse([]byte(cfg.HierarchyJSON))
	}

	return hierarchy.Load(cfg.Hierarchy)
}

func printStats(summary packager.Summary, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Copied:    %d\n", summary.Copied)
	fmt.Fprintf(os.Stderr, "  Checked:   %d\n", summary.Checked)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", summary.Processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", summary.Errored)
	//nolint:gosec // byte totals are always non-negative
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, summary.Bytes))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
