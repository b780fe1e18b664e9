// Package config defines the runtime configuration for the assetseal
// commands and validates it against struct tags.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config carries the settings shared by the pack, unpack and verify
// commands. It is populated from flags and environment variables by
// the command layer.
type Config struct {
	// Common flags
	Hierarchy     string `mapstructure:"hierarchy"`
	HierarchyJSON string `mapstructure:"hierarchy-json"`
	Parallel      int    `validate:"min=1"`
	Quiet         bool
	Stats         bool

	// Set by the subcommand, not a flag
	Mode string `validate:"oneof=pack unpack verify"`

	// Positional arguments
	Source string `validate:"required"`
	Dest   string
}

// Display reports whether the configuration should be printed instead
// of acted on. The tool has no show flag, so it always returns false.
func (c Config) Display() bool {
	return false
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate(_ any) error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	// The descriptor comes from a file or from an inline string, never both.
	switch {
	case c.Hierarchy == "" && c.HierarchyJSON == "":
		return errors.New("a hierarchy descriptor is required (--hierarchy or --hierarchy-json)")
	case c.Hierarchy != "" && c.HierarchyJSON != "":
		return errors.New("--hierarchy and --hierarchy-json are mutually exclusive")
	}

	if c.Mode != "verify" && c.Dest == "" {
		return fmt.Errorf("%s requires a destination directory", c.Mode)
	}

	return nil
}
