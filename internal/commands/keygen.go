package commands

import (
	"crypto/rand"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haneulworks/assetseal/internal/keymat"
)

const materialTemplate = `// Code generated by assetseal keygen. DO NOT EDIT.

package keymat

var obfuscated = [KeySize]byte{
%s}

var mask = [KeySize]byte{
%s}
`

// NewKeygenCommand creates a new cobra command for the keygen
// subcommand. It draws a fresh random key and mask and emits the
// obfuscated pair as Go source, so re-keying a release is one command
// plus a rebuild of both the packager and the shipped binary. The real
// key is never printed or written anywhere.
func NewKeygenCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "keygen [flags]",
		Short: "Generate fresh embedded key material",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			key := make([]byte, keymat.KeySize)
			if _, err := rand.Read(key); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			mask := make([]byte, keymat.KeySize)
			if _, err := rand.Read(mask); err != nil {
				return fmt.Errorf("generating mask: %w", err)
			}

			obfuscated := make([]byte, keymat.KeySize)
			for i := range obfuscated {
				obfuscated[i] = key[i] ^ mask[i]
			}

			source := fmt.Sprintf(materialTemplate, formatBytes(obfuscated), formatBytes(mask))

			if out == "-" {
				fmt.Print(source) //nolint:forbidigo

				return nil
			}

			if err := os.WriteFile(out, []byte(source), 0o600); err != nil {
				return fmt.Errorf("writing key material: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "internal/keymat/material.go", `Output path, or "-" for stdout`)

	return cmd
}

// formatBytes renders a byte slice as gofmt-style array literal rows.
func formatBytes(data []byte) string {
	var builder strings.Builder

	const perRow = 8

	for i, b := range data {
		if i%perRow == 0 {
			builder.WriteString("\t")
		}

		fmt.Fprintf(&builder, "0x%02x,", b)

		if i%perRow == perRow-1 {
			builder.WriteString("\n")
		} else {
			builder.WriteString(" ")
		}
	}

	return builder.String()
}
