// Package hierarchy parses the declarative descriptor that drives
// asset packaging: which files in a directory tree are copied verbatim,
// which are encrypted, and how subdirectories nest.
package hierarchy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Node describes the packaging rules for one directory. Unknown fields
// in the descriptor are ignored; absent fields default to empty.
type Node struct {
	// Files are copied to the destination verbatim.
	Files []string `json:"files"`

	// TargetFiles are encrypted before being written to the destination.
	TargetFiles []string `json:"target_files"`

	// Directories maps subdirectory names to their own rules.
	Directories map[string]*Node `json:"directories"`
}

// Parse decodes a descriptor from JSON. Comments and trailing commas
// are tolerated so descriptors can be annotated in-repo.
func Parse(data []byte) (*Node, error) {
	clean := jsonc.ToJSON(bytes.Clone(data))

	node := &Node{}
	if err := json.Unmarshal(clean, node); err != nil {
		return nil, fmt.Errorf("parsing hierarchy descriptor: %w", err)
	}

	return node, nil
}

// Load reads and parses a descriptor file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading hierarchy descriptor %q: %w", path, err)
	}

	return Parse(data)
}

// Count returns the number of plain and target files in the whole tree.
func (n *Node) Count() (plain, targets int) {
	plain = len(n.Files)
	targets = len(n.TargetFiles)

	for _, child := range n.Directories {
		childPlain, childTargets := child.Count()
		plain += childPlain
		targets += childTargets
	}

	return plain, targets
}
