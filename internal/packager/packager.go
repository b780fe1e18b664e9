// Package packager walks a hierarchy descriptor against a source asset
// tree and produces a mirrored destination tree in which the selected
// files are encrypted.
//
// The walk itself is sequential: plain copies and directory creation
// happen in descriptor order, so a destination directory always exists
// before any encryption work that writes into it. Each file marked for
// encryption is dispatched to a bounded worker group; the run joins on
// every worker before reporting success, and any failure anywhere
// aborts the whole build.
package packager

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/haneulworks/assetseal/internal/blobcrypt"
	"github.com/haneulworks/assetseal/internal/config"
	"github.com/haneulworks/assetseal/internal/fileutil"
	"github.com/haneulworks/assetseal/internal/hierarchy"
	"github.com/haneulworks/assetseal/internal/keymat"
)

// Processor runs one packaging, unpacking or verification pass.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// root is the parsed hierarchy descriptor
	root *hierarchy.Node

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// New creates a Processor for the given configuration and descriptor.
func New(cfg *config.Config, root *hierarchy.Node) *Processor {
	plain, targets := root.Count()

	return &Processor{
		cfg:     cfg,
		root:    root,
		results: make(chan Result, plain+targets),
	}
}

// Run walks the descriptor tree rooted at the configured source and
// destination paths. It returns an aggregate summary; a non-nil error
// means the build must be treated as failed, with no partial output
// considered shippable.
func (p *Processor) Run() (Summary, error) {
	if err := requireDir(p.cfg.Source); err != nil {
		return Summary{}, err
	}

	if p.cfg.Mode != "verify" {
		if err := os.MkdirAll(p.cfg.Dest, 0o755); err != nil {
			return Summary{}, fmt.Errorf("creating destination directory %q: %w", p.cfg.Dest, err)
		}
	}

	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	var summary Summary

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				summary.Errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			switch result.Action {
			case ActionCopied:
				summary.Copied++
			case ActionChecked:
				summary.Checked++
			default:
				summary.Processed++
			}

			summary.Bytes += result.OutputSize

			if p.cfg.Quiet {
				continue
			}

			if result.Output == "" {
				fmt.Printf("%s %q\n", result.Action, result.Input) //nolint:forbidigo
			} else {
				fmt.Printf("%s %q -> %q\n", result.Action, result.Input, result.Output) //nolint:forbidigo
			}
		}
	}()

	// The walk aborts on the first precondition violation, but workers
	// already dispatched are still joined before returning.
	walkErr := p.walk(p.cfg.Source, p.cfg.Dest, p.root, &group)
	groupErr := group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if walkErr != nil {
		return summary, walkErr
	}

	if groupErr != nil {
		return summary, fmt.Errorf("processing target files: %w", groupErr)
	}

	return summary, nil
}

// walk handles one descriptor node: plain files synchronously, target
// files as concurrent units, then subdirectories in sorted order.
// Every entry the node references is verified up front, so a missing
// source aborts the walk before the subtree produces any output.
func (p *Processor) walk(src, dst string, node *hierarchy.Node, group *errgroup.Group) error {
	for _, name := range node.Files {
		if err := requireFile(filepath.Join(src, name)); err != nil {
			return err
		}
	}

	for _, name := range node.TargetFiles {
		if err := requireFile(filepath.Join(src, name)); err != nil {
			return err
		}
	}

	for _, name := range sortedKeys(node.Directories) {
		if err := requireDir(filepath.Join(src, name)); err != nil {
			return err
		}
	}

	for _, name := range node.Files {
		from := filepath.Join(src, name)
		to := filepath.Join(dst, name)

		if err := p.processPlain(from, to); err != nil {
			return err
		}
	}

	for _, name := range node.TargetFiles {
		from := filepath.Join(src, name)
		to := filepath.Join(dst, name)

		group.Go(func() error {
			result := p.processTarget(from, to)
			p.results <- result

			return result.Error
		})
	}

	for _, name := range sortedKeys(node.Directories) {
		srcDir := filepath.Join(src, name)
		dstDir := filepath.Join(dst, name)

		if p.cfg.Mode != "verify" {
			if err := os.MkdirAll(dstDir, 0o755); err != nil {
				return fmt.Errorf("creating directory %q: %w", dstDir, err)
			}
		}

		if err := p.walk(srcDir, dstDir, node.Directories[name], group); err != nil {
			return err
		}
	}

	return nil
}

// processPlain copies a file verbatim, or just reports its presence in
// verify mode.
func (p *Processor) processPlain(from, to string) error {
	if p.cfg.Mode == "verify" {
		p.results <- Result{Input: from, Action: ActionChecked}

		return nil
	}

	size, err := copyFile(from, to)
	if err != nil {
		p.results <- Result{Input: from, Error: err}

		return err
	}

	p.results <- Result{Input: from, Output: to, OutputSize: size, Action: ActionCopied}

	return nil
}

// processTarget handles one concurrent unit of work: reconstruct the
// key, read the whole file, transform it, write the output atomically.
func (p *Processor) processTarget(from, to string) Result {
	data, err := os.ReadFile(from) //nolint:gosec // paths come from the descriptor walk
	if err != nil {
		return Result{Input: from, Error: fmt.Errorf("reading file: %w", err)}
	}

	key := keymat.Reconstruct()

	switch p.cfg.Mode {
	case "pack":
		blob, err := blobcrypt.Seal(data, key[:])
		if err != nil {
			return Result{Input: from, Error: err}
		}

		size, err := writeAtomic(from, to, blob)
		if err != nil {
			return Result{Input: from, Error: err}
		}

		return Result{Input: from, Output: to, OutputSize: size, Action: ActionSealed}

	case "unpack":
		plaintext, err := blobcrypt.Open(data, key[:])
		if err != nil {
			return Result{Input: from, Error: err}
		}

		size, err := writeAtomic(from, to, plaintext)
		if err != nil {
			return Result{Input: from, Error: err}
		}

		return Result{Input: from, Output: to, OutputSize: size, Action: ActionOpened}

	default: // verify
		plaintext, err := blobcrypt.Open(data, key[:])
		if err != nil {
			return Result{Input: from, Error: err}
		}

		return Result{Input: from, OutputSize: int64(len(plaintext)), Action: ActionVerified}
	}
}

// copyFile copies a file verbatim using an atomic temp-file write.
func copyFile(from, to string) (size int64, err error) {
	tc, err := fileutil.NewTempContext(from, to)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	inFile, err := os.Open(filepath.Clean(from))
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	if _, err := io.Copy(tc.TmpFile, inFile); err != nil {
		return 0, fmt.Errorf("copying file contents: %w", err)
	}

	if err := tc.Commit(to); err != nil {
		return 0, err
	}

	return fileutil.OutputSize(to)
}

// writeAtomic writes data to a temp file next to the output path and
// renames it into place, so a killed build never leaves half a blob.
func writeAtomic(from, to string, data []byte) (size int64, err error) {
	tc, err := fileutil.NewTempContext(from, to)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if _, err := tc.TmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	if err := tc.Commit(to); err != nil {
		return 0, err
	}

	return fileutil.OutputSize(to)
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("could not find asset file %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("asset path %q is a directory, expected a file", path)
	}

	return nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("could not find asset directory %q: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("asset path %q is a file, expected a directory", path)
	}

	return nil
}

func sortedKeys(directories map[string]*hierarchy.Node) []string {
	keys := make([]string, 0, len(directories))
	for name := range directories {
		keys = append(keys, name)
	}

	slices.Sort(keys)

	return keys
}
