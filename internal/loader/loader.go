// Package loader implements the runtime side of the asset-protection
// pipeline: content loaders that read raw bytes from an asset source,
// transparently decrypt them, and hand the plaintext to a
// format-specific decoder.
//
// Every loader follows the same decrypt-then-decode skeleton, shared
// by the pipeline type and parameterized by a decoder. Protected and
// plaintext variants of each asset kind are the same pipeline with the
// decrypt stage switched on or off, selected at construction time.
//
// Error classes are kept distinct so callers can tell a corrupted or
// tampered asset (blobcrypt.ErrAuthentication, blobcrypt.ErrMalformed)
// from an unreadable stream (ErrRead) from authenticated-but-invalid
// content (ErrDecode).
package loader

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrRead is returned when the underlying byte stream cannot be read.
	ErrRead = errors.New("reading asset")

	// ErrDecode is returned when plaintext was obtained and
	// authenticated but is not valid for the expected format. This
	// points at a build-pipeline defect: the wrong plaintext was
	// encrypted.
	ErrDecode = errors.New("decoding asset")
)

// Loader is the contract consumed by the asset-loading framework: a
// loader reads one asset from a byte stream and produces a typed asset
// or a typed error, and declares the file extensions it claims.
type Loader interface {
	// Load consumes the whole stream and returns the decoded asset.
	Load(ctx context.Context, reader io.Reader) (any, error)

	// Extensions lists the file extensions this loader handles,
	// without the leading dot.
	Extensions() []string
}

// All returns one loader per asset kind. When protected is true the
// sprite, atlas and sound loaders decrypt before decoding; the
// configuration loader always reads plain JSON.
func All(protected bool) []Loader {
	return []Loader{
		NewSpriteLoader(protected),
		NewAtlasLoader(protected),
		NewSoundLoader(protected),
		NewConfigurationLoader(),
	}
}
