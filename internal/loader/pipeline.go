package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/haneulworks/assetseal/internal/blobcrypt"
	"github.com/haneulworks/assetseal/internal/keymat"
)

// pipeline is the shared decrypt-then-decode skeleton behind every
// loader kind.
type pipeline struct {
	// protected enables the decrypt stage. When false the loader is
	// the degenerate plaintext variant and the input bytes go straight
	// to the decoder.
	protected bool

	// offloaded routes the decrypt and decode work through the bounded
	// compute pool. Set for CPU-heavy decoders (image decompression);
	// cheap decoders run inline on the calling goroutine.
	offloaded bool

	// decode turns authenticated plaintext into the typed asset.
	decode func(plaintext []byte) (any, error)
}

// load reads the entire stream, decrypts if the pipeline is protected,
// and decodes. Assets are bounded in size; streaming decode is not
// supported.
func (p pipeline) load(ctx context.Context, reader io.Reader) (any, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	work := func() (any, error) {
		plaintext := data

		if p.protected {
			key := keymat.Reconstruct()

			plaintext, err = blobcrypt.Open(data, key[:])
			if err != nil {
				return nil, err
			}
		}

		return p.decode(plaintext)
	}

	if p.offloaded {
		return offload(ctx, work)
	}

	return work()
}
