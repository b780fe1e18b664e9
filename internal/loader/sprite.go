package loader

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
)

// Sampling selects how a sprite is sampled when scaled.
type Sampling int

const (
	// SamplingNearest disables smoothing. Sprites are pixel art;
	// nearest sampling keeps them crisp when scaled.
	SamplingNearest Sampling = iota

	// SamplingLinear enables bilinear filtering.
	SamplingLinear
)

// Sprite is a decoded sprite image: a normalized straight-alpha RGBA
// pixel buffer with 8 bits per channel, row-major, plus its sampling
// mode.
type Sprite struct {
	Width    int
	Height   int
	Pixels   []byte
	Sampling Sampling
}

// SpriteLoader decodes `.sprite` assets: PNG images, optionally
// encrypted, normalized to RGBA8.
type SpriteLoader struct {
	pipeline pipeline
}

// NewSpriteLoader returns a sprite loader. Image decompression is
// CPU-heavy, so the decrypt and decode work runs on the compute pool.
func NewSpriteLoader(protected bool) *SpriteLoader {
	return &SpriteLoader{
		pipeline: pipeline{
			protected: protected,
			offloaded: true,
			decode:    decodeSprite,
		},
	}
}

// Load implements Loader.
func (l *SpriteLoader) Load(ctx context.Context, reader io.Reader) (any, error) {
	return l.pipeline.load(ctx, reader)
}

// Extensions implements Loader.
func (l *SpriteLoader) Extensions() []string {
	return []string{"sprite"}
}

func decodeSprite(plaintext []byte) (any, error) {
	img, err := png.Decode(bytes.NewReader(plaintext))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()

	// The pixel buffer is straight (non-premultiplied) alpha, so
	// translucent pixels keep their color channels intact.
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return &Sprite{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Pixels:   nrgba.Pix,
		Sampling: SamplingNearest,
	}, nil
}
