// Package asset is the public face of the runtime loader library: the
// loader contract consumed by the asset-loading framework, the typed
// assets the loaders produce, and the error sentinels callers branch
// on to tell a corrupted or tampered asset from an unreadable stream
// from authenticated-but-invalid content.
package asset

import (
	"github.com/haneulworks/assetseal/internal/blobcrypt"
	"github.com/haneulworks/assetseal/internal/loader"
)

// Loader is the contract consumed by the asset-loading framework: a
// loader reads one asset from a byte stream and produces a typed asset
// or a typed error, and declares the file extensions it claims.
type Loader = loader.Loader

// Typed assets and their building blocks.
type (
	// Sprite is a decoded sprite image: a straight-alpha RGBA8 pixel
	// buffer plus its sampling mode.
	Sprite = loader.Sprite

	// AtlasLayout is decoded texture-atlas metadata.
	AtlasLayout = loader.AtlasLayout

	// Point is an integer position or size within an atlas.
	Point = loader.Point

	// Rect is one sub-texture region of an atlas.
	Rect = loader.Rect

	// Sound is a decoded audio asset.
	Sound = loader.Sound

	// Configuration is the game-side runtime configuration asset.
	Configuration = loader.Configuration

	// Sampling selects how a sprite is sampled when scaled.
	Sampling = loader.Sampling
)

// Loader implementations, one per asset kind.
type (
	SpriteLoader        = loader.SpriteLoader
	AtlasLoader         = loader.AtlasLoader
	SoundLoader         = loader.SoundLoader
	ConfigurationLoader = loader.ConfigurationLoader
)

const (
	// SamplingNearest disables smoothing, keeping pixel art crisp.
	SamplingNearest = loader.SamplingNearest

	// SamplingLinear enables bilinear filtering.
	SamplingLinear = loader.SamplingLinear
)

var (
	// ErrRead is returned when the underlying byte stream cannot be read.
	ErrRead = loader.ErrRead

	// ErrDecode is returned when plaintext was obtained and
	// authenticated but is not valid for the expected format.
	ErrDecode = loader.ErrDecode

	// ErrMalformed is returned when a blob is too short to contain a
	// nonce and an authentication tag.
	ErrMalformed = blobcrypt.ErrMalformed

	// ErrAuthentication is returned when the authentication tag does
	// not verify: the blob was corrupted, tampered with, or sealed
	// under a different key.
	ErrAuthentication = blobcrypt.ErrAuthentication
)

// NewSpriteLoader returns a loader for `.sprite` assets.
func NewSpriteLoader(protected bool) *SpriteLoader {
	return loader.NewSpriteLoader(protected)
}

// NewAtlasLoader returns a loader for `.atlas` assets.
func NewAtlasLoader(protected bool) *AtlasLoader {
	return loader.NewAtlasLoader(protected)
}

// NewSoundLoader returns a loader for `.sound` assets.
func NewSoundLoader(protected bool) *SoundLoader {
	return loader.NewSoundLoader(protected)
}

// NewConfigurationLoader returns a loader for `.json` configuration
// assets, which always ship in plaintext.
func NewConfigurationLoader() *ConfigurationLoader {
	return loader.NewConfigurationLoader()
}

// All returns one loader per asset kind. When protected is true the
// sprite, atlas and sound loaders decrypt before decoding.
func All(protected bool) []Loader {
	return loader.All(protected)
}
