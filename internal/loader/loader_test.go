package loader_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneulworks/assetseal/internal/blobcrypt"
	"github.com/haneulworks/assetseal/internal/keymat"
	"github.com/haneulworks/assetseal/internal/loader"
)

// seal encrypts plaintext under the embedded key, the way the packager
// writes protected assets.
func seal(t *testing.T, plaintext []byte) []byte {
	t.Helper()

	key := keymat.Reconstruct()

	blob, err := blobcrypt.Seal(plaintext, key[:])
	require.NoError(t, err)

	return blob
}

// encodePNG renders a 2x2 test image to PNG bytes.
func encodePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestSpriteLoaderProtected(t *testing.T) {
	t.Parallel()

	blob := seal(t, encodePNG(t))

	asset, err := loader.NewSpriteLoader(true).Load(context.Background(), bytes.NewReader(blob))
	require.NoError(t, err)

	sprite, ok := asset.(*loader.Sprite)
	require.True(t, ok, "asset type is %T", asset)

	assert.Equal(t, 2, sprite.Width)
	assert.Equal(t, 2, sprite.Height)
	assert.Len(t, sprite.Pixels, 2*2*4)
	assert.Equal(t, loader.SamplingNearest, sprite.Sampling)

	// Top-left pixel is opaque red.
	assert.Equal(t, []byte{255, 0, 0, 255}, sprite.Pixels[:4])
}

func TestSpriteLoaderPlainVariant(t *testing.T) {
	t.Parallel()

	asset, err := loader.NewSpriteLoader(false).Load(context.Background(), bytes.NewReader(encodePNG(t)))
	require.NoError(t, err)

	sprite, ok := asset.(*loader.Sprite)
	require.True(t, ok)
	assert.Equal(t, 2, sprite.Width)
}

func TestSpriteLoaderKeepsStraightAlpha(t *testing.T) {
	t.Parallel()

	// A 50%-alpha pure-red pixel must come out as straight alpha;
	// premultiplying would darken the color channels.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 128})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	asset, err := loader.NewSpriteLoader(false).Load(context.Background(), &buf)
	require.NoError(t, err)

	sprite, ok := asset.(*loader.Sprite)
	require.True(t, ok)

	assert.Equal(t, []byte{255, 0, 0, 128}, sprite.Pixels)
}

func TestSpriteLoaderRejectsBadImage(t *testing.T) {
	t.Parallel()

	// Correctly encrypted, but the plaintext is not a PNG: a decode
	// error, not a crypto error.
	blob := seal(t, []byte("not a png"))

	_, err := loader.NewSpriteLoader(true).Load(context.Background(), bytes.NewReader(blob))
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrDecode)
	assert.NotErrorIs(t, err, blobcrypt.ErrAuthentication)
}

func TestAtlasLoaderProtected(t *testing.T) {
	t.Parallel()

	metadata := []byte(`{
		"size": {"x": 128, "y": 64},
		"textures": [
			{"min": {"x": 0, "y": 0}, "max": {"x": 16, "y": 16}},
			{"min": {"x": 16, "y": 0}, "max": {"x": 48, "y": 32}}
		]
	}`)

	asset, err := loader.NewAtlasLoader(true).Load(context.Background(), bytes.NewReader(seal(t, metadata)))
	require.NoError(t, err)

	layout, ok := asset.(*loader.AtlasLayout)
	require.True(t, ok, "asset type is %T", asset)

	assert.Equal(t, loader.Point{X: 128, Y: 64}, layout.Size)
	require.Len(t, layout.Rects, 2)

	// Insertion order follows the listed order.
	assert.Equal(t, loader.Rect{Max: loader.Point{X: 16, Y: 16}}, layout.Rects[0])
	assert.Equal(t, loader.Point{X: 16}, layout.Rects[1].Min)
}

func TestAtlasLoaderErrorDistinction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	atlasLoader := loader.NewAtlasLoader(true)

	// Valid blob, invalid metadata: decode error, not crypto error.
	_, err := atlasLoader.Load(ctx, bytes.NewReader(seal(t, []byte("{not json"))))
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrDecode)
	assert.NotErrorIs(t, err, blobcrypt.ErrAuthentication)

	// Flipped tag byte: crypto error, not decode error.
	blob := seal(t, []byte(`{"size":{"x":1,"y":1},"textures":[]}`))
	blob[len(blob)-1] ^= 0x01

	_, err = atlasLoader.Load(ctx, bytes.NewReader(blob))
	require.Error(t, err)
	assert.ErrorIs(t, err, blobcrypt.ErrAuthentication)
	assert.NotErrorIs(t, err, loader.ErrDecode)

	// Truncated blob: malformed, not an authentication failure.
	_, err = atlasLoader.Load(ctx, bytes.NewReader(blob[:10]))
	require.Error(t, err)
	assert.ErrorIs(t, err, blobcrypt.ErrMalformed)
}

func TestSoundLoaderPassThrough(t *testing.T) {
	t.Parallel()

	audio := []byte("OggS\x00\x02fake audio container bytes")

	asset, err := loader.NewSoundLoader(true).Load(context.Background(), bytes.NewReader(seal(t, audio)))
	require.NoError(t, err)

	sound, ok := asset.(*loader.Sound)
	require.True(t, ok)
	assert.Equal(t, audio, sound.Bytes)

	asset, err = loader.NewSoundLoader(false).Load(context.Background(), bytes.NewReader(audio))
	require.NoError(t, err)

	sound, ok = asset.(*loader.Sound)
	require.True(t, ok)
	assert.Equal(t, audio, sound.Bytes)
}

func TestConfigurationLoader(t *testing.T) {
	t.Parallel()

	asset, err := loader.NewConfigurationLoader().Load(
		context.Background(),
		bytes.NewReader([]byte(`{"server_url":"https://example.net"}`)),
	)
	require.NoError(t, err)

	configuration, ok := asset.(*loader.Configuration)
	require.True(t, ok)
	assert.Equal(t, "https://example.net", configuration.ServerURL)
}

func TestLoaderReadError(t *testing.T) {
	t.Parallel()

	broken := iotest.ErrReader(errors.New("stream gone"))

	_, err := loader.NewSoundLoader(true).Load(context.Background(), broken)
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrRead)
	assert.NotErrorIs(t, err, blobcrypt.ErrAuthentication)
}

func TestLoaderCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The sprite loader waits on the compute pool; a canceled context
	// must surface instead of blocking.
	_, err := loader.NewSpriteLoader(true).Load(ctx, bytes.NewReader(seal(t, encodePNG(t))))
	if err != nil && errors.Is(err, context.Canceled) {
		return
	}

	// A free pool slot may let the work finish before the cancellation
	// is observed; either outcome is acceptable.
	require.NoError(t, err)
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	want := map[string][]string{
		"sprite": loader.NewSpriteLoader(true).Extensions(),
		"atlas":  loader.NewAtlasLoader(true).Extensions(),
		"sound":  loader.NewSoundLoader(true).Extensions(),
		"json":   loader.NewConfigurationLoader().Extensions(),
	}

	for ext, got := range want {
		assert.Equal(t, []string{ext}, got)
	}

	assert.Len(t, loader.All(true), 4)
}

func TestConcurrentLoads(t *testing.T) {
	t.Parallel()

	blob := seal(t, encodePNG(t))
	spriteLoader := loader.NewSpriteLoader(true)

	done := make(chan error, 16)

	for range 16 {
		go func() {
			_, err := spriteLoader.Load(context.Background(), bytes.NewReader(blob))
			done <- err
		}()
	}

	for range 16 {
		require.NoError(t, <-done)
	}
}
