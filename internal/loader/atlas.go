package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Point is an integer position or size within an atlas.
type Point struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// Rect is one sub-texture region, given by inclusive min and exclusive
// max corners.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// AtlasLayout is the decoded texture-atlas metadata: the overall atlas
// dimensions and the sub-rectangles in the order they were listed.
type AtlasLayout struct {
	Size  Point
	Rects []Rect
}

// NewAtlasLayout creates an empty layout with the given dimensions.
func NewAtlasLayout(size Point) *AtlasLayout {
	return &AtlasLayout{Size: size}
}

// Add appends a region to the layout and returns its index.
func (l *AtlasLayout) Add(rect Rect) int {
	l.Rects = append(l.Rects, rect)

	return len(l.Rects) - 1
}

// serializableAtlas is the on-disk JSON shape of a `.atlas` file.
type serializableAtlas struct {
	Size     Point  `json:"size"`
	Textures []Rect `json:"textures"`
}

// AtlasLoader decodes `.atlas` assets: JSON atlas metadata, optionally
// encrypted.
type AtlasLoader struct {
	pipeline pipeline
}

// NewAtlasLoader returns an atlas loader. Metadata decode is cheap and
// runs inline.
func NewAtlasLoader(protected bool) *AtlasLoader {
	return &AtlasLoader{
		pipeline: pipeline{
			protected: protected,
			decode:    decodeAtlas,
		},
	}
}

// Load implements Loader.
func (l *AtlasLoader) Load(ctx context.Context, reader io.Reader) (any, error) {
	return l.pipeline.load(ctx, reader)
}

// Extensions implements Loader.
func (l *AtlasLoader) Extensions() []string {
	return []string{"atlas"}
}

func decodeAtlas(plaintext []byte) (any, error) {
	var serializable serializableAtlas
	if err := json.Unmarshal(plaintext, &serializable); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	layout := NewAtlasLayout(serializable.Size)
	for _, rect := range serializable.Textures {
		layout.Add(rect)
	}

	return layout, nil
}
