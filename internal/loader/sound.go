package loader

import (
	"context"
	"io"
)

// Sound is a decoded audio asset: container-complete audio bytes ready
// for the playback engine, with no further transformation applied.
type Sound struct {
	Bytes []byte
}

// SoundLoader decodes `.sound` assets: raw audio byte buffers,
// optionally encrypted.
type SoundLoader struct {
	pipeline pipeline
}

// NewSoundLoader returns a sound loader. The decode stage is a
// pass-through and runs inline.
func NewSoundLoader(protected bool) *SoundLoader {
	return &SoundLoader{
		pipeline: pipeline{
			protected: protected,
			decode: func(plaintext []byte) (any, error) {
				return &Sound{Bytes: plaintext}, nil
			},
		},
	}
}

// Load implements Loader.
func (l *SoundLoader) Load(ctx context.Context, reader io.Reader) (any, error) {
	return l.pipeline.load(ctx, reader)
}

// Extensions implements Loader.
func (l *SoundLoader) Extensions() []string {
	return []string{"sound"}
}
