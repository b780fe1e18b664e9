package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Configuration is the game-side runtime configuration asset.
type Configuration struct {
	ServerURL string `json:"server_url"`
}

// ConfigurationLoader decodes `.json` configuration assets. These ship
// in plaintext, so the pipeline never has a decrypt stage.
type ConfigurationLoader struct {
	pipeline pipeline
}

// NewConfigurationLoader returns a configuration loader.
func NewConfigurationLoader() *ConfigurationLoader {
	return &ConfigurationLoader{
		pipeline: pipeline{
			decode: func(plaintext []byte) (any, error) {
				var configuration Configuration
				if err := json.Unmarshal(plaintext, &configuration); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrDecode, err)
				}

				return &configuration, nil
			},
		},
	}
}

// Load implements Loader.
func (l *ConfigurationLoader) Load(ctx context.Context, reader io.Reader) (any, error) {
	return l.pipeline.load(ctx, reader)
}

// Extensions implements Loader.
func (l *ConfigurationLoader) Extensions() []string {
	return []string{"json"}
}
