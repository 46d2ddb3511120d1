package config

import (
	"path/filepath"

	"github.com/ziadkadry99/topicmap/internal/assets"
	"github.com/ziadkadry99/topicmap/internal/topics"
)

// DefaultConfigPath is where init writes and commands read by default.
const DefaultConfigPath = ".topicmap.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir: "data",
		Assets: AssetConfig{
			Topics:     assets.TopicsFile,
			Scatter:    assets.ScatterFile,
			Network:    assets.NetworkFile,
			FilterHist: assets.FilterHistFile,
			Palette:    assets.PaletteFile,
		},
		Port:            8050,
		AllowAllOrigins: false,
		LogLevel:        "info",
		LogFormat:       LogFormatConsole,
		BackgroundColor: topics.DefaultBackgroundColor,
		UnassignedColor: topics.DefaultUnassignedColor,
		SVGCacheSize:    256,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
	}
}

// AssetPaths resolves the configured asset names against DataDir.
// Absolute names are used as they are.
func (c *Config) AssetPaths() assets.Paths {
	join := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(c.DataDir, name)
	}
	return assets.Paths{
		Topics:     join(c.Assets.Topics),
		Scatter:    join(c.Assets.Scatter),
		Network:    join(c.Assets.Network),
		FilterHist: join(c.Assets.FilterHist),
		Palette:    join(c.Assets.Palette),
	}
}

// AssetOptions returns the loader options derived from the config.
func (c *Config) AssetOptions() assets.Options {
	return assets.Options{
		BackgroundColor: c.BackgroundColor,
		UnassignedColor: c.UnassignedColor,
	}
}
