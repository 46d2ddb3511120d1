package config

// LogFormat selects the zerolog writer.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level topicmap configuration, corresponding to .topicmap.yml.
type Config struct {
	DataDir         string      `yaml:"data_dir" koanf:"data_dir"`
	Assets          AssetConfig `yaml:"assets" koanf:"assets"`
	Port            int         `yaml:"port" koanf:"port"`
	AllowAllOrigins bool        `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        string      `yaml:"log_level" koanf:"log_level"`
	LogFormat       LogFormat   `yaml:"log_format" koanf:"log_format"`
	BackgroundColor string      `yaml:"background_color" koanf:"background_color"`
	UnassignedColor string      `yaml:"unassigned_color" koanf:"unassigned_color"`
	SVGCacheSize    int         `yaml:"svg_cache_size" koanf:"svg_cache_size"`
	RateLimitRPS    float64     `yaml:"rate_limit_rps" koanf:"rate_limit_rps"`
	RateLimitBurst  int         `yaml:"rate_limit_burst" koanf:"rate_limit_burst"`
}

// AssetConfig names the asset files inside DataDir.
type AssetConfig struct {
	Topics     string `yaml:"topics" koanf:"topics"`
	Scatter    string `yaml:"scatter" koanf:"scatter"`
	Network    string `yaml:"network" koanf:"network"`
	FilterHist string `yaml:"filter_hist" koanf:"filter_hist"`
	Palette    string `yaml:"palette" koanf:"palette"`
}
