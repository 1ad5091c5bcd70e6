package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

// Summary backends.
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Summary SummaryConfig `yaml:"summary"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Watcher WatcherConfig `yaml:"watcher"`
}

type OpenAIConfig struct {
	TranscriptionModel string `yaml:"transcription_model"`
	SummaryModel       string `yaml:"summary_model"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type SummaryConfig struct {
	Backend string `yaml:"backend"`
}

type PathsConfig struct {
	Prompts string `yaml:"prompts"`
	Out     string `yaml:"out"`
	Watch   string `yaml:"watch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatcherConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file. A missing file is not an error: all settings
// have working defaults. A file that exists but cannot be parsed is a
// configuration error naming the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read config %s: %v", errs.ErrConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config %s: %v", errs.ErrConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fills defaults and rejects settings with no usable value.
func (c *Config) Validate() error {
	c.applyDefaults()

	if c.Summary.Backend != BackendOpenAI && c.Summary.Backend != BackendGemini {
		return fmt.Errorf("%w: summary.backend must be %q or %q, got %q",
			errs.ErrConfig, BackendOpenAI, BackendGemini, c.Summary.Backend)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.OpenAI.SummaryModel == "" {
		c.OpenAI.SummaryModel = "gpt-4o-mini"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Summary.Backend == "" {
		c.Summary.Backend = BackendOpenAI
	}
	if c.Paths.Prompts == "" {
		c.Paths.Prompts = "prompts.json"
	}
	if c.Paths.Out == "" {
		c.Paths.Out = "out"
	}
	if c.Paths.Watch == "" {
		c.Paths.Watch = "input"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 2
	}
}
