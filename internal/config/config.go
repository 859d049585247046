package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"
)

// Config is read once at startup and handed to every component that needs it.
type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY,required"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`

	TranscriptionModel string `env:"TRANSCRIPTION_MODEL" envDefault:"whisper-1"`
	ExtractionModel    string `env:"EXTRACTION_MODEL" envDefault:"gpt-4o-mini"`

	APISecret string `env:"API_SECRET" envDefault:"changeme"`
	Port      int    `env:"PORT" envDefault:"5000"`

	YtDlpPath    string `env:"YTDLP_PATH" envDefault:"yt-dlp"`
	AudioFormat  string `env:"AUDIO_FORMAT" envDefault:"mp3"`
	AudioQuality string `env:"AUDIO_QUALITY" envDefault:"64K"`
	TempDir      string `env:"TEMP_DIR"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10m"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env file (".env" when empty, skipped if missing)
// and then parses the environment into a Config.
// Variables already present in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address, bound on all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// OpenAI returns the client configuration shared by the transcriber and
// the recipe extractor.
func (c *Config) OpenAI() openai.ClientConfig {
	oc := openai.DefaultConfig(c.OpenAIAPIKey)
	if c.OpenAIBaseURL != "" {
		oc.BaseURL = c.OpenAIBaseURL
	}
	return oc
}
