package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// Load reads a YAML config file, validates it and attaches credentials from
// the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.Credentials = CredentialsFromEnv()
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.Credentials = CredentialsFromEnv()
		return cfg, nil
	}
	return cfg, err
}

// LoadEnv loads .env style files into the process environment. Missing files
// are skipped; variables already set are not overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

func CredentialsFromEnv() Credentials {
	return Credentials{
		OpenAIKey: os.Getenv(EnvOpenAIKey),
		GeminiKey: os.Getenv(EnvGeminiKey),
	}
}

// RequireCredentials checks that the key for each remote provider used by the
// requested stages is present.
func (c *Config) RequireCredentials(transcription, chat bool) error {
	needOpenAI := (transcription && c.Transcription.Provider == ProviderOpenAI) ||
		(chat && c.Chat.Provider == ProviderOpenAI)
	if needOpenAI && c.Credentials.OpenAIKey == "" {
		return fmt.Errorf("%s environment variable is required", EnvOpenAIKey)
	}
	if chat && c.Chat.Provider == ProviderGemini && c.Credentials.GeminiKey == "" {
		return fmt.Errorf("%s environment variable is required", EnvGeminiKey)
	}
	return nil
}
