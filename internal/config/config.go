package config

import "fmt"

const (
	ProviderOpenAI     = "openai"
	ProviderWhisperCpp = "whispercpp"
	ProviderGoogle     = "google"
	ProviderGemini     = "gemini"

	ModeSummary   = "summary"
	ModeFlashcard = "flashcard"
)

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Whisper       WhisperConfig       `yaml:"whisper"`
	GoogleSpeech  GoogleSpeechConfig  `yaml:"google_speech"`
	Chat          ChatConfig          `yaml:"chat"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Paths         PathsConfig         `yaml:"paths"`
	Export        ExportConfig        `yaml:"export"`
	Logging       LoggingConfig       `yaml:"logging"`

	// Credentials never come from the YAML file.
	Credentials Credentials `yaml:"-"`
}

type TranscriptionConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	Prompt   string `yaml:"prompt"`
}

// WhisperConfig configures the local whisper.cpp backend.
type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Threads    int    `yaml:"threads"`
}

type GoogleSpeechConfig struct {
	LanguageCode string `yaml:"language_code"`
	SampleRate   int    `yaml:"sample_rate"`
}

type ChatConfig struct {
	Provider            string `yaml:"provider"`
	Model               string `yaml:"model"`
	Mode                string `yaml:"mode"`
	SummaryInstruction  string `yaml:"summary_instruction"`
	FlashcardPromptPath string `yaml:"flashcard_prompt_path"`
}

type OpenAIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Credentials struct {
	OpenAIKey string
	GeminiKey string
}

// Default returns a validated configuration for running without a config file.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = ProviderOpenAI
	}
	switch c.Transcription.Provider {
	case ProviderOpenAI, ProviderWhisperCpp, ProviderGoogle:
	default:
		return fmt.Errorf("transcription.provider %q is not supported", c.Transcription.Provider)
	}
	if c.Transcription.Provider == ProviderWhisperCpp && c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}

	if c.Chat.Provider == "" {
		c.Chat.Provider = ProviderOpenAI
	}
	switch c.Chat.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("chat.provider %q is not supported", c.Chat.Provider)
	}

	if c.Chat.Mode == "" {
		c.Chat.Mode = ModeSummary
	}
	if c.Chat.Mode != ModeSummary && c.Chat.Mode != ModeFlashcard {
		return fmt.Errorf("chat.mode %q is not supported", c.Chat.Mode)
	}

	if c.Transcription.Model == "" {
		c.Transcription.Model = "whisper-1"
	}
	if c.Chat.Model == "" {
		c.Chat.Model = "gpt-4o-mini"
	}
	if c.Chat.SummaryInstruction == "" {
		c.Chat.SummaryInstruction = "Summarize the following transcription concisely."
	}
	if c.Chat.FlashcardPromptPath == "" {
		c.Chat.FlashcardPromptPath = "flashcard-prompt.txt"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.GoogleSpeech.LanguageCode == "" {
		c.GoogleSpeech.LanguageCode = "en-US"
	}
	if c.GoogleSpeech.SampleRate == 0 {
		c.GoogleSpeech.SampleRate = 16000
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	return nil
}

// ChatModel returns the model name for the configured chat provider.
func (c *Config) ChatModel() string {
	if c.Chat.Provider == ProviderGemini {
		return c.Gemini.Model
	}
	return c.Chat.Model
}
