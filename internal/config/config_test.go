package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "whisper.cpp with model",
			config: Config{
				Transcription: TranscriptionConfig{Provider: ProviderWhisperCpp},
				Whisper:       WhisperConfig{ModelPath: "models/ggml-base.en.bin"},
			},
			wantErr: false,
		},
		{
			name: "whisper.cpp without model",
			config: Config{
				Transcription: TranscriptionConfig{Provider: ProviderWhisperCpp},
			},
			wantErr: true,
		},
		{
			name: "unknown transcription provider",
			config: Config{
				Transcription: TranscriptionConfig{Provider: "deepgram"},
			},
			wantErr: true,
		},
		{
			name: "unknown chat provider",
			config: Config{
				Chat: ChatConfig{Provider: "ollama"},
			},
			wantErr: true,
		},
		{
			name: "unknown mode",
			config: Config{
				Chat: ChatConfig{Mode: "quiz"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Transcription.Model != "whisper-1" {
		t.Errorf("Transcription.Model = %v, want %v", cfg.Transcription.Model, "whisper-1")
	}
	if cfg.Chat.Model != "gpt-4o-mini" {
		t.Errorf("Chat.Model = %v, want %v", cfg.Chat.Model, "gpt-4o-mini")
	}
	if cfg.Paths.Output != "output" {
		t.Errorf("Paths.Output = %v, want %v", cfg.Paths.Output, "output")
	}
	if cfg.Chat.Mode != ModeSummary {
		t.Errorf("Chat.Mode = %v, want %v", cfg.Chat.Mode, ModeSummary)
	}
}

func TestChatModel(t *testing.T) {
	cfg := Default()
	if got := cfg.ChatModel(); got != "gpt-4o-mini" {
		t.Errorf("ChatModel() = %v, want %v", got, "gpt-4o-mini")
	}

	cfg.Chat.Provider = ProviderGemini
	if got := cfg.ChatModel(); got != "gemini-2.5-flash" {
		t.Errorf("ChatModel() = %v, want %v", got, "gemini-2.5-flash")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvOpenAIKey, "sk-test")

	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
transcription:
  provider: "openai"
  language: "en"

chat:
  mode: "flashcard"
  flashcard_prompt_path: "prompts/flashcard.txt"

paths:
  output: "data/output"

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Chat.Mode != ModeFlashcard {
		t.Errorf("Mode = %v, want %v", cfg.Chat.Mode, ModeFlashcard)
	}
	if cfg.Chat.FlashcardPromptPath != "prompts/flashcard.txt" {
		t.Errorf("FlashcardPromptPath = %v, want %v", cfg.Chat.FlashcardPromptPath, "prompts/flashcard.txt")
	}
	if cfg.Paths.Output != "data/output" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "data/output")
	}
	if cfg.Transcription.Model != "whisper-1" {
		t.Errorf("Transcription.Model = %v, want %v", cfg.Transcription.Model, "whisper-1")
	}
	if cfg.Credentials.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %v, want %v", cfg.Credentials.OpenAIKey, "sk-test")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Paths.Output != "output" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "output")
	}
}

func TestLoadOrDefaultInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("chat: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("LoadOrDefault() should return error for malformed YAML")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("GEMINI_API_KEY=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvGeminiKey, "")
	os.Unsetenv(EnvGeminiKey)

	if err := LoadEnv(envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := CredentialsFromEnv().GeminiKey; got != "from-dotenv" {
		t.Errorf("GeminiKey = %v, want %v", got, "from-dotenv")
	}
}

func TestRequireCredentials(t *testing.T) {
	tests := []struct {
		name          string
		chatProvider  string
		creds         Credentials
		transcription bool
		chat          bool
		wantErr       bool
	}{
		{"openai key present", ProviderOpenAI, Credentials{OpenAIKey: "k"}, true, true, false},
		{"openai key missing", ProviderOpenAI, Credentials{}, true, false, true},
		{"gemini key missing", ProviderGemini, Credentials{OpenAIKey: "k"}, true, true, true},
		{"gemini not needed for transcription", ProviderGemini, Credentials{OpenAIKey: "k"}, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Chat.Provider = tt.chatProvider
			cfg.Credentials = tt.creds
			err := cfg.RequireCredentials(tt.transcription, tt.chat)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
