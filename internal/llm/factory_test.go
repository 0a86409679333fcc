package llm

import (
	"testing"

	"github.com/tkondra/constella/internal/model"
)

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider != nil {
		t.Error("Expected nil provider when disabled")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "telegraph"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("Expected error for openai without API key")
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "ollama", Model: "llama3.1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider == nil || provider.Name() != "ollama" {
		t.Errorf("Expected ollama provider, got %v", provider)
	}
}

func TestNewProvider_CaseInsensitive(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "Ollama", Model: "llama3.1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider == nil || provider.Name() != "ollama" {
		t.Errorf("Expected ollama provider, got %v", provider)
	}
}

func TestConfigFromModel(t *testing.T) {
	modelConfig := model.LLMConfig{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		APIKey:    "key",
		BaseURL:   "http://localhost:8080/v1",
		Timeout:   15,
		MaxTokens: 200,
	}

	config := ConfigFromModel(modelConfig)
	if config.Provider != "openai" || config.Model != "gpt-4o-mini" || config.APIKey != "key" {
		t.Errorf("Unexpected config: %+v", config)
	}
	if config.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("Expected base URL to carry over, got %s", config.BaseURL)
	}
	if config.Timeout != 15 || config.MaxTokens != 200 {
		t.Errorf("Expected timeout and max tokens to carry over, got %d and %d", config.Timeout, config.MaxTokens)
	}
}
