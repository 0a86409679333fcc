// Package llm generates optional natural-language narrations of
// finished analyses. It is a strict sidecar: narration runs after the
// structure is final, failures degrade to warnings, and the output
// never feeds back into the pipeline.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tkondra/constella/internal/model"
)

const narrationSystemPrompt = "You are a careful narrator who describes generated constellations. You describe only what is given and never invent detail."

// maxPromptConcepts caps how many concepts the prompt lists.
const maxPromptConcepts = 8

// Provider is one narration backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Narrate generates a short description of the analysis.
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)

	// IsAvailable checks if the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// NarrateRequest is the input for narration.
type NarrateRequest struct {
	// Result is the finished analysis to describe.
	Result model.Result

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model is the provider-specific model name.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// NarrateResponse is the narration output.
type NarrateResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds narration provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", or "" for disabled.
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for hosted providers.
	APIKey string

	// BaseURL for custom endpoints (OpenAI-compatible servers, local
	// Ollama).
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// DefaultConfig returns narration defaults: disabled.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 400,
	}
}

// BuildPrompt renders the default narration prompt from a finished
// analysis. The prompt carries only final values; narration can never
// change them.
func BuildPrompt(result model.Result) string {
	var b strings.Builder

	b.WriteString("You are describing a constellation generated from a piece of text.\n")
	b.WriteString("Describe what a viewer floating in front of it would see.\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("1. Mention only concepts from the list below; never invent others.\n")
	b.WriteString("2. Translate the numbers into imagery (dense or sparse, calm or agitated, bright or dim); do not quote them back.\n")
	b.WriteString("3. Write 3-4 sentences of plain prose. No markup, no lists.\n\n")

	b.WriteString("Constellation:\n")
	fmt.Fprintf(&b, "- Dominant emotion: %s (intensity %.2f, valence %.2f, arousal %.2f)\n",
		result.Emotion.Dominant, result.Emotion.Intensity, result.Emotion.Valence, result.Emotion.Arousal)
	fmt.Fprintf(&b, "- Complexity: %.2f of 1.00\n", result.Complexity.Overall)
	fmt.Fprintf(&b, "- Scale: %d nodes, %d particles (%s tier)\n",
		result.Strategy.NodeCount, result.Strategy.ParticleCount, result.Strategy.Tier)

	b.WriteString("- Brightest concepts:")
	if len(result.Concepts) == 0 {
		b.WriteString(" (none)")
	}
	for i, concept := range result.Concepts {
		if i >= maxPromptConcepts {
			fmt.Fprintf(&b, "\n  ... and %d more", len(result.Concepts)-maxPromptConcepts)
			break
		}
		fmt.Fprintf(&b, "\n  - %s (%s)", concept.Word, concept.Category)
	}

	b.WriteString("\n\nDescribe the constellation.")
	return b.String()
}
