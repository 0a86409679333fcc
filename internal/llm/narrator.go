package llm

import (
	"context"
	"fmt"

	"github.com/tkondra/constella/internal/model"
)

// Narrator wraps a provider and degrades gracefully: a disabled
// narrator produces nothing, an unavailable or failing provider
// produces warnings, and the analysis itself never fails because of
// narration.
type Narrator struct {
	provider Provider
	config   Config
}

// NewNarrator creates a narrator from configuration. An empty provider
// name yields a disabled narrator.
func NewNarrator(config Config) (*Narrator, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Narrator{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (n *Narrator) IsEnabled() bool {
	return n.provider != nil
}

// ProviderName returns the configured provider's name, or "" when
// disabled.
func (n *Narrator) ProviderName() string {
	if n.provider == nil {
		return ""
	}
	return n.provider.Name()
}

// Narrate describes a finished analysis. It returns (nil, nil) when
// disabled; provider problems come back as warnings on the Narration,
// not as errors.
func (n *Narrator) Narrate(ctx context.Context, result model.Result) (*model.Narration, error) {
	if n.provider == nil {
		return nil, nil
	}

	if !n.provider.IsAvailable(ctx) {
		return &model.Narration{
			Enabled:  false,
			Provider: n.provider.Name(),
			Warnings: []string{fmt.Sprintf("provider %s is not available, narration skipped", n.provider.Name())},
		}, nil
	}

	resp, err := n.provider.Narrate(ctx, NarrateRequest{
		Result:    result,
		Model:     n.config.Model,
		MaxTokens: n.config.MaxTokens,
	})
	if err != nil {
		return &model.Narration{
			Enabled:  true,
			Provider: n.provider.Name(),
			Model:    n.config.Model,
			Warnings: []string{fmt.Sprintf("narration failed: %v", err)},
		}, nil
	}

	return &model.Narration{
		Enabled:  true,
		Provider: n.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}
