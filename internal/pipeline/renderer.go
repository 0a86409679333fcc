package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tkondra/constella/internal/llm"
	"github.com/tkondra/constella/internal/model"
)

// Renderer writes analysis results as JSON, Markdown and a short
// stdout summary.
type Renderer struct {
	pretty        bool
	includeFooter bool
	out           io.Writer
}

// NewRenderer creates a renderer. The summary goes to stdout.
func NewRenderer(pretty, includeFooter bool) *Renderer {
	return &Renderer{
		pretty:        pretty,
		includeFooter: includeFooter,
		out:           os.Stdout,
	}
}

// RenderJSON writes the full result to path.
func (r *Renderer) RenderJSON(result *model.Result, path string) error {
	var data []byte
	var err error
	if r.pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to path.
func (r *Renderer) RenderMarkdown(result *model.Result, path string) error {
	var b strings.Builder

	b.WriteString("# Constellation Report\n\n")
	fmt.Fprintf(&b, "Analyzed %s · %d words · id `%s`\n\n",
		result.AnalyzedAt.Format(time.RFC3339), result.WordCount, result.ID)

	b.WriteString("## Emotion\n\n")
	fmt.Fprintf(&b, "Dominant: **%s** (confidence %.2f)\n\n", result.Emotion.Dominant, result.Emotion.Confidence)
	fmt.Fprintf(&b, "Valence %.2f · Arousal %.2f · Intensity %.2f\n\n",
		result.Emotion.Valence, result.Emotion.Arousal, result.Emotion.Intensity)
	b.WriteString("| Dimension | Score |\n|---|---|\n")
	for _, e := range model.Emotions() {
		fmt.Fprintf(&b, "| %s | %.2f |\n", e, result.Emotion.Vector.Score(e))
	}
	b.WriteString("\n")

	b.WriteString("## Top Concepts\n\n")
	if len(result.Concepts) == 0 {
		b.WriteString("No concepts extracted.\n\n")
	} else {
		b.WriteString("| Word | Category | Relevance | Frequency |\n|---|---|---|---|\n")
		for i, c := range result.Concepts {
			if i >= 15 {
				fmt.Fprintf(&b, "\n... and %d more concepts.\n", len(result.Concepts)-15)
				break
			}
			fmt.Fprintf(&b, "| %s | %s | %.2f | %d |\n", c.Word, c.Category, c.Relevance, c.Frequency)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Complexity\n\n")
	fmt.Fprintf(&b, "Overall **%.2f** — vocabulary %.2f, sentence %.2f, density %.2f, emotional %.2f\n\n",
		result.Complexity.Overall, result.Complexity.Vocabulary, result.Complexity.Sentence,
		result.Complexity.Density, result.Complexity.Emotional)
	fmt.Fprintf(&b, "%d unique words across %d sentences.\n\n",
		result.Complexity.UniqueWords, result.Complexity.SentenceCount)

	b.WriteString("## Scale\n\n")
	fmt.Fprintf(&b, "Tier **%s** (×%.2f) → %d nodes, %d particles, compression %.2f\n\n",
		result.Strategy.Tier, result.Strategy.Multiplier, result.Strategy.NodeCount,
		result.Strategy.ParticleCount, result.Strategy.CompressionLevel)

	b.WriteString("## Structure\n\n")
	var layers [3]int
	synthetic := 0
	for _, n := range result.Nodes {
		if n.Data.Layer >= 0 && n.Data.Layer < len(layers) {
			layers[n.Data.Layer]++
		}
		if n.Synthetic {
			synthetic++
		}
	}
	active := 0
	for _, c := range result.Connections {
		if c.Active {
			active++
		}
	}
	fmt.Fprintf(&b, "%d nodes (%d synthetic) · layer bands %d / %d / %d\n\n",
		len(result.Nodes), synthetic, layers[0], layers[1], layers[2])
	fmt.Fprintf(&b, "%d connections, %d active\n\n", len(result.Connections), active)

	if r.includeFooter {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "Generated by constella in %s.\n", result.Timings.Total.Round(time.Microsecond))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderNarrationMarkdown writes a pre-rendered narration document to
// path, kept separate from the analysis report.
func (r *Renderer) RenderNarrationMarkdown(markdown, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderSummary prints a short overview of the result.
func (r *Renderer) RenderSummary(result *model.Result) {
	fmt.Fprintf(r.out, "Constellation: %d nodes, %d particles (%s)\n",
		result.Strategy.NodeCount, result.Strategy.ParticleCount, result.Strategy.Tier)
	fmt.Fprintf(r.out, "Dominant emotion: %s (intensity %.2f, valence %+.2f)\n",
		result.Emotion.Dominant, result.Emotion.Intensity, result.Emotion.Valence)
	fmt.Fprintf(r.out, "Complexity %.2f · %d concepts · %d connections\n",
		result.Complexity.Overall, len(result.Concepts), len(result.Connections))
	if result.Narration != nil && result.Narration.Enabled && result.Narration.Text != "" {
		fmt.Fprintf(r.out, "\n%s\n", result.Narration.Text)
	}
}

// RenderResult writes the result to the requested outputs. Empty paths
// skip their format; the stdout summary always prints.
func (p *Pipeline) RenderResult(result *model.Result, jsonPath, mdPath string, verbose bool) error {
	renderer := NewRenderer(p.config.Output.Pretty, p.config.Output.IncludeFooter)

	if jsonPath != "" {
		if err := renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// The narration gets its own file so the report stays purely
	// derived from the input.
	if result.Narration != nil && result.Narration.Enabled && mdPath != "" {
		narrationPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		if err := renderer.RenderNarrationMarkdown(llm.RenderMarkdown(result.Narration), narrationPath); err != nil {
			fmt.Printf("Warning: failed to write narration: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote narration: %s\n", narrationPath)
		}
	}

	renderer.RenderSummary(result)
	return nil
}
