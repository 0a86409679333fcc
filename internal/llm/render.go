package llm

import (
	"fmt"
	"strings"

	"github.com/tkondra/constella/internal/model"
)

// RenderMarkdown renders a narration as a standalone Markdown document.
// Narrations live in their own file so the analysis report stays purely
// derived from the input.
func RenderMarkdown(n *model.Narration) string {
	var b strings.Builder

	b.WriteString("# Constellation Narration\n\n")

	if n.Provider != "" {
		fmt.Fprintf(&b, "Provider: %s", n.Provider)
		if n.Model != "" {
			fmt.Fprintf(&b, " · Model: %s", n.Model)
		}
		b.WriteString("\n\n")
	}

	if n.Text != "" {
		b.WriteString(n.Text)
		b.WriteString("\n\n")
	}

	if len(n.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, warning := range n.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("This narration describes the generated structure; it never affects it.\n")

	return b.String()
}
