package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/pipeline"
)

var quiet time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-analyze a growing text read line by line from stdin",
	Long: `Watch reads lines from stdin and treats them as a growing document.
Each line extends the text; analysis re-runs once input goes quiet, so
a burst of pasted lines costs one analysis, not one per line. On EOF
any pending text is analyzed and the final reports are written.

Example:
  constella watch < draft.txt
  tail -f journal.txt | constella watch --quiet 1s --json live.json`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&quiet, "quiet", 500*time.Millisecond, "quiet period before re-analysis")
	watchCmd.Flags().StringVar(&outJSON, "json", "", "JSON path rewritten after each analysis (optional)")
	watchCmd.Flags().StringVar(&outMD, "md", "", "Markdown path rewritten after each analysis (optional)")

	addPipelineFlags(watchCmd)
	addLLMFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Debounce.Quiet = quiet
	}

	p := pipeline.NewPipeline(cfg)
	renderer := pipeline.NewRenderer(cfg.Output.Pretty, cfg.Output.IncludeFooter)

	onResult := func(result *model.Result) {
		fmt.Printf("─── %s ───\n", result.AnalyzedAt.Format("15:04:05"))
		renderer.RenderSummary(result)
		fmt.Println()

		if outJSON != "" {
			if err := renderer.RenderJSON(result, outJSON); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to write JSON: %v\n", err)
			}
		}
		if outMD != "" {
			if err := renderer.RenderMarkdown(result, outMD); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to write Markdown: %v\n", err)
			}
		}
	}

	svc := pipeline.NewService(p, cfg.Debounce.Quiet, onResult)
	defer svc.Stop()

	if verbose {
		fmt.Fprintf(os.Stderr, "Watching stdin (quiet period %v, Ctrl-D to finish)\n\n", cfg.Debounce.Quiet)
	}

	ctx := context.Background()
	var document string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		if document != "" {
			document += "\n"
		}
		document += scanner.Text()
		lines++
		svc.Submit(ctx, document)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if lines == 0 {
		return fmt.Errorf("no input received")
	}

	// EOF: analyze any pending text and wait out an analysis the quiet
	// timer may have started already.
	svc.Flush()
	svc.Drain()

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Watched %d lines\n", lines)
	}
	return nil
}
