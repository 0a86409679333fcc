package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/pipeline"
)

var (
	outJSON      string
	outMD        string
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	noFooter     bool
	noRobots     bool
	httpProxy    string
	httpsProxy   string
	noProxy      string
	seed         int64
	maxConcepts  int
	minRelevance float64
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <source>",
	Short: "Analyze a text source and generate its constellation",
	Long: `Analyze converts one text source into a constellation:
- Score six emotion dimensions, valence, arousal and intensity
- Extract categorized concepts and their semantic graph
- Measure text complexity
- Resolve the node and particle budgets for the input size
- Generate positioned nodes and weighted connections

The source may be inline text, "-" for stdin, a local file path, or an
HTTP(S) URL. Identical input always yields an identical structure.

Example:
  constella analyze "the quiet storm passed over the harbor"
  cat chapter.txt | constella analyze -
  constella analyze notes.txt --json out.json --md report.md
  constella analyze https://example.com/essay --no-cache
  constella analyze story.txt --llm ollama --llm-model llama3`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "constellation.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	addSourceFlags(analyzeCmd)
	addPipelineFlags(analyzeCmd)
	addLLMFlags(analyzeCmd)
}

// addSourceFlags registers the flags controlling URL input handling.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent for URL sources")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max source bytes to read")
	cmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks for URL sources")
	cmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	cmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	cmd.Flags().StringVar(&noProxy, "no-proxy", "", "comma-separated hosts to connect to directly")
}

// addPipelineFlags registers the flags tuning the analysis itself.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching (force fresh analysis)")
	cmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed random seed for synthetic nodes (0 = derive from input)")
	cmd.Flags().IntVar(&maxConcepts, "max-concepts", 50, "maximum number of extracted concepts")
	cmd.Flags().Float64Var(&minRelevance, "min-relevance", 0.1, "minimum concept relevance")
}

// addLLMFlags registers the optional narration flags.
func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narration of the result")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "narration provider (openai, ollama)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "", "narration model name (default: provider-specific)")
}

// buildConfig resolves the effective configuration: defaults, then the
// config file and CONSTELLA_* environment via viper, then any flags
// the user actually set.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if flags.Changed("no-robots") {
		cfg.HTTP.RespectRobots = !noRobots
	}
	if flags.Changed("http-proxy") {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if flags.Changed("https-proxy") {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
	if flags.Changed("no-proxy") {
		cfg.HTTP.NoProxy = noProxy
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("no-footer") {
		cfg.Output.IncludeFooter = !noFooter
	}
	if flags.Changed("seed") {
		cfg.Pipeline.Seed = seed
	}
	if flags.Changed("max-concepts") {
		cfg.Pipeline.MaxConcepts = maxConcepts
	}
	if flags.Changed("min-relevance") {
		cfg.Pipeline.MinRelevance = minRelevance
	}
	cfg.Output.Verbose = verbose

	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// configureLLM fills the narration section from flags and environment.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
			cfg.LLM.BaseURL = base
		}
	case "ollama":
		if llmModel == "" {
			return fmt.Errorf("--llm-model is required for the ollama provider")
		}
		if base := os.Getenv("OLLAMA_BASE_URL"); base != "" {
			cfg.LLM.BaseURL = base
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", llmProvider)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", truncateSource(source))
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	doc, err := p.ResolveInput(ctx, source)
	if err != nil {
		return fmt.Errorf("resolve input: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Resolved %s input: %d bytes\n", doc.Kind, len(doc.Text))
		if doc.Title != "" {
			fmt.Fprintf(os.Stderr, "✓ Title: %s\n", doc.Title)
		}
	}

	result := p.Analyze(ctx, doc.Text)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Scored emotion: %s (confidence %.2f)\n",
			result.Emotion.Dominant, result.Emotion.Confidence)
		fmt.Fprintf(os.Stderr, "✓ Extracted %d concepts\n", len(result.Concepts))
		fmt.Fprintf(os.Stderr, "✓ Resolved tier %s: %d nodes, %d particles\n",
			result.Strategy.Tier, result.Strategy.NodeCount, result.Strategy.ParticleCount)
		fmt.Fprintf(os.Stderr, "✓ Generated %d nodes, %d connections\n",
			len(result.Nodes), len(result.Connections))
		if result.Narration != nil && result.Narration.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated narration using %s/%s\n",
				result.Narration.Provider, result.Narration.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderResult(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// truncateSource keeps progress lines readable when the source is a
// long inline text.
func truncateSource(source string) string {
	const max = 60
	runes := []rune(source)
	if len(runes) <= max {
		return source
	}
	return string(runes[:max]) + "..."
}
