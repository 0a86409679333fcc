package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tkondra/constella/internal/model"
)

// Analyzer resolves one input source (a file path, URL, "-" for stdin
// or inline text) and analyzes it. The pipeline implements this.
type Analyzer interface {
	AnalyzeSource(ctx context.Context, source string) (*model.Result, error)
}

// AnalyzeJob analyzes a single source.
type AnalyzeJob struct {
	Source   string
	Analyzer Analyzer
}

// Execute runs the analysis and wraps the outcome.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.AnalyzeSource(ctx, j.Source)
	return &AnalyzeResult{Source: j.Source, Result: result, Error: err}
}

// AnalyzeResult is the outcome of one batch entry.
type AnalyzeResult struct {
	Source string
	Result *model.Result
	Error  error
}

// Err returns the analysis error, if any.
func (r *AnalyzeResult) Err() error {
	return r.Error
}

// BatchProcessor analyzes many sources concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor with the given
// concurrency.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessSources runs every source through the pool and returns the
// outcomes in completion order.
func (b *BatchProcessor) ProcessSources(ctx context.Context, sources []string) []*AnalyzeResult {
	if len(sources) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewSizedPool(b.concurrency, len(sources))
	pool.Start()
	for _, source := range sources {
		pool.Submit(&AnalyzeJob{Source: source, Analyzer: b.analyzer})
	}
	results := pool.Wait()

	out := make([]*AnalyzeResult, len(results))
	for i, r := range results {
		out[i] = r.(*AnalyzeResult)
	}
	return out
}

// ProcessFile reads a manifest of sources (one per line) and processes
// them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*AnalyzeResult, error) {
	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.ProcessSources(ctx, sources), nil
}

// ReadSourcesFromFile reads one source per line, skipping blank lines
// and #-comments and dropping duplicates.
func ReadSourcesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			sources = append(sources, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return sources, nil
}
