package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tkondra/constella/internal/model"
)

// stubAnalyzer counts invocations and fails on one designated source.
type stubAnalyzer struct {
	calls    int32
	failWith string
}

func (s *stubAnalyzer) AnalyzeSource(ctx context.Context, source string) (*model.Result, error) {
	atomic.AddInt32(&s.calls, 1)
	if source == s.failWith {
		return nil, errors.New("analysis failed")
	}
	return &model.Result{ID: source, WordCount: len(source)}, nil
}

func TestBatchProcessor_ProcessSources(t *testing.T) {
	analyzer := &stubAnalyzer{}
	bp := NewBatchProcessor(analyzer, 3)

	sources := []string{"alpha", "beta", "gamma", "delta"}
	results := bp.ProcessSources(context.Background(), sources)

	if len(results) != len(sources) {
		t.Fatalf("expected %d results, got %d", len(sources), len(results))
	}
	if got := atomic.LoadInt32(&analyzer.calls); got != int32(len(sources)) {
		t.Errorf("expected %d analyzer calls, got %d", len(sources), got)
	}

	seen := make(map[string]bool)
	for _, r := range results {
		if r.Err() != nil {
			t.Errorf("unexpected error for %s: %v", r.Source, r.Err())
		}
		if r.Result == nil {
			t.Errorf("expected result for %s", r.Source)
			continue
		}
		if r.Result.ID != r.Source {
			t.Errorf("expected result tagged with its source, got %s for %s", r.Result.ID, r.Source)
		}
		seen[r.Source] = true
	}
	for _, source := range sources {
		if !seen[source] {
			t.Errorf("expected a result for %s", source)
		}
	}
}

func TestBatchProcessor_FailedSource(t *testing.T) {
	analyzer := &stubAnalyzer{failWith: "broken"}
	bp := NewBatchProcessor(analyzer, 2)

	results := bp.ProcessSources(context.Background(), []string{"ok", "broken"})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var failed, succeeded int
	for _, r := range results {
		if r.Err() != nil {
			failed++
			if r.Source != "broken" {
				t.Errorf("expected failure on broken source, got %s", r.Source)
			}
			if r.Result != nil {
				t.Error("expected nil result for failed source")
			}
		} else {
			succeeded++
		}
	}
	if failed != 1 || succeeded != 1 {
		t.Errorf("expected 1 failure and 1 success, got %d and %d", failed, succeeded)
	}
}

// A wave much larger than the worker count must not wedge on the
// pool's internal buffers.
func TestBatchProcessor_LargeBatch(t *testing.T) {
	analyzer := &stubAnalyzer{}
	bp := NewBatchProcessor(analyzer, 2)

	sources := make([]string, 64)
	for i := range sources {
		sources[i] = fmt.Sprintf("source-%02d", i)
	}

	done := make(chan []*AnalyzeResult, 1)
	go func() { done <- bp.ProcessSources(context.Background(), sources) }()

	select {
	case results := <-done:
		if len(results) != len(sources) {
			t.Fatalf("expected %d results, got %d", len(sources), len(results))
		}
		if got := atomic.LoadInt32(&analyzer.calls); got != int32(len(sources)) {
			t.Errorf("expected %d analyzer calls, got %d", len(sources), got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not finish, pool is wedged")
	}
}

func TestBatchProcessor_EmptySources(t *testing.T) {
	bp := NewBatchProcessor(&stubAnalyzer{}, 2)
	results := bp.ProcessSources(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.txt")
	content := `# manifest
alpha

beta
alpha
  gamma
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"alpha", "beta", "gamma"}
	if len(sources) != len(want) {
		t.Fatalf("expected %d sources, got %d: %v", len(want), len(sources), sources)
	}
	for i, w := range want {
		if sources[i] != w {
			t.Errorf("expected source %d to be %s, got %s", i, w, sources[i])
		}
	}
}

func TestReadSourcesFromFile_Missing(t *testing.T) {
	_, err := ReadSourcesFromFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	analyzer := &stubAnalyzer{}
	bp := NewBatchProcessor(analyzer, 2)
	results, err := bp.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
	if got := atomic.LoadInt32(&analyzer.calls); got != 2 {
		t.Errorf("expected 2 analyzer calls, got %d", got)
	}
}
