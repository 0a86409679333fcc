package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/worker"
)

// Service feeds a stream of inputs through the pipeline, debouncing
// bursts so only the last input in each quiet window is analyzed.
// Superseded inputs are dropped before they start; an analysis already
// running always completes.
type Service struct {
	pipeline  *Pipeline
	debouncer *worker.Debouncer

	mu     sync.RWMutex
	latest *model.Result

	onResult func(*model.Result)
}

// NewService wraps a pipeline with debounced submission. onResult, if
// non-nil, is called with each finished analysis.
func NewService(p *Pipeline, quiet time.Duration, onResult func(*model.Result)) *Service {
	return &Service{
		pipeline:  p,
		debouncer: worker.NewDebouncer(quiet),
		onResult:  onResult,
	}
}

// Submit schedules input for analysis once the stream goes quiet.
// Rapid successive submissions replace one another.
func (s *Service) Submit(ctx context.Context, input string) {
	s.debouncer.Submit(func() {
		s.run(ctx, input)
	})
}

// Flush analyzes any pending input immediately.
func (s *Service) Flush() {
	s.debouncer.Flush()
}

// Stop discards any pending input.
func (s *Service) Stop() {
	s.debouncer.Stop()
}

// Drain waits for any in-flight analysis to finish. Callers flush or
// stop first.
func (s *Service) Drain() {
	s.debouncer.Drain()
}

// Latest returns the most recently completed result, or nil before the
// first analysis finishes.
func (s *Service) Latest() *model.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Service) run(ctx context.Context, input string) {
	result := s.pipeline.Analyze(ctx, input)

	s.mu.Lock()
	s.latest = result
	s.mu.Unlock()

	if s.onResult != nil {
		s.onResult(result)
	}
}
