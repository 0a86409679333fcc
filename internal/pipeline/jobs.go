package pipeline

import (
	"context"
	"time"

	"github.com/tkondra/constella/internal/complexity"
	"github.com/tkondra/constella/internal/concept"
	"github.com/tkondra/constella/internal/emotion"
	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/worker"
)

// The three analyzer jobs wrap the pure scorers for the worker pool.
// None of them can fail; Err is always nil.

type emotionJob struct {
	scorer *emotion.Scorer
	input  string
}

type emotionJobResult struct {
	result  model.EmotionResult
	elapsed time.Duration
}

func (r *emotionJobResult) Err() error { return nil }

func (j *emotionJob) Execute(ctx context.Context) worker.Result {
	start := time.Now()
	result := j.scorer.Score(j.input)
	return &emotionJobResult{result: result, elapsed: time.Since(start)}
}

type conceptJob struct {
	extractor *concept.Extractor
	input     string
}

type conceptJobResult struct {
	concepts []model.Concept
	elapsed  time.Duration
}

func (r *conceptJobResult) Err() error { return nil }

func (j *conceptJob) Execute(ctx context.Context) worker.Result {
	start := time.Now()
	concepts := j.extractor.Extract(j.input)
	return &conceptJobResult{concepts: concepts, elapsed: time.Since(start)}
}

type complexityJob struct {
	scorer *complexity.Scorer
	input  string
}

type complexityJobResult struct {
	score   model.ComplexityScore
	elapsed time.Duration
}

func (r *complexityJobResult) Err() error { return nil }

func (j *complexityJob) Execute(ctx context.Context) worker.Result {
	start := time.Now()
	score := j.scorer.Score(j.input)
	return &complexityJobResult{score: score, elapsed: time.Since(start)}
}
