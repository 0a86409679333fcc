package model

import "time"

// Result is the complete output of one pipeline run: everything the
// rendering collaborator needs to draw a constellation, plus identity
// and timing metadata. Identical inputs served from the cache return
// the same Result verbatim, including ID and AnalyzedAt.
type Result struct {
	ID         string    `json:"id"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	WordCount int      `json:"word_count"`
	Words     []string `json:"words"`

	Emotion    EmotionResult   `json:"emotion"`
	Concepts   []Concept       `json:"concepts"`
	Graph      SemanticGraph   `json:"graph"`
	Complexity ComplexityScore `json:"complexity"`
	Strategy   ScalingStrategy `json:"strategy"`

	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`

	Timings Timings `json:"timings"`

	// Narration is the optional LLM-generated description. It is produced
	// after the structure is final and never feeds back into it.
	Narration *Narration `json:"narration,omitempty"`
}

// Timings records per-stage wall-clock durations in nanoseconds.
type Timings struct {
	Emotion    time.Duration `json:"emotion"`
	Concepts   time.Duration `json:"concepts"`
	Complexity time.Duration `json:"complexity"`
	Scaling    time.Duration `json:"scaling"`
	Structure  time.Duration `json:"structure"`
	Total      time.Duration `json:"total"`
}

// Narration is an optional natural-language description of a finished
// constellation. It is clearly separated from the structure and never
// affects it.
type Narration struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
