package model

// ComplexityScore is the composite structural complexity of the input.
// Overall blends the four sub-scores as 0.3·Vocabulary + 0.3·Sentence +
// 0.25·Density + 0.15·Emotional, clamped to [0,1].
type ComplexityScore struct {
	Overall    float64 `json:"overall"`
	Vocabulary float64 `json:"vocabulary"` // type/token ratio + sophistication
	Sentence   float64 `json:"sentence"`   // length, punctuation, subordination
	Density    float64 `json:"density"`    // abstract/technical/action/descriptive share
	Emotional  float64 `json:"emotional"`  // emotional vocabulary nuance

	UniqueWords   int `json:"unique_words"`
	SentenceCount int `json:"sentence_count"`
}
