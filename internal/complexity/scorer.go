// Package complexity measures how demanding a text is along four
// axes: vocabulary diversity, sentence construction, conceptual
// density and emotional layering. Scores are pure functions of the
// input text.
package complexity

import (
	"strings"
	"unicode/utf8"

	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/text"
)

// Sub-score weights for the overall blend.
const (
	vocabularyWeight = 0.30
	sentenceWeight   = 0.30
	densityWeight    = 0.25
	emotionalWeight  = 0.15
)

// Scorer computes complexity scores from fixed word lists.
type Scorer struct{}

// NewScorer creates a complexity scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score evaluates the four sub-scores and blends them into an overall
// complexity in [0,1]. Empty input scores zero everywhere.
func (s *Scorer) Score(input string) model.ComplexityScore {
	tokens := text.Tokenize(input)
	sentences := text.Sentences(input)

	unique := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		unique[tok] = true
	}

	score := model.ComplexityScore{
		UniqueWords:   len(unique),
		SentenceCount: len(sentences),
	}
	if len(tokens) == 0 {
		return score
	}

	score.Vocabulary = s.vocabularyDiversity(tokens, len(unique))
	score.Sentence = s.sentenceComplexity(sentences)
	score.Density = s.conceptDensity(tokens)
	score.Emotional = s.emotionalComplexity(input, tokens)
	score.Overall = clamp01(vocabularyWeight*score.Vocabulary +
		sentenceWeight*score.Sentence +
		densityWeight*score.Density +
		emotionalWeight*score.Emotional)
	return score
}

// vocabularyDiversity blends type/token ratio (60%), sophisticated
// word share (30%) and inverse common-word share (10%), doubled.
func (s *Scorer) vocabularyDiversity(tokens []string, unique int) float64 {
	total := float64(len(tokens))
	ttr := float64(unique) / total

	sophisticated := 0
	common := 0
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) > 8 || complexWords[tok] {
			sophisticated++
		}
		if commonWords[tok] {
			common++
		}
	}

	v := ttr*0.6 + (float64(sophisticated)/total)*0.3 + (1-float64(common)/total)*0.1
	return clamp01(v * 2)
}

// sentenceComplexity averages a per-sentence blend of length bucket,
// punctuation density and subordinate-clause markers.
func (s *Scorer) sentenceComplexity(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}

	sum := 0.0
	for _, sentence := range sentences {
		words := text.Tokenize(sentence)

		var lengthScore float64
		switch n := len(words); {
		case n <= 10:
			lengthScore = 0.2
		case n <= 20:
			lengthScore = 0.5
		case n <= 30:
			lengthScore = 0.8
		default:
			lengthScore = 1.0
		}

		commas := float64(strings.Count(sentence, ","))
		semis := float64(strings.Count(sentence, ";"))
		colons := float64(strings.Count(sentence, ":"))
		punctScore := clamp01(commas*0.15 + semis*0.25 + colons*0.2)

		clauses := 0
		for _, w := range words {
			if clauseMarkers[w] {
				clauses++
			}
		}
		clauseScore := clamp01(float64(clauses) * 0.25)

		sum += 0.5*lengthScore + 0.3*punctScore + 0.2*clauseScore
	}
	return clamp01(sum / float64(len(sentences)))
}

// conceptDensity weights the token fractions matching the abstract,
// technical, action and descriptive heuristics and triples the blend.
func (s *Scorer) conceptDensity(tokens []string) float64 {
	total := float64(len(tokens))
	var abstract, technical, action, descriptive float64
	for _, tok := range tokens {
		if matches(tok, abstractWords, abstractSuffixes) {
			abstract++
		}
		if matches(tok, technicalWords, technicalSuffixes) {
			technical++
		}
		if matches(tok, actionWords, actionSuffixes) {
			action++
		}
		if matches(tok, descriptiveWords, descriptiveSuffixes) {
			descriptive++
		}
	}

	d := (abstract/total)*0.4 + (technical/total)*0.3 + (action/total)*0.2 + (descriptive/total)*0.1
	return clamp01(d * 3)
}

// emotionalComplexity blends simple and layered emotion-word density,
// intensifier density and a nuance bonus from contrast markers.
func (s *Scorer) emotionalComplexity(input string, tokens []string) float64 {
	total := float64(len(tokens))
	var simple, complexCount, intensifiers float64
	nuance := 0
	for _, tok := range tokens {
		if simpleEmotionWords[tok] {
			simple++
		}
		if complexEmotionWords[tok] {
			complexCount++
		}
		if intensifierWords[tok] {
			intensifiers++
		}
		if nuanceTokens[tok] {
			nuance++
		}
	}
	lower := strings.ToLower(input)
	for _, phrase := range nuancePhrases {
		nuance += strings.Count(lower, phrase)
	}
	nuanceBonus := clamp01(float64(nuance) * 0.2)

	e := (simple/total)*0.25 + (complexCount/total)*0.4 + (intensifiers/total)*0.15 + nuanceBonus*0.2
	return clamp01(e * 4)
}

// matches reports whether a token is in the word list or carries one
// of the suffixes, with a length guard so suffixes never swallow the
// whole word.
func matches(tok string, words map[string]bool, suffixes []string) bool {
	if words[tok] {
		return true
	}
	n := utf8.RuneCountInString(tok)
	for _, suffix := range suffixes {
		if n >= len(suffix)+3 && strings.HasSuffix(tok, suffix) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
