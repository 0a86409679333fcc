// Package emotion scores text against a fixed six-dimension emotion
// lexicon. Scoring is a pure function of the input string: the same
// text always produces the same vector, dominant emotion and derived
// valence/arousal/intensity values.
package emotion

import (
	"math"

	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/text"
)

// Scorer evaluates text against the emotion lexicon.
type Scorer struct {
	lexicon      map[string]LexiconEntry
	negations    map[string]bool
	intensifiers map[string]float64
	emoji        map[rune]float64
}

// NewScorer creates a scorer backed by the package's fixed tables.
func NewScorer() *Scorer {
	validateTables()
	return &Scorer{
		lexicon:      lexicon,
		negations:    negations,
		intensifiers: intensifiers,
		emoji:        emojiWeights,
	}
}

// Score runs a single left-to-right pass over the tokenized input and
// returns the normalized emotion result. Negations flip the sign of the
// next emotional word (x-0.5), intensifiers scale it, and both stay
// pending until an emotional word consumes them.
func (s *Scorer) Score(input string) model.EmotionResult {
	tokens := text.Tokenize(input)

	// 1. Accumulate raw contributions per dimension.
	var vec model.EmotionVector
	emotional := 0
	negated := false
	multiplier := 1.0
	for _, tok := range tokens {
		if entry, ok := s.lexicon[tok]; ok {
			contribution := entry.Intensity * multiplier
			if negated {
				contribution *= -0.5
			}
			vec.Add(entry.Emotion, contribution)
			emotional++
			negated = false
			multiplier = 1.0
			continue
		}
		if s.negations[tok] {
			negated = true
			continue
		}
		if m, ok := s.intensifiers[tok]; ok {
			multiplier *= m
		}
	}

	// 2. Average over emotional tokens, not total tokens, so long
	// neutral passages do not wash the signal out.
	if emotional > 0 {
		for _, e := range model.Emotions() {
			vec.Set(e, vec.Score(e)/float64(emotional))
		}
	}

	// 3. Floor negatives at zero, then renormalize only when an
	// intensified run pushed a dimension past one.
	maxScore := 0.0
	for _, e := range model.Emotions() {
		if v := vec.Score(e); v < 0 {
			vec.Set(e, 0)
		} else if v > maxScore {
			maxScore = v
		}
	}
	if maxScore > 1 {
		for _, e := range model.Emotions() {
			vec.Set(e, vec.Score(e)/maxScore)
		}
	}

	// 4. Nudge the vector by emoji influence from the raw input; the
	// tokenizer already stripped symbols so this needs the unprocessed
	// string.
	s.applyInfluence(&vec, s.emojiInfluence(input))

	// 5. Dominant dimension and how far it leads the runner-up.
	dominant, _ := vec.Dominant()
	top, second := topTwo(vec)
	confidence := 0.0
	if top > 0 {
		confidence = (top - second) / top
	}

	return model.EmotionResult{
		Vector:          vec,
		Dominant:        dominant,
		Confidence:      confidence,
		Valence:         valence(vec),
		Arousal:         arousal(vec),
		Intensity:       math.Min(1, (vec.Sum()+2*top)/3),
		EmotionalTokens: emotional,
	}
}

// emojiInfluence sums the weights of every known emoji rune in the raw
// input and clamps the total to [-1,1].
func (s *Scorer) emojiInfluence(input string) float64 {
	total := 0.0
	for _, r := range input {
		total += s.emoji[r]
	}
	return clamp(total, -1, 1)
}

// applyInfluence nudges joy/anticipation upward for positive influence
// and sadness/fear for negative, each dimension capped at one.
func (s *Scorer) applyInfluence(vec *model.EmotionVector, influence float64) {
	switch {
	case influence > 0:
		vec.Set(model.EmotionJoy, math.Min(1, vec.Score(model.EmotionJoy)+influence*0.3))
		vec.Set(model.EmotionAnticipation, math.Min(1, vec.Score(model.EmotionAnticipation)+influence*0.2))
	case influence < 0:
		vec.Set(model.EmotionSadness, math.Min(1, vec.Score(model.EmotionSadness)-influence*0.3))
		vec.Set(model.EmotionFear, math.Min(1, vec.Score(model.EmotionFear)-influence*0.2))
	}
}

// valence collapses the vector to a signed pleasantness score in
// [-1,1]. Surprise counts half positive; the denominator floors at one
// so weak overall signals stay near zero.
func valence(vec model.EmotionVector) float64 {
	positive := vec.Joy + vec.Anticipation + 0.5*vec.Surprise
	negative := vec.Sadness + vec.Anger + vec.Fear
	return clamp((positive-negative)/math.Max(positive+negative, 1), -1, 1)
}

// arousal measures activation in [0,1]: anger, fear and surprise count
// fully, joy and anticipation half, sadness not at all.
func arousal(vec model.EmotionVector) float64 {
	high := vec.Anger + vec.Fear + vec.Surprise + 0.5*(vec.Joy+vec.Anticipation)
	return clamp(high/math.Max(vec.Sum(), 1), 0, 1)
}

func topTwo(vec model.EmotionVector) (top, second float64) {
	for _, e := range model.Emotions() {
		v := vec.Score(e)
		if v > top {
			second = top
			top = v
		} else if v > second {
			second = v
		}
	}
	return top, second
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
