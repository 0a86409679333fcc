package emotion

import (
	"math"
	"testing"

	"github.com/tkondra/constella/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScorer_Score_SingleJoyWord(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("happy")

	// One emotional token, base intensity 0.8, no markers.
	if !almostEqual(result.Vector.Joy, 0.8) {
		t.Errorf("Expected joy 0.8, got %f", result.Vector.Joy)
	}
	if result.Dominant != model.EmotionJoy {
		t.Errorf("Expected dominant joy, got %s", result.Dominant)
	}
	if !almostEqual(result.Confidence, 1.0) {
		t.Errorf("Expected confidence 1.0 for a single emotion, got %f", result.Confidence)
	}
	if !almostEqual(result.Valence, 0.8) {
		t.Errorf("Expected valence 0.8, got %f", result.Valence)
	}
	if !almostEqual(result.Arousal, 0.4) {
		t.Errorf("Expected arousal 0.4, got %f", result.Arousal)
	}
	if !almostEqual(result.Intensity, 0.8) {
		t.Errorf("Expected intensity 0.8, got %f", result.Intensity)
	}
	if result.EmotionalTokens != 1 {
		t.Errorf("Expected 1 emotional token, got %d", result.EmotionalTokens)
	}
}

func TestScorer_Score_NegationLowersJoy(t *testing.T) {
	scorer := NewScorer()

	plain := scorer.Score("I am happy today")
	negated := scorer.Score("I am not happy today")

	if negated.Vector.Joy >= plain.Vector.Joy {
		t.Errorf("Expected negated joy (%f) below plain joy (%f)",
			negated.Vector.Joy, plain.Vector.Joy)
	}

	// A single negated word contributes -0.4, which floors to zero.
	if negated.Vector.Joy != 0 {
		t.Errorf("Expected negated joy to floor at 0, got %f", negated.Vector.Joy)
	}
}

func TestScorer_Score_ContractionNegation(t *testing.T) {
	scorer := NewScorer()

	// Tokenization collapses "don't" to "dont", which is in the
	// negation set.
	result := scorer.Score("I don't love this")

	if result.Vector.Joy != 0 {
		t.Errorf("Expected contraction to negate joy, got %f", result.Vector.Joy)
	}
}

func TestScorer_Score_IntensifierScales(t *testing.T) {
	scorer := NewScorer()

	plain := scorer.Score("happy")
	boosted := scorer.Score("very happy")
	dimmed := scorer.Score("slightly happy")

	if boosted.Vector.Joy <= plain.Vector.Joy {
		t.Errorf("Expected intensified joy above plain: %f vs %f",
			boosted.Vector.Joy, plain.Vector.Joy)
	}
	// 0.8 * 1.5 = 1.2 exceeds one, so the vector renormalizes to 1.0.
	if !almostEqual(boosted.Vector.Joy, 1.0) {
		t.Errorf("Expected boosted joy normalized to 1.0, got %f", boosted.Vector.Joy)
	}
	if !almostEqual(dimmed.Vector.Joy, 0.4) {
		t.Errorf("Expected diminished joy 0.4, got %f", dimmed.Vector.Joy)
	}
}

func TestScorer_Score_NegatedIntensifier(t *testing.T) {
	scorer := NewScorer()

	// Both markers stay pending until the emotional word consumes
	// them: 0.8 * 1.5 * -0.5 floors to zero.
	result := scorer.Score("not very happy")

	if result.Vector.Joy != 0 {
		t.Errorf("Expected joy 0 for negated intensified word, got %f", result.Vector.Joy)
	}
}

func TestScorer_Score_EmptyInput(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("")

	if result.Vector.Sum() != 0 {
		t.Errorf("Expected zero vector for empty input, got sum %f", result.Vector.Sum())
	}
	if result.Confidence != 0 {
		t.Errorf("Expected confidence 0 for empty input, got %f", result.Confidence)
	}
	if result.Intensity != 0 {
		t.Errorf("Expected intensity 0 for empty input, got %f", result.Intensity)
	}
	if result.EmotionalTokens != 0 {
		t.Errorf("Expected 0 emotional tokens, got %d", result.EmotionalTokens)
	}
}

func TestScorer_Score_NeutralText(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("the chair stood in the corner of the room")

	if result.Vector.Sum() != 0 {
		t.Errorf("Expected zero vector for neutral text, got sum %f", result.Vector.Sum())
	}
	if result.Valence != 0 {
		t.Errorf("Expected valence 0 for neutral text, got %f", result.Valence)
	}
}

func TestScorer_Score_MixedEmotions(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("happy happy happy but also afraid")

	if result.Dominant != model.EmotionJoy {
		t.Errorf("Expected dominant joy, got %s", result.Dominant)
	}
	if result.Vector.Fear <= 0 {
		t.Errorf("Expected some fear, got %f", result.Vector.Fear)
	}
	if result.Confidence <= 0 || result.Confidence >= 1 {
		t.Errorf("Expected confidence strictly between 0 and 1, got %f", result.Confidence)
	}
}

func TestScorer_Score_NegativeValence(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("sad angry afraid")

	if result.Valence >= 0 {
		t.Errorf("Expected negative valence, got %f", result.Valence)
	}
	if result.Arousal <= 0 {
		t.Errorf("Expected positive arousal, got %f", result.Arousal)
	}
}

func TestScorer_Score_PositiveEmojiInfluence(t *testing.T) {
	scorer := NewScorer()

	// No lexicon words; the emoji alone should nudge joy and
	// anticipation.
	result := scorer.Score("meeting at noon \U0001F60A")

	if !almostEqual(result.Vector.Joy, 0.6*0.3) {
		t.Errorf("Expected joy 0.18 from emoji influence, got %f", result.Vector.Joy)
	}
	if !almostEqual(result.Vector.Anticipation, 0.6*0.2) {
		t.Errorf("Expected anticipation 0.12 from emoji influence, got %f", result.Vector.Anticipation)
	}
	if result.Valence <= 0 {
		t.Errorf("Expected positive valence with positive emoji, got %f", result.Valence)
	}
}

func TestScorer_Score_NegativeEmojiInfluence(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("report due tomorrow \U0001F622")

	if result.Vector.Sadness <= 0 {
		t.Errorf("Expected sadness from negative emoji, got %f", result.Vector.Sadness)
	}
	if result.Vector.Fear <= 0 {
		t.Errorf("Expected fear from negative emoji, got %f", result.Vector.Fear)
	}
	if result.Vector.Sadness <= result.Vector.Fear {
		t.Errorf("Expected sadness nudge (x0.3) above fear nudge (x0.2): %f vs %f",
			result.Vector.Sadness, result.Vector.Fear)
	}
}

func TestScorer_Score_Deterministic(t *testing.T) {
	scorer := NewScorer()
	input := "I was so happy, then suddenly terrified \U0001F631"

	first := scorer.Score(input)
	second := scorer.Score(input)

	if first != second {
		t.Errorf("Expected identical results for identical input:\n%+v\n%+v", first, second)
	}
}

func TestScorer_Score_AllScoresBounded(t *testing.T) {
	scorer := NewScorer()

	inputs := []string{
		"ecstatic ecstatic extremely ecstatic absolutely thrilled \U0001F389\U0001F389\U0001F389",
		"utterly heartbroken completely devastated \U0001F62D",
		"not never no nothing",
	}

	for _, input := range inputs {
		result := scorer.Score(input)
		for _, e := range model.Emotions() {
			v := result.Vector.Score(e)
			if v < 0 || v > 1 {
				t.Errorf("Score for %s out of [0,1] on %q: %f", e, input, v)
			}
		}
		if result.Valence < -1 || result.Valence > 1 {
			t.Errorf("Valence out of [-1,1] on %q: %f", input, result.Valence)
		}
		if result.Arousal < 0 || result.Arousal > 1 {
			t.Errorf("Arousal out of [0,1] on %q: %f", input, result.Arousal)
		}
		if result.Intensity < 0 || result.Intensity > 1 {
			t.Errorf("Intensity out of [0,1] on %q: %f", input, result.Intensity)
		}
	}
}
