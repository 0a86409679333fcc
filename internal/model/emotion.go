package model

// Emotion identifies one of the six scored emotion dimensions.
type Emotion int

const (
	EmotionJoy Emotion = iota
	EmotionSadness
	EmotionAnger
	EmotionFear
	EmotionSurprise
	EmotionAnticipation

	// EmotionCount is the number of scored dimensions.
	EmotionCount = 6
)

var emotionNames = [EmotionCount]string{
	"joy", "sadness", "anger", "fear", "surprise", "anticipation",
}

func (e Emotion) String() string {
	if e < 0 || int(e) >= EmotionCount {
		return "unknown"
	}
	return emotionNames[e]
}

// MarshalText renders the emotion as its lowercase name in JSON output.
func (e Emotion) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses a lowercase emotion name.
func (e *Emotion) UnmarshalText(text []byte) error {
	for i, name := range emotionNames {
		if name == string(text) {
			*e = Emotion(i)
			return nil
		}
	}
	*e = EmotionJoy
	return nil
}

// Emotions lists all dimensions in scoring order.
func Emotions() [EmotionCount]Emotion {
	return [EmotionCount]Emotion{
		EmotionJoy, EmotionSadness, EmotionAnger,
		EmotionFear, EmotionSurprise, EmotionAnticipation,
	}
}

// EmotionVector holds one normalized score per emotion dimension.
// Every score lies in [0,1] after scoring.
type EmotionVector struct {
	Joy          float64 `json:"joy"`
	Sadness      float64 `json:"sadness"`
	Anger        float64 `json:"anger"`
	Fear         float64 `json:"fear"`
	Surprise     float64 `json:"surprise"`
	Anticipation float64 `json:"anticipation"`
}

// Score returns the value of a single dimension.
func (v EmotionVector) Score(e Emotion) float64 {
	switch e {
	case EmotionJoy:
		return v.Joy
	case EmotionSadness:
		return v.Sadness
	case EmotionAnger:
		return v.Anger
	case EmotionFear:
		return v.Fear
	case EmotionSurprise:
		return v.Surprise
	case EmotionAnticipation:
		return v.Anticipation
	default:
		return 0
	}
}

// Add accumulates delta into a single dimension.
func (v *EmotionVector) Add(e Emotion, delta float64) {
	switch e {
	case EmotionJoy:
		v.Joy += delta
	case EmotionSadness:
		v.Sadness += delta
	case EmotionAnger:
		v.Anger += delta
	case EmotionFear:
		v.Fear += delta
	case EmotionSurprise:
		v.Surprise += delta
	case EmotionAnticipation:
		v.Anticipation += delta
	}
}

// Set overwrites a single dimension.
func (v *EmotionVector) Set(e Emotion, value float64) {
	switch e {
	case EmotionJoy:
		v.Joy = value
	case EmotionSadness:
		v.Sadness = value
	case EmotionAnger:
		v.Anger = value
	case EmotionFear:
		v.Fear = value
	case EmotionSurprise:
		v.Surprise = value
	case EmotionAnticipation:
		v.Anticipation = value
	}
}

// Sum returns the total of all six scores.
func (v EmotionVector) Sum() float64 {
	return v.Joy + v.Sadness + v.Anger + v.Fear + v.Surprise + v.Anticipation
}

// Dominant returns the highest-scoring dimension and its score.
// Ties resolve to the earlier dimension in scoring order.
func (v EmotionVector) Dominant() (Emotion, float64) {
	best := EmotionJoy
	bestScore := v.Joy
	for _, e := range Emotions() {
		if s := v.Score(e); s > bestScore {
			best = e
			bestScore = s
		}
	}
	return best, bestScore
}

// EmotionResult is the complete output of the emotion scorer.
type EmotionResult struct {
	Vector     EmotionVector `json:"vector"`
	Dominant   Emotion       `json:"dominant"`
	Confidence float64       `json:"confidence"` // gap to runner-up, normalized by the top score
	Valence    float64       `json:"valence"`    // [-1,1], positive minus negative dimensions
	Arousal    float64       `json:"arousal"`    // [0,1], activation level
	Intensity  float64       `json:"intensity"`  // [0,1], drives the scaling resolver

	EmotionalTokens int `json:"emotional_tokens"` // lexicon hits seen during the scan
}
