package model

// Tier identifies one fixed word-count range in the scaling table.
// The ordering follows ascending word-count ranges.
type Tier int

const (
	TierMicroBoost Tier = iota
	TierMicroEnhance
	TierMicroStandard
	TierSmallPlus
	TierSmallStandard
	TierSmallCompress
	TierMediumStandard
	TierMediumCompress
	TierMediumMax
	TierLargeStandard
	TierLargeCompress
	TierLargeHeavy
	TierMassiveStandard
	TierMassiveCompress
	TierMassiveMax
	TierEpicStandard
	TierEpicMaximum

	// TierCount is the number of scaling tiers.
	TierCount = 17
)

var tierNames = [TierCount]string{
	"micro_boost", "micro_enhance", "micro_standard",
	"small_plus", "small_standard", "small_compress",
	"medium_standard", "medium_compress", "medium_max",
	"large_standard", "large_compress", "large_heavy",
	"massive_standard", "massive_compress", "massive_max",
	"epic_standard", "epic_maximum",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= TierCount {
		return "unknown"
	}
	return tierNames[t]
}

// MarshalText renders the tier as its snake_case name in JSON output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a snake_case tier name.
func (t *Tier) UnmarshalText(text []byte) error {
	for i, name := range tierNames {
		if name == string(text) {
			*t = Tier(i)
			return nil
		}
	}
	*t = TierMicroBoost
	return nil
}

// ScalingStrategy is the resolved scaling configuration for one input.
// Computed once by the resolver and treated as immutable by the
// structure generator.
type ScalingStrategy struct {
	Tier             Tier    `json:"tier"`
	Multiplier       float64 `json:"multiplier"`
	NodeCount        int     `json:"node_count"`        // [8,700]
	ParticleCount    int     `json:"particle_count"`    // [500,35000]
	CompressionLevel float64 `json:"compression_level"` // [0,1]
}
