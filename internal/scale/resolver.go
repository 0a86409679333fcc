// Package scale maps a word count plus complexity and emotional
// intensity onto a bounded node and particle budget via a fixed tier
// table. Pure arithmetic: same inputs, same strategy.
package scale

import (
	"math"

	"github.com/tkondra/constella/internal/model"
)

// Node and particle budget bounds.
const (
	MinNodes     = 8
	MaxNodes     = 700
	MinParticles = 500
	MaxParticles = 35000
)

// Resolver turns analysis measurements into a scaling strategy.
type Resolver struct{}

// NewResolver creates a resolver over the fixed tier table.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve computes the node count, particle budget and compression
// level for a word count. Complexity and intensity are expected in
// [0,1]; out-of-range values are clamped before use.
func (r *Resolver) Resolve(wordCount int, complexity, intensity float64) model.ScalingStrategy {
	complexity = clamp(complexity, 0, 1)
	intensity = clamp(intensity, 0, 1)
	spec := lookupTier(wordCount)

	// 1. Node count: logarithmic base, scaled by complexity and
	// emotion bonuses and the tier multiplier, clamped hard.
	base := math.Log2(float64(wordCount)+1) * 8
	complexityBonus := 1 + complexity*1.5
	emotionalBonus := 0.5 + intensity*1.5
	raw := base * complexityBonus * emotionalBonus * spec.multiplier
	nodeCount := int(math.Floor(clamp(raw, MinNodes, MaxNodes)))

	// 2. Particle budget: per-node allowance shrinks as the node count
	// grows, then the tier's particle multiplier and hard clamp apply.
	perNode := particlesPerNode(nodeCount)
	particles := int(clamp(float64(nodeCount)*perNode*spec.particleMultiplier, MinParticles, MaxParticles))

	return model.ScalingStrategy{
		Tier:             spec.tier,
		Multiplier:       spec.multiplier,
		NodeCount:        nodeCount,
		ParticleCount:    particles,
		CompressionLevel: compressionLevel(wordCount, nodeCount),
	}
}

// particlesPerNode tiers the per-node particle allowance by the
// resulting node count.
func particlesPerNode(nodeCount int) float64 {
	switch {
	case nodeCount <= 100:
		return 75
	case nodeCount <= 300:
		return 60
	case nodeCount <= 500:
		return 50
	default:
		return 40
	}
}

// compressionLevel measures how far the node count falls short of the
// text: short texts compare against a fixed budget of 50, longer texts
// against half their word count capped at 100.
func compressionLevel(wordCount, nodeCount int) float64 {
	if wordCount <= 50 {
		return math.Max(0, (50-float64(nodeCount))/50)
	}
	reference := math.Min(100, float64(wordCount)*0.5)
	return clamp(1-float64(nodeCount)/reference, 0, 1)
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
