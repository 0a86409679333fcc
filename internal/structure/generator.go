// Package structure turns ranked concepts, the dominant emotion and a
// node budget into concrete visualization nodes and connections, each
// node placed in 3D space. Output is deterministic for a given seed.
package structure

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tkondra/constella/internal/model"
)

// Budget shares per node band. Flooring remainders go to primary.
const (
	primaryShare       = 0.30
	secondaryShare     = 0.40
	tertiaryShare      = 0.20
	environmentalShare = 0.10
)

// activeThreshold marks connections that render as flowing.
const activeThreshold = 0.3

// emotionConfidenceGate is the minimum dominant-emotion confidence
// that earns a dedicated emotion node.
const emotionConfidenceGate = 0.3

// Generator builds the final node and connection lists.
type Generator struct{}

// NewGenerator creates a structure generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces exactly strategy.NodeCount nodes: concept nodes
// from the ranked list, an emotion node when confidence clears the
// gate, and synthetic filler for the rest. Connections map semantic
// graph edges onto node ids and survive only if both endpoints made
// the cut. The seed drives synthetic randomization only.
func (g *Generator) Generate(concepts []model.Concept, emo model.EmotionResult, graph model.SemanticGraph, strategy model.ScalingStrategy, seed uint64) ([]model.Node, []model.Connection) {
	budget := strategy.NodeCount
	if budget <= 0 {
		return nil, nil
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	counts := allocate(budget)
	nodes := make([]model.Node, 0, budget)

	// 1. Primary band: top concepts, importance tapering 1.0 -> 0.7.
	primary := concepts
	if len(primary) > counts.primary {
		primary = primary[:counts.primary]
	}
	for i, c := range primary {
		nodes = append(nodes, conceptNode(c, taper(1.0, 0.7, i, len(primary))))
	}

	// 2. Dedicated emotion node when the dominant emotion is clear.
	if emo.Confidence > emotionConfidenceGate {
		nodes = append(nodes, emotionNode(emo))
	}

	// 3. Secondary band: next slice, importance tapering 0.7 -> 0.5.
	if len(concepts) > len(primary) {
		secondary := concepts[len(primary):]
		if len(secondary) > counts.secondary {
			secondary = secondary[:counts.secondary]
		}
		for i, c := range secondary {
			nodes = append(nodes, conceptNode(c, taper(0.7, 0.5, i, len(secondary))))
		}
	}

	// 4. Synthetic filler up to the budget, then truncate to it
	// exactly; the budget always wins over the concept list.
	for i := 0; len(nodes) < budget; i++ {
		nodes = append(nodes, syntheticNode(i, rng))
	}
	if len(nodes) > budget {
		nodes = nodes[:budget]
	}

	layoutNodes(nodes)
	return nodes, g.connections(graph, nodes)
}

type allocation struct {
	primary       int
	secondary     int
	tertiary      int
	environmental int
}

func allocate(budget int) allocation {
	a := allocation{
		primary:       int(float64(budget) * primaryShare),
		secondary:     int(float64(budget) * secondaryShare),
		tertiary:      int(float64(budget) * tertiaryShare),
		environmental: int(float64(budget) * environmentalShare),
	}
	a.primary += budget - (a.primary + a.secondary + a.tertiary + a.environmental)
	return a
}

// taper interpolates importance linearly from `from` down to `to`
// across a band of n nodes.
func taper(from, to float64, i, n int) float64 {
	if n <= 1 {
		return from
	}
	return from - (from-to)*float64(i)/float64(n-1)
}

func conceptNode(c model.Concept, importance float64) model.Node {
	activation := 0.3 + 0.4*importance
	return model.Node{
		ID:               "concept_" + c.Word,
		Type:             nodeTypeFor(c.Category),
		Activation:       activation,
		TargetActivation: activation,
		Color:            categoryColors[c.Category],
		Size:             0.6 + 0.9*importance,
		Importance:       importance,
		Data: model.NodeData{
			Word:    c.Word,
			Concept: c.Word,
			Layer:   layerFor(c.Category),
		},
	}
}

func emotionNode(emo model.EmotionResult) model.Node {
	dominant := emo.Dominant
	return model.Node{
		ID:               "emotion_" + dominant.String(),
		Type:             model.NodeEmotion,
		Activation:       0.8,
		TargetActivation: 0.9,
		Color:            emotionColors[dominant],
		Size:             math.Min(2.0, 1.2+0.8*emo.Intensity),
		Importance:       0.9,
		Data: model.NodeData{
			Emotion: &dominant,
			Layer:   0,
		},
	}
}

func syntheticNode(i int, rng *rand.Rand) model.Node {
	importance := 0.2 + rng.Float64()*0.3
	activation := 0.1 + rng.Float64()*0.3
	return model.Node{
		ID:               fmt.Sprintf("synthetic_%d", i),
		Type:             model.NodeSynthetic,
		Activation:       activation,
		TargetActivation: activation,
		Color:            syntheticColor,
		Size:             0.3 + 0.4*importance,
		Synthetic:        true,
		Importance:       importance,
		Data:             model.NodeData{Layer: 2},
	}
}

// nodeTypeFor refines the node type for categories with a dedicated
// visual treatment.
func nodeTypeFor(cat model.Category) model.NodeType {
	switch cat {
	case model.CategoryTime:
		return model.NodeTemporal
	case model.CategoryPeople:
		return model.NodeSocial
	default:
		return model.NodeConcept
	}
}

// connections maps graph edges onto generated node ids. Edges whose
// endpoints were truncated away are dropped silently.
func (g *Generator) connections(graph model.SemanticGraph, nodes []model.Node) []model.Connection {
	ids := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if n.Data.Concept != "" {
			ids[n.Data.Concept] = n.ID
		}
	}

	var conns []model.Connection
	for _, e := range graph.Edges {
		source, ok := ids[e.Source]
		if !ok {
			continue
		}
		target, ok := ids[e.Target]
		if !ok {
			continue
		}
		conns = append(conns, model.Connection{
			ID:     fmt.Sprintf("conn_%s_%s", e.Source, e.Target),
			Source: source,
			Target: target,
			Weight: e.Weight,
			Kind:   e.Kind,
			Active: e.Weight > activeThreshold,
			Flow:   e.Weight,
			Color:  relationColors[e.Kind],
		})
	}
	return conns
}
