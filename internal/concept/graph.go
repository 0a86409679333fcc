package concept

import (
	"math"

	"github.com/tkondra/constella/internal/model"
)

// BuildGraph constructs the semantic graph from a ranked concept list:
// one node per concept, one undirected edge per connection pair where
// both endpoints are concepts, and one cluster per category with at
// least two members.
func BuildGraph(concepts []model.Concept) model.SemanticGraph {
	graph := model.SemanticGraph{
		Nodes: make(map[string]model.GraphNode, len(concepts)),
	}

	byWord := make(map[string]model.Concept, len(concepts))
	for _, c := range concepts {
		byWord[c.Word] = c
		graph.Nodes[c.Word] = model.GraphNode{
			Word:        c.Word,
			Category:    c.Category,
			Importance:  c.Relevance * float64(c.Frequency),
			Connections: c.Connections,
		}
	}

	// Concepts arrive relevance-sorted, so edge order is deterministic.
	seen := make(map[[2]string]bool)
	for _, c := range concepts {
		for _, neighbor := range c.Connections {
			other, ok := byWord[neighbor]
			if !ok {
				continue
			}
			a, b := c.Word, other.Word
			if a > b {
				a, b = b, a
			}
			pair := [2]string{a, b}
			if seen[pair] {
				continue
			}
			seen[pair] = true
			graph.Edges = append(graph.Edges, model.GraphEdge{
				Source: a,
				Target: b,
				Weight: edgeWeight(c, other),
				Kind:   relationKind(c.Category, other.Category),
			})
		}
	}

	graph.Clusters = buildClusters(concepts)
	return graph
}

// edgeWeight blends endpoint relevance, frequency balance and a
// same-category bonus on top of a base weight, clamped to [0,1].
func edgeWeight(a, b model.Concept) float64 {
	avgRelevance := (a.Relevance + b.Relevance) / 2
	minFreq, maxFreq := float64(a.Frequency), float64(b.Frequency)
	if minFreq > maxFreq {
		minFreq, maxFreq = maxFreq, minFreq
	}
	weight := 0.5*avgRelevance + 0.3*(minFreq/maxFreq) + 0.2
	if a.Category == b.Category {
		weight += 0.3
	}
	return math.Min(1, math.Max(0, weight))
}

// relationKind picks the edge kind by endpoint categories, in priority
// order: emotional, temporal, semantic, contextual.
func relationKind(a, b model.Category) model.RelationKind {
	switch {
	case a == model.CategoryEmotion || b == model.CategoryEmotion:
		return model.RelationEmotional
	case a == model.CategoryTime || b == model.CategoryTime:
		return model.RelationTemporal
	case a == b:
		return model.RelationSemantic
	default:
		return model.RelationContextual
	}
}

// buildClusters groups concepts by category. The centroid is the
// highest-relevance member; coherence averages the inverse variance of
// member relevance and member frequency, so tight clusters score near
// one.
func buildClusters(concepts []model.Concept) []model.Cluster {
	groups := make(map[model.Category][]model.Concept)
	for _, c := range concepts {
		groups[c.Category] = append(groups[c.Category], c)
	}

	var clusters []model.Cluster
	for _, cat := range model.Categories() {
		members := groups[cat]
		if len(members) < 2 {
			continue
		}
		words := make([]string, len(members))
		relevances := make([]float64, len(members))
		frequencies := make([]float64, len(members))
		for i, m := range members {
			words[i] = m.Word
			relevances[i] = m.Relevance
			frequencies[i] = float64(m.Frequency)
		}
		coherence := (inverseVariance(relevances) + inverseVariance(frequencies)) / 2
		clusters = append(clusters, model.Cluster{
			Category:  cat,
			Centroid:  members[0].Word,
			Members:   words,
			Coherence: coherence,
		})
	}
	return clusters
}

// inverseVariance maps spread to (0,1]: identical values give 1, wide
// spreads approach 0.
func inverseVariance(values []float64) float64 {
	if len(values) == 0 {
		return 1
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return 1 / (1 + variance)
}
