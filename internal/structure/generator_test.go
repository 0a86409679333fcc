package structure

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tkondra/constella/internal/model"
)

func testConcepts(n int) []model.Concept {
	concepts := make([]model.Concept, n)
	for i := 0; i < n; i++ {
		concepts[i] = model.Concept{
			Word:      fmt.Sprintf("word%02d", i),
			Category:  model.Category(i % model.CategoryCount),
			Relevance: 1 - float64(i)*0.01,
			Frequency: 2,
		}
	}
	return concepts
}

func strategyFor(nodes int) model.ScalingStrategy {
	return model.ScalingStrategy{Tier: model.TierSmallStandard, NodeCount: nodes}
}

func TestGenerator_Generate_ExactBudget(t *testing.T) {
	gen := NewGenerator()

	cases := []struct {
		budget   int
		concepts int
	}{
		{8, 0},
		{50, 5},
		{10, 30},
		{3, 10},
		{700, 50},
	}

	for _, tc := range cases {
		nodes, _ := gen.Generate(testConcepts(tc.concepts), model.EmotionResult{Confidence: 0.9, Dominant: model.EmotionJoy},
			model.SemanticGraph{}, strategyFor(tc.budget), 42)
		if len(nodes) != tc.budget {
			t.Errorf("Expected exactly %d nodes with %d concepts, got %d",
				tc.budget, tc.concepts, len(nodes))
		}
	}
}

func TestGenerator_Generate_EmotionNodeGate(t *testing.T) {
	gen := NewGenerator()
	concepts := testConcepts(5)
	strategy := strategyFor(20)

	countEmotion := func(nodes []model.Node) int {
		n := 0
		for _, node := range nodes {
			if node.Type == model.NodeEmotion {
				n++
			}
		}
		return n
	}

	confident := model.EmotionResult{Dominant: model.EmotionSadness, Confidence: 0.5, Intensity: 0.6}
	nodes, _ := gen.Generate(concepts, confident, model.SemanticGraph{}, strategy, 1)
	if countEmotion(nodes) != 1 {
		t.Errorf("Expected one emotion node at confidence 0.5, got %d", countEmotion(nodes))
	}
	for _, n := range nodes {
		if n.Type == model.NodeEmotion {
			if n.ID != "emotion_sadness" {
				t.Errorf("Expected id emotion_sadness, got %s", n.ID)
			}
			if n.Importance != 0.9 {
				t.Errorf("Expected emotion node importance 0.9, got %f", n.Importance)
			}
			if n.Data.Emotion == nil || *n.Data.Emotion != model.EmotionSadness {
				t.Errorf("Expected emotion payload sadness, got %v", n.Data.Emotion)
			}
		}
	}

	vague := model.EmotionResult{Dominant: model.EmotionSadness, Confidence: 0.3}
	nodes, _ = gen.Generate(concepts, vague, model.SemanticGraph{}, strategy, 1)
	if countEmotion(nodes) != 0 {
		t.Errorf("Expected no emotion node at confidence 0.3, got %d", countEmotion(nodes))
	}
}

func TestGenerator_Generate_ImportanceTaper(t *testing.T) {
	gen := NewGenerator()

	// Budget 20 allocates 6 primary and 8 secondary; no emotion node.
	nodes, _ := gen.Generate(testConcepts(30), model.EmotionResult{}, model.SemanticGraph{}, strategyFor(20), 7)

	if nodes[0].Importance != 1.0 {
		t.Errorf("Expected first primary importance 1.0, got %f", nodes[0].Importance)
	}
	if math.Abs(nodes[5].Importance-0.7) > 1e-9 {
		t.Errorf("Expected last primary importance 0.7, got %f", nodes[5].Importance)
	}
	for i := 1; i < 6; i++ {
		if nodes[i].Importance > nodes[i-1].Importance {
			t.Errorf("Expected non-increasing primary importance at %d", i)
		}
	}
	if math.Abs(nodes[6].Importance-0.7) > 1e-9 {
		t.Errorf("Expected first secondary importance 0.7, got %f", nodes[6].Importance)
	}
	if math.Abs(nodes[13].Importance-0.5) > 1e-9 {
		t.Errorf("Expected last secondary importance 0.5, got %f", nodes[13].Importance)
	}
	if nodes[0].ID != "concept_word00" {
		t.Errorf("Expected first node concept_word00, got %s", nodes[0].ID)
	}
}

func TestGenerator_Generate_SyntheticProperties(t *testing.T) {
	gen := NewGenerator()

	nodes, _ := gen.Generate(testConcepts(3), model.EmotionResult{}, model.SemanticGraph{}, strategyFor(30), 99)

	synthetic := 0
	for _, n := range nodes {
		if !n.Synthetic {
			continue
		}
		synthetic++
		if n.Type != model.NodeSynthetic {
			t.Errorf("Expected synthetic type, got %s", n.Type)
		}
		if !strings.HasPrefix(n.ID, "synthetic_") {
			t.Errorf("Expected synthetic id prefix, got %s", n.ID)
		}
		if n.Importance < 0.2 || n.Importance > 0.5 {
			t.Errorf("Expected synthetic importance in [0.2,0.5], got %f", n.Importance)
		}
		if n.Activation < 0.1 || n.Activation > 0.4 {
			t.Errorf("Expected synthetic activation in [0.1,0.4], got %f", n.Activation)
		}
		if n.Data.Layer != 2 {
			t.Errorf("Expected synthetic nodes on outer layer, got %d", n.Data.Layer)
		}
	}
	if synthetic != 27 {
		t.Errorf("Expected 27 synthetic nodes, got %d", synthetic)
	}
}

func TestGenerator_Generate_NodeTypesByCategory(t *testing.T) {
	gen := NewGenerator()
	concepts := []model.Concept{
		{Word: "morning", Category: model.CategoryTime, Relevance: 0.9, Frequency: 2},
		{Word: "mother", Category: model.CategoryPeople, Relevance: 0.8, Frequency: 2},
		{Word: "stone", Category: model.CategoryObjects, Relevance: 0.7, Frequency: 2},
	}

	nodes, _ := gen.Generate(concepts, model.EmotionResult{}, model.SemanticGraph{}, strategyFor(8), 5)

	types := make(map[string]model.NodeType)
	for _, n := range nodes {
		if n.Data.Concept != "" {
			types[n.Data.Concept] = n.Type
		}
	}
	if types["morning"] != model.NodeTemporal {
		t.Errorf("Expected temporal node for time concept, got %s", types["morning"])
	}
	if types["mother"] != model.NodeSocial {
		t.Errorf("Expected social node for people concept, got %s", types["mother"])
	}
	if types["stone"] != model.NodeConcept {
		t.Errorf("Expected concept node for object concept, got %s", types["stone"])
	}
}

func TestGenerator_Generate_ConnectionsRequireBothEndpoints(t *testing.T) {
	gen := NewGenerator()
	concepts := testConcepts(10)
	graph := model.SemanticGraph{
		Edges: []model.GraphEdge{
			{Source: "word00", Target: "word01", Weight: 0.9, Kind: model.RelationSemantic},
			{Source: "word00", Target: "word99", Weight: 0.8, Kind: model.RelationSemantic},
			{Source: "word02", Target: "word03", Weight: 0.2, Kind: model.RelationContextual},
		},
	}

	nodes, conns := gen.Generate(concepts, model.EmotionResult{}, graph, strategyFor(20), 11)

	ids := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		ids[n.ID] = true
	}
	for _, c := range conns {
		if !ids[c.Source] || !ids[c.Target] {
			t.Errorf("Connection %s references missing node: %s -> %s", c.ID, c.Source, c.Target)
		}
	}

	if len(conns) != 2 {
		t.Fatalf("Expected 2 connections (edge to absent word99 dropped), got %d", len(conns))
	}
	for _, c := range conns {
		if c.Flow != c.Weight {
			t.Errorf("Expected flow to mirror weight, got %f vs %f", c.Flow, c.Weight)
		}
		wantActive := c.Weight > 0.3
		if c.Active != wantActive {
			t.Errorf("Expected active=%v at weight %f", wantActive, c.Weight)
		}
	}
}

func TestGenerator_Generate_DeterministicForSeed(t *testing.T) {
	gen := NewGenerator()
	concepts := testConcepts(5)
	emo := model.EmotionResult{Dominant: model.EmotionJoy, Confidence: 0.6, Intensity: 0.4}
	strategy := strategyFor(40)

	nodesA, connsA := gen.Generate(concepts, emo, model.SemanticGraph{}, strategy, 1234)
	nodesB, connsB := gen.Generate(concepts, emo, model.SemanticGraph{}, strategy, 1234)

	if !reflect.DeepEqual(nodesA, nodesB) {
		t.Error("Expected identical nodes for identical seed")
	}
	if !reflect.DeepEqual(connsA, connsB) {
		t.Error("Expected identical connections for identical seed")
	}

	nodesC, _ := gen.Generate(concepts, emo, model.SemanticGraph{}, strategy, 5678)
	if reflect.DeepEqual(nodesA, nodesC) {
		t.Error("Expected different synthetic randomization for different seed")
	}
}

func TestGenerator_Generate_ZeroBudget(t *testing.T) {
	gen := NewGenerator()

	nodes, conns := gen.Generate(testConcepts(5), model.EmotionResult{}, model.SemanticGraph{}, strategyFor(0), 1)

	if nodes != nil || conns != nil {
		t.Errorf("Expected no output for zero budget, got %d nodes, %d connections",
			len(nodes), len(conns))
	}
}

func TestGenerator_Generate_ActivationsBounded(t *testing.T) {
	gen := NewGenerator()
	emo := model.EmotionResult{Dominant: model.EmotionFear, Confidence: 0.8, Intensity: 1.0}

	nodes, _ := gen.Generate(testConcepts(20), emo, model.SemanticGraph{}, strategyFor(60), 3)

	for _, n := range nodes {
		if n.Activation < 0 || n.Activation > 1 {
			t.Errorf("Activation out of [0,1] on %s: %f", n.ID, n.Activation)
		}
		if n.TargetActivation < 0 || n.TargetActivation > 1 {
			t.Errorf("Target activation out of [0,1] on %s: %f", n.ID, n.TargetActivation)
		}
		if n.Importance < 0 || n.Importance > 1 {
			t.Errorf("Importance out of [0,1] on %s: %f", n.ID, n.Importance)
		}
		if n.Size <= 0 {
			t.Errorf("Expected positive size on %s, got %f", n.ID, n.Size)
		}
		if n.Color == "" {
			t.Errorf("Expected color assigned on %s", n.ID)
		}
	}
}
