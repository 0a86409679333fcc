package model

// RelationKind classifies a semantic graph edge.
type RelationKind int

const (
	RelationSemantic RelationKind = iota
	RelationEmotional
	RelationTemporal
	RelationContextual
)

var relationNames = [...]string{"semantic", "emotional", "temporal", "contextual"}

func (k RelationKind) String() string {
	if k < 0 || int(k) >= len(relationNames) {
		return "unknown"
	}
	return relationNames[k]
}

// MarshalText renders the relation kind as its lowercase name in JSON output.
func (k RelationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a lowercase relation kind name.
func (k *RelationKind) UnmarshalText(text []byte) error {
	for i, name := range relationNames {
		if name == string(text) {
			*k = RelationKind(i)
			return nil
		}
	}
	*k = RelationContextual
	return nil
}

// GraphNode is one concept's entry in the semantic graph.
type GraphNode struct {
	Word        string   `json:"word"`
	Category    Category `json:"category"`
	Importance  float64  `json:"importance"` // relevance × frequency, unbounded above
	Connections []string `json:"connections,omitempty"`
}

// GraphEdge is an undirected weighted edge between two concepts.
// Source sorts lexicographically before Target so each unordered pair
// appears exactly once.
type GraphEdge struct {
	Source string       `json:"source"`
	Target string       `json:"target"`
	Weight float64      `json:"weight"` // [0,1]
	Kind   RelationKind `json:"kind"`
}

// Cluster groups the concepts of one category. Only categories with at
// least two members form a cluster.
type Cluster struct {
	Category  Category `json:"category"`
	Centroid  string   `json:"centroid"` // highest-relevance member
	Members   []string `json:"members"`
	Coherence float64  `json:"coherence"` // inverse-variance blend, (0,1]
}

// SemanticGraph is the weighted co-occurrence graph over extracted
// concepts. Built once per analysis and read-only thereafter.
type SemanticGraph struct {
	Nodes    map[string]GraphNode `json:"nodes"`
	Edges    []GraphEdge          `json:"edges"`
	Clusters []Cluster            `json:"clusters,omitempty"`
}

// Edge returns the edge between two words regardless of argument order,
// or false if none exists.
func (g *SemanticGraph) Edge(a, b string) (GraphEdge, bool) {
	if a > b {
		a, b = b, a
	}
	for _, e := range g.Edges {
		if e.Source == a && e.Target == b {
			return e, true
		}
	}
	return GraphEdge{}, false
}
