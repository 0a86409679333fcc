package model

// NodeType classifies a visualization node.
type NodeType int

const (
	NodeConcept NodeType = iota
	NodeEmotion
	NodeSynthetic
	NodeTemporal
	NodeSocial
)

var nodeTypeNames = [...]string{"concept", "emotion", "synthetic", "temporal", "social"}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "unknown"
	}
	return nodeTypeNames[t]
}

// MarshalText renders the node type as its lowercase name in JSON output.
func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a lowercase node type name.
func (t *NodeType) UnmarshalText(text []byte) error {
	for i, name := range nodeTypeNames {
		if name == string(text) {
			*t = NodeType(i)
			return nil
		}
	}
	*t = NodeSynthetic
	return nil
}

// Vec3 is a point in 3D space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NodeData is the payload tying a node back to its source material.
type NodeData struct {
	Word    string   `json:"word,omitempty"`    // source token, empty for synthetic nodes
	Concept string   `json:"concept,omitempty"` // backing concept word, if any
	Emotion *Emotion `json:"emotion,omitempty"` // backing emotion, for the emotion node
	Layer   int      `json:"layer"`             // concentric placement band, 0–2
}

// Node is one visualization unit. The pipeline assigns Position during
// layout and never mutates a node afterwards; activation interpolation
// and pulsing belong to the rendering collaborator.
type Node struct {
	ID               string   `json:"id"`
	Type             NodeType `json:"type"`
	Position         Vec3     `json:"position"`
	Activation       float64  `json:"activation"`        // [0,1]
	TargetActivation float64  `json:"target_activation"` // [0,1]
	Color            string   `json:"color"`
	Size             float64  `json:"size"`
	Synthetic        bool     `json:"synthetic"`
	Importance       float64  `json:"importance"` // [0,1]
	Data             NodeData `json:"data"`
}

// Connection links two nodes, derived from a semantic graph edge. It
// exists only if both endpoints are present in the final node set.
type Connection struct {
	ID     string       `json:"id"`
	Source string       `json:"source"` // node id
	Target string       `json:"target"` // node id
	Weight float64      `json:"weight"` // [0,1]
	Kind   RelationKind `json:"kind"`
	Active bool         `json:"active"` // weight > 0.3
	Flow   float64      `json:"flow"`   // mirrors weight
	Color  string       `json:"color"`
}
