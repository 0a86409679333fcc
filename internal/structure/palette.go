package structure

import "github.com/tkondra/constella/internal/model"

// Fixed palette. Colors are plain hex strings; the rendering
// collaborator owns any further styling.
var categoryColors = map[model.Category]string{
	model.CategoryEmotion:  "#e76f51",
	model.CategoryTime:     "#457b9d",
	model.CategoryPeople:   "#f4a261",
	model.CategoryPlaces:   "#2a9d8f",
	model.CategoryActions:  "#e9c46a",
	model.CategoryAbstract: "#9b5de5",
	model.CategoryObjects:  "#8d99ae",
}

var emotionColors = map[model.Emotion]string{
	model.EmotionJoy:          "#f6c453",
	model.EmotionSadness:      "#5b8cb8",
	model.EmotionAnger:        "#d64550",
	model.EmotionFear:         "#7b5ea7",
	model.EmotionSurprise:     "#3fb8af",
	model.EmotionAnticipation: "#e8871e",
}

const syntheticColor = "#6c757d"

var relationColors = map[model.RelationKind]string{
	model.RelationSemantic:   "#a8dadc",
	model.RelationEmotional:  "#ffadad",
	model.RelationTemporal:   "#bdb2ff",
	model.RelationContextual: "#d3d3d3",
}
