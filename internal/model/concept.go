package model

// Category classifies a concept into one of seven fixed semantic groups.
type Category int

const (
	CategoryEmotion Category = iota
	CategoryTime
	CategoryPeople
	CategoryPlaces
	CategoryActions
	CategoryAbstract
	CategoryObjects

	// CategoryCount is the number of concept categories.
	CategoryCount = 7
)

var categoryNames = [CategoryCount]string{
	"emotion", "time", "people", "places", "actions", "abstract", "objects",
}

func (c Category) String() string {
	if c < 0 || int(c) >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// MarshalText renders the category as its lowercase name in JSON output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a lowercase category name.
func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	*c = CategoryObjects
	return nil
}

// Categories lists all categories in declaration order.
func Categories() [CategoryCount]Category {
	return [CategoryCount]Category{
		CategoryEmotion, CategoryTime, CategoryPeople, CategoryPlaces,
		CategoryActions, CategoryAbstract, CategoryObjects,
	}
}

// Concept is a distinct non-stopword token extracted from the input,
// weighted and categorized. Immutable after extraction.
type Concept struct {
	Word        string   `json:"word"`
	Category    Category `json:"category"`
	Relevance   float64  `json:"relevance"` // [0,1]
	Frequency   int      `json:"frequency"`
	Positions   []int    `json:"positions"`             // token indices of each occurrence
	Connections []string `json:"connections,omitempty"` // co-occurring concept words, at most 10
}
