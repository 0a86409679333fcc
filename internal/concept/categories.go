package concept

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tkondra/constella/internal/model"
)

// categoryImportance weights relevance per category. Emotional and
// abstract vocabulary matters more to the output structure than
// concrete objects.
var categoryImportance = map[model.Category]float64{
	model.CategoryEmotion:  1.5,
	model.CategoryAbstract: 1.3,
	model.CategoryPeople:   1.2,
	model.CategoryActions:  1.1,
	model.CategoryTime:     1.0,
	model.CategoryPlaces:   0.9,
	model.CategoryObjects:  0.8,
}

// categoryKeywords lists the fixed vocabulary per category. A word in
// two lists resolves to the earlier category in canonical order.
var categoryKeywords = map[model.Category][]string{
	model.CategoryEmotion: {
		"happy", "happiness", "sad", "sadness", "angry", "anger", "love",
		"hate", "fear", "joy", "hope", "excited", "excitement", "anxious",
		"anxiety", "proud", "pride", "lonely", "grief", "delight", "calm",
		"worry", "passion", "mood", "feeling", "feelings", "emotion",
		"emotions", "heart", "despair", "bliss", "rage", "terror",
	},
	model.CategoryTime: {
		"today", "tomorrow", "yesterday", "now", "later", "soon",
		"morning", "evening", "night", "noon", "midnight", "day", "days",
		"week", "weeks", "month", "months", "year", "years", "hour",
		"hours", "minute", "minutes", "moment", "moments", "past",
		"present", "future", "always", "forever", "before", "after",
		"season", "spring", "summer", "autumn", "winter", "decade",
		"century", "era", "history", "ancient", "modern", "early", "late",
	},
	model.CategoryPeople: {
		"person", "people", "man", "woman", "men", "women", "child",
		"children", "family", "friend", "friends", "mother", "father",
		"parent", "parents", "brother", "sister", "son", "daughter",
		"baby", "boy", "girl", "king", "queen", "leader", "teacher",
		"student", "doctor", "artist", "stranger", "neighbor",
		"community", "team", "crowd", "everyone", "everybody", "someone",
		"somebody", "human", "humans", "citizen", "citizens",
	},
	model.CategoryPlaces: {
		"home", "house", "city", "town", "village", "country", "world",
		"school", "office", "street", "road", "park", "garden", "forest",
		"mountain", "mountains", "river", "ocean", "sea", "beach",
		"island", "desert", "valley", "field", "building", "room",
		"kitchen", "church", "market", "station", "airport", "hospital",
		"library", "restaurant", "earth", "sky", "space", "land",
		"place", "places", "horizon",
	},
	model.CategoryActions: {
		"run", "walk", "jump", "move", "play", "work", "create", "make",
		"take", "give", "bring", "carry", "push", "pull", "throw",
		"catch", "climb", "swim", "fly", "drive", "travel", "dance",
		"sing", "write", "read", "speak", "talk", "listen", "watch",
		"look", "search", "find", "discover", "explore", "fight",
		"defend", "escape", "chase", "eat", "drink", "sleep", "wake",
		"grow", "change", "transform", "journey",
	},
	model.CategoryAbstract: {
		"idea", "ideas", "thought", "thoughts", "concept", "theory",
		"truth", "knowledge", "wisdom", "belief", "faith", "freedom",
		"justice", "peace", "power", "strength", "courage", "beauty",
		"nature", "mind", "soul", "spirit", "memory", "memories",
		"dream", "dreams", "meaning", "purpose", "reason", "logic",
		"philosophy", "science", "art", "music", "culture", "society",
		"system", "process", "pattern", "structure", "balance",
		"harmony", "chaos", "order", "infinity", "universe",
		"consciousness", "imagination", "creativity", "possibility",
		"potential", "essence", "existence", "reality", "silence",
	},
	model.CategoryObjects: {
		"book", "books", "table", "chair", "door", "window", "car",
		"phone", "computer", "machine", "tool", "tools", "box", "bag",
		"cup", "glass", "plate", "paper", "pen", "clock", "lamp",
		"mirror", "picture", "painting", "stone", "rock", "tree",
		"trees", "flower", "flowers", "water", "fire", "light",
		"shadow", "money", "gold", "silver", "food", "bread", "fruit",
		"key", "wheel", "engine", "screen", "device", "star", "stars",
		"moon", "sun", "rain", "snow", "wind",
	},
}

// keywordCategory is the compiled word -> category index, built once
// at package init in canonical category order.
var keywordCategory = func() map[string]model.Category {
	index := make(map[string]model.Category, 256)
	for _, cat := range model.Categories() {
		for _, w := range categoryKeywords[cat] {
			if _, exists := index[w]; !exists {
				index[w] = cat
			}
		}
	}
	return index
}()

// categoryPatterns catch shapes the keyword lists cannot: clock times,
// years, ordinals and settlement-style endings.
var categoryPatterns = []struct {
	re       *regexp.Regexp
	category model.Category
}{
	{regexp.MustCompile(`^\d{1,4}(am|pm)$`), model.CategoryTime},
	{regexp.MustCompile(`^(1\d{3}|2\d{3})s?$`), model.CategoryTime},
	{regexp.MustCompile(`^\d+(st|nd|rd|th)$`), model.CategoryTime},
	{regexp.MustCompile(`^[a-z]{3,}(land|ville|shire|town)$`), model.CategoryPlaces},
}

// suffixRules run after keywords and patterns, in order. The guard
// keeps two-letter suffixes from swallowing short words.
var suffixRules = []struct {
	suffix   string
	minLen   int
	category model.Category
}{
	{"ing", 6, model.CategoryActions},
	{"ed", 5, model.CategoryActions},
	{"ness", 7, model.CategoryAbstract},
	{"ity", 6, model.CategoryAbstract},
	{"ism", 6, model.CategoryAbstract},
	{"er", 5, model.CategoryPeople},
	{"or", 5, model.CategoryPeople},
	{"ian", 6, model.CategoryPeople},
}

// classify assigns exactly one category: keyword match first, then
// pattern match, then suffix heuristics, then the objects default.
func classify(word string) model.Category {
	if cat, ok := keywordCategory[word]; ok {
		return cat
	}
	for _, p := range categoryPatterns {
		if p.re.MatchString(word) {
			return p.category
		}
	}
	for _, rule := range suffixRules {
		if utf8.RuneCountInString(word) >= rule.minLen && strings.HasSuffix(word, rule.suffix) {
			return rule.category
		}
	}
	return model.CategoryObjects
}
