package complexity

// commonWords is a compact list of high-frequency English words; a
// text dominated by these scores low on vocabulary diversity.
var commonWords = map[string]bool{
	"the": true, "and": true, "was": true, "were": true, "are": true,
	"has": true, "had": true, "have": true, "not": true, "but": true,
	"for": true, "this": true, "that": true, "with": true, "from": true,
	"they": true, "them": true, "their": true, "there": true,
	"here": true, "then": true, "than": true, "when": true,
	"what": true, "which": true, "would": true, "could": true,
	"should": true, "will": true, "can": true, "all": true, "one": true,
	"two": true, "out": true, "about": true, "into": true, "over": true,
	"some": true, "more": true, "most": true, "other": true,
	"very": true, "just": true, "like": true, "get": true, "got": true,
	"make": true, "made": true, "know": true, "time": true, "people": true,
	"way": true, "day": true, "man": true, "thing": true, "things": true,
	"good": true, "new": true, "old": true, "see": true, "him": true,
	"her": true, "his": true, "she": true, "you": true, "your": true,
	"said": true, "say": true, "went": true, "come": true, "came": true,
}

// complexWords score as sophisticated regardless of length.
var complexWords = map[string]bool{
	"nevertheless": true, "consequently": true, "furthermore": true,
	"nonetheless": true, "paradigm": true, "dichotomy": true,
	"juxtaposition": true, "ephemeral": true, "ubiquitous": true,
	"ambiguous": true, "intricate": true, "nuanced": true,
	"profound": true, "paradox": true, "synthesis": true,
	"hypothesis": true, "phenomenon": true, "epistemology": true,
	"ontology": true, "metaphysical": true, "existential": true,
	"quintessential": true, "idiosyncratic": true, "esoteric": true,
}

// clauseMarkers signal subordinate clauses inside a sentence.
var clauseMarkers = map[string]bool{
	"because": true, "although": true, "though": true, "while": true,
	"since": true, "unless": true, "whereas": true, "whether": true,
	"which": true, "who": true, "whom": true, "whose": true,
	"where": true, "when": true, "after": true, "before": true,
	"until": true,
}

// Density heuristics. A token may match more than one class; each
// class fraction is computed independently.
var abstractWords = map[string]bool{
	"concept": true, "theory": true, "idea": true, "thought": true,
	"notion": true, "principle": true, "essence": true, "meaning": true,
	"truth": true, "knowledge": true, "wisdom": true, "belief": true,
	"consciousness": true, "existence": true, "reality": true,
	"freedom": true, "justice": true, "morality": true, "ethics": true,
	"philosophy": true, "abstraction": true, "infinity": true,
}

var abstractSuffixes = []string{"ness", "ity", "ism", "tion", "sion", "ment", "ance", "ence"}

var technicalWords = map[string]bool{
	"algorithm": true, "quantum": true, "neural": true, "molecular": true,
	"genome": true, "protocol": true, "bandwidth": true, "database": true,
	"encryption": true, "synthesis": true, "catalyst": true,
	"theorem": true, "vector": true, "matrix": true, "frequency": true,
	"amplitude": true, "circuit": true, "processor": true,
	"compiler": true, "kernel": true, "entropy": true, "topology": true,
}

var technicalSuffixes = []string{"ology", "ometry", "ization", "ification", "graphy"}

var actionWords = map[string]bool{
	"run": true, "jump": true, "build": true, "create": true,
	"destroy": true, "move": true, "push": true, "pull": true,
	"throw": true, "catch": true, "climb": true, "fight": true,
	"chase": true, "escape": true, "strike": true, "launch": true,
}

var actionSuffixes = []string{"ing", "ed"}

var descriptiveWords = map[string]bool{
	"beautiful": true, "enormous": true, "brilliant": true,
	"mysterious": true, "ancient": true, "delicate": true,
	"vivid": true, "radiant": true, "gloomy": true, "serene": true,
	"turbulent": true, "luminous": true, "vast": true, "subtle": true,
}

var descriptiveSuffixes = []string{"ful", "ous", "ive", "able", "ible", "less"}

// Emotional-complexity vocabulary: plain feeling words versus words
// naming layered or conflicted states.
var simpleEmotionWords = map[string]bool{
	"happy": true, "sad": true, "mad": true, "glad": true, "angry": true,
	"scared": true, "afraid": true, "joy": true, "love": true,
	"hate": true, "fear": true, "upset": true, "excited": true,
	"worried": true, "fine": true, "okay": true, "hurt": true,
}

var complexEmotionWords = map[string]bool{
	"melancholy": true, "bittersweet": true, "nostalgia": true,
	"nostalgic": true, "ambivalent": true, "ambivalence": true,
	"poignant": true, "wistful": true, "yearning": true,
	"euphoria": true, "euphoric": true, "despair": true,
	"serenity": true, "longing": true, "anguish": true,
	"apprehension": true, "exhilaration": true, "resignation": true,
	"trepidation": true, "catharsis": true, "saudade": true,
}

var intensifierWords = map[string]bool{
	"very": true, "extremely": true, "incredibly": true, "really": true,
	"deeply": true, "utterly": true, "absolutely": true,
	"completely": true, "profoundly": true, "intensely": true,
	"overwhelmingly": true, "immensely": true,
}

// Nuance markers: single tokens checked against the token stream,
// multi-word phrases searched in the lowercased text.
var nuanceTokens = map[string]bool{
	"but": true, "although": true, "however": true, "yet": true,
	"despite": true, "nevertheless": true, "nonetheless": true,
	"bittersweet": true,
}

var nuancePhrases = []string{
	"on the other hand",
	"at the same time",
	"mixed feelings",
	"torn between",
	"even though",
	"in spite of",
}
