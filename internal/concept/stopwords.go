package concept

// stopwords are never promoted to concepts and never counted toward
// co-occurrence frequency. Contractions appear apostrophe-stripped,
// matching the tokenizer. Tokens of one or two runes are filtered by
// length before this set is consulted.
var stopwords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "nor": true,
	"not": true, "yet": true, "are": true, "was": true, "were": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"having": true, "does": true, "did": true, "doing": true,
	"will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "may": true, "might": true, "must": true,
	"this": true, "that": true, "these": true, "those": true,
	"its": true, "itself": true, "myself": true, "ourselves": true,
	"our": true, "ours": true, "you": true, "your": true, "yours": true,
	"yourself": true, "him": true, "his": true, "himself": true,
	"she": true, "her": true, "hers": true, "herself": true,
	"they": true, "them": true, "their": true, "theirs": true,
	"themselves": true, "what": true, "which": true, "who": true,
	"whom": true, "whose": true, "where": true, "when": true,
	"why": true, "how": true, "all": true, "any": true, "both": true,
	"each": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "only": true,
	"own": true, "same": true, "than": true, "too": true, "very": true,
	"just": true, "also": true, "then": true, "else": true,
	"here": true, "there": true, "again": true, "further": true,
	"once": true, "about": true, "above": true, "below": true,
	"under": true, "over": true, "into": true, "onto": true,
	"with": true, "within": true, "without": true, "from": true,
	"because": true, "while": true, "until": true, "though": true,
	"although": true, "however": true, "never": true, "dont": true,
	"doesnt": true, "didnt": true, "wont": true, "cant": true,
	"couldnt": true, "wouldnt": true, "shouldnt": true, "isnt": true,
	"wasnt": true, "arent": true, "werent": true, "theres": true,
	"whats": true, "thats": true, "youre": true, "theyre": true,
	"ive": true, "youve": true, "weve": true, "theyve": true,
	"really": true, "quite": true, "between": true, "against": true,
	"through": true, "during": true,
}
