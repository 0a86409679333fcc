// Package concept tokenizes text, classifies surviving tokens into
// seven fixed categories, ranks them by relevance and derives the
// semantic graph the structure generator draws connections from.
package concept

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/text"
)

// DefaultMaxConcepts caps the ranked concept list.
const DefaultMaxConcepts = 50

// DefaultMinRelevance drops concepts at or below this relevance after
// ranking.
const DefaultMinRelevance = 0.1

// connectionWindow is the token distance scanned for co-occurrence.
const connectionWindow = 3

// maxConnections caps connections per concept.
const maxConnections = 10

// Extractor turns raw text into a ranked concept list.
type Extractor struct {
	maxConcepts  int
	minRelevance float64
}

// NewExtractor creates an extractor. Non-positive maxConcepts or a
// negative minRelevance fall back to the defaults.
func NewExtractor(maxConcepts int, minRelevance float64) *Extractor {
	if maxConcepts <= 0 {
		maxConcepts = DefaultMaxConcepts
	}
	if minRelevance < 0 {
		minRelevance = DefaultMinRelevance
	}
	return &Extractor{maxConcepts: maxConcepts, minRelevance: minRelevance}
}

type tokenStats struct {
	freq      int
	positions []int
}

// Extract tokenizes the input, ranks eligible tokens by relevance and
// returns at most maxConcepts concepts above the relevance floor,
// sorted by descending relevance with the word as tie-break.
func (e *Extractor) Extract(input string) []model.Concept {
	tokens := text.Tokenize(input)
	total := len(tokens)
	if total == 0 {
		return nil
	}

	// 1. Count frequency and positions per eligible token, keeping
	// first-seen order so ranking ties stay deterministic.
	stats := make(map[string]*tokenStats)
	var order []string
	for i, tok := range tokens {
		if !eligible(tok) {
			continue
		}
		s, ok := stats[tok]
		if !ok {
			s = &tokenStats{}
			stats[tok] = s
			order = append(order, tok)
		}
		s.freq++
		s.positions = append(s.positions, i)
	}

	// 2. Classify and score every surviving token.
	concepts := make([]model.Concept, 0, len(order))
	for _, word := range order {
		s := stats[word]
		cat := classify(word)
		tf := float64(s.freq) / float64(total)
		lengthBonus := math.Min(1, float64(utf8.RuneCountInString(word))/10)
		positionBonus := 0.0
		if float64(s.positions[0]) < float64(total)*0.2 {
			positionBonus = 0.2
		}
		relevance := math.Min(1, categoryImportance[cat]*(2*tf+lengthBonus+positionBonus))
		concepts = append(concepts, model.Concept{
			Word:      word,
			Category:  cat,
			Relevance: relevance,
			Frequency: s.freq,
			Positions: s.positions,
		})
	}

	// 3. Rank, truncate, then apply the relevance floor.
	sort.SliceStable(concepts, func(i, j int) bool {
		if concepts[i].Relevance != concepts[j].Relevance {
			return concepts[i].Relevance > concepts[j].Relevance
		}
		return concepts[i].Word < concepts[j].Word
	})
	if len(concepts) > e.maxConcepts {
		concepts = concepts[:e.maxConcepts]
	}
	kept := concepts[:0]
	for _, c := range concepts {
		if c.Relevance > e.minRelevance {
			kept = append(kept, c)
		}
	}
	concepts = kept

	// 4. Co-occurrence pass: distinct eligible neighbors within the
	// window whose frequency exceeds one, capped per concept.
	for ci := range concepts {
		c := &concepts[ci]
		seen := make(map[string]bool)
		for _, pos := range c.Positions {
			if len(c.Connections) >= maxConnections {
				break
			}
			lo := pos - connectionWindow
			if lo < 0 {
				lo = 0
			}
			hi := pos + connectionWindow
			if hi >= total {
				hi = total - 1
			}
			for j := lo; j <= hi; j++ {
				if j == pos {
					continue
				}
				neighbor := tokens[j]
				if neighbor == c.Word || seen[neighbor] || !eligible(neighbor) {
					continue
				}
				if s := stats[neighbor]; s == nil || s.freq <= 1 {
					continue
				}
				seen[neighbor] = true
				c.Connections = append(c.Connections, neighbor)
				if len(c.Connections) >= maxConnections {
					break
				}
			}
		}
	}

	return concepts
}

// eligible reports whether a token can become a concept: at least
// three runes and not a stopword.
func eligible(tok string) bool {
	return utf8.RuneCountInString(tok) >= 3 && !stopwords[tok]
}
