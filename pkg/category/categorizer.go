package category

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/japaniel/onomato/pkg/dictionary"
)

// Categorizer runs the two classification passes over an entry set.
type Categorizer struct {
	coarse Table
	fine   Table
	lower  cases.Caser
}

// New builds a Categorizer from explicit rule tables.
func New(coarse, fine Table) *Categorizer {
	return &Categorizer{
		coarse: coarse,
		fine:   fine,
		lower:  cases.Lower(language.Und),
	}
}

// Default uses the built-in coarse and fine tables.
func Default() *Categorizer {
	return New(CoarseRules(), FineRules())
}

func (c *Categorizer) normalize(text string) string {
	return c.lower.String(text)
}

// ClassifyCoarse returns the pass-1 label for a gloss, Other when nothing matches.
func (c *Categorizer) ClassifyCoarse(gloss string) string {
	if label, ok := c.coarse.Classify(c.normalize(gloss)); ok {
		return label
	}
	return Other
}

// Coarse assigns every entry exactly one coarse category in place.
func (c *Categorizer) Coarse(entries []dictionary.LexicalEntry) {
	for i := range entries {
		entries[i].Category = c.ClassifyCoarse(entries[i].Definition)
	}
}

// Refine runs the fine-grained pass in place and returns how many entries a
// fine rule matched. Every entry is re-evaluated; the prior category is only
// consulted when no rule matches: an empty or Other-prefixed category becomes
// Other, anything else is kept.
func (c *Categorizer) Refine(entries []dictionary.LexicalEntry) int {
	matched := 0
	for i := range entries {
		e := &entries[i]
		if label, ok := c.fine.Classify(c.normalize(e.Definition)); ok {
			e.Category = label
			matched++
			continue
		}
		if e.Category == "" || strings.HasPrefix(e.Category, Other) {
			e.Category = Other
		}
	}
	return matched
}

// Count is one row of a category distribution.
type Count struct {
	Category string
	N        int
}

// Distribution tallies categories, most frequent first, ties by name.
func Distribution(entries []dictionary.LexicalEntry) []Count {
	m := make(map[string]int)
	for _, e := range entries {
		m[e.Category]++
	}
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Category: k, N: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Category < out[j].Category
	})
	return out
}
