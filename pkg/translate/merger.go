// Package translate attaches hand-authored short translations to entries.
package translate

import (
	"github.com/japaniel/onomato/pkg/dictionary"
	"github.com/japaniel/onomato/pkg/kana"
)

// Table maps a word or reading to its short translation.
type Table map[string]string

// Merger attaches translations for one target language.
type Merger struct {
	lang  string
	table Table
}

func New(lang string, table Table) *Merger {
	return &Merger{lang: lang, table: table}
}

func (m *Merger) Lang() string { return m.lang }

// Lookup tries the word, then the reading, then each of them written in the
// other kana script ("どきどき" <-> "ドキドキ"). The first hit wins.
func (m *Merger) Lookup(word, reading string) (string, bool) {
	candidates := []string{
		word,
		reading,
		kana.Flip(word),
		kana.Flip(reading),
	}
	for _, key := range candidates {
		if key == "" {
			continue
		}
		if t, ok := m.table[key]; ok {
			return t, true
		}
	}
	return "", false
}

// Merge sets the translation of every entry with a table hit and returns the
// number of hits. Entries without a hit are left untouched.
func (m *Merger) Merge(entries []dictionary.LexicalEntry) int {
	n := 0
	for i := range entries {
		e := &entries[i]
		if t, ok := m.Lookup(e.Word, e.Reading); ok {
			e.SetTranslation(m.lang, t)
			n++
		}
	}
	return n
}
