// Package corpus loads the per-language sentence collections and the
// translation-link graph used to find and align example sentences.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentence is one corpus sentence. IDs are opaque strings.
type Sentence struct {
	ID   string
	Lang string
	Text string
}

// Collection holds the sentences of one language in file order.
type Collection struct {
	Lang      string
	sentences []Sentence
	byID      map[string]int
}

func NewCollection(lang string) *Collection {
	return &Collection{Lang: lang, byID: make(map[string]int)}
}

// Add appends s. A repeated id is ignored and reported as false; the first
// occurrence keeps its text and position.
func (c *Collection) Add(s Sentence) bool {
	if _, ok := c.byID[s.ID]; ok {
		return false
	}
	c.byID[s.ID] = len(c.sentences)
	c.sentences = append(c.sentences, s)
	return true
}

func (c *Collection) Len() int { return len(c.sentences) }

// Get returns the sentence with the given id.
func (c *Collection) Get(id string) (Sentence, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Sentence{}, false
	}
	return c.sentences[i], true
}

// Search returns the first sentence, in file order, whose text contains term.
func (c *Collection) Search(term string) (Sentence, bool) {
	if term == "" {
		return Sentence{}, false
	}
	for _, s := range c.sentences {
		if strings.Contains(s.Text, term) {
			return s, true
		}
	}
	return Sentence{}, false
}

// Sentences returns the collection in file order. The slice must not be modified.
func (c *Collection) Sentences() []Sentence { return c.sentences }

// maxLine bounds a single TSV line.
const maxLine = 1024 * 1024

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return sc
}

// LoadSentences reads a tab-separated sentence file (id, language, text) into
// a collection tagged lang. The language column is informational. Lines with
// fewer than three fields or an empty id are counted as skipped.
func LoadSentences(r io.Reader, lang string) (*Collection, int, error) {
	c := NewCollection(lang)
	skipped := 0
	sc := newLineScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 3 || fields[0] == "" {
			skipped++
			continue
		}
		if !c.Add(Sentence{ID: fields[0], Lang: lang, Text: norm.NFC.String(fields[2])}) {
			skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read %s sentences: %w", lang, err)
	}
	return c, skipped, nil
}
