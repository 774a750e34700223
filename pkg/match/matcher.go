// Package match attaches corpus example sentences and their translations to
// dictionary entries.
package match

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/japaniel/onomato/pkg/corpus"
	"github.com/japaniel/onomato/pkg/dictionary"
)

// Reader produces the phonetic reading of an example sentence.
type Reader interface {
	Reading(text string) string
}

type Options struct {
	Source    string // language searched for examples
	Reference string // preferred translation language
	Third     string // fallback translation language, empty to disable
	Workers   int
	CacheSize int
	Reader    Reader // optional
	Logger    *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Source:    "jpn",
		Reference: "eng",
		Third:     "kor",
		Workers:   4,
		CacheSize: 4096,
	}
}

// Result is the outcome of matching one entry. The zero value means no example.
type Result struct {
	SentenceID     string
	Example        string
	ExampleReading string
	Meaning        string
	MeaningLang    string
}

func (r Result) Matched() bool { return r.Example != "" }

// Apply overwrites the example fields of e with r.
func (r Result) Apply(e *dictionary.LexicalEntry) {
	e.Example = r.Example
	e.ExampleReading = r.ExampleReading
	e.ExampleMeaning = r.Meaning
	e.ExampleMeaningLang = r.MeaningLang
}

type Stats struct {
	Entries     int
	Matched     int
	WithMeaning int
	ByLang      map[string]int
}

type Matcher struct {
	idx   *corpus.Index
	opts  Options
	cache *lru.Cache[string, cacheEntry]
	log   *slog.Logger
}

type cacheEntry struct {
	sentence corpus.Sentence
	found    bool
}

func New(idx *corpus.Index, opts Options) (*Matcher, error) {
	def := DefaultOptions()
	if opts.Source == "" {
		opts.Source = def.Source
	}
	if opts.Reference == "" {
		opts.Reference = def.Reference
	}
	if opts.Workers <= 0 {
		opts.Workers = def.Workers
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = def.CacheSize
	}
	cache, err := lru.New[string, cacheEntry](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("term cache: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Matcher{idx: idx, opts: opts, cache: cache, log: log}, nil
}

// terms lists the search terms of e in priority order.
func terms(e dictionary.LexicalEntry) []string {
	out := make([]string, 0, 2)
	if e.Word != "" {
		out = append(out, e.Word)
	}
	if e.Reading != "" && e.Reading != e.Word {
		out = append(out, e.Reading)
	}
	return out
}

func (m *Matcher) search(term string) (corpus.Sentence, bool) {
	if c, ok := m.cache.Get(term); ok {
		return c.sentence, c.found
	}
	s, found := m.idx.Search(m.opts.Source, term)
	m.cache.Add(term, cacheEntry{sentence: s, found: found})
	return s, found
}

// Match finds the first source sentence containing the entry's word, or its
// reading when the word has no hit, and a translation of it.
func (m *Matcher) Match(e dictionary.LexicalEntry) Result {
	for _, term := range terms(e) {
		s, ok := m.search(term)
		if !ok {
			continue
		}
		r := Result{SentenceID: s.ID, Example: s.Text}
		r.Meaning, r.MeaningLang = m.translation(s.ID)
		if m.opts.Reader != nil {
			r.ExampleReading = m.opts.Reader.Reading(s.Text)
		}
		return r
	}
	return Result{}
}

// translation walks the links of id in file order. Any reference-language
// target wins over every third-language target; within a language the first
// linked sentence is used. Dangling targets are skipped.
func (m *Matcher) translation(id string) (string, string) {
	targets := m.idx.Links.Targets(id)
	for _, tgt := range targets {
		if s, ok := m.idx.Sentence(m.opts.Reference, tgt); ok {
			return s.Text, m.opts.Reference
		}
	}
	if m.opts.Third == "" {
		return "", ""
	}
	for _, tgt := range targets {
		if s, ok := m.idx.Sentence(m.opts.Third, tgt); ok {
			return s.Text, m.opts.Third
		}
	}
	return "", ""
}

// MatchAll matches every entry on the worker pool and writes the results back
// in place. Entries are independent, so the outcome equals a sequential run.
func (m *Matcher) MatchAll(ctx context.Context, entries []dictionary.LexicalEntry) (Stats, error) {
	results := make([]Result, len(entries))

	pool := NewWorkerPool(m.opts.Workers, m.opts.Workers*4)
	pool.Start(ctx)
	for i := range entries {
		i := i
		err := pool.Submit(func(ctx context.Context) error {
			results[i] = m.Match(entries[i])
			return nil
		})
		if err != nil {
			pool.Close()
			return Stats{}, fmt.Errorf("submit entry %d: %w", entries[i].ID, err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	pool.Close()
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	stats := Stats{Entries: len(entries), ByLang: make(map[string]int)}
	for i := range entries {
		r := results[i]
		r.Apply(&entries[i])
		if !r.Matched() {
			continue
		}
		stats.Matched++
		if r.Meaning != "" {
			stats.WithMeaning++
			stats.ByLang[r.MeaningLang]++
		}
		m.log.Debug("example matched", "id", entries[i].ID, "word", entries[i].Word, "sentence", r.SentenceID)
	}
	return stats, nil
}
