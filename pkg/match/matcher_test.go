package match

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/onomato/pkg/corpus"
	"github.com/japaniel/onomato/pkg/dictionary"
)

func collection(lang string, pairs ...string) *corpus.Collection {
	c := corpus.NewCollection(lang)
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Add(corpus.Sentence{ID: pairs[i], Lang: lang, Text: pairs[i+1]})
	}
	return c
}

func links(edges ...string) *corpus.LinkGraph {
	g := corpus.NewLinkGraph()
	for i := 0; i+1 < len(edges); i += 2 {
		g.Add(edges[i], edges[i+1])
	}
	return g
}

func newMatcher(t *testing.T, idx *corpus.Index, opts Options) *Matcher {
	t.Helper()
	m, err := New(idx, opts)
	require.NoError(t, err)
	return m
}

type stubReader struct{}

func (stubReader) Reading(text string) string { return "reading:" + text }

func TestMatchWordBeforeReading(t *testing.T) {
	idx := corpus.NewIndex(links("2", "200"),
		collection("jpn",
			"1", "子供がわくわくしている。",
			"2", "胸が騒ぐ。",
		),
		collection("eng", "200", "My chest stirs."),
	)
	m := newMatcher(t, idx, Options{})

	r := m.Match(dictionary.LexicalEntry{Word: "騒ぐ", Reading: "わくわく"})
	assert.Equal(t, "胸が騒ぐ。", r.Example)
	assert.Equal(t, "2", r.SentenceID)
	assert.Equal(t, "My chest stirs.", r.Meaning)
	assert.Equal(t, "eng", r.MeaningLang)

	r = m.Match(dictionary.LexicalEntry{Word: "湧く湧く", Reading: "わくわく"})
	assert.Equal(t, "1", r.SentenceID)
	assert.Empty(t, r.Meaning)
}

func TestMatchFirstSentenceInFileOrder(t *testing.T) {
	idx := corpus.NewIndex(nil, collection("jpn",
		"9", "ドキドキした。",
		"3", "まだドキドキする。",
	))
	r := newMatcher(t, idx, Options{}).Match(dictionary.LexicalEntry{Word: "ドキドキ", Reading: "ドキドキ"})
	assert.Equal(t, "9", r.SentenceID)
}

func TestMatchNoFabrication(t *testing.T) {
	idx := corpus.NewIndex(links("1", "100"),
		collection("jpn", "1", "雨が降る。"),
		collection("eng", "100", "It rains."),
	)
	r := newMatcher(t, idx, Options{Reader: stubReader{}}).Match(dictionary.LexicalEntry{Word: "ゴロゴロ", Reading: "ごろごろ"})
	assert.False(t, r.Matched())
	assert.Equal(t, Result{}, r)
}

func TestMatchPrefersReferenceLanguage(t *testing.T) {
	idx := corpus.NewIndex(links("1", "300", "1", "404", "1", "100", "1", "101"),
		collection("jpn", "1", "星がきらきら光る。"),
		collection("eng", "100", "The stars twinkle.", "101", "Stars shine."),
		collection("kor", "300", "별이 반짝반짝 빛난다."),
	)
	r := newMatcher(t, idx, Options{}).Match(dictionary.LexicalEntry{Word: "きらきら", Reading: "きらきら"})
	assert.Equal(t, "The stars twinkle.", r.Meaning)
	assert.Equal(t, "eng", r.MeaningLang)
}

func TestMatchFallsBackToThirdLanguage(t *testing.T) {
	idx := corpus.NewIndex(links("1", "404", "1", "300"),
		collection("jpn", "1", "星がきらきら光る。"),
		collection("eng"),
		collection("kor", "300", "별이 반짝반짝 빛난다."),
	)
	m := newMatcher(t, idx, Options{Third: "kor"})
	r := m.Match(dictionary.LexicalEntry{Word: "きらきら", Reading: "きらきら"})
	assert.Equal(t, "별이 반짝반짝 빛난다.", r.Meaning)
	assert.Equal(t, "kor", r.MeaningLang)

	noThird := newMatcher(t, idx, Options{})
	r = noThird.Match(dictionary.LexicalEntry{Word: "きらきら"})
	assert.Empty(t, r.Meaning)
	assert.Equal(t, "1", r.SentenceID)
}

func TestMatchDanglingLinks(t *testing.T) {
	idx := corpus.NewIndex(links("1", "missing", "missing", "1"),
		collection("jpn", "1", "ふわふわの雲。"),
	)
	r := newMatcher(t, idx, Options{}).Match(dictionary.LexicalEntry{Word: "ふわふわ"})
	assert.True(t, r.Matched())
	assert.Empty(t, r.Meaning)
	assert.Empty(t, r.MeaningLang)
}

func TestMatchReading(t *testing.T) {
	idx := corpus.NewIndex(nil, collection("jpn", "1", "ふわふわ"))
	r := newMatcher(t, idx, Options{Reader: stubReader{}}).Match(dictionary.LexicalEntry{Word: "ふわふわ"})
	assert.Equal(t, "reading:ふわふわ", r.ExampleReading)
}

func buildLargeIndex(n int) (*corpus.Index, []dictionary.LexicalEntry) {
	jpn := corpus.NewCollection("jpn")
	eng := corpus.NewCollection("eng")
	g := corpus.NewLinkGraph()
	var entries []dictionary.LexicalEntry
	for i := 0; i < n; i++ {
		word := fmt.Sprintf("語%d号", i)
		if i%3 != 0 {
			id := fmt.Sprintf("%d", i)
			jpn.Add(corpus.Sentence{ID: id, Lang: "jpn", Text: "これは" + word + "です。"})
			if i%2 == 0 {
				eng.Add(corpus.Sentence{ID: "e" + id, Lang: "eng", Text: strings.Repeat("x", i)})
				g.Add(id, "e"+id)
			}
		}
		entries = append(entries, dictionary.LexicalEntry{ID: i + 1, Word: word, Reading: "ご"})
	}
	return corpus.NewIndex(g, jpn, eng), entries
}

func TestMatchAllEqualsSequential(t *testing.T) {
	idx, entries := buildLargeIndex(200)

	seq := newMatcher(t, idx, Options{Workers: 1})
	want := make([]Result, len(entries))
	for i, e := range entries {
		want[i] = seq.Match(e)
	}

	par := newMatcher(t, idx, Options{Workers: 8, CacheSize: 16})
	stats, err := par.MatchAll(context.Background(), entries)
	require.NoError(t, err)

	matched, meanings := 0, 0
	for i, e := range entries {
		assert.Equal(t, want[i].Example, e.Example, "entry %d", e.ID)
		assert.Equal(t, want[i].Meaning, e.ExampleMeaning, "entry %d", e.ID)
		assert.Equal(t, want[i].MeaningLang, e.ExampleMeaningLang, "entry %d", e.ID)
		if want[i].Matched() {
			matched++
		}
		if want[i].Meaning != "" {
			meanings++
		}
	}
	assert.Equal(t, 200, stats.Entries)
	assert.Equal(t, matched, stats.Matched)
	assert.Equal(t, meanings, stats.WithMeaning)
	assert.Equal(t, meanings, stats.ByLang["eng"])
}

func TestMatchAllClearsStaleExamples(t *testing.T) {
	idx := corpus.NewIndex(nil, collection("jpn"))
	entries := []dictionary.LexicalEntry{{ID: 1, Word: "ザーザー", Example: "old", ExampleMeaning: "old"}}
	_, err := newMatcher(t, idx, Options{}).MatchAll(context.Background(), entries)
	require.NoError(t, err)
	assert.Empty(t, entries[0].Example)
	assert.Empty(t, entries[0].ExampleMeaning)
}

func TestMatchAllCanceled(t *testing.T) {
	idx, entries := buildLargeIndex(50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newMatcher(t, idx, Options{}).MatchAll(ctx, entries)
	require.ErrorIs(t, err, context.Canceled)
}
