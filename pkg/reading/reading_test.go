package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer()
	require.NoError(t, err)
	return a
}

func TestReading(t *testing.T) {
	a := newAnalyzer(t)
	assert.Equal(t, "ねこ", a.Reading("猫"))
	assert.Contains(t, a.Reading("猫がいる。"), "ねこ")
	assert.Equal(t, "", a.Reading(""))
}

func TestReadingKeepsUnknownSurface(t *testing.T) {
	a := newAnalyzer(t)
	assert.Contains(t, a.Reading("ABC"), "ABC")
}

func TestAnalyze(t *testing.T) {
	a := newAnalyzer(t)
	tokens := a.Analyze("犬が走った")
	require.NotEmpty(t, tokens)
	assert.Equal(t, "犬", tokens[0].Surface)
	assert.Equal(t, "イヌ", tokens[0].Reading)
	assert.Equal(t, "名詞", tokens[0].POS)

	var base []string
	for _, tok := range tokens {
		base = append(base, tok.BaseForm)
	}
	assert.Contains(t, base, "走る")
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("雨がざあざあ降る。本当？\n\nはい！まだ")
	assert.Equal(t, []string{"雨がざあざあ降る。", "本当？", "はい！", "まだ"}, got)
	assert.Empty(t, SplitSentences(" \n "))
}

func TestSanitizeRuby(t *testing.T) {
	in := []byte(`<ruby>漢字<rp>(</rp><RT class="x">かんじ</RT><rp>)</rp></ruby>`)
	assert.Equal(t, `<ruby>漢字</ruby>`, string(SanitizeRuby(in)))
}
