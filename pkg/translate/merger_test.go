package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/japaniel/onomato/pkg/dictionary"
)

func TestLookupOrder(t *testing.T) {
	m := New("kor", Table{
		"雷":   "by word",
		"ごろごろ": "by reading",
		"ドキドキ": "by katakana",
		"ぐっすり": "by hiragana",
	})

	tests := []struct {
		name, word, reading, want string
	}{
		{"exact word beats reading", "雷", "ごろごろ", "by word"},
		{"exact reading", "轟", "ごろごろ", "by reading"},
		{"word converted to katakana", "どきどき", "", "by katakana"},
		{"word converted to hiragana", "グッスリ", "", "by hiragana"},
		{"reading converted", "心臓", "どきどき", "by katakana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Lookup(tt.word, tt.reading)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := m.Lookup("猫", "ねこ")
	assert.False(t, ok)
	_, ok = m.Lookup("", "")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	entries := []dictionary.LexicalEntry{
		{ID: 1, Word: "ドキドキ", Reading: "ドキドキ"},
		{ID: 2, Word: "猫", Reading: "ねこ"},
		{ID: 3, Word: "ざーざー", Reading: "ざーざー"},
	}
	n := New("kor", Korean()).Merge(entries)

	assert.Equal(t, 2, n)
	assert.Equal(t, "두근두근", entries[0].Translations["kor"])
	assert.Nil(t, entries[1].Translations)
	assert.Equal(t, "쏴아쏴아 (비)", entries[2].Translations["kor"])
}

func TestKoreanTableIsFresh(t *testing.T) {
	a := Korean()
	a["ドキドキ"] = "changed"
	assert.Equal(t, "두근두근", Korean()["ドキドキ"])
	assert.Equal(t, "kor", New("kor", a).Lang())
}
