// Package reading derives hiragana readings for Japanese sentences with a
// morphological analyzer and prepares raw text for sentence-level processing.
package reading

import (
	"regexp"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/japaniel/onomato/pkg/kana"
)

// Token represents a single analyzed unit of text.
type Token struct {
	Surface  string // as it appears, e.g. "ドキドキ"
	BaseForm string // dictionary form
	Reading  string // katakana, empty for unknown words
	POS      string // primary part of speech (Kagome IPA label)
}

// Analyzer wraps a kagome tokenizer. It is safe for concurrent use.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer loads the IPA dictionary.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Analyze breaks text into tokens with readings and base forms.
func (a *Analyzer) Analyze(text string) []Token {
	tokens := a.t.Tokenize(text)
	result := make([]Token, 0, len(tokens))

	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		// IPA features: 0 POS, 1-3 sub-POS, 4-5 conjugation, 6 base form, 7 reading, 8 pronunciation.
		features := token.Features()

		base := token.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			reading = features[7]
		}
		pos := ""
		if len(features) > 0 {
			pos = features[0]
		}
		result = append(result, Token{
			Surface:  token.Surface,
			BaseForm: base,
			Reading:  reading,
			POS:      pos,
		})
	}
	return result
}

// Reading returns the hiragana reading of text. Tokens the dictionary does not
// know (Latin, digits, rare names) contribute their surface form.
func (a *Analyzer) Reading(text string) string {
	var b strings.Builder
	for _, tok := range a.Analyze(text) {
		if tok.Reading != "" {
			b.WriteString(kana.ToHiragana(tok.Reading))
			continue
		}
		b.WriteString(tok.Surface)
	}
	return b.String()
}

// SplitSentences splits text on 。！？ and newlines, keeping the delimiter and
// dropping blank pieces.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}
	for _, r := range text {
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if r == '。' || r == '！' || r == '？' {
			flush()
		}
	}
	flush()
	return sentences
}

var (
	// (?s) allows dot to match newlines
	// (?i) makes it case-insensitive
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses (<rp>...</rp>)
// from HTML content, so furigana is not glued onto the base text ("漢字かんじ").
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	return reRP.ReplaceAll(cleaned, []byte{})
}
