// Package kana converts words between the two Japanese phonetic scripts.
package kana

// Script identifies one of the two phonetic writing systems.
type Script int

const (
	Hiragana Script = iota
	Katakana
)

func (s Script) String() string {
	switch s {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	default:
		return "unknown"
	}
}

// The convertible blocks line up at a fixed distance: ぁ (U+3041) .. ゖ (U+3096)
// maps onto ァ (U+30A1) .. ヶ (U+30F6). Iteration marks, the prolonged sound
// mark and the katakana-only letters ヷ..ヺ are outside the range and pass through.
const (
	hiraganaFirst = 0x3041
	hiraganaLast  = 0x3096
	katakanaFirst = 0x30A1
	katakanaLast  = 0x30F6
	offset        = katakanaFirst - hiraganaFirst
)

// Convert rewrites every character of s that belongs to the opposite script
// into target. Characters outside the mapped blocks (kanji, punctuation,
// Latin, ー) are returned unchanged.
func Convert(s string, target Script) string {
	runes := []rune(s)
	changed := false
	for i, r := range runes {
		switch {
		case target == Katakana && r >= hiraganaFirst && r <= hiraganaLast:
			runes[i] = r + offset
			changed = true
		case target == Hiragana && r >= katakanaFirst && r <= katakanaLast:
			runes[i] = r - offset
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(runes)
}

// ToHiragana converts Katakana to Hiragana.
func ToHiragana(s string) string { return Convert(s, Hiragana) }

// ToKatakana converts Hiragana to Katakana.
func ToKatakana(s string) string { return Convert(s, Katakana) }

// Opposite returns the other script.
func (s Script) Opposite() Script {
	if s == Hiragana {
		return Katakana
	}
	return Hiragana
}

// Detect reports which script the first convertible character of s belongs to.
// ok is false when s contains no character from either block.
func Detect(s string) (script Script, ok bool) {
	for _, r := range s {
		switch {
		case r >= hiraganaFirst && r <= hiraganaLast:
			return Hiragana, true
		case r >= katakanaFirst && r <= katakanaLast:
			return Katakana, true
		}
	}
	return Hiragana, false
}

// Flip converts s into the opposite script of the first kana it contains:
// "どきどき" becomes "ドキドキ" and vice versa.
func Flip(s string) string {
	script, ok := Detect(s)
	if !ok {
		return s
	}
	return Convert(s, script.Opposite())
}
