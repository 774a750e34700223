package dictionary

import (
	"encoding/xml"
	"regexp"
)

// jmEntry mirrors one <entry> of the JMdict XML distribution. Every leaf is a
// string so that decoding never fails on content, only on structure.
type jmEntry struct {
	XMLName xml.Name  `xml:"entry"`
	Seq     string    `xml:"ent_seq"`
	Kanji   []jmKanji `xml:"k_ele"`
	Kana    []jmKana  `xml:"r_ele"`
	Sense   []jmSense `xml:"sense"`
}

type jmKanji struct {
	Keb string   `xml:"keb"`
	Inf []string `xml:"ke_inf"`
	Pri []string `xml:"ke_pri"`
}

type jmKana struct {
	Reb     string   `xml:"reb"`
	NoKanji *string  `xml:"re_nokanji"`
	Restr   []string `xml:"re_restr"`
	Inf     []string `xml:"re_inf"`
	Pri     []string `xml:"re_pri"`
}

type jmSense struct {
	Pos   []string  `xml:"pos"`
	Field []string  `xml:"field"`
	Misc  []string  `xml:"misc"`
	Dial  []string  `xml:"dial"`
	Gloss []jmGloss `xml:"gloss"`
}

type jmGloss struct {
	// xml:lang; absent means English.
	Lang string `xml:"lang,attr"`
	Type string `xml:"g_type,attr"`
	Text string `xml:",chardata"`
}

func (g jmGloss) language() string {
	if g.Lang == "" {
		return "eng"
	}
	return g.Lang
}

// tags returns the part-of-speech and semantic-classification tags of the sense.
func (s jmSense) tags() []string {
	out := make([]string, 0, len(s.Pos)+len(s.Misc))
	out = append(out, s.Pos...)
	return append(out, s.Misc...)
}

var entityDecl = regexp.MustCompile(`<!ENTITY\s+([A-Za-z0-9_.:-]+)\s+"([^"]*)"\s*>`)

// parseEntities collects <!ENTITY name "expansion"> declarations from a DTD fragment.
func parseEntities(dtd []byte, into map[string]string) int {
	n := 0
	for _, m := range entityDecl.FindAllSubmatch(dtd, -1) {
		into[string(m[1])] = string(m[2])
		n++
	}
	return n
}

// builtinEntities expands the JMdict tags most relevant to selection when the
// source carries no DTD (trimmed extracts, test fixtures).
var builtinEntities = map[string]string{
	"on-mim":  "onomatopoeic or mimetic word",
	"adv":     "adverb (fukushi)",
	"adv-to":  "adverb taking the `to' particle",
	"adj-na":  "adjectival nouns or quasi-adjectives (keiyodoshi)",
	"adj-no":  "nouns which may take the genitive case particle `no'",
	"adj-i":   "adjective (keiyoushi)",
	"adj-t":   "`taru' adjective",
	"n":       "noun (common) (futsuumeishi)",
	"vs":      "noun or participle which takes the aux. verb suru",
	"vs-i":    "suru verb - included",
	"vs-s":    "suru verb - special class",
	"vi":      "intransitive verb",
	"vt":      "transitive verb",
	"v5r":     "Godan verb with `ru' ending",
	"v1":      "Ichidan verb",
	"exp":     "expressions (phrases, clauses, etc.)",
	"int":     "interjection (kandoushi)",
	"uk":      "word usually written using kana alone",
	"col":     "colloquial",
	"chn":     "children's language",
	"sl":      "slang",
	"arch":    "archaic",
	"abbr":    "abbreviation",
	"sens":    "sensitive",
	"vulg":    "vulgar expression or word",
	"ateji":   "ateji (phonetic) reading",
	"iK":      "word containing irregular kanji usage",
	"ik":      "word containing irregular kana usage",
	"oK":      "word containing out-dated kanji or kanji usage",
	"rK":      "rarely used kanji form",
	"sK":      "search-only kanji form",
	"sk":      "search-only kana form",
	"gikun":   "gikun (meaning as reading) or jukujikun (special kanji reading)",
	"food":    "food, cooking",
	"ksb":     "Kansai-ben",
	"kyb":     "Kyoto-ben",
	"osb":     "Osaka-ben",
	"thb":     "Touhoku-ben",
	"hob":     "Hokkaido-ben",
	"yoji":    "yojijukugo",
	"id":      "idiomatic expression",
	"joc":     "jocular, humorous term",
	"fam":     "familiar language",
	"fem":     "female term or language",
	"male":    "male term or language",
	"hon":     "honorific or respectful (sonkeigo) language",
	"hum":     "humble (kenjougo) language",
	"pol":     "polite (teineigo) language",
	"derog":   "derogatory",
	"obs":     "obsolete term",
	"rare":    "rarely used term",
	"poet":    "poetical term",
	"proverb": "proverb",
}

func newEntityMap() map[string]string {
	m := make(map[string]string, len(builtinEntities))
	for k, v := range builtinEntities {
		m[k] = v
	}
	return m
}
