package dictionary

import (
	"errors"
	"strings"
)

// DefaultProvenance is the attribution attached to every extracted record.
const DefaultProvenance = "JMdict (CC-BY-SA 4.0)"

// LexicalEntry is one onomatopoeic/mimetic word and everything the pipeline
// learns about it. It is also the JSON shape of every stage artifact.
type LexicalEntry struct {
	ID         int      `json:"id"`
	Word       string   `json:"word"`
	Reading    string   `json:"reading"`
	Glosses    []string `json:"glosses,omitempty"`
	Definition string   `json:"definition"`
	// Category is overwritten by each categorization pass.
	Category           string            `json:"category"`
	Example            string            `json:"example"`
	ExampleReading     string            `json:"example_reading"`
	ExampleMeaning     string            `json:"example_meaning"`
	ExampleMeaningLang string            `json:"example_meaning_lang,omitempty"`
	Translations       map[string]string `json:"translations,omitempty"`
	Source             string            `json:"source"`
}

var (
	ErrNoPrimaryForm = errors.New("entry has no primary form")
	ErrNoGloss       = errors.New("entry has no gloss")
)

// Validate checks the persistence invariant: a primary form and at least one gloss.
func (e LexicalEntry) Validate() error {
	if strings.TrimSpace(e.Word) == "" {
		return ErrNoPrimaryForm
	}
	if strings.TrimSpace(e.Definition) == "" {
		return ErrNoGloss
	}
	return nil
}

// HasExample reports whether a corpus sentence was attached.
func (e LexicalEntry) HasExample() bool { return e.Example != "" }

// SetTranslation attaches a supplemental short translation for lang.
func (e *LexicalEntry) SetTranslation(lang, text string) {
	if e.Translations == nil {
		e.Translations = make(map[string]string)
	}
	e.Translations[lang] = text
}
