package pipeline

import (
	"github.com/japaniel/onomato/pkg/category"
	"github.com/japaniel/onomato/pkg/dictionary"
)

// PartOfSpeech is the part of speech every app record carries.
const PartOfSpeech = "onomatopoeia"

// AppRecord is the shape the study app consumes. Level and Category both hold
// the display label of the entry's category.
type AppRecord struct {
	ID                 int               `json:"id"`
	Word               string            `json:"word"`
	Reading            string            `json:"reading"`
	Definition         string            `json:"definition"`
	Level              string            `json:"level"`
	Category           string            `json:"category"`
	PartOfSpeech       string            `json:"partOfSpeech"`
	Example            string            `json:"example"`
	ExampleReading     string            `json:"example_reading"`
	ExampleMeaning     string            `json:"example_meaning"`
	ExampleMeaningLang string            `json:"example_meaning_lang,omitempty"`
	Translations       map[string]string `json:"translations,omitempty"`
	Source             string            `json:"source"`
}

// ToAppRecords maps final entries to app records. An empty source falls back
// to the default provenance.
func ToAppRecords(entries []dictionary.LexicalEntry) []AppRecord {
	out := make([]AppRecord, 0, len(entries))
	for _, e := range entries {
		label := category.DisplayLabel(e.Category)
		source := e.Source
		if source == "" {
			source = dictionary.DefaultProvenance
		}
		out = append(out, AppRecord{
			ID:                 e.ID,
			Word:               e.Word,
			Reading:            e.Reading,
			Definition:         e.Definition,
			Level:              label,
			Category:           label,
			PartOfSpeech:       PartOfSpeech,
			Example:            e.Example,
			ExampleReading:     e.ExampleReading,
			ExampleMeaning:     e.ExampleMeaning,
			ExampleMeaningLang: e.ExampleMeaningLang,
			Translations:       e.Translations,
			Source:             source,
		})
	}
	return out
}
