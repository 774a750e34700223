package dictionary

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrMalformedEntry marks a single <entry> that could not be decoded.
var ErrMalformedEntry = errors.New("malformed dictionary entry")

// Options controls which entries are selected and how records are built.
type Options struct {
	// Markers are matched case-insensitively as substrings of pos/misc tags.
	Markers    []string
	GlossLang  string
	MaxGlosses int
	Delimiter  string
	Provenance string
	Logger     *slog.Logger
}

// DefaultOptions selects onomatopoeic and mimetic words with up to three English glosses.
func DefaultOptions() Options {
	return Options{
		Markers:    []string{"onomatopoeic", "mimetic"},
		GlossLang:  "eng",
		MaxGlosses: 3,
		Delimiter:  "; ",
		Provenance: DefaultProvenance,
	}
}

// Stats summarizes one extraction run.
type Stats struct {
	Scanned   int
	Selected  int
	Kept      int
	NoGloss   int
	Malformed int
	Entities  int
}

// Extractor streams a JMdict XML source and emits tagged lexical records.
type Extractor struct {
	opts     Options
	markers  []string
	entities map[string]string
	log      *slog.Logger
}

// NewExtractor builds an extractor. Zero-valued option fields fall back to DefaultOptions.
func NewExtractor(opts Options) *Extractor {
	def := DefaultOptions()
	if len(opts.Markers) == 0 {
		opts.Markers = def.Markers
	}
	if opts.GlossLang == "" {
		opts.GlossLang = def.GlossLang
	}
	if opts.MaxGlosses <= 0 {
		opts.MaxGlosses = def.MaxGlosses
	}
	if opts.Delimiter == "" {
		opts.Delimiter = def.Delimiter
	}
	if opts.Provenance == "" {
		opts.Provenance = def.Provenance
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	markers := make([]string, len(opts.Markers))
	for i, m := range opts.Markers {
		markers[i] = strings.ToLower(m)
	}
	return &Extractor{
		opts:     opts,
		markers:  markers,
		entities: newEntityMap(),
		log:      log,
	}
}

const maxEntrySize = 16 * 1024 * 1024

var (
	entryOpen  = []byte("<entry>")
	entryClose = []byte("</entry>")
)

// splitEntries yields chunks that each end with </entry>. Anything preceding the
// <entry> tag inside a chunk (XML prolog, DTD, root element) is left for the caller.
func splitEntries(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.Index(data, entryClose); i >= 0 {
		n := i + len(entryClose)
		return n, data[:n], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Extract reads the whole source and returns the selected records with dense
// IDs starting at 1. Only I/O failures are returned as errors; a broken entry
// is counted and skipped.
func (x *Extractor) Extract(r io.Reader) ([]LexicalEntry, Stats, error) {
	var (
		stats Stats
		out   []LexicalEntry
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256*1024), maxEntrySize)
	scanner.Split(splitEntries)

	for scanner.Scan() {
		chunk := scanner.Bytes()
		start := bytes.Index(chunk, entryOpen)
		if start < 0 {
			// trailer such as </JMdict>
			continue
		}
		if start > 0 && bytes.Contains(chunk[:start], []byte("<!ENTITY")) {
			stats.Entities += parseEntities(chunk[:start], x.entities)
		}
		stats.Scanned++

		entry, err := x.decode(chunk[start:])
		if err != nil {
			stats.Malformed++
			x.log.Debug("skipping malformed entry", slog.Int("ordinal", stats.Scanned), slog.String("error", err.Error()))
			continue
		}
		if !x.selected(entry) {
			continue
		}
		stats.Selected++

		rec, err := x.record(entry)
		if err != nil {
			if errors.Is(err, ErrNoGloss) {
				stats.NoGloss++
			} else {
				stats.Malformed++
			}
			x.log.Debug("dropping entry", slog.String("seq", entry.Seq), slog.String("error", err.Error()))
			continue
		}
		rec.ID = len(out) + 1
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read dictionary: %w", err)
	}
	stats.Kept = len(out)
	return out, stats, nil
}

func (x *Extractor) decode(chunk []byte) (jmEntry, error) {
	var e jmEntry
	d := xml.NewDecoder(bytes.NewReader(chunk))
	d.Entity = x.entities
	if err := d.Decode(&e); err != nil {
		return jmEntry{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	return e, nil
}

// selected reports whether any sense carries a pos or misc tag containing a marker.
func (x *Extractor) selected(e jmEntry) bool {
	for _, s := range e.Sense {
		for _, tag := range s.tags() {
			lower := strings.ToLower(tag)
			for _, m := range x.markers {
				if strings.Contains(lower, m) {
					return true
				}
			}
		}
	}
	return false
}

func (x *Extractor) record(e jmEntry) (LexicalEntry, error) {
	var reading string
	if len(e.Kana) > 0 {
		reading = clean(e.Kana[0].Reb)
	}
	word := reading
	if len(e.Kanji) > 0 && clean(e.Kanji[0].Keb) != "" {
		word = clean(e.Kanji[0].Keb)
	}
	if word == "" {
		return LexicalEntry{}, fmt.Errorf("%w: %w", ErrMalformedEntry, ErrNoPrimaryForm)
	}

	var glosses []string
	for _, s := range e.Sense {
		for _, g := range s.Gloss {
			if g.language() != x.opts.GlossLang {
				continue
			}
			if text := clean(g.Text); text != "" {
				glosses = append(glosses, text)
			}
		}
	}
	if len(glosses) == 0 {
		return LexicalEntry{}, ErrNoGloss
	}
	if len(glosses) > x.opts.MaxGlosses {
		glosses = glosses[:x.opts.MaxGlosses]
	}

	rec := LexicalEntry{
		Word:       word,
		Reading:    reading,
		Glosses:    glosses,
		Definition: strings.Join(glosses, x.opts.Delimiter),
		Source:     x.opts.Provenance,
	}
	return rec, rec.Validate()
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ExtractFile opens path (optionally compressed) and extracts from it.
func ExtractFile(path string, opts Options) ([]LexicalEntry, Stats, error) {
	rc, err := OpenSource(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer rc.Close()
	entries, stats, err := NewExtractor(opts).Extract(rc)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	return entries, stats, nil
}
