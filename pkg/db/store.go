package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/japaniel/onomato/pkg/category"
	"github.com/japaniel/onomato/pkg/dictionary"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

var ErrRunNotFound = errors.New("run not found")

// CreateRun registers a new export run under a fresh UUID.
func CreateRun(db DBExecutor, provenance string) (Run, error) {
	run := Run{
		ID:         uuid.NewString(),
		Provenance: provenance,
		StartedAt:  time.Now().UTC(),
	}
	_, err := db.Exec(`INSERT INTO runs (id, provenance, started_at) VALUES (?, ?, ?)`,
		run.ID, run.Provenance, run.StartedAt)
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}
	return run, nil
}

// FinishRun stamps the run as complete with its entry count.
func FinishRun(db DBExecutor, runID string, count int) error {
	res, err := db.Exec(`UPDATE runs SET finished_at = ?, entry_count = ? WHERE id = ?`,
		time.Now().UTC(), count, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish run %s: %w", runID, ErrRunNotFound)
	}
	return nil
}

// GetRun loads a run by id.
func GetRun(db DBExecutor, runID string) (Run, error) {
	var (
		r        Run
		finished sql.NullTime
	)
	err := db.QueryRow(`SELECT id, provenance, started_at, finished_at, entry_count FROM runs WHERE id = ?`, runID).
		Scan(&r.ID, &r.Provenance, &r.StartedAt, &finished, &r.EntryCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, err
	}
	if finished.Valid {
		r.FinishedAt = finished.Time
	}
	return r, nil
}

// getOrCreateSentence returns the id of text in the sentences table, inserting
// it when missing. Empty text maps to 0 (no sentence).
func getOrCreateSentence(db DBExecutor, text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}
	var id int64
	if err := db.QueryRow(`SELECT id FROM sentences WHERE text = ?`, trimmed).Scan(&id); err == nil {
		return id, nil
	} else if err != sql.ErrNoRows {
		return 0, err
	}
	// Insert if missing (concurrent-safe via UNIQUE constraint)
	if _, err := db.Exec(`INSERT OR IGNORE INTO sentences (text) VALUES (?)`, trimmed); err != nil {
		return 0, err
	}
	if err := db.QueryRow(`SELECT id FROM sentences WHERE text = ?`, trimmed).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// nullableInt64 returns nil for 0 (meaning no sentence) else the value.
func nullableInt64(v int64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

// UpsertEntry writes e under runID, replacing an earlier write of the same entry id.
func UpsertEntry(db DBExecutor, runID string, e dictionary.LexicalEntry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("entry %d: %w", e.ID, err)
	}
	exID, err := getOrCreateSentence(db, e.Example)
	if err != nil {
		return fmt.Errorf("get/create example sentence: %w", err)
	}
	meaningID, err := getOrCreateSentence(db, e.ExampleMeaning)
	if err != nil {
		return fmt.Errorf("get/create meaning sentence: %w", err)
	}
	translations := "{}"
	if len(e.Translations) > 0 {
		b, err := json.Marshal(e.Translations)
		if err != nil {
			return fmt.Errorf("encode translations: %w", err)
		}
		translations = string(b)
	}

	_, err = db.Exec(`INSERT INTO entries (run_id, entry_id, word, reading, definition, category, display_category,
	  example_sentence_id, example_reading, meaning_sentence_id, meaning_lang, translations, source)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(run_id, entry_id) DO UPDATE SET
	  word = excluded.word,
	  reading = excluded.reading,
	  definition = excluded.definition,
	  category = excluded.category,
	  display_category = excluded.display_category,
	  example_sentence_id = excluded.example_sentence_id,
	  example_reading = excluded.example_reading,
	  meaning_sentence_id = excluded.meaning_sentence_id,
	  meaning_lang = excluded.meaning_lang,
	  translations = excluded.translations,
	  source = excluded.source`,
		runID, e.ID, e.Word, e.Reading, e.Definition, e.Category, category.DisplayLabel(e.Category),
		nullableInt64(exID), e.ExampleReading, nullableInt64(meaningID), e.ExampleMeaningLang, translations, e.Source)
	if err != nil {
		return fmt.Errorf("upsert entry %d: %w", e.ID, err)
	}
	return nil
}

// ListEntries returns the entries of a run ordered by entry id.
func ListEntries(db DBExecutor, runID string) ([]dictionary.LexicalEntry, error) {
	rows, err := db.Query(`SELECT e.entry_id, e.word, e.reading, e.definition, e.category,
	  ex.text, e.example_reading, m.text, e.meaning_lang, e.translations, e.source
	FROM entries e
	LEFT JOIN sentences ex ON ex.id = e.example_sentence_id
	LEFT JOIN sentences m ON m.id = e.meaning_sentence_id
	WHERE e.run_id = ?
	ORDER BY e.entry_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []dictionary.LexicalEntry
	for rows.Next() {
		var (
			e                dictionary.LexicalEntry
			example, meaning sql.NullString
			translations     string
		)
		if err := rows.Scan(&e.ID, &e.Word, &e.Reading, &e.Definition, &e.Category,
			&example, &e.ExampleReading, &meaning, &e.ExampleMeaningLang, &translations, &e.Source); err != nil {
			return nil, err
		}
		if example.Valid {
			e.Example = example.String
		}
		if meaning.Valid {
			e.ExampleMeaning = meaning.String
		}
		if translations != "" && translations != "{}" {
			if err := json.Unmarshal([]byte(translations), &e.Translations); err != nil {
				return nil, fmt.Errorf("entry %d translations: %w", e.ID, err)
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByCategory returns how many entries of a run fall in each category.
func CountByCategory(db DBExecutor, runID string) (map[string]int, error) {
	rows, err := db.Query(`SELECT category, COUNT(*) FROM entries WHERE run_id = ? GROUP BY category`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var (
			cat string
			n   int
		)
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		out[cat] = n
	}
	return out, rows.Err()
}
