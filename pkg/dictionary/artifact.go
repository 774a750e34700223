package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifact stores entries as an indented JSON array. Intermediate stages
// write one of these so a run can be inspected or restarted from any stage.
func WriteArtifact(path string, entries []LexicalEntry) error {
	if entries == nil {
		entries = []LexicalEntry{}
	}
	return WriteJSON(path, entries)
}

// WriteJSON writes v as indented JSON to path, creating parent directories.
// Non-ASCII text is written as is.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return f.Close()
}

// ReadArtifact loads a JSON array written by WriteArtifact.
func ReadArtifact(path string) ([]LexicalEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}
	defer f.Close()

	var entries []LexicalEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}
	return entries, nil
}
