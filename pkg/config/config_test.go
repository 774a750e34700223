package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"onomatopoeic", "mimetic"}, cfg.Dictionary.Markers)
	assert.Equal(t, 3, cfg.Dictionary.MaxGlosses)
	assert.Equal(t, "eng", cfg.Dictionary.GlossLang)
	assert.Equal(t, "jpn", cfg.Corpus.SourceLang)
	assert.Equal(t, "kor", cfg.Match.TranslationLang)
	assert.True(t, cfg.Match.ExampleReadings)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "output", cfg.Output.Dir)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	path := writeYAML(t, `
dictionary:
  path: "jmdict.xml"
  max_glosses: 2
corpus:
  source_path: "jpn.tsv"
  articles: ["a.html", "b.html"]
log:
  level: "debug"
  format: "json"
`)
	t.Setenv("ONOMATO_MATCH_WORKERS", "9")
	// Zero values in YAML fall back to env-default; only ENV can blank a field.
	t.Setenv("ONOMATO_CORPUS_THIRD_PATH", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jmdict.xml", cfg.Dictionary.Path)
	assert.Equal(t, 2, cfg.Dictionary.MaxGlosses)
	assert.Equal(t, 9, cfg.Match.Workers)
	assert.Equal(t, []string{"a.html", "b.html"}, cfg.Corpus.Articles)
	assert.Equal(t, "json", cfg.Log.Format)

	sentences := cfg.Corpus.Sentences()
	assert.Equal(t, "jpn.tsv", sentences["jpn"])
	assert.Contains(t, sentences, "eng")
	assert.Len(t, sentences, 2)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := Load(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestValidate(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no markers", func(c *Config) { c.Dictionary.Markers = nil }},
		{"zero glosses", func(c *Config) { c.Dictionary.MaxGlosses = 0 }},
		{"negative workers", func(c *Config) { c.Match.Workers = -1 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"no output", func(c *Config) { c.Output.Dir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
