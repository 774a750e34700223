// Package config holds the pipeline configuration.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root pipeline configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Match      MatchConfig      `yaml:"match"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig describes the dictionary source and the extraction rules.
type DictionaryConfig struct {
	Path       string   `yaml:"path"        env:"ONOMATO_DICTIONARY_PATH"        env-default:"data/JMdict_e.gz"`
	URL        string   `yaml:"url"         env:"ONOMATO_DICTIONARY_URL"         env-default:"http://ftp.edrdg.org/pub/Nihongo/JMdict_e.gz"`
	Markers    []string `yaml:"markers"     env:"ONOMATO_DICTIONARY_MARKERS"     env-default:"onomatopoeic,mimetic" env-separator:","`
	GlossLang  string   `yaml:"gloss_lang"  env:"ONOMATO_DICTIONARY_GLOSS_LANG"  env-default:"eng"`
	MaxGlosses int      `yaml:"max_glosses" env:"ONOMATO_DICTIONARY_MAX_GLOSSES" env-default:"3"`
	Delimiter  string   `yaml:"delimiter"   env:"ONOMATO_DICTIONARY_DELIMITER"   env-default:"; "`
	Provenance string   `yaml:"provenance"  env:"ONOMATO_DICTIONARY_PROVENANCE"  env-default:"JMdict (CC-BY-SA 4.0)"`
}

// CorpusConfig names the sentence files, one per language, and the link file.
type CorpusConfig struct {
	SourceLang    string   `yaml:"source_lang"    env:"ONOMATO_CORPUS_SOURCE_LANG"    env-default:"jpn"`
	ReferenceLang string   `yaml:"reference_lang" env:"ONOMATO_CORPUS_REFERENCE_LANG" env-default:"eng"`
	ThirdLang     string   `yaml:"third_lang"     env:"ONOMATO_CORPUS_THIRD_LANG"     env-default:"kor"`
	SourcePath    string   `yaml:"source_path"    env:"ONOMATO_CORPUS_SOURCE_PATH"    env-default:"data/jpn_sentences.tsv"`
	ReferencePath string   `yaml:"reference_path" env:"ONOMATO_CORPUS_REFERENCE_PATH" env-default:"data/eng_sentences.tsv"`
	ThirdPath     string   `yaml:"third_path"     env:"ONOMATO_CORPUS_THIRD_PATH"     env-default:"data/kor_sentences.tsv"`
	LinksPath     string   `yaml:"links_path"     env:"ONOMATO_CORPUS_LINKS_PATH"     env-default:"data/links.csv"`
	Articles      []string `yaml:"articles"       env:"ONOMATO_CORPUS_ARTICLES"       env-separator:","`
}

// Sentences maps each configured language to its sentence file. A language
// with an empty tag or path is left out.
func (c CorpusConfig) Sentences() map[string]string {
	out := make(map[string]string, 3)
	for _, p := range [][2]string{
		{c.SourceLang, c.SourcePath},
		{c.ReferenceLang, c.ReferencePath},
		{c.ThirdLang, c.ThirdPath},
	} {
		if p[0] != "" && p[1] != "" {
			out[p[0]] = p[1]
		}
	}
	return out
}

// MatchConfig tunes example matching and the translation merge.
type MatchConfig struct {
	Workers         int    `yaml:"workers"          env:"ONOMATO_MATCH_WORKERS"          env-default:"4"`
	CacheSize       int    `yaml:"cache_size"       env:"ONOMATO_MATCH_CACHE_SIZE"       env-default:"4096"`
	ExampleReadings bool   `yaml:"example_readings" env:"ONOMATO_MATCH_EXAMPLE_READINGS" env-default:"true"`
	TranslationLang string `yaml:"translation_lang" env:"ONOMATO_MATCH_TRANSLATION_LANG" env-default:"kor"`
}

// OutputConfig holds where stage artifacts and the export database go.
type OutputConfig struct {
	Dir       string `yaml:"dir"        env:"ONOMATO_OUTPUT_DIR"        env-default:"output"`
	ExportDB  string `yaml:"export_db"  env:"ONOMATO_OUTPUT_EXPORT_DB"  env-default:"output/onomatopoeia.db"`
	BatchSize int    `yaml:"batch_size" env:"ONOMATO_OUTPUT_BATCH_SIZE" env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"ONOMATO_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"ONOMATO_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path loads
// ENV + defaults only; a path that does not exist is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks values the env-default tags cannot express.
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary.path is required")
	}
	if len(c.Dictionary.Markers) == 0 {
		return fmt.Errorf("dictionary.markers must not be empty")
	}
	if c.Dictionary.MaxGlosses <= 0 {
		return fmt.Errorf("dictionary.max_glosses must be > 0 (got %d)", c.Dictionary.MaxGlosses)
	}
	if c.Corpus.SourceLang == "" || c.Corpus.ReferenceLang == "" {
		return fmt.Errorf("corpus.source_lang and corpus.reference_lang are required")
	}
	if c.Match.Workers < 0 {
		return fmt.Errorf("match.workers must be >= 0 (got %d)", c.Match.Workers)
	}
	if c.Match.CacheSize <= 0 {
		return fmt.Errorf("match.cache_size must be > 0 (got %d)", c.Match.CacheSize)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}
	return nil
}
