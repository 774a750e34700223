package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/japaniel/onomato/pkg/category"
	"github.com/japaniel/onomato/pkg/corpus"
	"github.com/japaniel/onomato/pkg/db"
	"github.com/japaniel/onomato/pkg/dictionary"
	"github.com/japaniel/onomato/pkg/match"
	"github.com/japaniel/onomato/pkg/reading"
	"github.com/japaniel/onomato/pkg/translate"
)

// runExtract pulls tagged entries from the dictionary and applies the coarse pass.
func (p *Pipeline) runExtract(_ context.Context) PhaseResult {
	d := p.cfg.Dictionary
	entries, stats, err := dictionary.ExtractFile(d.Path, dictionary.Options{
		Markers:    d.Markers,
		GlossLang:  d.GlossLang,
		MaxGlosses: d.MaxGlosses,
		Delimiter:  d.Delimiter,
		Provenance: d.Provenance,
		Logger:     p.log,
	})
	if err != nil {
		return PhaseResult{Err: err}
	}
	p.log.Info("dictionary scanned",
		slog.Int("scanned", stats.Scanned),
		slog.Int("selected", stats.Selected),
		slog.Int("no_gloss", stats.NoGloss),
		slog.Int("malformed", stats.Malformed),
		slog.Int("entities", stats.Entities),
	)

	category.Default().Coarse(entries)
	p.logDistribution(entries)

	if err := dictionary.WriteArtifact(p.artifact(ExtractedFile), entries); err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Records: len(entries), Skipped: stats.NoGloss + stats.Malformed}
}

// runCategorize applies the fine-grained pass.
func (p *Pipeline) runCategorize(_ context.Context) PhaseResult {
	entries, err := dictionary.ReadArtifact(p.artifact(ExtractedFile))
	if err != nil {
		return PhaseResult{Err: err}
	}
	matched := category.Default().Refine(entries)
	p.logDistribution(entries)

	if err := dictionary.WriteArtifact(p.artifact(CategorizedFile), entries); err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Records: len(entries), Matched: matched}
}

// runExamples loads the sentence corpus and attaches examples.
func (p *Pipeline) runExamples(ctx context.Context) PhaseResult {
	entries, err := dictionary.ReadArtifact(p.artifact(CategorizedFile))
	if err != nil {
		return PhaseResult{Err: err}
	}

	c := p.cfg.Corpus
	idx, err := corpus.LoadIndex(ctx, corpus.Sources{
		Sentences:   c.Sentences(),
		Links:       c.LinksPath,
		Articles:    c.Articles,
		ArticleLang: c.SourceLang,
		Logger:      p.log,
	})
	if err != nil {
		return PhaseResult{Err: err}
	}
	for _, lang := range []string{c.SourceLang, c.ReferenceLang, c.ThirdLang} {
		if col := idx.Collection(lang); col != nil {
			p.log.Info("corpus loaded", slog.String("lang", lang), slog.Int("sentences", col.Len()))
		}
	}
	p.log.Info("links loaded", slog.Int("edges", idx.Links.Edges()))

	opts := match.Options{
		Source:    c.SourceLang,
		Reference: c.ReferenceLang,
		Third:     c.ThirdLang,
		Workers:   p.cfg.Match.Workers,
		CacheSize: p.cfg.Match.CacheSize,
		Logger:    p.log,
	}
	if p.cfg.Match.ExampleReadings {
		analyzer, err := reading.NewAnalyzer()
		if err != nil {
			p.log.Warn("example readings disabled", slog.String("error", err.Error()))
		} else {
			opts.Reader = analyzer
		}
	}
	m, err := match.New(idx, opts)
	if err != nil {
		return PhaseResult{Err: err}
	}
	stats, err := m.MatchAll(ctx, entries)
	if err != nil {
		return PhaseResult{Err: err}
	}
	p.log.Info("examples attached",
		slog.Int("matched", stats.Matched),
		slog.Int("with_meaning", stats.WithMeaning),
		slog.String("coverage", percent(stats.Matched, stats.Entries)),
	)
	for lang, n := range stats.ByLang {
		p.log.Info("example meanings", slog.String("lang", lang), slog.Int("count", n))
	}

	if err := dictionary.WriteArtifact(p.artifact(ExamplesFile), entries); err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Records: len(entries), Matched: stats.Matched, Skipped: len(entries) - stats.Matched}
}

// runTranslate merges the built-in short translations.
func (p *Pipeline) runTranslate(_ context.Context) PhaseResult {
	entries, err := dictionary.ReadArtifact(p.artifact(ExamplesFile))
	if err != nil {
		return PhaseResult{Err: err}
	}
	lang := p.cfg.Match.TranslationLang
	var table translate.Table
	switch lang {
	case "kor":
		table = translate.Korean()
	default:
		p.log.Warn("no built-in translation table", slog.String("lang", lang))
	}
	n := translate.New(lang, table).Merge(entries)

	examples := 0
	for _, e := range entries {
		if e.HasExample() {
			examples++
		}
	}
	p.log.Info("translations merged",
		slog.String("lang", lang),
		slog.Int("translated", n),
		slog.String("translation_coverage", percent(n, len(entries))),
		slog.String("example_coverage", percent(examples, len(entries))),
	)

	if err := dictionary.WriteArtifact(p.artifact(FinalFile), entries); err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Records: len(entries), Matched: n}
}

// runApp writes the app-ready JSON with display labels.
func (p *Pipeline) runApp(_ context.Context) PhaseResult {
	entries, err := dictionary.ReadArtifact(p.artifact(FinalFile))
	if err != nil {
		return PhaseResult{Err: err}
	}
	records := ToAppRecords(entries)

	labels := make(map[string]int)
	for _, r := range records {
		labels[r.Category]++
	}
	p.log.Info("app categories", slog.Int("labels", len(labels)))

	if err := dictionary.WriteJSON(p.artifact(AppFile), records); err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Records: len(records)}
}

// runExport writes the final record set into the SQLite export database.
func (p *Pipeline) runExport(ctx context.Context) PhaseResult {
	entries, err := dictionary.ReadArtifact(p.artifact(FinalFile))
	if err != nil {
		return PhaseResult{Err: err}
	}
	path := p.cfg.Output.ExportDB
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return PhaseResult{Err: fmt.Errorf("export db %s: %w", path, err)}
	}
	conn, err := db.Open(path)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("export db %s: %w", path, err)}
	}
	defer conn.Close()

	run, err := db.CreateRun(conn, p.cfg.Dictionary.Provenance)
	if err != nil {
		return PhaseResult{Err: err}
	}

	bw := db.NewBatchWriter(conn, p.cfg.Output.BatchSize, 0, p.log)
	skipped := 0
	for _, e := range entries {
		if ctx.Err() != nil {
			break
		}
		if err := e.Validate(); err != nil {
			p.log.Warn("entry not exported", slog.Int("id", e.ID), slog.String("error", err.Error()))
			skipped++
			continue
		}
		if err := bw.Submit(func(_ context.Context, tx *sql.Tx) error {
			return db.UpsertEntry(tx, run.ID, e)
		}); err != nil {
			_ = bw.Close()
			return PhaseResult{Err: err}
		}
	}
	if err := bw.Close(); err != nil {
		return PhaseResult{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return PhaseResult{Err: err}
	}
	if err := db.FinishRun(conn, run.ID, bw.Written()); err != nil {
		return PhaseResult{Err: err}
	}
	p.log.Info("export written", slog.String("run_id", run.ID), slog.String("path", path))
	return PhaseResult{Records: bw.Written(), Skipped: skipped}
}

func (p *Pipeline) logDistribution(entries []dictionary.LexicalEntry) {
	for _, c := range category.Distribution(entries) {
		p.log.Debug("category", slog.String("category", c.Category), slog.Int("count", c.N))
	}
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", n*100/total)
}
