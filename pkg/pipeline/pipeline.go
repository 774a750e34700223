// Package pipeline runs the enrichment stages in order. Each stage reads the
// previous stage's JSON artifact from the output directory and writes its own,
// so any stage can be rerun on its own.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/japaniel/onomato/pkg/config"
	"github.com/japaniel/onomato/pkg/dictionary"
)

const (
	StageExtract    = "extract"
	StageCategorize = "categorize"
	StageExamples   = "examples"
	StageTranslate  = "translate"
	StageApp        = "app"
	StageExport     = "export"
)

// AllStages is the canonical execution order.
var AllStages = []string{StageExtract, StageCategorize, StageExamples, StageTranslate, StageApp, StageExport}

// Artifact file names inside the output directory.
const (
	ExtractedFile   = "extracted.json"
	CategorizedFile = "categorized.json"
	ExamplesFile    = "examples.json"
	FinalFile       = "final.json"
	AppFile         = "app.json"
)

// PhaseResult holds the outcome of a single stage.
type PhaseResult struct {
	Records  int
	Matched  int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the stages of one run.
type Pipeline struct {
	log     *slog.Logger
	cfg     config.Config
	results map[string]PhaseResult
}

// New creates a Pipeline. A nil logger discards.
func New(cfg config.Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{log: log, cfg: cfg, results: make(map[string]PhaseResult)}
}

// Results returns stage results after Run.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

func (p *Pipeline) artifact(name string) string {
	return filepath.Join(p.cfg.Output.Dir, name)
}

// Fetch downloads the dictionary source if it is missing locally.
func (p *Pipeline) Fetch(ctx context.Context) error {
	return dictionary.EnsureSource(ctx, p.cfg.Dictionary.Path, p.cfg.Dictionary.URL, p.log)
}

// Run executes the named stages in canonical order; an empty list runs all of
// them. The first failing stage stops the run since later stages read its output.
func (p *Pipeline) Run(ctx context.Context, stages []string) error {
	toRun, err := selectStages(stages)
	if err != nil {
		return err
	}

	for _, stage := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		p.log.Info("starting stage", slog.String("stage", stage))

		var result PhaseResult
		switch stage {
		case StageExtract:
			result = p.runExtract(ctx)
		case StageCategorize:
			result = p.runCategorize(ctx)
		case StageExamples:
			result = p.runExamples(ctx)
		case StageTranslate:
			result = p.runTranslate(ctx)
		case StageApp:
			result = p.runApp(ctx)
		case StageExport:
			result = p.runExport(ctx)
		}
		result.Duration = time.Since(start)
		p.results[stage] = result

		if result.Err != nil {
			p.log.Error("stage failed",
				slog.String("stage", stage),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("stage %s: %w", stage, result.Err)
		}
		p.log.Info("stage completed",
			slog.String("stage", stage),
			slog.Int("records", result.Records),
			slog.Int("matched", result.Matched),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("stages_run", len(toRun)))
	return nil
}

// selectStages filters AllStages by names, keeping canonical order. "all"
// selects every stage.
func selectStages(names []string) ([]string, error) {
	if len(names) == 0 {
		return AllStages, nil
	}
	filter := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "all" {
			return AllStages, nil
		}
		if !slices.Contains(AllStages, n) {
			return nil, fmt.Errorf("unknown stage %q", n)
		}
		filter[n] = true
	}
	var out []string
	for _, s := range AllStages {
		if filter[s] {
			out = append(out, s)
		}
	}
	return out, nil
}
