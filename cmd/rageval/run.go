package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/executor"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/report"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/setup"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/sink/sheets"
)

type runOptions struct {
	dir           string
	mode          string
	files         string
	count         int
	verifyStorage bool

	dirSet, modeSet, filesSet, countSet bool
}

// plan is a fully resolved run: what to read, how, and how many questions.
type plan struct {
	mode  models.Mode
	paths []string
	count int
}

func runEvaluation(ctx context.Context, opts runOptions, in io.Reader, out io.Writer, errOut io.Writer) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	p, ok, err := resolvePlan(opts, cfg.DefaultInputDir, newPrompter(in, out))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to prepare run")
		return err
	}
	if !ok {
		return nil
	}

	deps, err := setup.Wire(ctx, cfg, setup.Options{VerifyStorage: opts.verifyStorage, Stream: true}, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		return err
	}
	defer deps.Close()

	logger.Info().
		Str("run_id", deps.Executor.RunID()).
		Str("mode", string(p.mode)).
		Int("files", len(p.paths)).
		Int("count", p.count).
		Msg("Starting evaluation")

	records, runErr := execute(ctx, deps, p)

	// Exports run even after an interrupt so partial results are kept.
	exportCtx := context.WithoutCancel(ctx)
	if p.mode == models.ModeComparison && len(records) > 0 {
		deps.Uploader.Upload(exportCtx, records, sheets.ComparisonTitle(p.paths), "")
	}

	if len(records) > 0 {
		if err := deps.Excel.Write(records); err != nil {
			logger.Error().Err(err).Str("path", deps.Excel.Path()).Msg("Failed to write local export")
		} else {
			fmt.Fprintf(out, "\nDone! Results saved to %s\n", deps.Excel.Path())
		}
	} else {
		fmt.Fprintln(out, "\nNo results generated.")
	}

	summary := deps.Aggregator.Aggregate(records)
	if err := report.Render(errOut, summary); err != nil {
		logger.Error().Err(err).Msg("Failed to render summary")
	}

	switch {
	case errors.Is(runErr, executor.ErrTooFewDocuments):
		fmt.Fprintln(out, "Error: Comparison mode requires at least 2 readable files.")
		return nil
	case errors.Is(runErr, context.Canceled):
		logger.Warn().Int("records", len(records)).Msg("Run interrupted")
		return nil
	}
	return runErr
}

// execute runs the plan. Direct mode processes one file at a time so each
// file gets its own sheet.
func execute(ctx context.Context, deps *setup.Dependencies, p plan) ([]models.ResultRecord, error) {
	if p.mode == models.ModeComparison {
		return deps.Executor.RunComparison(ctx, p.paths, p.count)
	}

	exportCtx := context.WithoutCancel(ctx)
	all := []models.ResultRecord{}
	for _, path := range p.paths {
		records, err := deps.Executor.RunDocuments(ctx, []string{path}, p.count)
		if len(records) > 0 {
			all = append(all, records...)
			deps.Uploader.Upload(exportCtx, records, filepath.Base(path), "")
		}
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

// resolvePlan fills in whatever the flags left open by prompting. ok is
// false when there is nothing to run.
func resolvePlan(opts runOptions, defaultDir string, pr *prompter) (plan, bool, error) {
	dir := opts.dir
	if !opts.dirSet {
		dir = pr.ask(fmt.Sprintf("Enter directory path containing files (default: %s): ", defaultDir))
	}
	if dir == "" {
		dir = defaultDir
	}

	exists, err := ensureDir(dir)
	if err != nil {
		return plan{}, false, err
	}
	if !exists {
		fmt.Fprintf(pr.out, "Directory %s not found. Created it.\nPlease put your PDF/DOCX/TXT files in %s and run again.\n", dir, dir)
		return plan{}, false, nil
	}

	files, err := listDocuments(dir)
	if err != nil {
		return plan{}, false, err
	}
	if len(files) == 0 {
		fmt.Fprintf(pr.out, "No PDF/DOCX/TXT files found in %s\n", dir)
		return plan{}, false, nil
	}

	fmt.Fprintf(pr.out, "\nFound %d document(s):\n", len(files))
	for i, f := range files {
		fmt.Fprintf(pr.out, "  %d. %s\n", i+1, f)
	}

	mode := opts.mode
	if !opts.modeSet {
		fmt.Fprintln(pr.out, "\nSelect Testing Mode:")
		fmt.Fprintln(pr.out, "  1. Comparison (compare across multiple files)")
		fmt.Fprintln(pr.out, "  2. Direct (test individual files separately)")
		mode = pr.ask("Enter choice (1 or 2): ")
	}

	selection := opts.files
	if !opts.filesSet {
		fmt.Fprintln(pr.out, "\nSelect files to test:")
		fmt.Fprintln(pr.out, "  - Enter file numbers separated by commas (e.g., 1,2,3)")
		fmt.Fprintln(pr.out, "  - Or press Enter to use ALL files")
		selection = pr.ask("Your selection: ")
	}

	paths := selectPaths(dir, files, parseSelection(selection, len(files)))
	if len(paths) == 0 {
		fmt.Fprintln(pr.out, "No files selected.")
		return plan{}, false, nil
	}
	fmt.Fprintf(pr.out, "\nSelected %d file(s) for testing.\n", len(paths))

	count := opts.count
	if !opts.countSet {
		count = parseCount(pr.ask(fmt.Sprintf("Enter number of questions to generate per file (default: %d): ", defaultCount)))
	} else if count < 1 {
		count = defaultCount
	}

	return plan{mode: parseMode(mode), paths: paths, count: count}, true, nil
}
