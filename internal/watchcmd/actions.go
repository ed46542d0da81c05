// Package watchcmd relabels a SERP snapshot whenever the file changes,
// the way the live page is relabeled as results stream in.
package watchcmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/grephuman/grephuman/pkg/annotate"
	"github.com/grephuman/grephuman/pkg/db"
	"github.com/grephuman/grephuman/pkg/serp"
	"github.com/grephuman/grephuman/pkg/storage"
	"github.com/grephuman/grephuman/pkg/watch"
)

func WatchAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	input := c.String("input")
	output := c.String("output")
	if output == "" {
		output = input + ".labeled.html"
	}

	window, err := time.ParseDuration(c.String("window"))
	if err != nil {
		logger.Error("invalid window duration", "error", err)
		os.Exit(2)
	}
	interval, err := time.ParseDuration(c.String("poll-interval"))
	if err != nil {
		logger.Error("invalid poll-interval duration", "error", err)
		os.Exit(2)
	}
	hide := c.Bool("hide")

	s := &storage.Storage{}
	if !s.HasFile(input) {
		logger.Error("input file not found", "input", input)
		os.Exit(2)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	relabel := func() {
		if err := relabelFile(logger, database, s, input, output, hide); err != nil {
			logger.Error("Relabel pass failed", "input", input, "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Label the current contents before waiting for changes.
	relabel()

	src := watch.NewFileSource(input, interval)
	go src.Run(ctx)

	logger.Info("Watching for changes", "input", input, "output", output, "window", window)
	watcher := watch.New(window, relabel)
	watcher.Run(ctx, src)

	logger.Info("Watch stopped")
	return nil
}

// relabelFile runs one labeling pass over the input file and rewrites the
// annotated output.
func relabelFile(logger *slog.Logger, database *db.DB, s *storage.Storage, input, output string, hide bool) error {
	rawHTML, err := s.ReadFile(input)
	if err != nil {
		return err
	}

	page, err := serp.Parse("", bytes.NewReader(rawHTML))
	if err != nil {
		return err
	}

	engine := annotate.NewEngine(page)
	pass := engine.LabelAll()
	hidden := 0
	if hide {
		hidden = engine.HideFlagged()
	}
	page.InjectStyles()

	html, err := page.HTML()
	if err != nil {
		return err
	}
	if err := s.SaveFile(output, []byte(html)); err != nil {
		return err
	}

	logger.Info("Relabeled", "input", input, "labeled", pass.Labeled, "slop", pass.Slop, "hidden", hidden)

	runID, err := database.InsertRun(db.RunRecord{
		Source:  "watch",
		Total:   pass.Labeled + pass.Skipped,
		NotAI:   pass.NotAI,
		MaybeAI: pass.MaybeAI,
		Slop:    pass.Slop,
		Skipped: pass.Skipped,
		Hidden:  hidden,
	})
	if err != nil {
		logger.Warn("Failed to record run", "error", err)
		return nil
	}
	for _, d := range pass.Details {
		record := db.VerdictRecord{
			Input:         input,
			Title:         d.Title,
			SlopScore:     d.SlopScore,
			Verdict:       d.Verdict,
			PublishedDate: d.PublishedDate,
			Tooltip:       d.Tooltip,
		}
		if err := database.InsertVerdict(runID, record); err != nil {
			logger.Warn("Failed to record verdict", "error", err)
		}
	}
	return nil
}
