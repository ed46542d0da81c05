package label

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/grephuman/grephuman/internal/common"
	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/caching"
	"github.com/grephuman/grephuman/pkg/db"
	"github.com/grephuman/grephuman/pkg/fetcher"
	"github.com/grephuman/grephuman/pkg/mapreduce"
	"github.com/grephuman/grephuman/pkg/report"
)

// splitFlag splits a comma-separated flag value, dropping empty entries.
func splitFlag(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func LabelAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.LabelConfig{
		Inputs:      splitFlag(c.String("inputs")),
		URLs:        splitFlag(c.String("urls")),
		WorkerCount: c.Int("workers"),
		OutputDir:   c.String("output-dir"),
	}

	if len(config.Inputs) == 0 && len(config.URLs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No inputs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  grephuman label --inputs "serp1.html,serp2.html"`)
		fmt.Fprintln(os.Stderr, `  grephuman label --urls "https://www.google.com/search?q=best+laptops"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: grephuman label --help")
		os.Exit(1)
	}

	if len(config.URLs) > 0 {
		sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(config.URLs)
		if len(invalidURLs) > 0 {
			fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
			for _, badURL := range invalidURLs {
				fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
			}
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Note: URLs are auto-cleaned (whitespace trimmed, trailing punctuation removed, markdown links extracted)")
			os.Exit(1)
		}
		config.URLs = sanitizedURLs
	}

	maxAge, err := time.ParseDuration(c.String("cache-max-age"))
	if err != nil {
		logger.Error("invalid cache-max-age duration", "error", err)
		os.Exit(2)
	}

	var f *fetcher.Fetcher
	if maxAge > 0 {
		cache, err := caching.NewCache(c.String("cache-dir"), maxAge)
		if err != nil {
			logger.Error("failed to initialize cache", "error", err)
			os.Exit(2)
		}
		f = fetcher.NewCachedFetcher(cache)
	} else {
		f = fetcher.NewFetcher()
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	if err := database.SeedDefaultSettings(); err != nil {
		logger.Warn("Failed to seed default settings", "error", err)
	}

	hide := c.Bool("hide")
	if !c.IsSet("hide") {
		settings, err := database.Settings()
		if err != nil {
			logger.Warn("Failed to read settings, using defaults", "error", err)
		} else {
			hide = settings.GoogleFilterEnabled
		}
	}

	allInputs := append(append([]string{}, config.Inputs...), config.URLs...)
	sessionID := report.GenerateSessionID(allInputs)

	allResults, finalPhraseCounts, runErr := run(context.Background(), logger, config, f, hide)

	stats := Stats{
		TotalInputs:      len(allInputs),
		TotalTimeSeconds: time.Since(startTime).Seconds(),
		TopPhrases:       mapreduce.TopPhrases(finalPhraseCounts, 25),
	}

	outputs := make([]ResultOutput, 0, len(allResults))
	for _, r := range allResults {
		out := ResultOutput{
			Input:      r.Input,
			OutputPath: r.OutputPath,
			Labeled:    r.Report.Labeled,
			NotAI:      r.Report.NotAI,
			MaybeAI:    r.Report.MaybeAI,
			Slop:       r.Report.Slop,
			Skipped:    r.Report.Skipped,
			Hidden:     r.Hidden,
		}
		if r.Error != nil {
			stats.Failed++
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
		} else {
			stats.Successful++
			out.Status = "success"
			stats.Labeled += r.Report.Labeled
			stats.NotAI += r.Report.NotAI
			stats.MaybeAI += r.Report.MaybeAI
			stats.Slop += r.Report.Slop
			stats.Skipped += r.Report.Skipped
			stats.Hidden += r.Hidden
		}
		outputs = append(outputs, out)
	}

	recordRun(logger, database, sessionID, config, allResults, stats)

	baseDir := c.String("results-dir")
	summary := RunSummary{
		SessionID: sessionID,
		Inputs:    allInputs,
		Results:   outputs,
		Stats:     stats,
	}
	if err := report.WriteSummary(baseDir, sessionID, summary); err != nil {
		logger.Warn("Failed to write session summary", "error", err)
	}
	sessionInfo := report.SessionInfo{
		SessionID:     sessionID,
		Created:       time.Now(),
		InputCount:    len(allInputs),
		Labeled:       stats.Labeled,
		NotAI:         stats.NotAI,
		MaybeAI:       stats.MaybeAI,
		Slop:          stats.Slop,
		Skipped:       stats.Skipped,
		InputsPreview: report.GetInputsPreview(allInputs, 3),
	}
	if err := report.UpdateSessionIndex(baseDir, sessionInfo); err != nil {
		logger.Warn("Failed to update session index", "error", err)
	}

	finalOutput := FinalOutput{Results: outputs, Stats: stats}
	if runErr != nil {
		finalOutput.Status = "partial_failure"
	} else {
		finalOutput.Status = "success"
	}

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(finalOutput)
	} else {
		outputData, marshalErr = json.MarshalIndent(finalOutput, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal final output", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	if stats.Failed == stats.TotalInputs {
		os.Exit(2)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}

	return nil
}

// recordRun persists the session, run totals, and per-result verdicts.
func recordRun(logger *slog.Logger, database *db.DB, sessionID string, config *models.LabelConfig, allResults []Result, stats Stats) {
	if err := database.InsertSession(sessionID, stats.TotalInputs, config.OutputDir); err != nil {
		logger.Warn("Failed to insert session", "error", err)
		return
	}

	runID, err := database.InsertRun(db.RunRecord{
		SessionID: sessionID,
		Source:    "label",
		Total:     stats.TotalInputs,
		NotAI:     stats.NotAI,
		MaybeAI:   stats.MaybeAI,
		Slop:      stats.Slop,
		Skipped:   stats.Skipped,
		Hidden:    stats.Hidden,
	})
	if err != nil {
		logger.Warn("Failed to insert run", "error", err)
		return
	}

	for _, r := range allResults {
		for _, d := range r.Report.Details {
			record := db.VerdictRecord{
				Input:         r.Input,
				Title:         d.Title,
				SlopScore:     d.SlopScore,
				Verdict:       d.Verdict,
				PublishedDate: d.PublishedDate,
				Tooltip:       d.Tooltip,
			}
			if err := database.InsertVerdict(runID, record); err != nil {
				logger.Warn("Failed to insert verdict", "input", r.Input, "error", err)
			}
		}
	}
}
