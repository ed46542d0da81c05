// Package inspectcmd runs the deep single-page analysis from the CLI.
package inspectcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/grephuman/grephuman/pkg/db"
	"github.com/grephuman/grephuman/pkg/fetcher"
	"github.com/grephuman/grephuman/pkg/inspect"
	"github.com/grephuman/grephuman/pkg/storage"
)

func InspectAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	rawURL := c.String("url")
	input := c.String("input")
	if rawURL == "" {
		fmt.Fprintln(os.Stderr, "Error: No URL provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  grephuman inspect --url "https://example.com/post"`)
		fmt.Fprintln(os.Stderr, `  grephuman inspect --url "https://example.com/post" --input saved.html`)
		os.Exit(1)
	}

	var rawHTML []byte
	var err error
	if input != "" {
		s := &storage.Storage{}
		rawHTML, err = s.ReadFile(input)
		if err != nil {
			logger.Error("failed to read input", "input", input, "error", err)
			os.Exit(2)
		}
	} else {
		f := fetcher.NewFetcher()
		rawHTML, err = f.Fetch(context.Background(), rawURL)
		if err != nil {
			logger.Error("failed to fetch page", "url", rawURL, "error", err)
			os.Exit(2)
		}
	}

	analyzer := inspect.New()
	result, err := analyzer.Analyze(rawURL, string(rawHTML))
	if err != nil {
		logger.Error("analysis failed", "url", rawURL, "error", err)
		os.Exit(2)
	}

	if database, err := db.Open(); err != nil {
		logger.Warn("Failed to open database, run will not be recorded", "error", err)
	} else {
		defer database.Close()
		recordInspection(logger, database, result)
	}

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(result)
	} else {
		outputData, marshalErr = json.MarshalIndent(result, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal report", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	return nil
}

func recordInspection(logger *slog.Logger, database *db.DB, result *inspect.Report) {
	run := db.RunRecord{Source: "inspect", Total: 1}
	switch result.Verdict {
	case "not-ai":
		run.NotAI = 1
	case "maybe-ai":
		run.MaybeAI = 1
	case "slop":
		run.Slop = 1
	}

	runID, err := database.InsertRun(run)
	if err != nil {
		logger.Warn("Failed to record run", "error", err)
		return
	}
	record := db.VerdictRecord{
		Input:         result.URL,
		Title:         result.Title,
		SlopScore:     result.SlopScore,
		Verdict:       result.Verdict,
		PublishedDate: result.PublishedDate,
		Tooltip:       result.Tooltip,
	}
	if err := database.InsertVerdict(runID, record); err != nil {
		logger.Warn("Failed to record verdict", "error", err)
	}
}
