package label

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/annotate"
	"github.com/grephuman/grephuman/pkg/fetcher"
	"github.com/grephuman/grephuman/pkg/mapreduce"
	"github.com/grephuman/grephuman/pkg/serp"
	"github.com/grephuman/grephuman/pkg/storage"
)

func run(ctx context.Context, logger *slog.Logger, config *models.LabelConfig, f *fetcher.Fetcher, hide bool) ([]Result, map[string]int, error) {
	s := &storage.Storage{}

	jobCount := len(config.Inputs) + len(config.URLs)
	logger.Info("Starting concurrent label phase", "input_count", jobCount, "workers", config.WorkerCount, "hide", hide)

	var wg sync.WaitGroup
	jobs := make(chan Job, jobCount)
	results := make(chan Result, jobCount)

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, f, s, config.OutputDir, hide, &wg, jobs, results)
	}

	for _, input := range config.Inputs {
		jobs <- Job{Input: input}
	}
	for _, rawURL := range config.URLs {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All label workers finished")

	allResults := make([]Result, 0, jobCount)
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more jobs failed")
		}
	}

	logger.Info("Starting phrase aggregation phase")
	intermediateResults := []map[string]int{}
	for _, result := range allResults {
		if result.PhraseHits != nil {
			intermediateResults = append(intermediateResults, result.PhraseHits)
		}
	}
	finalPhraseCounts := mapreduce.Reduce(intermediateResults)

	return allResults, finalPhraseCounts, runErr
}

func worker(ctx context.Context, id int, logger *slog.Logger, f *fetcher.Fetcher, s *storage.Storage, outputDir string, hide bool, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		name := job.Input
		if name == "" {
			name = job.URL
		}
		logger.Info("Worker started job", "worker_id", id, "input", name)

		var rawHTML []byte
		var err error
		if job.URL != "" {
			rawHTML, err = f.Fetch(ctx, job.URL)
			if err != nil {
				logger.Error("Error fetching page", "worker_id", id, "url", job.URL, "error", err)
				results <- Result{Input: name, Error: err, ErrorType: "fetch_error"}
				continue
			}
		} else {
			rawHTML, err = s.ReadFile(job.Input)
			if err != nil {
				logger.Error("Error reading input file", "worker_id", id, "input", job.Input, "error", err)
				results <- Result{Input: name, Error: err, ErrorType: "read_error"}
				continue
			}
		}

		result := labelPage(id, logger, name, job.URL, rawHTML, hide)
		if result.Error != nil {
			results <- result
			continue
		}

		outputPath := filepath.Join(outputDir, outputName(name))
		page := result.page
		html, err := page.HTML()
		if err != nil {
			logger.Error("Error rendering labeled page", "worker_id", id, "input", name, "error", err)
			result.Error = err
			result.ErrorType = "render_error"
			results <- result
			continue
		}

		if err := s.SaveFile(outputPath, []byte(html)); err != nil {
			logger.Error("Error saving labeled page", "worker_id", id, "input", name, "error", err)
			result.Error = err
			result.ErrorType = "save_error"
			results <- result
			continue
		}

		result.OutputPath = outputPath
		result.FileSizeBytes = int64(len(html))
		results <- result
		logger.Info("Worker finished job", "worker_id", id, "input", name, "labeled", result.Report.Labeled, "hidden", result.Hidden)
	}
}

// labelPage parses, classifies, and annotates one page.
func labelPage(id int, logger *slog.Logger, name, rawURL string, rawHTML []byte, hide bool) Result {
	result := Result{Input: name}

	page, err := serp.Parse(rawURL, bytes.NewReader(rawHTML))
	if err != nil {
		logger.Error("Error parsing page", "worker_id", id, "input", name, "error", err)
		result.Error = err
		result.ErrorType = "parse_error"
		return result
	}

	engine := annotate.NewEngine(page)
	if !engine.IsResultsPage() {
		logger.Warn("Input is not a recognized results page, skipping", "worker_id", id, "input", name)
		result.Error = fmt.Errorf("not a results page: %s", name)
		result.ErrorType = "not_results_page"
		return result
	}

	result.Report = engine.LabelAll()
	if hide {
		result.Hidden = engine.HideFlagged()
	}
	page.InjectStyles()

	result.PhraseHits = mapreduce.Map(page.Text())
	result.page = page
	return result
}

// outputName flattens a file path or URL into a filesystem-friendly name.
func outputName(input string) string {
	name := strings.TrimPrefix(input, "https://")
	name = strings.TrimPrefix(name, "http://")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "?", "_")
	name = strings.ReplaceAll(name, "&", "_")
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	return "labeled-" + name
}
