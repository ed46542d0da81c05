package label

import (
	"github.com/grephuman/grephuman/pkg/annotate"
	"github.com/grephuman/grephuman/pkg/serp"
)

// Job is one page to label, either a local file or a live URL.
type Job struct {
	Input string // file path, empty for URL jobs
	URL   string
}

// Result holds the outcome of a processed job.
type Result struct {
	Input         string
	OutputPath    string
	Report        annotate.PassReport
	Hidden        int
	PhraseHits    map[string]int
	Error         error
	ErrorType     string
	FileSizeBytes int64

	page *serp.Page
}

// ResultOutput is the structured output for a single input.
type ResultOutput struct {
	Input      string `json:"input" yaml:"input"`
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	Status     string `json:"status" yaml:"status"`
	Labeled    int    `json:"labeled" yaml:"labeled"`
	NotAI      int    `json:"not_ai" yaml:"not_ai"`
	MaybeAI    int    `json:"maybe_ai" yaml:"maybe_ai"`
	Slop       int    `json:"slop" yaml:"slop"`
	Skipped    int    `json:"skipped" yaml:"skipped"`
	Hidden     int    `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType  string `json:"error_type,omitempty" yaml:"error_type,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalInputs      int      `json:"total_inputs" yaml:"total_inputs"`
	Successful       int      `json:"successful" yaml:"successful"`
	Failed           int      `json:"failed" yaml:"failed"`
	Labeled          int      `json:"labeled" yaml:"labeled"`
	NotAI            int      `json:"not_ai" yaml:"not_ai"`
	MaybeAI          int      `json:"maybe_ai" yaml:"maybe_ai"`
	Slop             int      `json:"slop" yaml:"slop"`
	Skipped          int      `json:"skipped" yaml:"skipped"`
	Hidden           int      `json:"hidden" yaml:"hidden"`
	TotalTimeSeconds float64  `json:"total_time_seconds" yaml:"total_time_seconds"`
	TopPhrases       []string `json:"top_phrases,omitempty" yaml:"top_phrases,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}

// RunSummary is the per-session summary written to summary.yaml.
type RunSummary struct {
	SessionID string         `yaml:"session_id"`
	Inputs    []string       `yaml:"inputs"`
	Results   []ResultOutput `yaml:"results"`
	Stats     Stats          `yaml:"stats"`
}
