package models

// LabelConfig holds runtime configuration for label runs.
// All values come from CLI flags, not external config files.
type LabelConfig struct {
	URLs        []string // live pages to fetch and label
	Inputs      []string // local SERP HTML files to label
	WorkerCount int
	OutputDir   string
}
