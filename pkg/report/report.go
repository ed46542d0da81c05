// Package report manages labeling-run sessions on disk: session IDs,
// per-session directories, YAML summaries, and the root index.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// SessionInfo represents metadata about one labeling session.
type SessionInfo struct {
	SessionID     string    `yaml:"session_id"`
	Created       time.Time `yaml:"created"`
	InputCount    int       `yaml:"input_count"`
	Labeled       int       `yaml:"labeled"`
	NotAI         int       `yaml:"not_ai"`
	MaybeAI       int       `yaml:"maybe_ai"`
	Slop          int       `yaml:"slop"`
	Skipped       int       `yaml:"skipped"`
	InputsPreview []string  `yaml:"inputs_preview,omitempty"` // First 3 inputs
}

// SessionIndex represents the index.yaml file at the results root.
type SessionIndex struct {
	Sessions []SessionInfo `yaml:"sessions"`
}

// GenerateSessionID creates a timestamp-first session ID from the input list.
// Format: YYYY-MM-DDTHH-MM-{hash}
// Hash is derived from the sorted input list so the same batch hashes alike.
func GenerateSessionID(inputs []string) string {
	normalized := make([]string, len(inputs))
	copy(normalized, inputs)
	sort.Strings(normalized)

	h := sha256.New()
	for _, input := range normalized {
		h.Write([]byte(input))
		h.Write([]byte("\n"))
	}
	hashBytes := h.Sum(nil)
	shortHash := hex.EncodeToString(hashBytes[:6]) // 12 char hex

	timestamp := time.Now().Format("2006-01-02T15-04")

	return fmt.Sprintf("%s-%s", timestamp, shortHash)
}

// GetSessionDir returns the full path to a session directory.
func GetSessionDir(baseDir, sessionID string) string {
	return filepath.Join(baseDir, "sessions", sessionID)
}

// GetSessionsIndexPath returns the path to the sessions index file.
func GetSessionsIndexPath(baseDir string) string {
	return filepath.Join(baseDir, "index.yaml")
}

// SessionExists checks if a session directory exists and has a summary file.
func SessionExists(baseDir, sessionID string) bool {
	summaryPath := filepath.Join(GetSessionDir(baseDir, sessionID), "summary.yaml")
	_, err := os.Stat(summaryPath)
	return err == nil
}

// EnsureSessionDir creates the session directory structure if it doesn't exist.
func EnsureSessionDir(baseDir, sessionID string) error {
	sessionDir := GetSessionDir(baseDir, sessionID)
	sessionsRoot := filepath.Join(baseDir, "sessions")

	if err := os.MkdirAll(sessionsRoot, 0755); err != nil {
		return fmt.Errorf("failed to create sessions directory: %w", err)
	}

	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	return nil
}

// WriteSummary marshals the session summary to summary.yaml inside the
// session directory.
func WriteSummary(baseDir, sessionID string, summary any) error {
	if err := EnsureSessionDir(baseDir, sessionID); err != nil {
		return err
	}

	output, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal session summary: %w", err)
	}

	summaryPath := filepath.Join(GetSessionDir(baseDir, sessionID), "summary.yaml")
	if err := os.WriteFile(summaryPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write session summary: %w", err)
	}

	return nil
}

// UpdateSessionIndex adds or updates a session entry in index.yaml.
func UpdateSessionIndex(baseDir string, info SessionInfo) error {
	indexPath := GetSessionsIndexPath(baseDir)

	var index SessionIndex
	data, err := os.ReadFile(indexPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read session index: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("failed to parse session index: %w", err)
		}
	}

	found := false
	for i, s := range index.Sessions {
		if s.SessionID == info.SessionID {
			index.Sessions[i] = info
			found = true
			break
		}
	}

	if !found {
		index.Sessions = append(index.Sessions, info)
	}

	// Timestamp-first naming keeps this chronological, newest first.
	sort.Slice(index.Sessions, func(i, j int) bool {
		return index.Sessions[i].SessionID > index.Sessions[j].SessionID
	})

	output, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal session index: %w", err)
	}

	if err := os.WriteFile(indexPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write session index: %w", err)
	}

	return nil
}

// ReadSessionIndex loads index.yaml from the results root. A missing
// index returns an empty list.
func ReadSessionIndex(baseDir string) (*SessionIndex, error) {
	data, err := os.ReadFile(GetSessionsIndexPath(baseDir))
	if os.IsNotExist(err) {
		return &SessionIndex{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session index: %w", err)
	}

	var index SessionIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse session index: %w", err)
	}
	return &index, nil
}

// GetInputsPreview returns the first N inputs from a list for preview purposes.
func GetInputsPreview(inputs []string, n int) []string {
	if len(inputs) <= n {
		return inputs
	}
	return inputs[:n]
}
