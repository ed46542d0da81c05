package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/grephuman/grephuman/models"
)

// Setting keys persisted in the settings table.
const (
	SettingAutoAnalyze         = "auto_analyze"
	SettingShowNotifications   = "show_notifications"
	SettingGoogleFilterEnabled = "google_filter_enabled"
)

// RunRecord describes one labeling pass for insertion and listing.
type RunRecord struct {
	RunID     int64
	SessionID string
	Source    string
	CreatedAt time.Time
	Total     int
	NotAI     int
	MaybeAI   int
	Slop      int
	Skipped   int
	Hidden    int
}

// VerdictRecord describes one classified document within a run.
type VerdictRecord struct {
	Input         string
	Title         string
	SlopScore     int
	Verdict       string
	PublishedDate string
	Tooltip       string
}

// SessionRecord describes one labeling batch.
type SessionRecord struct {
	SessionID  string
	CreatedAt  time.Time
	InputCount int
	SessionDir string
}

// SeedDefaultSettings inserts the default preferences without overwriting
// values the user already changed.
func (db *DB) SeedDefaultSettings() error {
	defaults := models.DefaultSettings()
	seed := map[string]bool{
		SettingAutoAnalyze:         defaults.AutoAnalyze,
		SettingShowNotifications:   defaults.ShowNotifications,
		SettingGoogleFilterEnabled: defaults.GoogleFilterEnabled,
	}

	for key, value := range seed {
		_, err := db.Exec(`
			INSERT OR IGNORE INTO settings (key, value)
			VALUES (?, ?)
		`, key, strconv.FormatBool(value))
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}
	return nil
}

// GetSetting returns the stored value for a key.
func (db *DB) GetSetting(key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting not found: %s", key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting upserts a setting value.
func (db *DB) SetSetting(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// Settings assembles the typed preferences from the settings table,
// falling back to defaults for missing or malformed values.
func (db *DB) Settings() (models.Settings, error) {
	settings := models.DefaultSettings()

	rows, err := db.Query("SELECT key, value FROM settings")
	if err != nil {
		return settings, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("failed to scan setting: %w", err)
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			continue
		}
		switch key {
		case SettingAutoAnalyze:
			settings.AutoAnalyze = parsed
		case SettingShowNotifications:
			settings.ShowNotifications = parsed
		case SettingGoogleFilterEnabled:
			settings.GoogleFilterEnabled = parsed
		}
	}
	return settings, rows.Err()
}

// InsertSession records a labeling batch. Re-inserting the same session
// ID updates its input count and directory.
func (db *DB) InsertSession(sessionID string, inputCount int, sessionDir string) error {
	_, err := db.Exec(`
		INSERT INTO sessions (session_id, input_count, session_dir)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET input_count = excluded.input_count, session_dir = excluded.session_dir
	`, sessionID, inputCount, sessionDir)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// ListSessions returns sessions newest first.
func (db *DB) ListSessions(limit int) ([]SessionRecord, error) {
	rows, err := db.Query(`
		SELECT session_id, created_at, input_count, session_dir
		FROM sessions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		var s SessionRecord
		if err := rows.Scan(&s.SessionID, &s.CreatedAt, &s.InputCount, &s.SessionDir); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// InsertRun records one labeling pass and returns its run_id. SessionID
// may be empty for passes outside a batch (watch mode, server requests).
func (db *DB) InsertRun(run RunRecord) (int64, error) {
	var sessionID any
	if run.SessionID != "" {
		sessionID = run.SessionID
	}

	result, err := db.Exec(`
		INSERT INTO runs (session_id, source, total, not_ai, maybe_ai, slop, skipped, hidden)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, run.Source, run.Total, run.NotAI, run.MaybeAI, run.Slop, run.Skipped, run.Hidden)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns runs newest first.
func (db *DB) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := db.Query(`
		SELECT run_id, COALESCE(session_id, ''), source, created_at, total, not_ai, maybe_ai, slop, skipped, hidden
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.RunID, &r.SessionID, &r.Source, &r.CreatedAt, &r.Total, &r.NotAI, &r.MaybeAI, &r.Slop, &r.Skipped, &r.Hidden); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// InsertVerdict records one classified document within a run.
func (db *DB) InsertVerdict(runID int64, v VerdictRecord) error {
	_, err := db.Exec(`
		INSERT INTO verdicts (run_id, input, title, slop_score, verdict, published_date, tooltip)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, v.Input, v.Title, v.SlopScore, v.Verdict, v.PublishedDate, v.Tooltip)
	if err != nil {
		return fmt.Errorf("failed to insert verdict: %w", err)
	}
	return nil
}

// ListVerdicts returns the verdicts recorded for a run in insertion order.
func (db *DB) ListVerdicts(runID int64) ([]VerdictRecord, error) {
	rows, err := db.Query(`
		SELECT input, COALESCE(title, ''), slop_score, verdict, COALESCE(published_date, ''), COALESCE(tooltip, '')
		FROM verdicts
		WHERE run_id = ?
		ORDER BY verdict_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query verdicts: %w", err)
	}
	defer rows.Close()

	var verdicts []VerdictRecord
	for rows.Next() {
		var v VerdictRecord
		if err := rows.Scan(&v.Input, &v.Title, &v.SlopScore, &v.Verdict, &v.PublishedDate, &v.Tooltip); err != nil {
			return nil, fmt.Errorf("failed to scan verdict: %w", err)
		}
		verdicts = append(verdicts, v)
	}
	return verdicts, rows.Err()
}
