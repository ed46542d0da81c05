package models

// Settings are the persisted defaults written once when the database is
// first created. The labeling core reads them but never writes them back.
type Settings struct {
	AutoAnalyze         bool `json:"auto_analyze" yaml:"auto_analyze"`
	ShowNotifications   bool `json:"show_notifications" yaml:"show_notifications"`
	GoogleFilterEnabled bool `json:"google_filter_enabled" yaml:"google_filter_enabled"`
}

// DefaultSettings returns the first-install defaults.
func DefaultSettings() Settings {
	return Settings{
		AutoAnalyze:         true,
		ShowNotifications:   false,
		GoogleFilterEnabled: false,
	}
}
