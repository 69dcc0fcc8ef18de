package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default export settings
	DefaultCellSize float64 `json:"default_cell_size"` // mm per board cell in PDF/DXF exports
	DefaultWorkers  int     `json:"default_workers"`   // solver fan-out, 1 = sequential

	// Application preferences
	RecentPuzzles []string `json:"recent_puzzles"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCellSize: 15.0,
		DefaultWorkers:  1,
		RecentPuzzles:   []string{},
	}
}
