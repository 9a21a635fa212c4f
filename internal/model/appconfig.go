package model

import "time"

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default search settings applied to new sessions
	DefaultRadius               float32 `json:"default_radius" toml:"default_radius"`
	DefaultSwapCount            int     `json:"default_swap_count" toml:"default_swap_count"`
	DefaultRadialMargin         float32 `json:"default_radial_margin" toml:"default_radial_margin"`
	DefaultRadialStep           float32 `json:"default_radial_step" toml:"default_radial_step"`
	DefaultMaxPlacementAttempts int     `json:"default_max_placement_attempts" toml:"default_max_placement_attempts"`
	RedrawIntervalMicros        int64   `json:"redraw_interval_us" toml:"redraw_interval_us"`
	Seed                        int64   `json:"seed" toml:"seed"` // 0 = time based

	// Plot output
	Plot PlotSettings `json:"plot" toml:"plot"`

	// Application preferences
	LogLevel      string   `json:"log_level" toml:"log_level"` // logrus level name
	Theme         string   `json:"theme" toml:"theme"`         // "light", "dark", "system"
	RecentImports []string `json:"recent_imports" toml:"recent_imports"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultRadius:               defaults.Radius,
		DefaultSwapCount:            defaults.SwapCount,
		DefaultRadialMargin:         defaults.RadialMargin,
		DefaultRadialStep:           defaults.RadialStep,
		DefaultMaxPlacementAttempts: defaults.MaxPlacementAttempts,
		RedrawIntervalMicros:        defaults.RedrawInterval.Microseconds(),
		Seed:                        defaults.Seed,
		Plot:                        DefaultPlotSettings(),
		LogLevel:                    "info",
		Theme:                       "dark",
		RecentImports:               []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a SearchSettings struct.
// Out-of-range values fall back to the built-in defaults.
func (c AppConfig) ApplyToSettings(s *SearchSettings) {
	s.Radius = c.DefaultRadius
	s.SwapCount = c.DefaultSwapCount
	s.RadialMargin = c.DefaultRadialMargin
	s.RadialStep = c.DefaultRadialStep
	s.MaxPlacementAttempts = c.DefaultMaxPlacementAttempts
	s.RedrawInterval = time.Duration(c.RedrawIntervalMicros) * time.Microsecond
	s.Seed = c.Seed
	*s = s.Normalized()
}

// Settings returns the search settings described by the config.
func (c AppConfig) Settings() SearchSettings {
	s := DefaultSettings()
	c.ApplyToSettings(&s)
	return s
}

// RememberImport records path at the front of RecentImports, keeping at most max entries.
func (c *AppConfig) RememberImport(path string, max int) {
	list := []string{path}
	for _, p := range c.RecentImports {
		if p != path {
			list = append(list, p)
		}
	}
	if max > 0 && len(list) > max {
		list = list[:max]
	}
	c.RecentImports = list
}
