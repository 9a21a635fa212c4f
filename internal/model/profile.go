package model

// PlotterProfile defines a post-processor configuration for tracing a tour
// with a pen plotter or CNC machine.
type PlotterProfile struct {
	Name        string `json:"name"`        // Profile name
	Description string `json:"description"` // Profile description
	Units       string `json:"units"`       // "mm" or "inches"

	// Startup codes
	StartCode []string `json:"start_code"` // Commands at start of file
	HomeXY    string   `json:"home_xy"`    // Home XY only command

	// Pen control. [PenUpZ] and [PenDownZ] are replaced with the plot heights.
	PenUp   string `json:"pen_up"`
	PenDown string `json:"pen_down"`

	// Motion settings
	RapidMove string `json:"rapid_move"` // G0 or equivalent
	FeedMove  string `json:"feed_move"`  // G1 or equivalent

	// End codes
	EndCode []string `json:"end_code"` // Commands at end of file

	// Comment style
	CommentPrefix string `json:"comment_prefix"` // Comment start (e.g., ";")
	CommentSuffix string `json:"comment_suffix"` // Comment end (if needed, e.g., ")" for Fanuc)

	// Number formatting
	DecimalPlaces int `json:"decimal_places"` // Number of decimal places for coordinates

	IsBuiltIn bool `json:"is_built_in"`
}

// Built-in plotter profiles
var PlotterProfiles = []PlotterProfile{
	{
		Name:          "Grbl Servo",
		Description:   "Grbl pen plotter with a servo pen lift on the spindle PWM",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "G17"},
		HomeXY:        "$H",
		PenUp:         "M3 S30",
		PenDown:       "M3 S90",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"M3 S30", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
		IsBuiltIn:     true,
	},
	{
		Name:          "Grbl",
		Description:   "Standard Grbl configuration with a Z-axis pen",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "G17"},
		HomeXY:        "$H",
		PenUp:         "G0 Z[PenUpZ]",
		PenDown:       "G1 Z[PenDownZ]",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[PenUpZ]", "G0 X0 Y0", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
		IsBuiltIn:     true,
	},
	{
		Name:          "LinuxCNC",
		Description:   "LinuxCNC (formerly EMC2)",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		HomeXY:        "G28 X0 Y0",
		PenUp:         "G0 Z[PenUpZ]",
		PenDown:       "G1 Z[PenDownZ]",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[PenUpZ]", "G0 X0 Y0", "M2"},
		CommentPrefix: "(",
		CommentSuffix: ")",
		DecimalPlaces: 4,
		IsBuiltIn:     true,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		Units:         "mm",
		StartCode:     []string{"G90", "G21"},
		HomeXY:        "G28 X0 Y0",
		PenUp:         "G0 Z[PenUpZ]",
		PenDown:       "G1 Z[PenDownZ]",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[PenUpZ]", "G0 X0 Y0", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
		IsBuiltIn:     true,
	},
}

const genericProfileName = "Generic"

// GetPlotterProfile returns a profile by name, or the Generic profile if not found.
func GetPlotterProfile(name string) PlotterProfile {
	fallback := PlotterProfiles[0]
	for _, p := range PlotterProfiles {
		if p.Name == name {
			return p
		}
		if p.Name == genericProfileName {
			fallback = p
		}
	}
	return fallback
}

// RegisterPlotterProfile adds a custom profile, replacing an earlier custom
// profile of the same name. Built-in profiles cannot be replaced.
func RegisterPlotterProfile(p PlotterProfile) bool {
	p.IsBuiltIn = false
	for i, existing := range PlotterProfiles {
		if existing.Name != p.Name {
			continue
		}
		if existing.IsBuiltIn {
			return false
		}
		PlotterProfiles[i] = p
		return true
	}
	PlotterProfiles = append(PlotterProfiles, p)
	return true
}

// GetPlotterProfileNames returns a list of all available profile names.
func GetPlotterProfileNames() []string {
	var names []string
	for _, p := range PlotterProfiles {
		names = append(names, p.Name)
	}
	return names
}

// PlotSettings holds the machine parameters used when tracing a tour.
type PlotSettings struct {
	Profile  string  `json:"profile" toml:"profile"`     // Name of the plotter profile to use
	Scale    float64 `json:"scale" toml:"scale"`         // Machine units per placement unit
	OffsetX  float64 `json:"offset_x" toml:"offset_x"`   // Machine X of the placement origin
	OffsetY  float64 `json:"offset_y" toml:"offset_y"`   // Machine Y of the placement origin
	FeedRate float64 `json:"feed_rate" toml:"feed_rate"` // Drawing feed rate, units/min
	PenUpZ   float64 `json:"pen_up_z" toml:"pen_up_z"`   // Travel height
	PenDownZ float64 `json:"pen_down_z" toml:"pen_down_z"`
}

func DefaultPlotSettings() PlotSettings {
	return PlotSettings{
		Profile:  genericProfileName,
		Scale:    5.0,
		OffsetX:  100.0,
		OffsetY:  100.0,
		FeedRate: 1500.0,
		PenUpZ:   5.0,
		PenDownZ: 0.0,
	}
}
