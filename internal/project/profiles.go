package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// DefaultProfilesPath returns the default file path for custom plotter profiles.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SaveCustomProfiles saves custom plotter profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.PlotterProfile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomProfiles loads custom plotter profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.PlotterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.PlotterProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.PlotterProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	// Loaded profiles are never built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// RegisterCustomProfiles loads the profiles at path and makes them
// available to the plot generator. It returns the number registered.
func RegisterCustomProfiles(path string) (int, error) {
	profiles, err := LoadCustomProfiles(path)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range profiles {
		if p.Name != "" && model.RegisterPlotterProfile(p) {
			n++
		}
	}
	return n, nil
}

// ImportProfile imports a single plotter profile from a JSON file.
func ImportProfile(path string) (model.PlotterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PlotterProfile{}, err
	}

	var profile model.PlotterProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.PlotterProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.PlotterProfile{}, errors.New("imported profile has no name")
	}
	return profile, nil
}

// CustomProfiles returns the registered profiles that are not built in.
func CustomProfiles() []model.PlotterProfile {
	var custom []model.PlotterProfile
	for _, p := range model.PlotterProfiles {
		if !p.IsBuiltIn {
			custom = append(custom, p)
		}
	}
	return custom
}
