package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

func testProfiles() []model.PlotterProfile {
	return []model.PlotterProfile{
		{
			Name:          "AxiDraw",
			Description:   "EBB based pen plotter",
			Units:         "mm",
			StartCode:     []string{"G90", "G21"},
			PenUp:         "M5",
			PenDown:       "M3",
			RapidMove:     "G0",
			FeedMove:      "G1",
			EndCode:       []string{"M5", "M2"},
			CommentPrefix: ";",
			DecimalPlaces: 2,
			IsBuiltIn:     true,
		},
		{
			Name:          "Mach3 Pen",
			Description:   "Mach3 with Z pen holder",
			Units:         "inches",
			StartCode:     []string{"G90", "G20"},
			PenUp:         "G0 Z[PenUpZ]",
			PenDown:       "G1 Z[PenDownZ]",
			RapidMove:     "G0",
			FeedMove:      "G1",
			EndCode:       []string{"M30"},
			CommentPrefix: "(",
			CommentSuffix: ")",
			DecimalPlaces: 4,
		},
	}
}

func TestSaveAndLoadCustomProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profiles.json")
	profiles := testProfiles()

	if err := SaveCustomProfiles(path, profiles); err != nil {
		t.Fatalf("SaveCustomProfiles failed: %v", err)
	}

	loaded, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("LoadCustomProfiles failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(loaded))
	}
	if loaded[0].Name != "AxiDraw" || loaded[1].CommentSuffix != ")" {
		t.Errorf("unexpected profiles: %+v", loaded)
	}
	for _, p := range loaded {
		if p.IsBuiltIn {
			t.Errorf("profile %q loaded as built-in", p.Name)
		}
	}
}

func TestLoadCustomProfiles_Missing(t *testing.T) {
	loaded, err := LoadCustomProfiles(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty slice, got %d profiles", len(loaded))
	}
}

func TestLoadCustomProfiles_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCustomProfiles(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestRegisterCustomProfiles(t *testing.T) {
	saved := append([]model.PlotterProfile(nil), model.PlotterProfiles...)
	t.Cleanup(func() { model.PlotterProfiles = saved })

	path := filepath.Join(t.TempDir(), "profiles.json")
	profiles := append(testProfiles(), model.PlotterProfile{Name: "Grbl"}, model.PlotterProfile{})
	if err := SaveCustomProfiles(path, profiles); err != nil {
		t.Fatal(err)
	}

	n, err := RegisterCustomProfiles(path)
	if err != nil {
		t.Fatalf("RegisterCustomProfiles failed: %v", err)
	}
	// The built-in name and the unnamed profile are skipped.
	if n != 2 {
		t.Errorf("expected 2 registered profiles, got %d", n)
	}
	if got := model.GetPlotterProfile("Mach3 Pen"); got.Units != "inches" {
		t.Errorf("expected registered Mach3 Pen profile, got %+v", got)
	}
	if custom := CustomProfiles(); len(custom) != 2 {
		t.Errorf("expected 2 custom profiles, got %d", len(custom))
	}
}

func TestImportProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(`{"name":"Solo","pen_up":"M5","is_built_in":true}`), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile failed: %v", err)
	}
	if p.Name != "Solo" || p.PenUp != "M5" || p.IsBuiltIn {
		t.Errorf("unexpected profile: %+v", p)
	}

	unnamed := filepath.Join(dir, "unnamed.json")
	if err := os.WriteFile(unnamed, []byte(`{"pen_up":"M5"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportProfile(unnamed); err == nil {
		t.Error("expected error for profile without a name")
	}
}
