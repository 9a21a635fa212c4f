package model

import (
	"testing"
	"time"
)

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultRadius != defaults.Radius {
		t.Errorf("Radius mismatch: config=%f settings=%f", cfg.DefaultRadius, defaults.Radius)
	}
	if cfg.DefaultSwapCount != defaults.SwapCount {
		t.Errorf("SwapCount mismatch: config=%d settings=%d", cfg.DefaultSwapCount, defaults.SwapCount)
	}
	if cfg.DefaultRadialStep != defaults.RadialStep {
		t.Errorf("RadialStep mismatch: config=%f settings=%f", cfg.DefaultRadialStep, defaults.RadialStep)
	}
	if cfg.RedrawIntervalMicros != 1000 {
		t.Errorf("expected redraw interval of 1000us, got %d", cfg.RedrawIntervalMicros)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected default theme=dark, got %s", cfg.Theme)
	}
	if cfg.RecentImports == nil {
		t.Error("RecentImports should not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultRadius = 25
	cfg.DefaultSwapCount = 3
	cfg.RedrawIntervalMicros = 5000
	cfg.Seed = 42

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.Radius != 25 {
		t.Errorf("expected Radius=25, got %f", s.Radius)
	}
	if s.SwapCount != 3 {
		t.Errorf("expected SwapCount=3, got %d", s.SwapCount)
	}
	if s.RedrawInterval != 5*time.Millisecond {
		t.Errorf("expected RedrawInterval=5ms, got %s", s.RedrawInterval)
	}
	if s.Seed != 42 {
		t.Errorf("expected Seed=42, got %d", s.Seed)
	}
}

func TestApplyToSettings_ClampsOutOfRange(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultSwapCount = 12
	cfg.DefaultRadialStep = 0
	cfg.RedrawIntervalMicros = -1

	s := cfg.Settings()

	if s.SwapCount != MaxSwapCount {
		t.Errorf("expected SwapCount clamped to %d, got %d", MaxSwapCount, s.SwapCount)
	}
	if s.RadialStep != DefaultSettings().RadialStep {
		t.Errorf("expected default RadialStep, got %f", s.RadialStep)
	}
	if s.RedrawInterval != time.Millisecond {
		t.Errorf("expected default RedrawInterval, got %s", s.RedrawInterval)
	}
}

func TestRememberImport(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.RememberImport("a.csv", 3)
	cfg.RememberImport("b.csv", 3)
	cfg.RememberImport("a.csv", 3)
	cfg.RememberImport("c.dxf", 3)
	cfg.RememberImport("d.xlsx", 3)

	want := []string{"d.xlsx", "c.dxf", "a.csv"}
	if len(cfg.RecentImports) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), cfg.RecentImports)
	}
	for i := range want {
		if cfg.RecentImports[i] != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], cfg.RecentImports[i])
		}
	}
}
