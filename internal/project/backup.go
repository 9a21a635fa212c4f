package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// BackupVersion is written into every backup.
const BackupVersion = "1.1.0"

// Session is the point set and tours carried by a backup. Scores are not
// stored; they are recomputed from the tours on restore.
type Session struct {
	Points     []model.Point    `json:"points"`
	Best       model.Tour       `json:"best,omitempty"`
	Saved      model.Tour       `json:"saved,omitempty"`
	Checkpoint model.Checkpoint `json:"checkpoint"`
}

// NewSession captures the restorable part of snap.
func NewSession(snap model.Snapshot) *Session {
	return &Session{
		Points:     snap.Points,
		Best:       snap.Best,
		Saved:      snap.Saved,
		Checkpoint: snap.Checkpoint,
	}
}

// Snapshot returns the session as a snapshot for PointManager.Restore.
func (s *Session) Snapshot() model.Snapshot {
	return model.Snapshot{
		Points:     s.Points,
		Best:       s.Best,
		Saved:      s.Saved,
		Checkpoint: s.Checkpoint,
	}
}

func (s *Session) validate() error {
	if len(s.Best) > 0 && !model.SameMultiset(s.Best, s.Points) {
		return fmt.Errorf("best tour does not visit every point exactly once")
	}
	if len(s.Saved) > 0 && !model.SameMultiset(s.Saved, s.Points) {
		return fmt.Errorf("saved tour %s does not visit every point exactly once", s.Checkpoint.ID)
	}
	return nil
}

// BackupData is the top-level structure for settings import/export.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Session   *Session        `json:"session,omitempty"`
}

// ExportSettings writes the config and, when session is not nil, the point
// set and tours to a JSON backup file at exportPath.
func ExportSettings(exportPath string, config model.AppConfig, session *Session) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Session:   session,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportSettings reads a JSON backup file. The caller applies the config
// and restores the session. Backups written before sessions were added
// have a nil Session.
func ImportSettings(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	backup := BackupData{Config: model.DefaultAppConfig()}
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Session != nil {
		if err := backup.Session.validate(); err != nil {
			return BackupData{}, fmt.Errorf("invalid backup file: %w", err)
		}
	}
	if backup.Config.RecentImports == nil {
		backup.Config.RecentImports = []string{}
	}
	return backup, nil
}
