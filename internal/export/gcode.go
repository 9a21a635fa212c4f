package export

import (
	"fmt"
	"os"

	"github.com/buschmd967/traveling-salesman/internal/gcode"
	"github.com/buschmd967/traveling-salesman/internal/model"
)

// ExportGCode writes a plotter job for the snapshot: a pen tap on every
// point followed by the best tour.
func ExportGCode(path string, snap model.Snapshot, plot model.PlotSettings) error {
	if len(snap.Points) == 0 {
		return fmt.Errorf("no points to export")
	}
	code := gcode.New(plot).Generate(snap)
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write GCode: %w", err)
	}
	return nil
}
