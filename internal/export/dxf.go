package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// ExportDXF writes the points as POINT entities and the best tour (or the
// saved one when no best exists) as closed chain of LINE entities.
func ExportDXF(path string, snap model.Snapshot) error {
	if len(snap.Points) == 0 {
		return fmt.Errorf("no points to export")
	}

	d := dxf.NewDrawing()
	for _, p := range snap.Points {
		if _, err := d.Point(float64(p.X), float64(p.Y), 0); err != nil {
			return fmt.Errorf("failed to add point: %w", err)
		}
	}

	tour := snap.Best
	if len(tour) == 0 {
		tour = snap.Saved
	}
	for _, e := range tour.Edges() {
		if _, err := d.Line(float64(e.From.X), float64(e.From.Y), 0, float64(e.To.X), float64(e.To.Y), 0); err != nil {
			return fmt.Errorf("failed to add tour edge: %w", err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}
