package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// Sheet names written by ExportExcel.
const (
	SheetPoints  = "Points"
	SheetBest    = "Best"
	SheetSaved   = "Saved"
	SheetSummary = "Summary"
)

// ExportExcel writes the point set and tours to an Excel workbook. The
// Points sheet can be imported again as a point list.
func ExportExcel(path string, snap model.Snapshot) error {
	if len(snap.Points) == 0 {
		return fmt.Errorf("no points to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetPoints); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := [][]interface{}{{"X", "Y", "Distance From Origin"}}
	for _, p := range snap.Points {
		rows = append(rows, []interface{}{p.X, p.Y, p.Norm()})
	}
	if err := writeRows(f, SheetPoints, rows); err != nil {
		return err
	}

	tours := []struct {
		sheet string
		tour  model.Tour
	}{
		{SheetBest, snap.Best},
		{SheetSaved, snap.Saved},
	}
	for _, t := range tours {
		if _, err := f.NewSheet(t.sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.sheet, err)
		}
		if err := writeRows(f, t.sheet, tourRows(snap.Points, t.tour)); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetSummary, err)
	}
	summary := [][]interface{}{
		{"Points", len(snap.Points)},
		{"Best Score", formatScore(snap.Score)},
		{"Saved Score", formatScore(snap.SavedScore)},
		{"Checkpoint", orDash(snap.Checkpoint.ID)},
		{"Steps", snap.Steps},
		{"Accepted", snap.Accepted},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// tourRows lays out a tour in visiting order with leg lengths.
func tourRows(points []model.Point, tour model.Tour) [][]interface{} {
	rows := [][]interface{}{{"Order", "Point", "X", "Y", "Leg", "Cumulative"}}
	var cumulative float32
	for i, e := range tour.Edges() {
		cumulative += e.Length()
		rows = append(rows, []interface{}{
			i + 1,
			model.IndexOf(points, e.From) + 1,
			e.From.X,
			e.From.Y,
			e.Length(),
			cumulative,
		})
	}
	if len(tour) == 1 {
		rows = append(rows, []interface{}{1, model.IndexOf(points, tour[0]) + 1, tour[0].X, tour[0].Y, 0, 0})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
