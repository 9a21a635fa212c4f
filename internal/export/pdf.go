// Package export writes search results to PDF, Excel, DXF and QR files.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// rgb represents an RGB color.
type rgb struct {
	R, G, B int
}

// Tour colors mirror the scheme used by the UI tour canvas.
var (
	pointColor = rgb{R: 33, G: 33, B: 33}
	bestColor  = rgb{R: 33, G: 150, B: 243} // blue
	savedColor = rgb{R: 76, G: 175, B: 80}  // green
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	sidebarWidth = 70.0
	pointRadius  = 0.8
)

// ExportPDF generates a PDF report of the search state: a drawing of the
// points with the best and saved tours, a statistics sidebar with a QR
// summary, and a page listing the best tour in visiting order.
func ExportPDF(path string, snap model.Snapshot, settings model.SearchSettings) error {
	if len(snap.Points) == 0 {
		return fmt.Errorf("no points to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderTourPage(pdf, snap)
	if err := renderSidebar(pdf, snap, settings); err != nil {
		return err
	}

	if snap.HasBest() {
		renderOrderPages(pdf, snap.Best)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// projection maps placement coordinates into a page rectangle, keeping the
// aspect ratio and flipping Y so that +Y points up.
type projection struct {
	minX, maxY float64
	scale      float64
	offsetX    float64
	offsetY    float64
}

func newProjection(points []model.Point, x, y, w, h float64) projection {
	min, max := model.Tour(points).BoundingBox()
	spanX := math.Max(float64(max.X-min.X), 1e-6)
	spanY := math.Max(float64(max.Y-min.Y), 1e-6)
	scale := math.Min(w/spanX, h/spanY)
	return projection{
		minX:    float64(min.X),
		maxY:    float64(max.Y),
		scale:   scale,
		offsetX: x + (w-spanX*scale)/2,
		offsetY: y + (h-spanY*scale)/2,
	}
}

func (p projection) apply(pt model.Point) (float64, float64) {
	return p.offsetX + (float64(pt.X)-p.minX)*p.scale,
		p.offsetY + (p.maxY-float64(pt.Y))*p.scale
}

// renderTourPage draws the points and tours on the current PDF page.
func renderTourPage(pdf *fpdf.Fpdf, snap model.Snapshot) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Tour Report: %d points", len(snap.Points))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight - sidebarWidth - 5
	drawHeight := pageHeight - drawAreaTop - marginBottom

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.Rect(marginLeft, drawAreaTop, drawWidth, drawHeight, "D")

	inset := 5.0
	proj := newProjection(snap.Points, marginLeft+inset, drawAreaTop+inset, drawWidth-2*inset, drawHeight-2*inset)

	if snap.HasSaved() {
		pdf.SetDashPattern([]float64{2, 1.5}, 0)
		drawTour(pdf, proj, snap.Saved, savedColor, 0.6)
		pdf.SetDashPattern([]float64{}, 0)
	}
	if snap.HasBest() {
		drawTour(pdf, proj, snap.Best, bestColor, 0.4)
	}

	pdf.SetFillColor(pointColor.R, pointColor.G, pointColor.B)
	for _, pt := range snap.Points {
		x, y := proj.apply(pt)
		pdf.Circle(x, y, pointRadius, "F")
	}
}

// drawTour draws a closed tour as a polyline.
func drawTour(pdf *fpdf.Fpdf, proj projection, tour model.Tour, col rgb, width float64) {
	pdf.SetDrawColor(col.R, col.G, col.B)
	pdf.SetLineWidth(width)
	for _, e := range tour.Edges() {
		x1, y1 := proj.apply(e.From)
		x2, y2 := proj.apply(e.To)
		pdf.Line(x1, y1, x2, y2)
	}
}

// renderSidebar prints the statistics column and the QR summary.
func renderSidebar(pdf *fpdf.Fpdf, snap model.Snapshot, settings model.SearchSettings) error {
	x := pageWidth - marginRight - sidebarWidth
	y := drawAreaTop

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x, y)
	pdf.CellFormat(sidebarWidth, 7, "Statistics", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Points", fmt.Sprintf("%d", len(snap.Points))},
		{"Best score", formatScore(snap.Score)},
		{"Saved score", formatScore(snap.SavedScore)},
		{"Checkpoint", orDash(snap.Checkpoint.ID)},
		{"Steps", fmt.Sprintf("%d", snap.Steps)},
		{"Accepted", fmt.Sprintf("%d (%.2f%%)", snap.Accepted, snap.AcceptanceRate()*100)},
		{"Radius", fmt.Sprintf("%.2f", settings.Radius)},
		{"Swap count", fmt.Sprintf("%d", settings.SwapCount)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		pdf.SetXY(x, y)
		pdf.CellFormat(30, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(sidebarWidth-30, 5, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		y += 6
	}

	y += 3
	drawLegend(pdf, x, y)
	y += 14

	qrPNG, err := SummaryQR(snap)
	if err != nil {
		return err
	}
	placePNG(pdf, "qr_summary", qrPNG, x, y, qrSize)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom+3)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Traveling Salesman - heuristic tour search", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// drawLegend renders the color key for the tour lines.
func drawLegend(pdf *fpdf.Fpdf, x, y float64) {
	entries := []struct {
		label string
		col   rgb
	}{
		{"Best tour", bestColor},
		{"Saved tour", savedColor},
	}
	pdf.SetFont("Helvetica", "", 8)
	for _, e := range entries {
		pdf.SetFillColor(e.col.R, e.col.G, e.col.B)
		pdf.Rect(x, y+0.5, 3, 3, "F")
		pdf.SetXY(x+4, y)
		pdf.CellFormat(40, 4, e.label, "", 0, "L", false, 0, "")
		y += 5
	}
}

// renderOrderPages lists the tour in visiting order as a table.
func renderOrderPages(pdf *fpdf.Fpdf, tour model.Tour) {
	colWidths := []float64{20, 40, 40, 40, 40}
	headers := []string{"#", "X", "Y", "Leg", "Cumulative"}
	rowHeight := 6.0

	var y float64
	newPage := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetXY(marginLeft, marginTop)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Best Tour Order", "", 0, "L", false, 0, "")
		y = drawAreaTop

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += rowHeight
		pdf.SetFont("Helvetica", "", 9)
	}

	newPage()
	var cumulative float32
	for i, e := range tour.Edges() {
		if y+rowHeight > pageHeight-marginBottom {
			newPage()
		}
		cumulative += e.Length()
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.4f", e.From.X),
			fmt.Sprintf("%.4f", e.From.Y),
			fmt.Sprintf("%.4f", e.Length()),
			fmt.Sprintf("%.4f", cumulative),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}
}

// formatScore renders a score, showing a dash for an unscored tour.
func formatScore(s float32) string {
	if math.IsInf(float64(s), 1) {
		return "-"
	}
	return fmt.Sprintf("%.4f", s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
