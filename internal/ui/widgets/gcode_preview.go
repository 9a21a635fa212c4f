package widgets

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/buschmd967/traveling-salesman/internal/gcode"
)

// Plot colors for the different move kinds.
var (
	colorTravel  = color.NRGBA{R: 255, G: 60, B: 60, A: 200}   // Red for pen-up travel
	colorDraw    = color.NRGBA{R: 30, G: 120, B: 255, A: 230}  // Blue for drawn segments
	colorPenDown = color.NRGBA{R: 50, G: 200, B: 50, A: 220}   // Green for pen taps
	colorPaper   = color.NRGBA{R: 245, G: 242, B: 232, A: 255} // Off-white paper
)

const previewMargin = 10

// PlotBounds is the machine-space rectangle covered by a set of moves.
type PlotBounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b PlotBounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b PlotBounds) Height() float64 { return b.MaxY - b.MinY }

// MoveBounds returns the XY bounds of every move endpoint. The second
// result is false when there are no moves.
func MoveBounds(moves []gcode.Move) (PlotBounds, bool) {
	if len(moves) == 0 {
		return PlotBounds{}, false
	}
	b := PlotBounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, m := range moves {
		for _, p := range []gcode.Position{m.From, m.To} {
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}
	return b, true
}

// PlotPreview is a custom Fyne widget that renders the pen movements of a
// generated plot file.
type PlotPreview struct {
	widget.BaseWidget
	moves     []gcode.Move
	maxWidth  float32
	maxHeight float32
}

// NewPlotPreview creates a preview of moves fitted into maxW by maxH.
func NewPlotPreview(moves []gcode.Move, maxW, maxH float32) *PlotPreview {
	pp := &PlotPreview{
		moves:     moves,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pp.ExtendBaseWidget(pp)
	return pp
}

// CreateRenderer implements fyne.Widget.
func (pp *PlotPreview) CreateRenderer() fyne.WidgetRenderer {
	r := &plotPreviewRenderer{pp: pp}
	r.rebuild()
	return r
}

type plotPreviewRenderer struct {
	pp      *PlotPreview
	objects []fyne.CanvasObject
	size    fyne.Size
}

// scale returns the pixels per machine unit that fit b into the preview.
func (r *plotPreviewRenderer) scale(b PlotBounds) float32 {
	w, h := b.Width(), b.Height()
	if w <= 0 && h <= 0 {
		return 1
	}
	sx := float64(r.pp.maxWidth-2*previewMargin) / math.Max(w, 1e-9)
	sy := float64(r.pp.maxHeight-2*previewMargin) / math.Max(h, 1e-9)
	s := math.Min(sx, sy)
	if s <= 0 || math.IsInf(s, 0) {
		return 1
	}
	return float32(s)
}

func (r *plotPreviewRenderer) rebuild() {
	r.objects = nil
	b, ok := MoveBounds(r.pp.moves)
	if !ok {
		r.size = fyne.NewSize(100, 100)
		return
	}
	scale := r.scale(b)
	w := float32(b.Width())*scale + 2*previewMargin
	h := float32(b.Height())*scale + 2*previewMargin
	r.size = fyne.NewSize(w, h)

	bg := canvas.NewRectangle(colorPaper)
	bg.Resize(r.size)
	r.objects = append(r.objects, bg)

	// Machine +Y is up, screen +Y is down.
	project := func(p gcode.Position) fyne.Position {
		return fyne.NewPos(
			float32(p.X-b.MinX)*scale+previewMargin,
			float32(b.MaxY-p.Y)*scale+previewMargin,
		)
	}

	for _, m := range r.pp.moves {
		from, to := project(m.From), project(m.To)
		switch m.Kind {
		case gcode.MoveTravel:
			if m.XYLength() < 0.01 {
				continue
			}
			line := canvas.NewLine(colorTravel)
			line.StrokeWidth = 1
			line.Position1 = from
			line.Position2 = to
			r.objects = append(r.objects, line)
		case gcode.MoveDraw:
			if m.XYLength() < 0.01 {
				continue
			}
			line := canvas.NewLine(colorDraw)
			line.StrokeWidth = 2
			line.Position1 = from
			line.Position2 = to
			r.objects = append(r.objects, line)
		case gcode.MovePenDown:
			marker := canvas.NewCircle(colorPenDown)
			markerSize := float32(4)
			marker.Resize(fyne.NewSize(markerSize, markerSize))
			marker.Move(fyne.NewPos(from.X-markerSize/2, from.Y-markerSize/2))
			r.objects = append(r.objects, marker)
		}
	}
}

func (r *plotPreviewRenderer) Layout(size fyne.Size)        {}
func (r *plotPreviewRenderer) Refresh()                     { r.rebuild() }
func (r *plotPreviewRenderer) Destroy()                     {}
func (r *plotPreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *plotPreviewRenderer) MinSize() fyne.Size           { return r.size }

// RenderPlotPreview creates a preview panel for generated plot code,
// including the pen path and a summary of drawn and travelled length.
func RenderPlotPreview(code string) fyne.CanvasObject {
	moves := gcode.Parse(code)
	stats := gcode.Summarize(moves)
	summary := widget.NewLabel(fmt.Sprintf(
		"Drawn: %.1f  Travel: %.1f  Segments: %d  Pen taps: %d",
		stats.DrawLength, stats.TravelLength, stats.DrawMoves, stats.PenDowns))
	return container.NewBorder(nil, summary, nil, nil,
		container.NewScroll(NewPlotPreview(moves, 700, 450)))
}
