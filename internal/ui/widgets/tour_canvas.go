package widgets

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// Tour colors, matching the PDF report.
var (
	backgroundColor = color.NRGBA{R: 24, G: 24, B: 28, A: 255}
	areaColor       = color.NRGBA{R: 90, G: 90, B: 100, A: 255}
	pointColor      = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	currentColor    = color.NRGBA{R: 255, G: 152, B: 0, A: 140} // orange
	bestColor       = color.NRGBA{R: 33, G: 150, B: 243, A: 255} // blue
	savedColor      = color.NRGBA{R: 76, G: 175, B: 80, A: 220}  // green
)

const (
	pointDiameter = 6
	viewMargin    = 0.05
)

// Viewport maps placement coordinates onto a widget of the given size.
// The square [-Extent, Extent] is centered and scaled to fit, with +Y up.
type Viewport struct {
	Size   fyne.Size
	Extent float32
}

// NewViewport fits the placement square of half-width radius, grown to
// cover any point that lies outside it.
func NewViewport(size fyne.Size, radius float32, points []model.Point) Viewport {
	extent := radius
	for _, p := range points {
		extent = float32(math.Max(float64(extent), math.Max(math.Abs(float64(p.X)), math.Abs(float64(p.Y)))))
	}
	if extent <= 0 {
		extent = 1
	}
	return Viewport{Size: size, Extent: extent * (1 + viewMargin)}
}

// Scale returns pixels per placement unit.
func (v Viewport) Scale() float32 {
	side := v.Size.Width
	if v.Size.Height < side {
		side = v.Size.Height
	}
	return side / (2 * v.Extent)
}

// Project converts a placement coordinate to a widget position.
func (v Viewport) Project(p model.Point) fyne.Position {
	s := v.Scale()
	return fyne.NewPos(
		v.Size.Width/2+p.X*s,
		v.Size.Height/2-p.Y*s,
	)
}

// TourCanvas draws the point set with the saved, best and current tours.
// It must only be updated from the UI goroutine.
type TourCanvas struct {
	widget.BaseWidget
	snap   model.Snapshot
	radius float32
}

func NewTourCanvas(radius float32) *TourCanvas {
	tc := &TourCanvas{radius: radius}
	tc.ExtendBaseWidget(tc)
	return tc
}

// SetSnapshot replaces the displayed state and redraws.
func (tc *TourCanvas) SetSnapshot(snap model.Snapshot) {
	tc.snap = snap
	tc.Refresh()
}

// SetRadius changes the placement area outline.
func (tc *TourCanvas) SetRadius(radius float32) {
	tc.radius = radius
	tc.Refresh()
}

func (tc *TourCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &tourCanvasRenderer{tc: tc}
}

type tourCanvasRenderer struct {
	tc      *TourCanvas
	size    fyne.Size
	objects []fyne.CanvasObject
}

func (r *tourCanvasRenderer) rebuild() {
	r.objects = nil

	bg := canvas.NewRectangle(backgroundColor)
	bg.Resize(r.size)
	r.objects = append(r.objects, bg)

	snap := r.tc.snap
	vp := NewViewport(r.size, r.tc.radius, snap.Points)

	// Placement area
	if r.tc.radius > 0 {
		topLeft := vp.Project(model.NewPoint(-r.tc.radius, r.tc.radius))
		bottomRight := vp.Project(model.NewPoint(r.tc.radius, -r.tc.radius))
		area := canvas.NewRectangle(color.Transparent)
		area.StrokeColor = areaColor
		area.StrokeWidth = 1
		area.Move(topLeft)
		area.Resize(fyne.NewSize(bottomRight.X-topLeft.X, bottomRight.Y-topLeft.Y))
		r.objects = append(r.objects, area)
	}

	r.addTour(vp, snap.Saved, savedColor, 4)
	r.addTour(vp, snap.Current, currentColor, 1)
	r.addTour(vp, snap.Best, bestColor, 2)

	for _, p := range snap.Points {
		pos := vp.Project(p)
		dot := canvas.NewCircle(pointColor)
		dot.Move(fyne.NewPos(pos.X-pointDiameter/2, pos.Y-pointDiameter/2))
		dot.Resize(fyne.NewSize(pointDiameter, pointDiameter))
		r.objects = append(r.objects, dot)
	}
}

func (r *tourCanvasRenderer) addTour(vp Viewport, tour model.Tour, col color.Color, width float32) {
	for _, e := range tour.Edges() {
		line := canvas.NewLine(col)
		line.StrokeWidth = width
		line.Position1 = vp.Project(e.From)
		line.Position2 = vp.Project(e.To)
		r.objects = append(r.objects, line)
	}
}

func (r *tourCanvasRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

func (r *tourCanvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.tc)
}

func (r *tourCanvasRenderer) Destroy()                     {}
func (r *tourCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *tourCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}
