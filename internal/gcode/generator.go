package gcode

import (
	"fmt"
	"strings"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// Generator produces pen plotter GCode that traces tours.
type Generator struct {
	Settings model.PlotSettings
	profile  model.PlotterProfile
}

func New(settings model.PlotSettings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  model.GetPlotterProfile(settings.Profile),
	}
}

// Generate produces a complete job: a dot for every point followed by the
// best tour. Without a best tour only the dots are drawn.
func (g *Generator) Generate(snap model.Snapshot) string {
	var b strings.Builder

	g.writeHeader(&b, len(snap.Points), snap.Score)
	g.writePoints(&b, snap.Points)
	if snap.HasBest() {
		g.writeTour(&b, snap.Best)
	}
	g.writeFooter(&b)
	return b.String()
}

// GenerateTour produces a job that draws only the closed tour.
func (g *Generator) GenerateTour(tour model.Tour) string {
	var b strings.Builder

	g.writeHeader(&b, len(tour), tour.Score())
	g.writeTour(&b, tour)
	g.writeFooter(&b)
	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, points int, score float32) {
	p := g.profile

	b.WriteString(g.comment("Traveling Salesman plot"))
	b.WriteString(g.comment(fmt.Sprintf("Points: %d, Tour length: %s", points, formatLength(score))))
	b.WriteString(g.comment(fmt.Sprintf("Scale: %.3f, Origin: X%.1f Y%.1f, Feed: %.0f",
		g.Settings.Scale, g.Settings.OffsetX, g.Settings.OffsetY, g.Settings.FeedRate)))
	b.WriteString(g.comment(fmt.Sprintf("Profile: %s", p.Name)))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}

	b.WriteString(g.penUp())
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(g.Settings.OffsetX), g.format(g.Settings.OffsetY)))
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(g.comment("=== Plot complete ==="))

	for _, code := range g.profile.EndCode {
		b.WriteString(g.expand(code) + "\n")
	}
}

// writePoints taps the pen once on every point.
func (g *Generator) writePoints(b *strings.Builder, points []model.Point) {
	if len(points) == 0 {
		return
	}
	b.WriteString(g.comment(fmt.Sprintf("--- Points (%d) ---", len(points))))
	for _, p := range points {
		x, y := g.machine(p)
		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove, g.format(x), g.format(y)))
		b.WriteString(g.penDown())
		b.WriteString(g.penUp())
	}
	b.WriteString("\n")
}

// writeTour draws the closed tour in one pen-down stroke.
func (g *Generator) writeTour(b *strings.Builder, tour model.Tour) {
	if len(tour) < 2 {
		return
	}
	p := g.profile

	b.WriteString(g.comment(fmt.Sprintf("--- Tour (%d legs) ---", len(tour))))
	x0, y0 := g.machine(tour[0])
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(x0), g.format(y0)))
	b.WriteString(g.penDown())

	for i, e := range tour.Edges() {
		x, y := g.machine(e.To)
		if i == 0 {
			b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove, g.format(x), g.format(y), g.format(g.Settings.FeedRate)))
			continue
		}
		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.FeedMove, g.format(x), g.format(y)))
	}

	b.WriteString(g.penUp())
}

// machine converts a placement coordinate to machine coordinates.
func (g *Generator) machine(p model.Point) (float64, float64) {
	return g.Settings.OffsetX + float64(p.X)*g.Settings.Scale,
		g.Settings.OffsetY + float64(p.Y)*g.Settings.Scale
}

func (g *Generator) penUp() string {
	return g.expand(g.profile.PenUp) + "\n"
}

func (g *Generator) penDown() string {
	return g.expand(g.profile.PenDown) + "\n"
}

// expand replaces the pen height placeholders.
func (g *Generator) expand(code string) string {
	code = strings.ReplaceAll(code, "[PenUpZ]", g.format(g.Settings.PenUpZ))
	return strings.ReplaceAll(code, "[PenDownZ]", g.format(g.Settings.PenDownZ))
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	format := fmt.Sprintf("%%.%df", g.profile.DecimalPlaces)
	return fmt.Sprintf(format, v)
}

func formatLength(score float32) string {
	if score == model.Unscored {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", score)
}
