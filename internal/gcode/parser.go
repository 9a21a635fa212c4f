package gcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MoveKind classifies a parsed plotter movement.
type MoveKind int

const (
	MoveTravel  MoveKind = iota // G0 in the XY plane
	MoveDraw                    // G1 in the XY plane
	MovePenDown                 // Z decreasing without XY motion
	MovePenUp                   // Z increasing
)

// Position is an absolute machine position.
type Position struct {
	X, Y, Z float64
}

// Move is a single parsed G0/G1 command.
type Move struct {
	Kind MoveKind
	From Position
	To   Position
	Feed float64
}

// XYLength returns the planar length of the move.
func (m Move) XYLength() float64 {
	return math.Hypot(m.To.X-m.From.X, m.To.Y-m.From.Y)
}

var wordRe = regexp.MustCompile(`([XYZF])(-?\d+\.?\d*)`)

// Parse reads absolute-mode GCode and returns its G0/G1 moves in order.
// Comments in ";" or "( )" form and all other commands are ignored.
func Parse(code string) []Move {
	var moves []Move
	var pos Position
	var feed float64

	for _, line := range strings.Split(code, "\n") {
		line = stripComment(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		fields := strings.Fields(upper)
		var rapid bool
		switch fields[0] {
		case "G0", "G00":
			rapid = true
		case "G1", "G01":
		default:
			continue
		}

		next := pos
		for _, m := range wordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				next.X = val
			case "Y":
				next.Y = val
			case "Z":
				next.Z = val
			case "F":
				feed = val
			}
		}

		moves = append(moves, Move{Kind: classify(rapid, pos, next), From: pos, To: next, Feed: feed})
		pos = next
	}

	return moves
}

// stripComment removes ";" and parenthetical comments and trims the line.
func stripComment(line string) string {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	for {
		start := strings.Index(line, "(")
		if start < 0 {
			break
		}
		end := strings.Index(line[start:], ")")
		if end < 0 {
			line = line[:start]
			break
		}
		line = line[:start] + line[start+end+1:]
	}
	return strings.TrimSpace(line)
}

func classify(rapid bool, from, to Position) MoveKind {
	const eps = 0.001
	dz := to.Z - from.Z
	planar := from.X != to.X || from.Y != to.Y

	switch {
	case dz > eps:
		return MovePenUp
	case dz < -eps && !planar:
		return MovePenDown
	case rapid:
		return MoveTravel
	default:
		return MoveDraw
	}
}

// PlotStats summarizes a parsed job.
type PlotStats struct {
	DrawLength   float64
	TravelLength float64
	DrawMoves    int
	PenDowns     int
}

// Summarize totals the moves of a job.
func Summarize(moves []Move) PlotStats {
	var s PlotStats
	for _, m := range moves {
		switch m.Kind {
		case MoveDraw:
			s.DrawLength += m.XYLength()
			s.DrawMoves++
		case MoveTravel:
			s.TravelLength += m.XYLength()
		case MovePenDown:
			s.PenDowns++
		}
	}
	return s
}
