package importer

import (
	"fmt"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// ImportDXF imports points from a DXF file. POINT entities, LWPOLYLINE
// vertices, LINE endpoints and CIRCLE centers each contribute a point.
// Coordinates shared by several entities are imported once.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	seen := make(map[model.Point]bool)
	add := func(coord []float64) {
		if len(coord) < 2 {
			return
		}
		p := model.NewPoint(float32(coord[0]), float32(coord[1]))
		if seen[p] {
			return
		}
		seen[p] = true
		result.Points = append(result.Points, p)
	}

	skipped := make(map[string]int)
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Point:
			add(e.Coord)
		case *entity.LwPolyline:
			for _, v := range e.Vertices {
				add(v)
			}
		case *entity.Line:
			add(e.Start)
			add(e.End)
		case *entity.Circle:
			add(e.Center)
		default:
			skipped[fmt.Sprintf("%T", ent)]++
		}
	}

	if len(skipped) > 0 {
		kinds := make([]string, 0, len(skipped))
		for k := range skipped {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported %s entities", skipped[k], k))
		}
	}

	if len(result.Points) == 0 {
		result.Errors = append(result.Errors, "No points found in DXF file")
	}

	return result
}
