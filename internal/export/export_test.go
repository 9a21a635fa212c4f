package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/buschmd967/traveling-salesman/internal/engine"
	"github.com/buschmd967/traveling-salesman/internal/importer"
	"github.com/buschmd967/traveling-salesman/internal/model"
)

// buildTestSnapshot runs a short seeded search and checkpoints it.
func buildTestSnapshot(t *testing.T, n int) model.Snapshot {
	t.Helper()
	s := model.DefaultSettings()
	s.Seed = 7
	m := engine.NewPointManager(s)
	for i := 0; i < n; i++ {
		_, err := m.AddRandomPoint()
		require.NoError(t, err)
	}
	m.RandomPathStep()
	m.SaveCurrentPath()
	for i := 0; i < 200; i++ {
		m.RandomPathSwapStep(1)
	}
	return m.Snapshot()
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func assertSamePoints(t *testing.T, want, got []model.Point) {
	t.Helper()
	require.Len(t, got, len(want))
	for _, w := range want {
		found := false
		for _, g := range got {
			if model.Distance(w, g) < 1e-3 {
				found = true
				break
			}
		}
		assert.True(t, found, "point %v missing", w)
	}
}

// ─── PDF ───────────────────────────────────────────────────

func TestExportPDF(t *testing.T) {
	snap := buildTestSnapshot(t, 25)
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, ExportPDF(path, snap, model.DefaultSettings()))
	assertNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestExportPDF_LongTourSpansPages(t *testing.T) {
	snap := buildTestSnapshot(t, 120)
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ExportPDF(path, snap, model.DefaultSettings()))
	assertNonEmptyFile(t, path)
}

func TestExportPDF_PointsOnly(t *testing.T) {
	snap := model.Snapshot{
		Points:     []model.Point{model.NewPoint(1, 1)},
		Score:      model.Unscored,
		SavedScore: model.Unscored,
	}
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ExportPDF(path, snap, model.DefaultSettings()))
}

func TestExportPDF_NoPoints(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "report.pdf"), model.Snapshot{}, model.DefaultSettings())
	assert.Error(t, err)
}

// ─── QR ────────────────────────────────────────────────────

func TestTourSummary(t *testing.T) {
	snap := buildTestSnapshot(t, 10)
	summary := NewTourSummary(snap)

	assert.Equal(t, 10, summary.Points)
	require.NotNil(t, summary.BestScore)
	assert.Equal(t, snap.Score, *summary.BestScore)
	assert.Equal(t, snap.Checkpoint.ID, summary.Checkpoint)
	require.Len(t, summary.Order, 10)
	for i, idx := range summary.Order {
		assert.Equal(t, snap.Best[i], snap.Points[idx])
	}
}

func TestTourSummary_UnscoredOmitted(t *testing.T) {
	summary := NewTourSummary(model.Snapshot{Score: model.Unscored, SavedScore: model.Unscored})
	data, err := summary.encode()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "best_score")
	assert.NotContains(t, decoded, "saved_score")
}

func TestTourSummary_LongOrderDropped(t *testing.T) {
	summary := TourSummary{Points: 2000, Order: make([]int, 2000)}
	for i := range summary.Order {
		summary.Order[i] = i
	}
	data, err := summary.encode()
	require.NoError(t, err)
	assert.LessOrEqual(t, len(data), maxQRPayload)
	assert.NotContains(t, string(data), "order")
}

func TestExportQR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.png")
	require.NoError(t, ExportQR(path, buildTestSnapshot(t, 10)))
	assertNonEmptyFile(t, path)
}

// ─── Excel ─────────────────────────────────────────────────

func TestExportExcel(t *testing.T) {
	snap := buildTestSnapshot(t, 12)
	path := filepath.Join(t.TempDir(), "tour.xlsx")
	require.NoError(t, ExportExcel(path, snap))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetPoints, SheetBest, SheetSaved, SheetSummary}, f.GetSheetList())

	best, err := f.GetRows(SheetBest)
	require.NoError(t, err)
	assert.Len(t, best, len(snap.Best)+1)

	saved, err := f.GetRows(SheetSaved)
	require.NoError(t, err)
	assert.Len(t, saved, len(snap.Saved)+1)
}

func TestExportExcel_PointsReimport(t *testing.T) {
	snap := buildTestSnapshot(t, 12)
	path := filepath.Join(t.TempDir(), "tour.xlsx")
	require.NoError(t, ExportExcel(path, snap))

	result := importer.ImportExcel(path)
	assert.Empty(t, result.Errors)
	assertSamePoints(t, snap.Points, result.Points)
}

func TestExportExcel_NoPoints(t *testing.T) {
	assert.Error(t, ExportExcel(filepath.Join(t.TempDir(), "tour.xlsx"), model.Snapshot{}))
}

// ─── DXF ───────────────────────────────────────────────────

func TestExportDXF_Reimport(t *testing.T) {
	snap := buildTestSnapshot(t, 15)
	path := filepath.Join(t.TempDir(), "tour.dxf")
	require.NoError(t, ExportDXF(path, snap))
	assertNonEmptyFile(t, path)

	result := importer.ImportDXF(path)
	assert.Empty(t, result.Errors)
	assertSamePoints(t, snap.Points, result.Points)
}

func TestExportDXF_NoPoints(t *testing.T) {
	assert.Error(t, ExportDXF(filepath.Join(t.TempDir(), "tour.dxf"), model.Snapshot{}))
}

// ─── GCode ─────────────────────────────────────────────────

func TestExportGCode(t *testing.T) {
	snap := buildTestSnapshot(t, 6)
	path := filepath.Join(t.TempDir(), "tour.gcode")
	require.NoError(t, ExportGCode(path, snap, model.DefaultPlotSettings()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	code := string(data)
	assert.True(t, strings.Contains(code, "G1"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(code), "M2"))
}

func TestExportGCode_NoPoints(t *testing.T) {
	err := ExportGCode(filepath.Join(t.TempDir(), "tour.gcode"), model.Snapshot{}, model.DefaultPlotSettings())
	assert.Error(t, err)
}
