package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/buschmd967/traveling-salesman/internal/engine"
	"github.com/buschmd967/traveling-salesman/internal/export"
	"github.com/buschmd967/traveling-salesman/internal/importer"
	"github.com/buschmd967/traveling-salesman/internal/model"
	"github.com/buschmd967/traveling-salesman/internal/ui/widgets"
)

const maxRecentImports = 8

// App holds all application state and UI references.
type App struct {
	app          fyne.App
	window       fyne.Window
	log          *logrus.Logger
	theme        *TourTheme
	config       model.AppConfig
	configPath   string
	profilesPath string

	manager    *engine.PointManager
	controller *engine.Controller
	history    *History

	// UI references for dynamic updates
	canvas      *widgets.TourCanvas
	modeLabel   *widget.Label
	pointsLabel *widget.Label
	bestLabel   *widget.Label
	currLabel   *widget.Label
	savedLabel  *widget.Label
	stepsLabel  *widget.Label
	swapLabel   *widget.Label

	// pending is set while a refresh is queued on the UI goroutine.
	pending atomic.Bool
}

// AppOptions carries the startup state of the application.
type AppOptions struct {
	Config       model.AppConfig
	ConfigPath   string
	ProfilesPath string
	Theme        *TourTheme
	Logger       *logrus.Logger
}

func NewApp(application fyne.App, window fyne.Window, opts AppOptions) *App {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}
	th := opts.Theme
	if th == nil {
		th = NewTourTheme(opts.Config.Theme)
	}
	a := &App{
		app:          application,
		window:       window,
		log:          log,
		theme:        th,
		config:       opts.Config,
		configPath:   opts.ConfigPath,
		profilesPath: opts.ProfilesPath,
		history:      NewHistory(),
	}

	settings := opts.Config.Settings()
	a.manager = engine.NewPointManager(settings)
	a.controller = engine.NewController(a.manager, engine.ControllerOptions{
		OnRedraw: a.requestRefresh,
		Logger:   log.WithField("component", "controller"),
	})
	a.canvas = widgets.NewTourCanvas(settings.Radius)
	return a
}

// Start runs the search controller until ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	go func() {
		if err := a.controller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.WithError(err).Error("search controller stopped")
		}
	}()
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := fyne.NewMenuItem("Recent Imports", nil)
	recent.ChildMenu = a.recentImportsMenu()

	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import Points...", func() {
			a.importPoints()
		}),
		recent,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportFile("tour.pdf", func(path string, snap model.Snapshot) error {
				return export.ExportPDF(path, snap, a.manager.Settings())
			})
		}),
		fyne.NewMenuItem("Export Excel Workbook...", func() {
			a.exportFile("tour.xlsx", export.ExportExcel)
		}),
		fyne.NewMenuItem("Export DXF Drawing...", func() {
			a.exportFile("tour.dxf", export.ExportDXF)
		}),
		fyne.NewMenuItem("Export GCode...", func() {
			a.exportFile("tour.gcode", func(path string, snap model.Snapshot) error {
				return export.ExportGCode(path, snap, a.config.Plot)
			})
		}),
		fyne.NewMenuItem("Export QR Summary...", func() {
			a.exportFile("tour-qr.png", export.ExportQR)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Settings...", func() {
			a.showImportExportDialog()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo Point Edit", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo Point Edit", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Plot Settings...", func() {
			a.showPlotSettingsDialog()
		}),
	)

	// Search Menu
	var modeItems []*fyne.MenuItem
	for _, m := range model.RunModes {
		mode := m
		modeItems = append(modeItems, fyne.NewMenuItem(mode.String(), func() {
			a.setMode(mode)
		}))
	}
	modeItems = append(modeItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Radial Path", func() {
			a.setRadialPath()
		}),
		fyne.NewMenuItem("Compare Strategies...", func() {
			a.showCompareDialog()
		}),
	)
	searchMenu := fyne.NewMenu("Search", modeItems...)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, editMenu, searchMenu, helpMenu)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) recentImportsMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, p := range a.config.RecentImports {
		path := p
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			a.handleImportResult(path, importer.ImportFile(path))
		}))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("(none)", nil)
		none.Disabled = true
		items = append(items, none)
	}
	return fyne.NewMenu("Recent Imports", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation("About Traveling Salesman",
		"Traveling Salesman\n\n"+
			"Watch heuristic searches improve a closed tour through random points.\n\n"+
			"Random Restart shuffles the whole tour, Point Swap relocates points and\n"+
			"Segment Reversal reverses stretches of the best tour found so far.",
		a.window,
	)
}

// Build constructs the main window content.
func (a *App) Build() fyne.CanvasObject {
	content := container.NewBorder(nil, nil, a.buildControlPanel(), nil, a.canvas)
	a.refresh()
	return withToolTipLayer(content, a.window.Canvas())
}

func (a *App) buildControlPanel() fyne.CanvasObject {
	a.modeLabel = widget.NewLabel("")
	a.modeLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.pointsLabel = widget.NewLabel("")
	a.bestLabel = widget.NewLabel("")
	a.currLabel = widget.NewLabel("")
	a.savedLabel = widget.NewLabel("")
	a.stepsLabel = widget.NewLabel("")

	// --- Points ---
	pointsCard := widget.NewCard("Points", "", container.NewVBox(
		container.NewGridWithColumns(3,
			newButtonWithTooltip("Add", theme.ContentAddIcon(), "Add a random point (A)", a.addPoint),
			newButtonWithTooltip("Remove", theme.ContentRemoveIcon(), "Remove the last point (R)", a.removePoint),
			newButtonWithTooltip("Clear", theme.DeleteIcon(), "Remove every point (C)", a.clearPoints),
		),
		a.pointsLabel,
	))

	// --- Search ---
	a.swapLabel = widget.NewLabel("")
	swapSlider := widget.NewSlider(model.MinSwapCount, model.MaxSwapCount)
	swapSlider.Step = 1
	swapSlider.SetValue(float64(a.controller.SwapCount()))
	a.swapLabel.SetText(fmt.Sprintf("Swaps per step: %d", a.controller.SwapCount()))
	swapSlider.OnChanged = func(v float64) {
		n := a.controller.SetSwapCount(int(v))
		a.swapLabel.SetText(fmt.Sprintf("Swaps per step: %d", n))
	}

	searchCard := widget.NewCard("Search", "", container.NewVBox(
		newButtonWithTooltip("Random Restart", theme.ViewRefreshIcon(),
			"Try a fresh random ordering every step (1)", func() { a.setMode(model.ModeRandomRestart) }),
		newButtonWithTooltip("Point Swap", theme.ContentRedoIcon(),
			"Relocate random points of the best tour (2)", func() { a.setMode(model.ModeRandomPointSwap) }),
		newButtonWithTooltip("Segment Reversal", theme.ContentUndoIcon(),
			"Reverse random segments of the best tour (3)", func() { a.setMode(model.ModeRandomSegmentReversal) }),
		newButtonWithTooltip("Stop", theme.MediaStopIcon(),
			"Stop searching and clear the current candidate (Space)", func() { a.setMode(model.ModeIdle) }),
		a.swapLabel,
		swapSlider,
		widget.NewSeparator(),
		newButtonWithTooltip("Radial Path", theme.RadioButtonIcon(),
			"Build a tour by nearest insertion, sweeping inward (P)", a.setRadialPath),
		a.modeLabel,
		a.stepsLabel,
	))

	// --- Tours ---
	toursCard := widget.NewCard("Tours", "", container.NewVBox(
		a.bestLabel,
		a.currLabel,
		a.savedLabel,
		container.NewGridWithColumns(3,
			newButtonWithTooltip("Save", theme.DocumentSaveIcon(), "Checkpoint the best tour (S)", a.savePath),
			newButtonWithTooltip("Reset", theme.CancelIcon(), "Discard the checkpoint", a.resetSaved),
			newButtonWithTooltip("Discard", theme.ContentClearIcon(), "Discard the best and current tours (D)", a.discardTours),
		),
	))

	a.window.Canvas().SetOnTypedKey(a.handleKey)

	panel := container.NewVBox(pointsCard, searchCard, toursCard)
	return container.NewVScroll(container.NewPadded(panel))
}

// handleKey maps single keys to the control panel actions.
func (a *App) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyA:
		a.addPoint()
	case fyne.KeyR:
		a.removePoint()
	case fyne.KeyC:
		a.clearPoints()
	case fyne.Key1:
		a.setMode(model.ModeRandomRestart)
	case fyne.Key2:
		a.setMode(model.ModeRandomPointSwap)
	case fyne.Key3:
		a.setMode(model.ModeRandomSegmentReversal)
	case fyne.KeySpace, fyne.KeyEscape:
		a.setMode(model.ModeIdle)
	case fyne.KeyP:
		a.setRadialPath()
	case fyne.KeyS:
		a.savePath()
	case fyne.KeyD:
		a.discardTours()
	}
}

// ─── Refresh ───────────────────────────────────────────────

// requestRefresh queues a redraw on the UI goroutine. Requests arriving
// while one is queued are dropped.
func (a *App) requestRefresh() {
	if !a.pending.CompareAndSwap(false, true) {
		return
	}
	fyne.Do(func() {
		a.pending.Store(false)
		a.refresh()
	})
}

func (a *App) refresh() {
	snap := a.manager.Snapshot()
	a.canvas.SetSnapshot(snap)

	mode := "Mode: " + a.controller.Mode().String()
	if id := a.controller.RunID(); id != "" {
		mode += fmt.Sprintf(" (run %s)", id)
	}
	a.modeLabel.SetText(mode)
	a.pointsLabel.SetText(fmt.Sprintf("%d points", len(snap.Points)))
	a.bestLabel.SetText("Best: " + formatScore(snap.Score))
	a.currLabel.SetText("Current: " + formatScore(snap.CurrentScore))
	saved := "Saved: " + formatScore(snap.SavedScore)
	if snap.Checkpoint.ID != "" {
		saved += fmt.Sprintf(" (%s)", snap.Checkpoint.ID)
	}
	a.savedLabel.SetText(saved)
	a.stepsLabel.SetText(fmt.Sprintf("Steps: %d  Improvements: %d", snap.Steps, snap.Accepted))
}

func formatScore(s float32) string {
	if s == model.Unscored {
		return "-"
	}
	return fmt.Sprintf("%.3f", s)
}

// ─── Actions ───────────────────────────────────────────────

// editPoints runs edit and records the prior point set for undo when
// the edit changed something.
func (a *App) editPoints(label string, edit func() bool) {
	before := a.manager.Points()
	if !edit() {
		return
	}
	a.history.Push(MakePointEdit(before, label))
	a.requestRefresh()
}

func (a *App) addPoint() {
	a.editPoints("Add Point", func() bool {
		if _, err := a.manager.AddRandomPoint(); err != nil {
			dialog.ShowError(err, a.window)
			return false
		}
		return true
	})
}

func (a *App) removePoint() {
	a.editPoints("Remove Point", a.manager.RemoveLastPoint)
}

func (a *App) clearPoints() {
	a.editPoints("Clear Points", func() bool {
		if len(a.manager.Points()) == 0 {
			return false
		}
		a.manager.ClearPoints()
		return true
	})
}

func (a *App) undo() {
	prev, ok := a.history.Undo(MakePointEdit(a.manager.Points(), ""))
	if !ok {
		return
	}
	a.manager.ReplacePoints(prev.Points)
	a.log.WithField("edit", prev.Label).Debug("undo")
	a.requestRefresh()
}

func (a *App) redo() {
	next, ok := a.history.Redo(MakePointEdit(a.manager.Points(), ""))
	if !ok {
		return
	}
	a.manager.ReplacePoints(next.Points)
	a.log.WithField("edit", next.Label).Debug("redo")
	a.requestRefresh()
}

func (a *App) setMode(mode model.RunMode) {
	a.controller.SetMode(mode)
}

func (a *App) setRadialPath() {
	a.controller.SetMode(model.ModeIdle)
	score := a.manager.SetRadialPath()
	a.log.WithField("score", score).Info("radial path built")
	a.requestRefresh()
}

func (a *App) savePath() {
	cp := a.manager.SaveCurrentPath()
	a.log.WithFields(logrus.Fields{
		"checkpoint": cp.ID,
		"score":      a.manager.Snapshot().SavedScore,
	}).Info("path saved")
	a.requestRefresh()
}

func (a *App) resetSaved() {
	a.manager.ResetSavedPath()
	a.requestRefresh()
}

// discardTours forgets the best and current tours. Point Swap and Segment
// Reversal wait for a new tour until one is built.
func (a *App) discardTours() {
	a.manager.ResetPaths()
	a.log.Debug("tours discarded")
	a.requestRefresh()
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importPoints() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		a.handleImportResult(path, importer.ImportFile(path))
	}, a.window)
}

func (a *App) handleImportResult(path string, result importer.ImportResult) {
	// Show errors if any
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(errors.New(errorMsg), a.window)
	}

	// Warnings are logged, not shown
	for _, w := range result.Warnings {
		a.log.WithField("file", path).Warn(w)
	}

	if len(result.Points) == 0 {
		return
	}

	var added int
	a.editPoints("Import Points", func() bool {
		added = a.manager.AddPoints(result.Points)
		return added > 0
	})

	a.config.RememberImport(path, maxRecentImports)
	if err := a.saveConfig(); err != nil {
		a.log.WithError(err).Warn("failed to save recent imports")
	}
	a.SetupMenus()

	a.log.WithFields(logrus.Fields{
		"file":  path,
		"read":  len(result.Points),
		"added": added,
	}).Info("points imported")

	msg := fmt.Sprintf("Imported %d of %d points.", added, len(result.Points))
	if skipped := len(result.Points) - added; skipped > 0 {
		msg += fmt.Sprintf("\n\n%d points were already present and were skipped.", skipped)
	}
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// exportFile asks for a destination and writes the current snapshot with write.
func (a *App) exportFile(defaultName string, write func(path string, snap model.Snapshot) error) {
	snap := a.manager.Snapshot()
	if len(snap.Points) == 0 {
		dialog.ShowInformation("Nothing to export", "Add at least one point first.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path, snap); err != nil {
			a.log.WithError(err).WithField("file", path).Error("export failed")
			dialog.ShowError(err, a.window)
			return
		}
		a.log.WithField("file", path).Info("exported")
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Strategy comparison ───────────────────────────────────

func (a *App) showCompareDialog() {
	points := a.manager.Points()
	if len(points) < 3 {
		dialog.ShowInformation("Not enough points", "Add at least three points to compare strategies.", a.window)
		return
	}

	steps := 2000
	stepsEntry := intEntry(&steps)
	dialog.ShowForm("Compare Strategies", "Run", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Steps per strategy", stepsEntry)},
		func(ok bool) {
			if !ok || steps <= 0 {
				return
			}
			settings := a.manager.Settings()
			progress := dialog.NewCustomWithoutButtons("Comparing", widget.NewProgressBarInfinite(), a.window)
			progress.Show()
			go func() {
				results := engine.CompareStrategies(points, settings, engine.DefaultScenarios(settings), steps)
				fyne.Do(func() {
					progress.Hide()
					a.showCompareResults(results)
				})
			}()
		}, a.window)
}

func (a *App) showCompareResults(results []engine.StrategyResult) {
	rows := container.NewGridWithColumns(4,
		widget.NewLabelWithStyle("Strategy", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Best", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Improvement", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Accepted", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
	)
	for _, r := range results {
		rows.Add(widget.NewLabel(r.Scenario.Name))
		rows.Add(widget.NewLabelWithStyle(formatScore(r.BestScore), fyne.TextAlignTrailing, fyne.TextStyle{}))
		rows.Add(widget.NewLabelWithStyle(fmt.Sprintf("%.1f%%", r.ImprovementPercent()), fyne.TextAlignTrailing, fyne.TextStyle{}))
		rows.Add(widget.NewLabelWithStyle(fmt.Sprintf("%d / %d", r.Accepted, r.Steps), fyne.TextAlignTrailing, fyne.TextStyle{}))
	}
	d := dialog.NewCustom("Strategy Comparison", "Close", rows, a.window)
	d.Resize(fyne.NewSize(560, 300))
	d.Show()
}
