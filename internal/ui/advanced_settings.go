package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/buschmd967/traveling-salesman/internal/gcode"
	"github.com/buschmd967/traveling-salesman/internal/model"
	"github.com/buschmd967/traveling-salesman/internal/project"
	"github.com/buschmd967/traveling-salesman/internal/ui/widgets"
)

// showPlotSettingsDialog opens the plotter output settings with a preview
// of the best tour as it would be drawn.
func (a *App) showPlotSettingsDialog() {
	s := a.config.Plot

	// --- Plotter Profile ---
	description := widget.NewLabel(model.GetPlotterProfile(s.Profile).Description)
	description.Wrapping = fyne.TextWrapWord
	profileSelect := widget.NewSelect(model.GetPlotterProfileNames(), func(selected string) {
		s.Profile = selected
		description.SetText(model.GetPlotterProfile(selected).Description)
	})
	profileSelect.SetSelected(s.Profile)

	importBtn := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), func() {
		a.importPlotterProfile(func(name string) {
			profileSelect.Options = model.GetPlotterProfileNames()
			profileSelect.SetSelected(name)
		})
	})

	profileSection := widget.NewCard("Plotter Profile", "",
		container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Active Profile"), container.NewBorder(nil, nil, nil, importBtn, profileSelect),
			),
			description,
		))

	// --- Placement Mapping ---
	mappingSection := widget.NewCard("Placement Mapping",
		"Machine coordinates of a point are offset + scale × point",
		container.NewGridWithColumns(2,
			widget.NewLabel("Scale (units per point unit)"), float64Entry(&s.Scale),
			widget.NewLabel("Origin X"), float64Entry(&s.OffsetX),
			widget.NewLabel("Origin Y"), float64Entry(&s.OffsetY),
		))

	// --- Pen ---
	penSection := widget.NewCard("Pen", "",
		container.NewGridWithColumns(2,
			widget.NewLabel("Feed Rate (units/min)"), float64Entry(&s.FeedRate),
			widget.NewLabel("Pen Up Z"), float64Entry(&s.PenUpZ),
			widget.NewLabel("Pen Down Z"), float64Entry(&s.PenDownZ),
		))

	previewBtn := widget.NewButtonWithIcon("Preview", theme.VisibilityIcon(), func() {
		snap := a.manager.Snapshot()
		if !snap.HasBest() {
			dialog.ShowInformation("No tour", "Run a search or build a radial path first.", a.window)
			return
		}
		code := gcode.New(s).Generate(snap)
		d := dialog.NewCustom("Plot Preview", "Close", widgets.RenderPlotPreview(code), a.window)
		d.Resize(fyne.NewSize(760, 560))
		d.Show()
	})

	content := container.NewVScroll(container.NewVBox(
		profileSection,
		mappingSection,
		penSection,
		previewBtn,
	))

	d := dialog.NewCustomConfirm("Plot Settings", "Save", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		a.config.Plot = s
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save plot settings: %w", err), a.window)
		}
	}, a.window)
	d.Resize(fyne.NewSize(520, 560))
	d.Show()
}

// importPlotterProfile reads a profile file, registers it and persists the
// custom profile list.
func (a *App) importPlotterProfile(onImported func(name string)) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		p, err := project.ImportProfile(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if !model.RegisterPlotterProfile(p) {
			dialog.ShowError(fmt.Errorf("cannot replace built-in profile %q", p.Name), a.window)
			return
		}
		if err := project.SaveCustomProfiles(a.profilesPath, project.CustomProfiles()); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save profiles: %w", err), a.window)
			return
		}
		a.log.WithField("profile", p.Name).Info("plotter profile imported")
		onImported(p.Name)
	}, a.window)
}
