package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/buschmd967/traveling-salesman/internal/model"
	"github.com/buschmd967/traveling-salesman/internal/project"
)

// floatEntry creates an entry bound to a float32 pointer.
func floatEntry(val *float32) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(float64(*val), 'f', -1, 32))
	e.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 32); err == nil {
			*val = float32(v)
		}
	}
	return e
}

func float64Entry(val *float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(fmt.Sprintf("%.2f", *val))
	e.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			*val = v
		}
	}
	return e
}

func intEntry(val *int) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(*val))
	e.OnChanged = func(text string) {
		if v, err := strconv.Atoi(text); err == nil {
			*val = v
		}
	}
	return e
}

func int64Entry(val *int64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatInt(*val, 10))
	e.OnChanged = func(text string) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			*val = v
		}
	}
	return e
}

// showSettingsDialog displays the application preferences editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	levels := make([]string, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		levels = append(levels, l.String())
	}
	levelSelect := widget.NewSelect(levels, func(selected string) {
		cfg.LogLevel = selected
	})
	levelSelect.SetSelected(cfg.LogLevel)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Log Level", levelSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Placement Radius", floatEntry(&cfg.DefaultRadius)),
		widget.NewFormItem("Max Placement Attempts", intEntry(&cfg.DefaultMaxPlacementAttempts)),
		widget.NewFormItem("Default Swap Count (0-5)", intEntry(&cfg.DefaultSwapCount)),
		widget.NewFormItem("Radial Margin", floatEntry(&cfg.DefaultRadialMargin)),
		widget.NewFormItem("Radial Step", floatEntry(&cfg.DefaultRadialStep)),
		widget.NewFormItem("Redraw Interval (µs)", int64Entry(&cfg.RedrawIntervalMicros)),
		widget.NewFormItem("Random Seed (0 = time)", int64Entry(&cfg.Seed)),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			a.applyConfig()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(460, 480))
	d.Show()
}

// showImportExportDialog displays the settings backup dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export Settings...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportSettings(path, a.config, project.NewSession(a.manager.Snapshot())); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("Settings exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("traveling-salesman-settings.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import Settings...", func() {
		dialog.ShowConfirm("Import Settings",
			"Importing will replace your current preferences and points.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportSettings(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.applyConfig()
					if backup.Session != nil {
						a.restoreSession(backup.Session)
					}
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Settings imported from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export preferences and the current tours to a backup file,\nor import them from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Settings", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// applyConfig pushes the config into the running session.
func (a *App) applyConfig() {
	if level, err := logrus.ParseLevel(a.config.LogLevel); err == nil {
		a.log.SetLevel(level)
	}
	a.theme.SetVariantName(a.config.Theme)
	a.app.Settings().SetTheme(a.theme)

	settings := a.config.Settings()
	a.manager.SetSettings(settings)
	a.canvas.SetRadius(settings.Radius)
	a.log.WithField("config", a.configPath).Debug("preferences applied")
}

// restoreSession stops the search and loads the points and tours of a backup.
func (a *App) restoreSession(session *project.Session) {
	a.controller.SetMode(model.ModeIdle)
	a.editPoints("Import Session", func() bool {
		n := a.manager.Restore(session.Snapshot())
		a.log.WithFields(logrus.Fields{
			"points":     n,
			"checkpoint": session.Checkpoint.ID,
		}).Info("session restored")
		return true
	})
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(a.configPath, a.config)
}
