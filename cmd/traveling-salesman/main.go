// Traveling Salesman: a visualizer for heuristic tour search.
//
// Points are placed at random on a square area and one of several
// randomized local searches repeatedly tries to shorten a closed tour
// through all of them, redrawing the best tour found so far.
//
// Build:
//   go build -o traveling-salesman ./cmd/traveling-salesman
//
// Cross-compile with fyne-cross:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/buschmd967/traveling-salesman/internal/model"
	"github.com/buschmd967/traveling-salesman/internal/project"
	"github.com/buschmd967/traveling-salesman/internal/ui"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		log.WithError(err).WithField("config", configPath).Warn("using default configuration")
		config = model.DefaultAppConfig()
	}
	if level, err := logrus.ParseLevel(config.LogLevel); err == nil {
		log.SetLevel(level)
	}

	profilesPath := project.DefaultProfilesPath()
	if n, err := project.RegisterCustomProfiles(profilesPath); err != nil {
		log.WithError(err).WithField("profiles", profilesPath).Warn("failed to load plotter profiles")
	} else if n > 0 {
		log.WithField("count", n).Debug("custom plotter profiles loaded")
	}

	application := app.NewWithID("com.buschmd967.traveling-salesman")
	tourTheme := ui.NewTourTheme(config.Theme)
	application.Settings().SetTheme(tourTheme)

	window := application.NewWindow("Traveling Salesman")

	appUI := ui.NewApp(application, window, ui.AppOptions{
		Config:       config,
		ConfigPath:   configPath,
		ProfilesPath: profilesPath,
		Theme:        tourTheme,
		Logger:       log,
	})
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1100, 760))
	window.CenterOnScreen()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	appUI.Start(ctx)

	window.SetOnClosed(cancel)
	window.ShowAndRun()
}
