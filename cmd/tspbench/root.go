package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/buschmd967/traveling-salesman/internal/engine"
	"github.com/buschmd967/traveling-salesman/internal/export"
	"github.com/buschmd967/traveling-salesman/internal/importer"
	"github.com/buschmd967/traveling-salesman/internal/model"
	"github.com/buschmd967/traveling-salesman/internal/project"
)

// options are the flags shared by every sub-command.
type options struct {
	configPath string
	logLevel   string
	points     int
	input      string
	seed       int64
	radius     float32
	output     string

	config model.AppConfig
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tspbench",
		Short:         "Run and compare heuristic tour searches from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.Flags(), log)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", project.DefaultConfigPath(), "config file (TOML)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides the config)")
	flags.IntVarP(&opts.points, "points", "n", 30, "number of random points to place")
	flags.StringVarP(&opts.input, "input", "i", "", "import points from a CSV, Excel or DXF file instead of placing them")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 = config value, or time based)")
	flags.Float32Var(&opts.radius, "radius", 0, "placement radius (0 = config value)")
	flags.StringVarP(&opts.output, "output", "o", "", "write the result (.pdf, .xlsx, .dxf, .gcode, .png)")

	root.AddCommand(
		newRunCmd(opts, log),
		newCompareCmd(opts, log),
		newRadialCmd(opts, log),
	)
	return root
}

// load reads the config file and applies flag overrides.
func (o *options) load(flags *pflag.FlagSet, log *logrus.Logger) error {
	cfg, err := project.LoadAppConfig(o.configPath)
	if err != nil {
		return err
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("radius") {
		cfg.DefaultRadius = o.radius
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	o.config = cfg
	return nil
}

// settings returns the search settings for this invocation.
func (o *options) settings() model.SearchSettings {
	return o.config.Settings()
}

// newManager builds a manager holding the imported or random points.
func (o *options) newManager(log logrus.FieldLogger) (*engine.PointManager, error) {
	m := engine.NewPointManager(o.settings())

	if o.input != "" {
		result := importer.ImportFile(o.input)
		for _, w := range result.Warnings {
			log.WithField("file", o.input).Warn(w)
		}
		if len(result.Errors) > 0 {
			return nil, fmt.Errorf("failed to import %s: %s", o.input, strings.Join(result.Errors, "; "))
		}
		added := m.AddPoints(result.Points)
		log.WithFields(logrus.Fields{"file": o.input, "points": added}).Info("points imported")
		return m, nil
	}

	for i := 0; i < o.points; i++ {
		if _, err := m.AddRandomPoint(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// writeOutput exports snap in the format chosen by the output extension.
func (o *options) writeOutput(snap model.Snapshot, log logrus.FieldLogger) error {
	if o.output == "" {
		return nil
	}
	var err error
	switch strings.ToLower(filepath.Ext(o.output)) {
	case ".pdf":
		err = export.ExportPDF(o.output, snap, o.settings())
	case ".xlsx":
		err = export.ExportExcel(o.output, snap)
	case ".dxf":
		err = export.ExportDXF(o.output, snap)
	case ".gcode", ".nc", ".ngc":
		err = export.ExportGCode(o.output, snap, o.config.Plot)
	case ".png":
		err = export.ExportQR(o.output, snap)
	default:
		return fmt.Errorf("unsupported output format: %s", o.output)
	}
	if err != nil {
		return err
	}
	log.WithField("file", o.output).Info("result written")
	return nil
}

func formatScore(s float32) string {
	if s == model.Unscored {
		return "-"
	}
	return fmt.Sprintf("%.3f", s)
}
