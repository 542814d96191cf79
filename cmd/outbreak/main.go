package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/katalvlaran/outbreak/config"
	"github.com/katalvlaran/outbreak/csvio"
	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/outbreak"
	"github.com/katalvlaran/outbreak/rng"
	"github.com/katalvlaran/outbreak/signals"
	"github.com/katalvlaran/outbreak/zone"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	cellsPath := flag.String("cells", "", "Cell CSV (empty = config landscape.cells_file, or an all-active grid)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config)")
	outputDir := flag.String("out", "", "Output directory for zones.csv, epicenters.csv and config.yaml")
	current := flag.Int("current", 0, "Current timestep (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *cellsPath != "" {
		cfg.Landscape.CellsFile = *cellsPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *current != 0 {
		cfg.Timestep.Current = *current
	}

	if err := run(cfg, logger); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ls, err := buildLandscape(cfg)
	if err != nil {
		return err
	}
	ag, err := cfg.NewAgent()
	if err != nil {
		return err
	}
	out, err := csvio.NewOutput(cfg.Output.Dir)
	if err != nil {
		return err
	}

	logger.Info("starting outbreak step",
		"rows", ls.Grid.Rows(),
		"columns", ls.Grid.Columns(),
		"active", ls.Grid.ActiveCount(),
		"last_zone", ls.Zones.Count(zone.LastZone),
		"seed", cfg.Seed,
		"template", cfg.Agent.DispersalTemplate,
		"dispersal_distance", cfg.Derived.DispersalDistance,
	)

	res, err := outbreak.Step(outbreak.Input{
		Grid:           ls.Grid,
		Signals:        ls.Layers,
		Zones:          ls.Zones,
		Agent:          ag,
		Source:         rng.New(cfg.Seed),
		Timestep:       cfg.Timestep.Current,
		TimestepLength: cfg.Timestep.Length,
	}, outbreak.WithLogger(logger), outbreak.WithMaxAttempts(cfg.Selection.MaxAttempts))
	if err != nil {
		return err
	}
	logger.Info("zone summary", "summary", res.Summary(zone.Conn8))

	cfg.Agent.EpicenterNum = ag.EpicenterNum
	if err := out.WriteZones(ls.Grid, ls.Zones); err != nil {
		return err
	}
	if err := out.WriteEpicenters(res.Epicenters()); err != nil {
		return err
	}
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}
	if out != nil {
		logger.Info("output written", "dir", out.Dir())
	}
	return nil
}

// buildLandscape reads the cell file when one is configured, otherwise it
// builds an all-active grid with no signals. The zone map is advanced one
// timestep either way.
func buildLandscape(cfg *config.Config) (*csvio.Landscape, error) {
	var ls *csvio.Landscape
	if cfg.Landscape.CellsFile != "" {
		var err error
		ls, err = csvio.LoadCells(cfg.Landscape.CellsFile, cfg.Landscape.CellLength)
		if err != nil {
			return nil, err
		}
	} else {
		g, err := landscape.New(cfg.Landscape.Rows, cfg.Landscape.Columns, cfg.Landscape.CellLength)
		if err != nil {
			return nil, err
		}
		zones := zone.NewMap(g)
		ls = &csvio.Landscape{Grid: g, Layers: signals.NewLayers(g, zones), Zones: zones}
	}
	ls.Zones.Advance()
	return ls, nil
}
