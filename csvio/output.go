package csvio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/outbreak/config"
	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/zone"
)

// Output writes run artifacts into one directory.
// A nil *Output is valid and discards everything.
type Output struct {
	dir string
}

// NewOutput creates dir and returns an Output writing into it.
// Returns nil if dir is empty (output disabled).
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Output{dir: dir}, nil
}

// Dir returns the output directory path.
func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// WriteConfig saves the effective configuration as config.yaml.
func (o *Output) WriteConfig(cfg *config.Config) error {
	if o == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(o.dir, "config.yaml"))
}

// WriteZones writes zones.csv.
func (o *Output) WriteZones(g *landscape.Grid, zones *zone.Map) error {
	if o == nil {
		return nil
	}
	return o.create("zones.csv", func(f *os.File) error { return WriteZones(f, g, zones) })
}

// WriteEpicenters writes epicenters.csv.
func (o *Output) WriteEpicenters(epicenters []landscape.Location) error {
	if o == nil {
		return nil
	}
	return o.create("epicenters.csv", func(f *os.File) error { return WriteEpicenters(f, epicenters) })
}

func (o *Output) create(name string, write func(f *os.File) error) error {
	f, err := os.Create(filepath.Join(o.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
