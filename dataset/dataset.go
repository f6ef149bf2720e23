// Package dataset loads transit networks described in YAML.
//
// A dataset lists lines as ordered station names plus the station names
// that act as interchanges. It is decoded with gopkg.in/yaml.v3, checked
// with go-playground/validator, and turned into a sealed core.Graph by
// Build. Default returns the embedded Delhi Metro network.
//
// Schema:
//
//	name: Delhi Metro
//	speed_kmh: 50       # average speed for travel-time estimates
//	unit_km: 1          # kilometres per unit of edge weight
//	weights:
//	  line: 1           # weight of one hop along a line
//	  transfer: 2       # weight of changing lines at an interchange
//	lines:
//	  - tag: red
//	    name: Red Line
//	    stations: [Rithala, Rohini West, ...]
//	interchanges: [Kashmere Gate, ...]
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied to zero-valued fields after decoding.
const (
	DefaultSpeedKMH = 50.0
	DefaultUnitKM   = 1.0
)

// Sentinel errors for dataset loading.
var (
	// ErrDecode wraps YAML syntax and type errors.
	ErrDecode = errors.New("dataset: decode failed")

	// ErrInvalid wraps schema violations reported by the validator.
	ErrInvalid = errors.New("dataset: invalid dataset")
)

//go:embed delhi.yaml
var delhiYAML []byte

// Weights overrides the builder's edge weights; zero keeps the default.
type Weights struct {
	Line     int64 `yaml:"line" validate:"gte=0"`
	Transfer int64 `yaml:"transfer" validate:"gte=0"`
}

// Line is one ordered run of stations.
type Line struct {
	Tag      string   `yaml:"tag" validate:"required"`
	Name     string   `yaml:"name"`
	Stations []string `yaml:"stations" validate:"required,min=1,dive,required"`
}

// Dataset is a complete network description.
type Dataset struct {
	Name         string   `yaml:"name" validate:"required"`
	SpeedKMH     float64  `yaml:"speed_kmh" validate:"gte=0"`
	UnitKM       float64  `yaml:"unit_km" validate:"gte=0"`
	Weights      Weights  `yaml:"weights"`
	Lines        []Line   `yaml:"lines" validate:"required,min=1,unique=Tag,dive"`
	Interchanges []string `yaml:"interchanges" validate:"dive,required"`
}

var validate = validator.New()

// Parse decodes and validates a YAML dataset, then fills defaults.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := validate.Struct(ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if ds.SpeedKMH == 0 {
		ds.SpeedKMH = DefaultSpeedKMH
	}
	if ds.UnitKM == 0 {
		ds.UnitKM = DefaultUnitKM
	}

	return &ds, nil
}

// Load reads and parses the dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return Parse(data)
}

// Default returns a fresh copy of the embedded Delhi Metro dataset.
func Default() *Dataset {
	ds, err := Parse(delhiYAML)
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded network is broken: %v", err))
	}

	return ds
}
