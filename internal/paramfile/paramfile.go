// Package paramfile loads material and geometry parameters from TOML:
//
//	[material_properties]
//	elastic_modulus = 70e9   # Pa
//	density = 2700           # kg/m^3
//
//	[geometric_parameters]
//	junction_length = 0.5    # m
//	gage_distance = 0.25     # m, optional
//
// Absent keys are left unset; checking required values is the model's job.
package paramfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/SubhashUFlorida/millipede-bar/junction"
)

// DefaultPath is the parameter file used when none is given.
const DefaultPath = "parameters.toml"

// ErrDecode is returned for files that are not valid parameter TOML.
var ErrDecode = errors.New("paramfile: decode")

type document struct {
	Material struct {
		ElasticModulus float64 `toml:"elastic_modulus"`
		Density        float64 `toml:"density"`
	} `toml:"material_properties"`
	Geometry struct {
		JunctionLength float64 `toml:"junction_length"`
		GageDistance   float64 `toml:"gage_distance"`
	} `toml:"geometric_parameters"`
}

// Load reads parameters from the TOML file at path.
func Load(path string) (junction.Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return junction.Parameters{}, fmt.Errorf("paramfile: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return junction.Parameters{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads parameters from TOML.
func Decode(r io.Reader) (junction.Parameters, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return junction.Parameters{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	p := junction.Parameters{
		ElasticModulus: doc.Material.ElasticModulus,
		Density:        doc.Material.Density,
		JunctionLength: doc.Geometry.JunctionLength,
	}
	if md.IsDefined("geometric_parameters", "gage_distance") {
		p.GageDistance = junction.Some(doc.Geometry.GageDistance)
	}
	return p, nil
}
