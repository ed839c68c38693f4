// Package sensor collects raw workout packages from the places a tracker can deliver them.
package sensor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Package is one raw reading set: a workout code and its positional readings.
type Package struct {
	Code string    `yaml:"code" json:"code"`
	Data []float64 `yaml:"data" json:"data"`
}

// Samples returns the packages the tracker ships with, in display order.
func Samples() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

type packagesFile struct {
	Packages []Package `yaml:"packages"`
}

// LoadFile reads packages from a YAML or JSON document of the form
// {"packages": [{"code": "RUN", "data": [...]}]}.
func LoadFile(path string) ([]Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}

	var f packagesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing packages file: %w", err)
	}

	return f.Packages, nil
}
