// Package preset loads and saves send mixes as YAML files.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/volki9000/monitorsend/pkg/monitor"
)

// Mix is a saved set of send levels in decibels.
type Mix struct {
	FOH   float64 `yaml:"foh"`
	Axel  float64 `yaml:"axel"`
	Sebi  float64 `yaml:"sebi"`
	Volki float64 `yaml:"volki"`
}

// Default returns a mix with every send at unity gain.
func Default() Mix {
	return Mix{}
}

// Load reads a mix from a YAML file.
func Load(path string) (Mix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mix{}, fmt.Errorf("preset: %w", err)
	}

	var m Mix
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mix{}, fmt.Errorf("preset: parse %s: %w", path, err)
	}
	return m, nil
}

// Save writes the mix to a YAML file.
func (m Mix) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	return nil
}

// Levels returns the per-send levels in bus order.
func (m Mix) Levels() [monitor.NumSends]float64 {
	return [monitor.NumSends]float64{m.FOH, m.Axel, m.Sebi, m.Volki}
}

// Apply sets the send controls from the mix. Levels outside the control
// range are clamped by the parameter mapping.
func (m Mix) Apply(p *monitor.Params) {
	levels := m.Levels()
	for s := monitor.Send(0); s < monitor.NumSends; s++ {
		p.SetGainDB(s, levels[s])
	}
}
