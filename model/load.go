package model

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileModel is the YAML wire form of a model file. Layers may either give
// the full anisotropic velocity set (vpv/vsv/vph/vsh/eta) or the isotropic
// shorthand vp/vs, which fills the horizontal velocities and sets eta to 1.
type fileModel struct {
	Name        string      `yaml:"name"`
	Anisotropic bool        `yaml:"anisotropic"`
	Layers      []fileLayer `yaml:"layers"`
}

type fileLayer struct {
	Radius float64 `yaml:"radius"`
	Rho    float64 `yaml:"rho"`
	Vp     float64 `yaml:"vp"`
	Vs     float64 `yaml:"vs"`
	Vpv    float64 `yaml:"vpv"`
	Vsv    float64 `yaml:"vsv"`
	Vph    float64 `yaml:"vph"`
	Vsh    float64 `yaml:"vsh"`
	Eta    float64 `yaml:"eta"`
	QKappa float64 `yaml:"qkappa"`
	QMu    float64 `yaml:"qmu"`
}

// Load reads a model from a YAML file. Unknown fields are rejected so a
// typo in a model file fails loudly instead of silently defaulting.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes YAML model content. Exported for testing without files.
func Parse(data []byte) (*Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fm fileModel
	if err := dec.Decode(&fm); err != nil {
		return nil, fmt.Errorf("parse model YAML: %w", err)
	}

	m := &Model{
		Name:        fm.Name,
		Anisotropic: fm.Anisotropic,
		Layers:      make([]Layer, 0, len(fm.Layers)),
	}
	for _, fl := range fm.Layers {
		m.Layers = append(m.Layers, fl.toLayer())
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (fl fileLayer) toLayer() Layer {
	l := Layer{
		Radius: fl.Radius,
		Rho:    fl.Rho,
		Vpv:    fl.Vpv,
		Vsv:    fl.Vsv,
		Vph:    fl.Vph,
		Vsh:    fl.Vsh,
		Eta:    fl.Eta,
		QKappa: fl.QKappa,
		QMu:    fl.QMu,
	}
	// Isotropic shorthand: vp/vs fill all four velocities.
	if fl.Vp != 0 && l.Vpv == 0 {
		l.Vpv, l.Vph = fl.Vp, fl.Vp
	}
	if fl.Vs != 0 && l.Vsv == 0 {
		l.Vsv, l.Vsh = fl.Vs, fl.Vs
	}
	if l.Eta == 0 {
		l.Eta = 1
	}
	return l
}
