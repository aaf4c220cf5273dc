package metrics

import (
	"math"

	"fluidlab/internal/fluid"
)

// TotalDensity tracks the grid-wide density sum of the most recent frame.
type TotalDensity struct {
	name  string
	total float64
}

func NewTotalDensity() *TotalDensity {
	return &TotalDensity{name: "total_density"}
}

func (m *TotalDensity) Name() string { return m.name }

func (m *TotalDensity) Observe(g *fluid.Grid, t float64) {
	m.total = g.TotalDensity()
}

func (m *TotalDensity) Value() float64 { return m.total }

func (m *TotalDensity) Reset() { m.total = 0 }

// MassDrift records the largest relative deviation of total density from the
// first observed frame. The diffusion update is not exactly mass-conserving
// in Gauss-Seidel order, so this is expected to be small but nonzero.
type MassDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift() *MassDrift {
	return &MassDrift{name: "mass_drift"}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(g *fluid.Grid, t float64) {
	total := g.TotalDensity()

	if m.samples == 0 {
		m.initial = total
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(total-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 { return m.maxDrift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
