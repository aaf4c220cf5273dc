package metrics

import (
	"fluidlab/internal/fluid"
)

// MaxSpeed tracks the largest velocity magnitude seen over a run. Exposing
// magnitude keeps angle computations out of the core: a renderer consults
// this (or per-cell Vec2.Len) before deriving any direction.
type MaxSpeed struct {
	name string
	peak float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(g *fluid.Grid, t float64) {
	if s := g.MaxSpeed(); s > m.peak {
		m.peak = s
	}
}

func (m *MaxSpeed) Value() float64 { return m.peak }

func (m *MaxSpeed) Reset() { m.peak = 0 }
