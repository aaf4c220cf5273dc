package sim

import "fluidlab/internal/fluid"

// Metric samples a per-frame observable from the grid.
type Metric interface {
	Name() string
	Observe(g *fluid.Grid, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every completed frame, once the grid state is
// safe to read.
type Observer interface {
	OnFrame(g *fluid.Grid, t float64)
}

// Config controls a headless run.
type Config struct {
	Dt       float64
	Duration float64
}

// Result accumulates the per-frame metric series and final values of a run.
type Result struct {
	Times   []float64
	Series  map[string][]float64
	Metrics map[string]float64
	Frames  int
}
