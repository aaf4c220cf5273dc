package metrics

import "fluidlab/internal/sim"

// Default returns the standard metric set recorded for every run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewTotalDensity(),
		NewMassDrift(),
		NewMaxSpeed(),
	}
}
