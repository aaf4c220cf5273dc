package sim

import (
	"context"
	"fmt"

	"fluidlab/internal/fluid"
)

// Runner drives a grid through discrete frame ticks. It owns the grid
// exclusively for the duration of a run: each tick executes diffusion then
// advection to completion before metrics and observers read the state, and
// cancellation is only honored between frames. External perturbation must
// happen inside an observer or callback, never concurrently.
type Runner struct {
	grid      *fluid.Grid
	metrics   []Metric
	observers []Observer
}

func New(g *fluid.Grid) *Runner {
	return &Runner{
		grid:      g,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Grid exposes the grid for between-frame access (injection, reset).
func (r *Runner) Grid() *fluid.Grid { return r.grid }

// Run advances the grid once per frame for the configured duration.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	frames := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, frames),
		Series:  make(map[string][]float64, len(r.metrics)),
		Metrics: make(map[string]float64, len(r.metrics)),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.grid.Step(cfg.Dt)
		t += cfg.Dt
		result.Frames++
		result.Times = append(result.Times, t)

		for _, m := range r.metrics {
			m.Observe(r.grid, t)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		for _, obs := range r.observers {
			obs.OnFrame(r.grid, t)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps until the duration elapses or the callback returns
// false. The callback runs between frames and may inject or reset the grid.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(g *fluid.Grid, t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.grid.Step(cfg.Dt)
		t += cfg.Dt

		if !callback(r.grid, t) {
			return nil
		}
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
