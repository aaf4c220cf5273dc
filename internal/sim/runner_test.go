package sim

import (
	"context"
	"testing"

	"fluidlab/internal/fluid"
)

type testMetric struct {
	count int
	last  float64
}

func (m *testMetric) Name() string { return "test" }
func (m *testMetric) Observe(g *fluid.Grid, t float64) {
	m.count++
	m.last = g.TotalDensity()
}
func (m *testMetric) Value() float64 { return m.last }
func (m *testMetric) Reset()         { m.count, m.last = 0, 0 }

func TestRunnerRun(t *testing.T) {
	gr := fluid.New(4, 4, fluid.SpikeSeed(2, 2, fluid.Vec2{}, 1.0))
	r := New(gr)

	metric := &testMetric{}
	r.AddMetric(metric)

	result, err := r.Run(context.Background(), Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames != 10 {
		t.Errorf("expected 10 frames, got %d", result.Frames)
	}
	if len(result.Times) != result.Frames {
		t.Errorf("times/frames mismatch: %d vs %d", len(result.Times), result.Frames)
	}
	if metric.count != result.Frames {
		t.Errorf("expected %d observations, got %d", result.Frames, metric.count)
	}
	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}
	if len(result.Series["test"]) != result.Frames {
		t.Errorf("series length %d, want %d", len(result.Series["test"]), result.Frames)
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := New(fluid.New(4, 4, nil))

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerCancellation(t *testing.T) {
	r := New(fluid.New(4, 4, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, Config{Dt: 0.1, Duration: 100.0})
	if err == nil {
		t.Fatal("expected context error")
	}
	if result == nil {
		t.Fatal("expected partial result")
	}
	if result.Frames != 0 {
		t.Errorf("expected no frames after immediate cancel, got %d", result.Frames)
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	r := New(fluid.New(4, 4, nil))

	frames := 0
	err := r.RunWithCallback(context.Background(), Config{Dt: 0.1, Duration: 100.0},
		func(g *fluid.Grid, t float64) bool {
			frames++
			return frames < 5
		})
	if err != nil {
		t.Fatalf("callback run failed: %v", err)
	}
	if frames != 5 {
		t.Errorf("expected 5 frames, got %d", frames)
	}
}

func TestEnsembleRunsPerSeed(t *testing.T) {
	build := func(seed int64) *Runner {
		g := fluid.New(6, 6, fluid.RandomSeed(fluid.NewRand(seed), 0.5, 5.0))
		r := New(g)
		r.AddMetric(&testMetric{})
		return r
	}

	e := NewEnsemble(build, 4, 100)
	results, err := e.Run(context.Background(), Config{Dt: 0.05, Duration: 0.5})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Frames == 0 {
			t.Errorf("run %d took no frames", i)
		}
	}
}
