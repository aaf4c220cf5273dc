package storage

import (
	"math"
	"testing"

	"fluidlab/internal/fluid"
	"fluidlab/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Times: []float64{0.1, 0.2, 0.3},
		Series: map[string][]float64{
			"total_density": {1.0, 0.99, 0.98},
			"max_speed":     {5.0, 4.5, 4.2},
		},
		Metrics: map[string]float64{
			"total_density": 0.98,
			"max_speed":     5.0,
		},
		Frames: 3,
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	g := fluid.New(3, 3, fluid.SpikeSeed(1, 1, fluid.Vec2{}, 0.5))

	runID, err := st.Save("spike", 3, 3, 0.1, 0.3, 42, testResult(), g)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Width != 3 || meta.Height != 3 || meta.Init != "spike" || meta.Seed != 42 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", meta.Frames)
	}

	times, series, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(times) != 3 {
		t.Fatalf("expected 3 times, got %d", len(times))
	}
	if math.Abs(series["total_density"][2]-0.98) > 1e-9 {
		t.Errorf("series value mismatch: %f", series["total_density"][2])
	}

	rows, err := st.LoadGrid(runID)
	if err != nil {
		t.Fatalf("load grid failed: %v", err)
	}
	if len(rows) != 3 || len(rows[0]) != 3 {
		t.Fatalf("grid shape %dx%d, want 3x3", len(rows), len(rows[0]))
	}
	if math.Abs(rows[1][1]-0.5) > 1e-9 {
		t.Errorf("expected spike density at (1,1), got %f", rows[1][1])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty list, got %d", len(runs))
	}

	if _, err := st.Save("zero", 2, 2, 0.1, 0.3, 1, testResult(), nil); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list")
	}
}
