package fluid

import (
	"math"
	"testing"
)

func TestStepRunsBothStages(t *testing.T) {
	gr := New(10, 10, SpikeSeed(4, 4, Vec2{X: 20, Y: 20}, 1.0))

	gr.Step(0.016)

	// Diffusion spreads the velocity spike into the neighbors.
	n, _ := gr.At(3, 4)
	if n.Vel.Len() == 0 {
		t.Error("velocity did not diffuse into neighbor")
	}
	hot, _ := gr.At(4, 4)
	if hot.Density >= 1.0 {
		t.Errorf("density did not spread: %f", hot.Density)
	}

	for i, c := range gr.Cells() {
		if math.IsNaN(c.Density) || math.IsNaN(c.Vel.X) || math.IsNaN(c.Vel.Y) {
			t.Fatalf("cell %d not finite after step", i)
		}
	}
}

func TestOscillatePreservesSpeed(t *testing.T) {
	gr := New(4, 4, nil)
	cells := gr.Cells()
	cells[gr.idx(1, 1)].Vel = Vec2{X: 3, Y: 4}

	gr.Oscillate(1.3, 0.016)

	c, _ := gr.At(1, 1)
	if math.Abs(c.Vel.Len()-5) > 1e-9 {
		t.Errorf("speed changed: %f", c.Vel.Len())
	}
	angle := math.Sin(1.3)
	if math.Abs(c.Vel.X-5*math.Cos(angle)) > 1e-9 || math.Abs(c.Vel.Y-5*math.Sin(angle)) > 1e-9 {
		t.Errorf("unexpected direction: %+v", c.Vel)
	}
}

func TestOscillateWrapsDensity(t *testing.T) {
	gr := New(2, 2, nil)
	gr.Cells()[0].Density = 0.995

	gr.Oscillate(0, 0.01)

	if d := gr.Cells()[0].Density; math.Abs(d-0.005) > 1e-12 {
		t.Errorf("density did not wrap modulo 1: %f", d)
	}
}
