package fluid

// Diffuse relaxes each cell's density and velocity toward the local 4-neighbor
// average, modeling viscous spreading with an implicit update:
//
//	new = (orig + k*avg) / (1 + k)   where k = rate*dt
//
// orig is read from the grid as it stood before this call; avg is read from
// the in-progress working copy, so later cells in a sweep see updates from
// earlier ones (Gauss-Seidel). As k -> 0 the step is a no-op; as k -> inf
// every cell converges to the unweighted neighbor average regardless of its
// prior value, which is what makes the scheme stable for any dt.
func (g *Grid) Diffuse(dt, rate float64) {
	k := rate * dt
	if k == 0 {
		return
	}

	work := make([]Cell, len(g.cells))
	copy(work, g.cells)
	orig := g.cells

	for s := 0; s < g.Sweeps; s++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				i := g.idx(x, y)

				avg := average(work, g.W, g.H, x, y, FieldDensity)
				work[i].Density = (orig[i].Density + k*avg) / (1 + k)

				avg = average(work, g.W, g.H, x, y, FieldVelX)
				work[i].Vel.X = (orig[i].Vel.X + k*avg) / (1 + k)

				avg = average(work, g.W, g.H, x, y, FieldVelY)
				work[i].Vel.Y = (orig[i].Vel.Y + k*avg) / (1 + k)
			}
		}
	}

	g.cells = work
}
