package fluid

import (
	"math"
	"math/rand/v2"
)

// Seeder fills a freshly constructed or reset grid's cells. The grid passes
// its dimensions so seeders can address cells without holding a Grid.
type Seeder func(cells []Cell, w, h int)

// ZeroSeed leaves every cell zeroed.
func ZeroSeed() Seeder {
	return func(cells []Cell, w, h int) {}
}

// SpikeSeed sets a single cell's velocity and density to a fixed spike value.
// Coordinates outside the grid leave it all-zero.
func SpikeSeed(x, y int, vel Vec2, density float64) Seeder {
	return func(cells []Cell, w, h int) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		cells[y*w+x] = Cell{Vel: vel, Density: density}
	}
}

// RandomSeed fills every cell with an independently sampled velocity (uniform
// random angle, magnitude in [minMag, maxMag)) and a density in [0, 1). The
// random source is injected so callers control determinism.
func RandomSeed(rng *rand.Rand, minMag, maxMag float64) Seeder {
	return func(cells []Cell, w, h int) {
		for i := range cells {
			angle := rng.Float64() * 2 * math.Pi
			mag := minMag + rng.Float64()*(maxMag-minMag)
			cells[i] = Cell{
				Vel:     Vec2{X: mag * math.Cos(angle), Y: mag * math.Sin(angle)},
				Density: rng.Float64(),
			}
		}
	}
}

// NewRand creates a deterministic random source from a seed, for use with
// RandomSeed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
