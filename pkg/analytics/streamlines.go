package analytics

import (
	"math"
	"math/rand"

	"github.com/vibelux/roomcfd/pkg/geo"
	"github.com/vibelux/roomcfd/pkg/solver"
	"github.com/vibelux/roomcfd/pkg/spec"
)

// Streamline is one traced particle path through the velocity field.
type Streamline struct {
	Points []geo.Vec3 `json:"points"`
}

// Tracer integrates particle paths through a solved velocity field
// with explicit Euler steps and trilinear interpolation. The zero
// value traces 20 paths with the default step parameters.
type Tracer struct {
	Count    int     // number of seed points (default 20)
	MaxSteps int     // integration budget per path (default 100)
	StepTime float64 // Euler step in seconds (default 0.1)
	MinSpeed float64 // termination speed in m/s (default 0.01)

	// Rand supplies seed positions. Nil falls back to the global
	// source; inject a seeded generator for reproducible traces.
	Rand *rand.Rand
}

func (tr Tracer) withDefaults() Tracer {
	if tr.Count == 0 {
		tr.Count = 20
	}
	if tr.MaxSteps == 0 {
		tr.MaxSteps = 100
	}
	if tr.StepTime == 0 {
		tr.StepTime = 0.1
	}
	if tr.MinSpeed == 0 {
		tr.MinSpeed = 0.01
	}
	return tr
}

func (tr Tracer) random() float64 {
	if tr.Rand != nil {
		return tr.Rand.Float64()
	}
	return rand.Float64()
}

// Trace integrates Count paths from random seed points. Seeds are
// uniform in X and Y with height biased to the 30-70% band where
// canopy airflow matters most. Paths shorter than two points are
// discarded.
func (tr Tracer) Trace(room spec.RoomDef, sol *solver.Solution) []Streamline {
	tr = tr.withDefaults()

	lines := make([]Streamline, 0, tr.Count)
	for n := 0; n < tr.Count; n++ {
		seed := geo.V(
			tr.random()*room.Width,
			tr.random()*room.Length,
			(0.3+0.4*tr.random())*room.Height,
		)
		if line := tr.trace(room, sol, seed); len(line.Points) >= 2 {
			lines = append(lines, line)
		}
	}
	return lines
}

func (tr Tracer) trace(room spec.RoomDef, sol *solver.Solution, seed geo.Vec3) Streamline {
	points := []geo.Vec3{seed}
	p := seed

	for step := 0; step < tr.MaxSteps; step++ {
		vel, ok := sampleVelocity(sol, p)
		if !ok || vel.Length() < tr.MinSpeed {
			break
		}
		p = p.Add(vel.Scale(tr.StepTime))
		if p.X < 0 || p.X > room.Width ||
			p.Y < 0 || p.Y > room.Length ||
			p.Z < 0 || p.Z > room.Height {
			break
		}
		points = append(points, p)
	}

	return Streamline{Points: points}
}

// sampleVelocity returns the trilinearly interpolated velocity at an
// arbitrary point, from the 8 surrounding grid cells. ok is false when
// the grid spacing is degenerate.
func sampleVelocity(sol *solver.Solution, p geo.Vec3) (geo.Vec3, bool) {
	if sol.Dx <= 0 || sol.Dy <= 0 || sol.Dz <= 0 {
		return geo.Zero, false
	}

	i, tx := cellFraction(p.X/sol.Dx, sol.Nx)
	j, ty := cellFraction(p.Y/sol.Dy, sol.Ny)
	k, tz := cellFraction(p.Z/sol.Dz, sol.Nz)

	interp := func(f []float64) float64 {
		c000 := f[sol.Idx(i, j, k)]
		c100 := f[sol.Idx(i+1, j, k)]
		c010 := f[sol.Idx(i, j+1, k)]
		c110 := f[sol.Idx(i+1, j+1, k)]
		c001 := f[sol.Idx(i, j, k+1)]
		c101 := f[sol.Idx(i+1, j, k+1)]
		c011 := f[sol.Idx(i, j+1, k+1)]
		c111 := f[sol.Idx(i+1, j+1, k+1)]

		c00 := c000*(1-tx) + c100*tx
		c10 := c010*(1-tx) + c110*tx
		c01 := c001*(1-tx) + c101*tx
		c11 := c011*(1-tx) + c111*tx

		c0 := c00*(1-ty) + c10*ty
		c1 := c01*(1-ty) + c11*ty

		return c0*(1-tz) + c1*tz
	}

	return geo.V(interp(sol.U), interp(sol.V), interp(sol.W)), true
}

// cellFraction splits a grid-space coordinate into a lower cell index
// (clamped so index+1 stays in bounds) and the fractional offset.
func cellFraction(g float64, n int) (int, float64) {
	i := int(math.Floor(g))
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	t := g - float64(i)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return i, t
}
