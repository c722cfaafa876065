package solver

import (
	"fmt"
	"math"

	"github.com/vibelux/roomcfd/pkg/spec"
)

// InjectHeatSources raises the temperature inside each source's box.
// It runs once before the outer loop begins: a static injection
// consistent with steady operating power. Sources whose clamped index
// range is empty are skipped; the returned warnings name them.
func InjectHeatSources(s *State, cfg *spec.SimulationConfig) []string {
	var warnings []string

	for i, hs := range cfg.HeatSources {
		vol := hs.Volume()
		if vol <= 0 {
			warnings = append(warnings, sourceWarning(i, hs, "zero box volume"))
			continue
		}

		i0, i1, okX := clampRange(hs.Center.X-hs.Width/2, hs.Center.X+hs.Width/2, s.Dx, s.Nx)
		j0, j1, okY := clampRange(hs.Center.Y-hs.Length/2, hs.Center.Y+hs.Length/2, s.Dy, s.Ny)
		k0, k1, okZ := clampRange(hs.Center.Z-hs.Height/2, hs.Center.Z+hs.Height/2, s.Dz, s.Nz)
		if !okX || !okY || !okZ {
			warnings = append(warnings, sourceWarning(i, hs, "box outside the grid"))
			continue
		}

		// Volumetric heating rate (W/m³) converted to a temperature
		// increment over one pseudo-time step.
		rate := hs.Power / vol
		deltaT := rate * s.Dt / (RefDensity * SpecificHeat)

		for k := k0; k <= k1; k++ {
			for j := j0; j <= j1; j++ {
				for i := i0; i <= i1; i++ {
					s.T[s.Idx(i, j, k)] += deltaT
				}
			}
		}
	}

	return warnings
}

func sourceWarning(i int, hs spec.HeatSource, reason string) string {
	name := hs.Name
	if name == "" {
		name = fmt.Sprintf("#%d", i)
	}
	return fmt.Sprintf("heat source %s skipped: %s", name, reason)
}

// clampRange converts a [lo, hi] extent in meters to an inclusive grid
// index range clamped to [0, n−1]. ok is false when the extent lies
// entirely outside the grid.
func clampRange(lo, hi, spacing float64, n int) (int, int, bool) {
	first := int(math.Floor(lo / spacing))
	last := int(math.Ceil(hi / spacing))
	if last < 0 || first > n-1 {
		return 0, 0, false
	}
	if first < 0 {
		first = 0
	}
	if last > n-1 {
		last = n - 1
	}
	return first, last, true
}
