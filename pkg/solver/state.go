package solver

import (
	"math"

	"github.com/vibelux/roomcfd/pkg/spec"
	"github.com/vibelux/roomcfd/pkg/validation"
)

// State holds the six field arrays for one solve. It is created by
// Solve, mutated only by that call, and discarded once results are
// aggregated. Fields are flat contiguous buffers indexed by
// Idx(i,j,k) = i + j·nx + k·nx·ny.
type State struct {
	Nx, Ny, Nz int
	Dx, Dy, Dz float64
	Dt         float64

	U, V, W []float64 // velocity components, m/s
	P       []float64 // pressure, Pa
	T       []float64 // temperature, K
	Rho     []float64 // density, kg/m³

	AmbientK float64 // ambient temperature in Kelvin

	// scratch buffers for the double-buffered sweeps
	scratchU, scratchV, scratchW, scratchT []float64
}

// Idx converts (i,j,k) grid coordinates to a flat buffer offset.
func (s *State) Idx(i, j, k int) int {
	return i + j*s.Nx + k*s.Nx*s.Ny
}

// Cells returns the total number of grid points.
func (s *State) Cells() int {
	return s.Nx * s.Ny * s.Nz
}

// NewState validates the configuration and allocates the field arrays
// at their initial values. Configuration errors are reported before
// any allocation happens.
func NewState(cfg *spec.SimulationConfig) (*State, error) {
	if report := validation.ValidateSchema(cfg); !report.Valid {
		return nil, &ConfigError{Summary: report.Summary}
	}

	nx, ny, nz := cfg.Grid.Nx, cfg.Grid.Ny, cfg.Grid.Nz
	s := &State{
		Nx: nx, Ny: ny, Nz: nz,
		Dx:       cfg.Room.Width / float64(nx-1),
		Dy:       cfg.Room.Length / float64(ny-1),
		Dz:       cfg.Room.Height / float64(nz-1),
		AmbientK: cfg.AmbientTemp + KelvinOffset,
	}

	charVel := math.Max(cfg.InletSpeed, minCharVelocity)
	s.Dt = 0.5 * math.Min(s.Dx, math.Min(s.Dy, s.Dz)) / charVel

	n := s.Cells()
	s.U = make([]float64, n)
	s.V = make([]float64, n)
	s.W = make([]float64, n)
	s.P = make([]float64, n)
	s.T = make([]float64, n)
	s.Rho = make([]float64, n)
	s.scratchU = make([]float64, n)
	s.scratchV = make([]float64, n)
	s.scratchW = make([]float64, n)
	s.scratchT = make([]float64, n)

	for c := 0; c < n; c++ {
		s.P[c] = RefPressure
		s.T[c] = s.AmbientK
		s.Rho[c] = RefDensity
	}

	return s, nil
}

// relax blends the scratch field into the live field over the entire
// grid: field = α·new + (1−α)·old.
func relax(field, scratch []float64) {
	for c := range field {
		field[c] = relaxation*scratch[c] + (1-relaxation)*field[c]
	}
}

// checkFinite scans a field for NaN or Inf and reports the first hit.
func checkFinite(field []float64, name string, iteration int) error {
	for _, v := range field {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InstabilityError{
				Iteration: iteration,
				Field:     name,
				Detail:    "non-finite value",
			}
		}
	}
	return nil
}
