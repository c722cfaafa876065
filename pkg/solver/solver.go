package solver

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/vibelux/roomcfd/pkg/spec"
)

// Options tunes one solve. The zero value is usable.
type Options struct {
	// Logger receives per-iteration progress at debug level and a
	// completion line at info level. Nil disables logging.
	Logger logrus.FieldLogger

	// Progress, when set, is invoked once per outer iteration with the
	// iteration number (1-based) and the residual just computed.
	Progress func(iteration int, residual float64)
}

// Solution is the raw solved field state plus the convergence record.
// It owns its slices; nothing references the internal solve state.
type Solution struct {
	Nx, Ny, Nz int
	Dx, Dy, Dz float64
	Dt         float64

	U, V, W []float64
	P       []float64
	T       []float64
	Rho     []float64

	// Residuals records one value per outer iteration actually
	// executed, so its length distinguishes an early-converged run
	// from an exhausted budget.
	Residuals []float64
	Converged bool
	Warnings  []string
}

// Idx converts (i,j,k) grid coordinates to a flat buffer offset.
func (sol *Solution) Idx(i, j, k int) int {
	return i + j*sol.Nx + k*sol.Nx*sol.Ny
}

// Solve runs the full outer iteration loop for one scenario and
// returns the solved fields. The context is checked between outer
// iterations; grid sizes and iteration budgets can make a single call
// run for seconds to minutes.
//
// The loop per iteration: momentum → pressure correction → velocity
// correction → energy → density update → boundary re-application →
// residual. Convergence is declared the first time the residual drops
// below the configured tolerance.
func Solve(ctx context.Context, cfg *spec.SimulationConfig, opts Options) (*Solution, error) {
	st, err := NewState(cfg)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log != nil {
		log = log.WithFields(logrus.Fields{
			"grid": cfg.Grid,
			"dt":   st.Dt,
		})
		log.Info("starting solve")
	}

	ApplyBoundaries(st, cfg)
	warnings := InjectHeatSources(st, cfg)
	if log != nil {
		for _, w := range warnings {
			log.Warn(w)
		}
	}

	prevU := make([]float64, st.Cells())
	var residuals []float64
	converged := false

	for iter := 1; iter <= cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		copy(prevU, st.U)

		StepMomentum(st)
		SolvePressure(st)
		CorrectVelocity(st)
		StepEnergy(st)
		if err := UpdateDensity(st, iter); err != nil {
			return nil, err
		}
		ApplyBoundaries(st, cfg)

		residual := meanAbsDelta(prevU, st.U)
		residuals = append(residuals, residual)

		if math.IsNaN(residual) || math.IsInf(residual, 0) {
			return nil, &InstabilityError{
				Iteration: iter,
				Field:     "u",
				Detail:    "non-finite residual",
			}
		}

		if log != nil {
			log.WithFields(logrus.Fields{
				"iteration": iter,
				"residual":  residual,
			}).Debug("outer iteration complete")
		}
		if opts.Progress != nil {
			opts.Progress(iter, residual)
		}

		if residual < cfg.Tolerance {
			converged = true
			break
		}
	}

	for _, f := range []struct {
		name string
		data []float64
	}{{"u", st.U}, {"v", st.V}, {"w", st.W}, {"p", st.P}, {"t", st.T}} {
		if err := checkFinite(f.data, f.name, len(residuals)); err != nil {
			return nil, err
		}
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"iterations": len(residuals),
			"converged":  converged,
		}).Info("solve finished")
	}

	return &Solution{
		Nx: st.Nx, Ny: st.Ny, Nz: st.Nz,
		Dx: st.Dx, Dy: st.Dy, Dz: st.Dz,
		Dt:        st.Dt,
		U:         st.U,
		V:         st.V,
		W:         st.W,
		P:         st.P,
		T:         st.T,
		Rho:       st.Rho,
		Residuals: residuals,
		Converged: converged,
		Warnings:  warnings,
	}, nil
}

// meanAbsDelta is the convergence residual: mean absolute difference
// between the u field before and after one full outer step.
func meanAbsDelta(before, after []float64) float64 {
	sum := 0.0
	for c := range before {
		sum += math.Abs(after[c] - before[c])
	}
	return sum / float64(len(before))
}
