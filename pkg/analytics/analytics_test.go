package analytics

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/vibelux/roomcfd/pkg/solver"
	"github.com/vibelux/roomcfd/pkg/spec"
)

// uniformSolution builds a synthetic solved state with constant
// velocity (ux, 0, 0), uniform temperature tempK, and a linear
// pressure ramp dropPa across X.
func uniformSolution(n int, room spec.RoomDef, ux, tempK, dropPa float64) *solver.Solution {
	cells := n * n * n
	sol := &solver.Solution{
		Nx: n, Ny: n, Nz: n,
		Dx: room.Width / float64(n-1),
		Dy: room.Length / float64(n-1),
		Dz: room.Height / float64(n-1),
		Dt:  0.01,
		U:   make([]float64, cells),
		V:   make([]float64, cells),
		W:   make([]float64, cells),
		P:   make([]float64, cells),
		T:   make([]float64, cells),
		Rho: make([]float64, cells),

		Residuals: []float64{1e-3, 1e-5},
		Converged: true,
	}
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				c := sol.Idx(i, j, k)
				sol.U[c] = ux
				sol.T[c] = tempK
				sol.Rho[c] = solver.RefDensity
				sol.P[c] = solver.RefPressure - dropPa*float64(i)/float64(n-1)
			}
		}
	}
	return sol
}

func aggregateConfig() *spec.SimulationConfig {
	return &spec.SimulationConfig{
		Room:        spec.RoomDef{Width: 2, Length: 3, Height: 2.5},
		Grid:        spec.GridDef{Nx: 5, Ny: 5, Nz: 5},
		AmbientTemp: 22,
		InletSpeed:  1.0,
		Iterations:  10,
		Tolerance:   1e-4,
	}
}

func TestAggregateMetrics(t *testing.T) {
	cfg := aggregateConfig()
	sol := uniformSolution(5, cfg.Room, 0.5, 295.15, 12.0)

	res := Aggregate(cfg, sol, Options{Rand: rand.New(rand.NewSource(1))})
	m := res.Metrics

	if math.Abs(m.MaxVelocity-0.5) > 1e-12 || math.Abs(m.AvgVelocity-0.5) > 1e-12 {
		t.Errorf("velocity stats = %g/%g, want 0.5/0.5", m.MaxVelocity, m.AvgVelocity)
	}
	if math.Abs(m.AvgTempC-22.0) > 1e-9 {
		t.Errorf("AvgTempC = %g, want 22", m.AvgTempC)
	}
	if math.Abs(m.MaxTempC-m.MinTempC) > 1e-9 {
		t.Errorf("uniform field: max %g != min %g", m.MaxTempC, m.MinTempC)
	}

	if math.Abs(m.PressureDrop-12.0) > 1e-9 {
		t.Errorf("PressureDrop = %g, want 12", m.PressureDrop)
	}

	// ACH = v·(0.1·L·H)/V·3600 = 1·0.75/15·3600
	if math.Abs(m.AirChangeRate-180) > 1e-9 {
		t.Errorf("AirChangeRate = %g, want 180", m.AirChangeRate)
	}

	// Perfectly uniform temperature mixes perfectly.
	if m.MixingEfficiency != 1 {
		t.Errorf("MixingEfficiency = %g, want 1", m.MixingEfficiency)
	}

	if !res.Converged || len(res.Residuals) != 2 {
		t.Error("convergence record not carried into results")
	}
}

func TestMixingEfficiencyDegrades(t *testing.T) {
	cfg := aggregateConfig()
	sol := uniformSolution(5, cfg.Room, 0, 295.15, 0)

	// A hot stripe worsens the coefficient of variation.
	for i := 0; i < 25; i++ {
		sol.T[i] = 330
	}

	res := Aggregate(cfg, sol, Options{Rand: rand.New(rand.NewSource(1))})
	if res.Metrics.MixingEfficiency >= 1 {
		t.Errorf("MixingEfficiency = %g, want < 1 for stratified air", res.Metrics.MixingEfficiency)
	}
	if res.Metrics.MixingEfficiency < 0 {
		t.Errorf("MixingEfficiency = %g, want clamped at 0", res.Metrics.MixingEfficiency)
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := aggregateConfig()
	cfg.Grid = spec.GridDef{Nx: 6, Ny: 6, Nz: 6}
	cfg.InletSpeed = 0.5
	cfg.Boundaries = spec.BoundarySet{
		West: &spec.FaceCondition{Type: spec.FaceInlet},
		East: &spec.FaceCondition{Type: spec.FaceOutlet},
	}
	cfg.Iterations = 15

	res, err := Run(context.Background(), cfg, solver.Options{}, Options{
		Rand:        rand.New(rand.NewSource(7)),
		Streamlines: 5,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Residuals) == 0 {
		t.Error("no residual history recorded")
	}
	if res.Metrics.MaxVelocity <= 0 {
		t.Error("ventilated room should have nonzero peak velocity")
	}
	if len(res.Speed) != cfg.Grid.Cells() {
		t.Errorf("Speed field has %d cells, want %d", len(res.Speed), cfg.Grid.Cells())
	}
}
