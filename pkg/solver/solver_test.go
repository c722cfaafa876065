package solver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/vibelux/roomcfd/pkg/geo"
	"github.com/vibelux/roomcfd/pkg/spec"
)

// sealedRoom is a 2 m cube with every face an adiabatic wall, no inlet
// flow and no heat sources.
func sealedRoom() *spec.SimulationConfig {
	return &spec.SimulationConfig{
		Room:        spec.RoomDef{Width: 2, Length: 2, Height: 2},
		Grid:        spec.GridDef{Nx: 8, Ny: 8, Nz: 8},
		AmbientTemp: 22,
		Turbulence:  spec.TurbulenceLaminar,
		Iterations:  50,
		Tolerance:   1e-4,
	}
}

// ventilatedRoom adds a west inlet and east outlet to the sealed room.
func ventilatedRoom() *spec.SimulationConfig {
	cfg := sealedRoom()
	cfg.InletSpeed = 0.5
	cfg.Boundaries = spec.BoundarySet{
		West: &spec.FaceCondition{Type: spec.FaceInlet},
		East: &spec.FaceCondition{Type: spec.FaceOutlet},
	}
	return cfg
}

func TestNoFlowEquilibrium(t *testing.T) {
	sol, err := Solve(context.Background(), sealedRoom(), Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if !sol.Converged {
		t.Error("still-air sealed room should converge")
	}

	ambientK := 22 + KelvinOffset
	for c := range sol.U {
		speed := math.Sqrt(sol.U[c]*sol.U[c] + sol.V[c]*sol.V[c] + sol.W[c]*sol.W[c])
		if speed > 1e-9 {
			t.Fatalf("cell %d: speed = %g, want ~0", c, speed)
		}
		if math.Abs(sol.T[c]-ambientK) > 1e-9 {
			t.Fatalf("cell %d: T = %g, want ambient %g", c, sol.T[c], ambientK)
		}
	}
}

func TestHeatSourceRaisesTemperature(t *testing.T) {
	cfg := sealedRoom()
	cfg.Iterations = 5
	cfg.HeatSources = []spec.HeatSource{{
		Name:   "hps",
		Center: geo.V(1, 1, 1),
		Power:  1000,
		Width:  0.5, Length: 0.5, Height: 0.5,
	}}

	sol, err := Solve(context.Background(), cfg, Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	ambientK := 22 + KelvinOffset
	sum := 0.0
	maxT := -1.0
	maxC := -1
	for c, tk := range sol.T {
		sum += tk
		if tk > maxT {
			maxT = tk
			maxC = c
		}
	}
	avg := sum / float64(len(sol.T))
	if avg <= ambientK {
		t.Errorf("average T = %g, want > ambient %g", avg, ambientK)
	}

	// The hottest cell must lie inside the source's clamped index box.
	dx := 2.0 / 7
	lo := int(math.Floor(0.75 / dx))
	hi := int(math.Ceil(1.25 / dx))
	i := maxC % sol.Nx
	j := (maxC / sol.Nx) % sol.Ny
	k := maxC / (sol.Nx * sol.Ny)
	if i < lo || i > hi || j < lo || j > hi || k < lo || k > hi {
		t.Errorf("hottest cell at (%d,%d,%d), want within [%d,%d]^3", i, j, k, lo, hi)
	}
}

func TestResidualTrend(t *testing.T) {
	cfg := ventilatedRoom()
	cfg.Iterations = 30
	cfg.Tolerance = 1e-12 // force the full budget

	sol, err := Solve(context.Background(), cfg, Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Residuals) != 30 {
		t.Fatalf("residual history = %d entries, want 30", len(sol.Residuals))
	}

	half := len(sol.Residuals) / 2
	early := mean(sol.Residuals[:half])
	late := mean(sol.Residuals[half:])
	if late > early {
		t.Errorf("late residual mean %g exceeds early mean %g; solver not settling", late, early)
	}
}

func TestDensityTemperatureClosure(t *testing.T) {
	cfg := ventilatedRoom()
	cfg.Iterations = 10
	cfg.HeatSources = []spec.HeatSource{{
		Center: geo.V(1, 1, 1.5),
		Power:  800,
		Width:  0.6, Length: 0.6, Height: 0.2,
	}}

	sol, err := Solve(context.Background(), cfg, Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := RefDensity * (22 + KelvinOffset)
	for c := range sol.T {
		got := sol.Rho[c] * sol.T[c]
		if math.Abs(got-want) > 1e-6*want {
			t.Fatalf("cell %d: rho*T = %g, want %g", c, got, want)
		}
	}
}

func TestNonConvergenceFlag(t *testing.T) {
	cfg := ventilatedRoom()
	cfg.Iterations = 1

	sol, err := Solve(context.Background(), cfg, Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Converged {
		t.Error("one iteration of a ventilated room should not report convergence")
	}
	if len(sol.Residuals) != 1 {
		t.Errorf("residual history = %d entries, want 1", len(sol.Residuals))
	}
}

func TestConvergenceFlag(t *testing.T) {
	sol, err := Solve(context.Background(), sealedRoom(), Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !sol.Converged {
		t.Error("sealed still-air room should converge within budget")
	}
	if len(sol.Residuals) >= 50 {
		t.Errorf("residual history = %d entries, want early exit", len(sol.Residuals))
	}
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Solve(ctx, ventilatedRoom(), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Solve with canceled context: err = %v, want context.Canceled", err)
	}
}

func TestSolveRejectsBadConfig(t *testing.T) {
	cfg := sealedRoom()
	cfg.Grid.Nz = 2

	_, err := Solve(context.Background(), cfg, Options{})
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestProgressCallback(t *testing.T) {
	cfg := ventilatedRoom()
	cfg.Iterations = 3
	cfg.Tolerance = 1e-12

	var iters []int
	_, err := Solve(context.Background(), cfg, Options{
		Progress: func(iteration int, residual float64) {
			iters = append(iters, iteration)
			if residual < 0 {
				t.Errorf("iteration %d: negative residual %g", iteration, residual)
			}
		},
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(iters) != 3 || iters[0] != 1 || iters[2] != 3 {
		t.Errorf("progress iterations = %v, want [1 2 3]", iters)
	}
}

func TestUpdateDensityGuardsZeroKelvin(t *testing.T) {
	st, err := NewState(sealedRoom())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	st.T[st.Idx(3, 3, 3)] = 0

	err = UpdateDensity(st, 7)
	if !errors.Is(err, ErrUnstable) {
		t.Fatalf("err = %v, want ErrUnstable", err)
	}
	var ie *InstabilityError
	if !errors.As(err, &ie) || ie.Iteration != 7 {
		t.Errorf("err = %+v, want InstabilityError at iteration 7", err)
	}
	if ie != nil && ie.Field != "t" {
		t.Errorf("Field = %q, want lowercase field name \"t\"", ie.Field)
	}
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
