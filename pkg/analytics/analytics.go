// Package analytics turns a raw solved field state into the summary
// report consumed by dashboards and HVAC sizing: field statistics,
// air-change rate, mixing efficiency, thermal comfort indices, and
// traced streamlines.
package analytics

import (
	"context"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vibelux/roomcfd/pkg/solver"
	"github.com/vibelux/roomcfd/pkg/spec"
)

// Options tunes result aggregation. The zero value uses the default
// streamline count and a time-seeded random source.
type Options struct {
	// Rand seeds streamline starting points. Nil uses an unseeded
	// source; tests inject a fixed seed for reproducibility.
	Rand *rand.Rand

	// Streamlines overrides the number of traced paths (default 20).
	Streamlines int
}

// Results is the complete simulation output: solved fields, the
// convergence record, streamlines, and the metrics block. It holds no
// internal solver state.
type Results struct {
	Grid spec.GridDef `json:"grid"`
	Room spec.RoomDef `json:"room"`

	U     []float64 `json:"u"`
	V     []float64 `json:"v"`
	W     []float64 `json:"w"`
	Speed []float64 `json:"speed"`
	T     []float64 `json:"temperature_k"`
	P     []float64 `json:"pressure_pa"`

	Streamlines []Streamline `json:"streamlines"`
	Residuals   []float64    `json:"residuals"`
	Converged   bool         `json:"converged"`
	Warnings    []string     `json:"warnings,omitempty"`

	Metrics Metrics `json:"metrics"`
}

// Metrics is the summary block computed from the solved fields.
type Metrics struct {
	MaxVelocity float64 `json:"max_velocity"`
	AvgVelocity float64 `json:"avg_velocity"`

	MaxTempC float64 `json:"max_temp_c"`
	MinTempC float64 `json:"min_temp_c"`
	AvgTempC float64 `json:"avg_temp_c"`

	PressureDrop     float64 `json:"pressure_drop_pa"`
	AirChangeRate    float64 `json:"air_change_rate"`
	MixingEfficiency float64 `json:"mixing_efficiency"`

	Comfort ComfortIndices `json:"thermal_comfort"`
}

// Run solves the scenario and aggregates the results in one call.
func Run(ctx context.Context, cfg *spec.SimulationConfig, solveOpts solver.Options, opts Options) (*Results, error) {
	sol, err := solver.Solve(ctx, cfg, solveOpts)
	if err != nil {
		return nil, err
	}
	return Aggregate(cfg, sol, opts), nil
}

// Aggregate computes the metrics block and streamlines for a solved
// scenario.
func Aggregate(cfg *spec.SimulationConfig, sol *solver.Solution, opts Options) *Results {
	n := len(sol.U)
	speed := make([]float64, n)
	for c := range speed {
		speed[c] = math.Sqrt(sol.U[c]*sol.U[c] + sol.V[c]*sol.V[c] + sol.W[c]*sol.W[c])
	}

	avgTempK := stat.Mean(sol.T, nil)
	avgSpeed := stat.Mean(speed, nil)

	m := Metrics{
		MaxVelocity: floats.Max(speed),
		AvgVelocity: avgSpeed,
		MaxTempC:    floats.Max(sol.T) - solver.KelvinOffset,
		MinTempC:    floats.Min(sol.T) - solver.KelvinOffset,
		AvgTempC:    avgTempK - solver.KelvinOffset,

		PressureDrop:     pressureDrop(sol),
		AirChangeRate:    airChangeRate(cfg),
		MixingEfficiency: mixingEfficiency(sol.T, avgTempK),
	}
	m.Comfort = Comfort(m.AvgTempC, avgSpeed)

	tracer := Tracer{Rand: opts.Rand}
	if opts.Streamlines > 0 {
		tracer.Count = opts.Streamlines
	}

	return &Results{
		Grid:        cfg.Grid,
		Room:        cfg.Room,
		U:           sol.U,
		V:           sol.V,
		W:           sol.W,
		Speed:       speed,
		T:           sol.T,
		P:           sol.P,
		Streamlines: tracer.Trace(cfg.Room, sol),
		Residuals:   sol.Residuals,
		Converged:   sol.Converged,
		Warnings:    sol.Warnings,
		Metrics:     m,
	}
}

// pressureDrop is the absolute pressure difference across the room
// along X at mid-length, mid-height.
func pressureDrop(sol *solver.Solution) float64 {
	j, k := sol.Ny/2, sol.Nz/2
	return math.Abs(sol.P[sol.Idx(sol.Nx-1, j, k)] - sol.P[sol.Idx(0, j, k)])
}

// airChangeRate estimates volumetric turnover per hour. The inlet
// area is approximated as 10% of one end wall's area.
func airChangeRate(cfg *spec.SimulationConfig) float64 {
	inletArea := 0.1 * cfg.Room.Length * cfg.Room.Height
	vol := cfg.Room.Volume()
	if vol <= 0 {
		return 0
	}
	return cfg.InletSpeed * inletArea / vol * 3600
}

// mixingEfficiency maps the coefficient of variation of temperature to
// [0, 1]: perfectly uniform air scores 1.
func mixingEfficiency(tempK []float64, meanK float64) float64 {
	if meanK <= 0 {
		return 0
	}
	cv := stat.StdDev(tempK, nil) / meanK
	return clamp(1-10*cv, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
