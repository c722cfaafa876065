package validation

import (
	"fmt"

	"github.com/vibelux/roomcfd/pkg/spec"
)

// ValidateSchema performs structural validation on a parsed
// SimulationConfig. It checks everything that can be rejected before
// any field array is allocated.
func ValidateSchema(c *spec.SimulationConfig) *Report {
	r := NewReport()

	validateRoom(c, r)
	validateGrid(c, r)
	validateSolverParams(c, r)
	validateBoundaries(c, r)
	validateHeatSources(c, r)
	validateTurbulence(c, r)

	return r
}

func validateRoom(c *spec.SimulationConfig, r *Report) {
	dims := []struct {
		name  string
		value float64
	}{
		{"width", c.Room.Width},
		{"length", c.Room.Length},
		{"height", c.Room.Height},
	}
	for _, d := range dims {
		if d.value <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("room.%s must be greater than 0", d.name),
				ConfigPath:  fmt.Sprintf("room.%s", d.name),
				ActualValue: d.value,
				Expected:    "> 0",
			})
		}
	}
}

func validateGrid(c *spec.SimulationConfig, r *Report) {
	axes := []struct {
		name  string
		value int
	}{
		{"nx", c.Grid.Nx},
		{"ny", c.Grid.Ny},
		{"nz", c.Grid.Nz},
	}
	for _, a := range axes {
		if a.value < 3 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("grid.%s must be at least 3 so interior points exist", a.name),
				ConfigPath:  fmt.Sprintf("grid.%s", a.name),
				ActualValue: a.value,
				Expected:    ">= 3",
			})
		}
	}
}

func validateSolverParams(c *spec.SimulationConfig, r *Report) {
	if c.Iterations <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "iterations must be a positive integer",
			ConfigPath:  "iterations",
			ActualValue: c.Iterations,
			Expected:    "> 0",
		})
	}
	if c.Tolerance <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "tolerance must be greater than 0",
			ConfigPath:  "tolerance",
			ActualValue: c.Tolerance,
			Expected:    "> 0",
			Suggestions: []string{"Omit tolerance to use the 1e-4 default"},
		})
	}
	if c.InletSpeed < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "inlet_velocity must be non-negative",
			ConfigPath:  "inlet_velocity",
			ActualValue: c.InletSpeed,
			Expected:    ">= 0",
			Suggestions: []string{"Reverse the inlet face instead of negating the speed"},
		})
	}
}

func validateBoundaries(c *spec.SimulationConfig, r *Report) {
	hasInlet := false
	for _, face := range spec.AllFaces {
		fc := c.Boundaries.Get(face)
		if fc == nil {
			continue
		}
		switch fc.Type {
		case spec.FaceInlet:
			hasInlet = true
		case spec.FaceOutlet, spec.FaceWall, spec.FaceSymmetry:
		default:
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("boundaries.%s.type %q is not a recognized condition", face, fc.Type),
				ConfigPath:  fmt.Sprintf("boundaries.%s.type", face),
				ActualValue: string(fc.Type),
				Expected:    "inlet | outlet | wall | symmetry",
			})
		}
		if fc.Type != spec.FaceInlet && fc.Velocity != nil {
			r.AddWarning(Result{
				Level:      LevelSchema,
				Message:    fmt.Sprintf("boundaries.%s: velocity is ignored on %s faces", face, fc.Type),
				ConfigPath: fmt.Sprintf("boundaries.%s.velocity", face),
			})
		}
	}

	if hasInlet && c.InletSpeed == 0 {
		r.AddWarning(Result{
			Level:      LevelSchema,
			Message:    "an inlet face is configured but inlet_velocity is 0; no forced flow will develop",
			ConfigPath: "inlet_velocity",
		})
	}
}

func validateHeatSources(c *spec.SimulationConfig, r *Report) {
	for i, hs := range c.HeatSources {
		path := fmt.Sprintf("heat_sources[%d]", i)

		if hs.Power < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: power must be non-negative", path),
				ConfigPath:  path + ".power_w",
				ActualValue: hs.Power,
				Expected:    ">= 0",
			})
		}
		if hs.Volume() <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: box extents must all be greater than 0", path),
				ConfigPath:  path,
				ActualValue: fmt.Sprintf("%gx%gx%g", hs.Width, hs.Length, hs.Height),
				Expected:    "positive width, length, height",
			})
			continue
		}

		// A box entirely outside the room clamps to an empty index
		// range; the solver skips it, so surface it early.
		if hs.Center.X+hs.Width/2 < 0 || hs.Center.X-hs.Width/2 > c.Room.Width ||
			hs.Center.Y+hs.Length/2 < 0 || hs.Center.Y-hs.Length/2 > c.Room.Length ||
			hs.Center.Z+hs.Height/2 < 0 || hs.Center.Z-hs.Height/2 > c.Room.Height {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: box lies outside the room and will be skipped", path),
				ConfigPath:  path + ".center",
				ActualValue: hs.Center,
				Suggestions: []string{"Move the source center inside the room bounds"},
			})
		}
	}
}

func validateTurbulence(c *spec.SimulationConfig, r *Report) {
	switch c.Turbulence {
	// An unset tag means laminar; file loading applies the default but
	// programmatically built configs arrive here with the zero value.
	case "", spec.TurbulenceLaminar:
	case spec.TurbulenceKEpsilon, spec.TurbulenceKOmega:
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("turbulence model %q is not implemented; the solver falls back to the laminar path", c.Turbulence),
			ConfigPath:  "turbulence_model",
			ActualValue: string(c.Turbulence),
			Suggestions: []string{"Use \"laminar\" to silence this warning"},
		})
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("turbulence model %q is not recognized", c.Turbulence),
			ConfigPath:  "turbulence_model",
			ActualValue: string(c.Turbulence),
			Expected:    "laminar | k-epsilon | k-omega",
		})
	}
}
