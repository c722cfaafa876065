package solver

import (
	"github.com/vibelux/roomcfd/pkg/geo"
	"github.com/vibelux/roomcfd/pkg/spec"
)

// ApplyBoundaries enforces the configured face conditions on every
// field. It runs once before the outer loop and again after every
// outer iteration, always before the residual is computed, so no field
// ever violates a boundary condition between observable states.
func ApplyBoundaries(s *State, cfg *spec.SimulationConfig) {
	for _, face := range spec.AllFaces {
		fc := cfg.Boundaries.Get(face)
		if fc == nil {
			fc = &spec.FaceCondition{Type: spec.FaceWall}
		}

		switch fc.Type {
		case spec.FaceInlet:
			applyInlet(s, cfg, face, fc)
		case spec.FaceOutlet:
			applyOutlet(s, face)
		case spec.FaceWall:
			applyWall(s, face, fc)
		case spec.FaceSymmetry:
			// Mirror faces leave the fields untouched.
		}
	}
}

func applyInlet(s *State, cfg *spec.SimulationConfig, face spec.Face, fc *spec.FaceCondition) {
	var vel geo.Vec3
	if fc.Velocity != nil {
		vel = *fc.Velocity
	} else {
		vel = face.InwardNormal().Scale(cfg.InletSpeed)
	}

	tempK := s.AmbientK
	if fc.Temperature != nil {
		tempK = *fc.Temperature + KelvinOffset
	}

	s.eachFaceCell(face, func(b, _ int) {
		s.U[b] = vel.X
		s.V[b] = vel.Y
		s.W[b] = vel.Z
		s.T[b] = tempK
		s.Rho[b] = RefDensity * s.AmbientK / tempK
	})
}

func applyOutlet(s *State, face spec.Face) {
	// Zero-gradient extrapolation from the adjacent interior plane;
	// pressure is pinned to the reference atmosphere.
	s.eachFaceCell(face, func(b, interior int) {
		s.U[b] = s.U[interior]
		s.V[b] = s.V[interior]
		s.W[b] = s.W[interior]
		s.T[b] = s.T[interior]
		s.Rho[b] = s.Rho[interior]
		s.P[b] = RefPressure
	})
}

func applyWall(s *State, face spec.Face, fc *spec.FaceCondition) {
	// No-slip. A pinned wall temperature also resyncs density so the
	// ideal-gas closure holds immediately after this pass.
	s.eachFaceCell(face, func(b, _ int) {
		s.U[b], s.V[b], s.W[b] = 0, 0, 0
		if fc.Temperature != nil {
			s.T[b] = *fc.Temperature + KelvinOffset
			s.Rho[b] = RefDensity * s.AmbientK / s.T[b]
		}
	})
}

// eachFaceCell visits every cell on the given face, passing the flat
// offsets of the boundary cell and its adjacent interior neighbor.
func (s *State) eachFaceCell(face spec.Face, fn func(boundary, interior int)) {
	switch face {
	case spec.FaceWest:
		for k := 0; k < s.Nz; k++ {
			for j := 0; j < s.Ny; j++ {
				fn(s.Idx(0, j, k), s.Idx(1, j, k))
			}
		}
	case spec.FaceEast:
		for k := 0; k < s.Nz; k++ {
			for j := 0; j < s.Ny; j++ {
				fn(s.Idx(s.Nx-1, j, k), s.Idx(s.Nx-2, j, k))
			}
		}
	case spec.FaceSouth:
		for k := 0; k < s.Nz; k++ {
			for i := 0; i < s.Nx; i++ {
				fn(s.Idx(i, 0, k), s.Idx(i, 1, k))
			}
		}
	case spec.FaceNorth:
		for k := 0; k < s.Nz; k++ {
			for i := 0; i < s.Nx; i++ {
				fn(s.Idx(i, s.Ny-1, k), s.Idx(i, s.Ny-2, k))
			}
		}
	case spec.FaceFloor:
		for j := 0; j < s.Ny; j++ {
			for i := 0; i < s.Nx; i++ {
				fn(s.Idx(i, j, 0), s.Idx(i, j, 1))
			}
		}
	case spec.FaceCeiling:
		for j := 0; j < s.Ny; j++ {
			for i := 0; i < s.Nx; i++ {
				fn(s.Idx(i, j, s.Nz-1), s.Idx(i, j, s.Nz-2))
			}
		}
	}
}
