package solver

// StepEnergy advances temperature one pseudo-time step with explicit
// convection-diffusion on interior cells, then blends with the same
// under-relaxation as momentum over the whole grid.
func StepEnergy(s *State) {
	copy(s.scratchT, s.T)

	// Thermal diffusivity of air at reference conditions.
	alpha := Conductivity / (RefDensity * SpecificHeat)

	for k := 1; k < s.Nz-1; k++ {
		for j := 1; j < s.Ny-1; j++ {
			for i := 1; i < s.Nx-1; i++ {
				c := s.Idx(i, j, k)
				xp, xm := s.Idx(i+1, j, k), s.Idx(i-1, j, k)
				yp, ym := s.Idx(i, j+1, k), s.Idx(i, j-1, k)
				zp, zm := s.Idx(i, j, k+1), s.Idx(i, j, k-1)

				conv := s.U[c]*(s.T[xp]-s.T[xm])/(2*s.Dx) +
					s.V[c]*(s.T[yp]-s.T[ym])/(2*s.Dy) +
					s.W[c]*(s.T[zp]-s.T[zm])/(2*s.Dz)

				diff := alpha * ((s.T[xp]-2*s.T[c]+s.T[xm])/(s.Dx*s.Dx) +
					(s.T[yp]-2*s.T[c]+s.T[ym])/(s.Dy*s.Dy) +
					(s.T[zp]-2*s.T[c]+s.T[zm])/(s.Dz*s.Dz))

				s.scratchT[c] = s.T[c] + s.Dt*(-conv+diff)
			}
		}
	}

	relax(s.T, s.scratchT)
}

// UpdateDensity recomputes density from temperature via the ideal-gas
// relation ρ = ρ₀·T₀/T, keeping the Boussinesq closure exact. It runs
// once per outer iteration, after the energy solve and before boundary
// re-application. A temperature at or below 0 K is surfaced as a
// numerical instability rather than dividing through.
func UpdateDensity(s *State, iteration int) error {
	for c, t := range s.T {
		if t <= 0 {
			return &InstabilityError{
				Iteration: iteration,
				Field:     "t",
				Detail:    "non-physical value at or below 0 K",
			}
		}
		s.Rho[c] = RefDensity * s.AmbientK / t
	}
	return nil
}
