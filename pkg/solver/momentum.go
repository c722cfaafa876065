package solver

// StepMomentum advances u, v, w one pseudo-time step with explicit
// convection-diffusion-pressure-buoyancy updates on interior cells,
// then blends the result into the live fields with under-relaxation
// over the entire grid. The Boussinesq buoyancy term acts on the
// vertical component only.
func StepMomentum(s *State) {
	copy(s.scratchU, s.U)
	copy(s.scratchV, s.V)
	copy(s.scratchW, s.W)

	beta := 1.0 / s.AmbientK // thermal expansion, ideal gas

	for k := 1; k < s.Nz-1; k++ {
		for j := 1; j < s.Ny-1; j++ {
			for i := 1; i < s.Nx-1; i++ {
				c := s.Idx(i, j, k)
				xp, xm := s.Idx(i+1, j, k), s.Idx(i-1, j, k)
				yp, ym := s.Idx(i, j+1, k), s.Idx(i, j-1, k)
				zp, zm := s.Idx(i, j, k+1), s.Idx(i, j, k-1)

				nu := DynViscosity / s.Rho[c]

				convU := s.U[c]*(s.U[xp]-s.U[xm])/(2*s.Dx) +
					s.V[c]*(s.U[yp]-s.U[ym])/(2*s.Dy) +
					s.W[c]*(s.U[zp]-s.U[zm])/(2*s.Dz)
				convV := s.U[c]*(s.V[xp]-s.V[xm])/(2*s.Dx) +
					s.V[c]*(s.V[yp]-s.V[ym])/(2*s.Dy) +
					s.W[c]*(s.V[zp]-s.V[zm])/(2*s.Dz)
				convW := s.U[c]*(s.W[xp]-s.W[xm])/(2*s.Dx) +
					s.V[c]*(s.W[yp]-s.W[ym])/(2*s.Dy) +
					s.W[c]*(s.W[zp]-s.W[zm])/(2*s.Dz)

				diffU := nu * ((s.U[xp]-2*s.U[c]+s.U[xm])/(s.Dx*s.Dx) +
					(s.U[yp]-2*s.U[c]+s.U[ym])/(s.Dy*s.Dy) +
					(s.U[zp]-2*s.U[c]+s.U[zm])/(s.Dz*s.Dz))
				diffV := nu * ((s.V[xp]-2*s.V[c]+s.V[xm])/(s.Dx*s.Dx) +
					(s.V[yp]-2*s.V[c]+s.V[ym])/(s.Dy*s.Dy) +
					(s.V[zp]-2*s.V[c]+s.V[zm])/(s.Dz*s.Dz))
				diffW := nu * ((s.W[xp]-2*s.W[c]+s.W[xm])/(s.Dx*s.Dx) +
					(s.W[yp]-2*s.W[c]+s.W[ym])/(s.Dy*s.Dy) +
					(s.W[zp]-2*s.W[c]+s.W[zm])/(s.Dz*s.Dz))

				gradPX := (s.P[xp] - s.P[xm]) / (2 * s.Dx * s.Rho[c])
				gradPY := (s.P[yp] - s.P[ym]) / (2 * s.Dy * s.Rho[c])
				gradPZ := (s.P[zp] - s.P[zm]) / (2 * s.Dz * s.Rho[c])

				buoyancy := Gravity * beta * (s.T[c] - s.AmbientK)

				s.scratchU[c] = s.U[c] + s.Dt*(-convU+diffU-gradPX)
				s.scratchV[c] = s.V[c] + s.Dt*(-convV+diffV-gradPY)
				s.scratchW[c] = s.W[c] + s.Dt*(-convW+diffW-gradPZ+buoyancy)
			}
		}
	}

	relax(s.U, s.scratchU)
	relax(s.V, s.scratchV)
	relax(s.W, s.scratchW)
}
