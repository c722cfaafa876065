package solver

// SolvePressure runs a fixed number of Gauss-Seidel sweeps on the
// discrete Poisson equation ∇²p = ρ(∇·u)/dt over interior cells. The
// divergence is recomputed fresh from the current velocity each sweep,
// so the pressure field keeps driving the velocity toward approximate
// incompressibility across outer iterations. Sweeps update p in place,
// using immediately-updated neighbor values.
func SolvePressure(s *State) {
	invDx2 := 1 / (s.Dx * s.Dx)
	invDy2 := 1 / (s.Dy * s.Dy)
	invDz2 := 1 / (s.Dz * s.Dz)
	coeff := 2 * (invDx2 + invDy2 + invDz2)

	for sweep := 0; sweep < pressureSweeps; sweep++ {
		for k := 1; k < s.Nz-1; k++ {
			for j := 1; j < s.Ny-1; j++ {
				for i := 1; i < s.Nx-1; i++ {
					c := s.Idx(i, j, k)
					xp, xm := s.Idx(i+1, j, k), s.Idx(i-1, j, k)
					yp, ym := s.Idx(i, j+1, k), s.Idx(i, j-1, k)
					zp, zm := s.Idx(i, j, k+1), s.Idx(i, j, k-1)

					div := (s.U[xp]-s.U[xm])/(2*s.Dx) +
						(s.V[yp]-s.V[ym])/(2*s.Dy) +
						(s.W[zp]-s.W[zm])/(2*s.Dz)

					rhs := s.Rho[c] * div / s.Dt

					s.P[c] = ((s.P[xp]+s.P[xm])*invDx2 +
						(s.P[yp]+s.P[ym])*invDy2 +
						(s.P[zp]+s.P[zm])*invDz2 - rhs) / coeff
				}
			}
		}
	}
}

// CorrectVelocity applies the pressure-gradient correction to the live
// velocity fields in place on interior cells. No relaxation blend here.
func CorrectVelocity(s *State) {
	for k := 1; k < s.Nz-1; k++ {
		for j := 1; j < s.Ny-1; j++ {
			for i := 1; i < s.Nx-1; i++ {
				c := s.Idx(i, j, k)
				xp, xm := s.Idx(i+1, j, k), s.Idx(i-1, j, k)
				yp, ym := s.Idx(i, j+1, k), s.Idx(i, j-1, k)
				zp, zm := s.Idx(i, j, k+1), s.Idx(i, j, k-1)

				s.U[c] -= s.Dt * (s.P[xp] - s.P[xm]) / (2 * s.Dx * s.Rho[c])
				s.V[c] -= s.Dt * (s.P[yp] - s.P[ym]) / (2 * s.Dy * s.Rho[c])
				s.W[c] -= s.Dt * (s.P[zp] - s.P[zm]) / (2 * s.Dz * s.Rho[c])
			}
		}
	}
}
