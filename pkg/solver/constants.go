package solver

// Physical constants for air near room conditions.
const (
	RefPressure  = 101325.0 // Pa, reference atmospheric
	RefDensity   = 1.225    // kg/m³ at 15 °C sea level
	DynViscosity = 1.81e-5  // Pa·s
	Conductivity = 0.0257   // W/(m·K)
	SpecificHeat = 1005.0   // J/(kg·K)
	Gravity      = 9.81     // m/s²
	KelvinOffset = 273.15
)

// Scheme parameters.
const (
	// relaxation blends each explicit update with the previous field,
	// applied over the whole grid to keep boundary cells stable
	// between boundary re-application passes.
	relaxation = 0.7

	// pressureSweeps is the fixed Gauss-Seidel sweep count per outer
	// iteration. There is no early exit inside the inner loop.
	pressureSweeps = 20

	// minCharVelocity floors the characteristic velocity in the
	// CFL-style pseudo-time step so still-air scenarios stay stable.
	minCharVelocity = 2.0
)
