package engine

// Natural cubic spline construction constants
const (
	// minKnots is the smallest point count that defines a spline (one segment).
	minKnots = 2

	// alphaFactor appears in the right-hand side of the tridiagonal system:
	// alpha_i = 3/h_i*(a_{i+1}-a_i) - 3/h_{i-1}*(a_i-a_{i-1})
	alphaFactor = 3.0

	// diagonalFactor scales the main diagonal: l_i = 2*(x_{i+1}-x_{i-1}) - h_{i-1}*mu_{i-1}
	diagonalFactor = 2.0

	// coeffDivisor appears in b_j = ... - h_j*(c_{j+1}+2c_j)/3 and d_j = (c_{j+1}-c_j)/(3h_j)
	coeffDivisor = 3.0
)

// Polynomial derivative factors
const (
	// d/dt c*t^2 = 2*c*t
	quadDerivFactor = 2.0

	// d/dt d*t^3 = 3*d*t^2
	cubicDerivFactor = 3.0

	// d2/dt2 d*t^3 = 6*d*t
	cubicSecondDerivFactor = 6.0
)

// Sampling constants
const (
	// minSamples is the smallest grid SampleUniform produces (both ends).
	minSamples = 2
)
