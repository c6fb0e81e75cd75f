// Package fastmath provides float32 numeric primitives for targets with
// slow or absent hardware floating-point transcendentals.
//
// Nothing here calls a platform math routine: the only stdlib use is
// math.Float32bits/Float32frombits for bit reinterpretation. Callers may
// rely on the documented accuracy only, not on the technique — the
// implementations can be swapped for intrinsics without notice.
//
// Accuracy contract:
//
//	Sqrt  relative error < 0.2%
//	Sin   max absolute error < 0.5% of full scale
//
// No function ever fails. Domain violations clamp to a safe value (0 or
// a boundary) so a display refresh can never crash on bad input.
package fastmath

import "math"

const (
	Pi     = 3.141592653589793
	HalfPi = 1.5707963267948966
	TwoPi  = 2 * Pi
)

// Fabs clears the sign bit rather than branching.
func Fabs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Floor rounds toward negative infinity.
func Floor(x float32) float32 {
	if x >= 0 {
		return float32(int32(x))
	}
	i := float32(int32(x))
	if x == i {
		return i
	}
	return i - 1
}

// Rint rounds to the nearest integer, halves away from zero.
func Rint(x float32) float32 {
	if x >= 0 {
		return float32(int32(x + 0.5))
	}
	return float32(int32(x - 0.5))
}

// Sqrt computes the square root via the 0x5f3759df inverse-sqrt seed and
// two Newton-Raphson refinements. x <= 0 returns 0 (clamped domain).
func Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}

	y := x * 0.5
	z := math.Float32frombits(0x5f3759df - math.Float32bits(x)>>1)

	// z converges toward 1/sqrt(x).
	z = z * (1.5 - y*z*z)
	z = z * (1.5 - y*z*z)

	return x * z
}

// rangeReduce folds x into [0, pi/2] and reports the sign to reapply.
func rangeReduce(x float32) (r, sign float32) {
	sign = 1

	// Drop whole 2*pi turns. Truncation toward zero is fine: the
	// negative branch below reflects whatever remains.
	x = x - float32(int32(x/TwoPi))*TwoPi

	if x < 0 {
		x = -x
		sign = -1
	}
	if x > Pi {
		x = TwoPi - x
		sign = -sign
	}
	if x > HalfPi {
		x = Pi - x
	}
	return x, sign
}

// Sin evaluates Bhaskara I's rational approximation on the reduced angle:
//
//	sin(x) ~ 16x(pi-x) / (5pi^2 - 4x(pi-x))   for x in [0, pi/2]
func Sin(x float32) float32 {
	r, sign := rangeReduce(x)
	p := r * (Pi - r)
	return sign * (16 * p) / (5*Pi*Pi - 4*p)
}

// Cos is the shifted sine.
func Cos(x float32) float32 {
	return Sin(x + HalfPi)
}

// Tan divides Sin by Cos, clamped to +-1e6 near the poles.
func Tan(x float32) float32 {
	s := Sin(x)
	c := Cos(x)

	if Fabs(c) < 1e-6 {
		if s > 0 {
			return 1e6
		}
		return -1e6
	}
	return s / c
}

// Asin uses a rational polynomial; |x| > 1 returns 0 (clamped domain).
func Asin(x float32) float32 {
	if Fabs(x) > 1 {
		return 0
	}
	x2 := x * x
	return x * (1 + x2*(0.0833333333+x2*(0.0375+x2*0.0208333333)))
}

// Acos is the complement of Asin.
func Acos(x float32) float32 {
	return HalfPi - Asin(x)
}

// Atan is piecewise: an odd polynomial below 0.4375, a short rational
// form up to 1, and the reciprocal identity beyond (one recursion, the
// reduced argument is always < 1).
func Atan(x float32) float32 {
	if Fabs(x) < 0.4375 {
		x2 := x * x
		return x * (0.99997726 + x2*(-0.33262347+x2*(0.19354346+x2*(-0.11643287+x2*0.05265332))))
	}

	// Inclusive of 1 so the reciprocal identity below always recurses
	// on an argument strictly inside this branch.
	if Fabs(x) <= 1 {
		x2 := x * x
		return x / (1 + 0.28*x2)
	}

	if x > 0 {
		return HalfPi - Atan(1/x)
	}
	return -HalfPi - Atan(1/x)
}
