// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples y0..y3 at fractional position x between y1 and y2 (0 <= x <= 1).
// At x=0 it returns y1 exactly and at x=1 it returns y2 exactly, so a
// constant input is reproduced without distortion.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := 0.5 * (y2 - y0)

	return ((a0*x+a1)*x+a2)*x + y1
}
