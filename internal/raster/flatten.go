// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// flattenTolerance scales the curvature estimate into a segment count.
const flattenTolerance = 3

// curveSegments returns how many line segments approximate a curve whose
// control polygon deviates from a straight line by sqrt(devsq).
func curveSegments(devsq float32) int {
	if devsq < 0.333 {
		return 1
	}
	return 1 + int(math.Sqrt(math.Sqrt(flattenTolerance*float64(devsq))))
}

// deviation returns the squared second difference a - 2b + c. It is zero
// when b is the midpoint of a and c.
func deviation(ax, ay, bx, by, cx, cy float32) float32 {
	dx := ax - 2*bx + cx
	dy := ay - 2*by + cy
	return dx*dx + dy*dy
}

// flattenQuad emits the interior points of a quadratic Bézier from a via b
// to c, then c itself.
func flattenQuad(ax, ay, bx, by, cx, cy float32, lineTo func(x, y float32)) {
	n := curveSegments(deviation(ax, ay, bx, by, cx, cy))
	step := 1 / float32(n)
	for i := 1; i < n; i++ {
		t := float32(i) * step
		mt := 1 - t
		a, b, c := mt*mt, 2*mt*t, t*t
		lineTo(a*ax+b*bx+c*cx, a*ay+b*by+c*cy)
	}
	lineTo(cx, cy)
}

// flattenCube emits the interior points of a cubic Bézier from a via b and c
// to d, then d itself.
func flattenCube(ax, ay, bx, by, cx, cy, dx, dy float32, lineTo func(x, y float32)) {
	devsq := max(deviation(ax, ay, bx, by, cx, cy), deviation(bx, by, cx, cy, dx, dy))
	n := curveSegments(devsq)
	step := 1 / float32(n)
	for i := 1; i < n; i++ {
		t := float32(i) * step
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		lineTo(a*ax+b*bx+c*cx+d*dx, a*ay+b*by+c*cy+d*dy)
	}
	lineTo(dx, dy)
}
