package pathgeom

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parametrization.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// ArcFromEndpoints converts an arc in SVG endpoint parametrization to center
// parametrization, following the SVG implementation notes. Radii that are too
// small to span from p0 to p1 are scaled up uniformly. It returns false if the
// endpoints coincide or a radius is zero, in which case no arc exists, and if
// any input isn't finite.
func ArcFromEndpoints(p0 Point, radii Vec2, xRotation float64, largeArc, sweep bool, p1 Point) (Arc, bool) {
	if p0 == p1 {
		return Arc{}, false
	}
	if p0.IsInf() || p0.IsNaN() || p1.IsInf() || p1.IsNaN() || radii.IsInf() || radii.IsNaN() ||
		math.IsInf(xRotation, 0) || math.IsNaN(xRotation) {
		return Arc{}, false
	}
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}

	sin, cos := math.Sincos(xRotation)
	hd := p0.Sub(p1).Mul(0.5)
	x1 := cos*hd.X + sin*hd.Y
	y1 := -sin*hd.X + cos*hd.Y

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	mid := p0.Midpoint(p1)
	center := Point{
		X: cos*cx1 - sin*cy1 + mid.X,
		Y: sin*cx1 + cos*cy1 + mid.Y,
	}

	u := Vec2{(x1 - cx1) / rx, (y1 - cy1) / ry}
	v := Vec2{(-x1 - cx1) / rx, (-y1 - cy1) / ry}
	start := u.Angle()
	sweepAngle := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: start,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}, true
}

// Eval returns the point at fraction t of the sweep.
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+t*a.SweepAngle))
}

// Cubics approximates the arc with cubic Béziers whose deviation from the
// true arc is at most tolerance.
func (a Arc) Cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		if n < 1 {
			return
		}
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			c := CubicBez{
				a.Center.Translate(p0),
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			}
			angle0 = angle1
			p0 = p3

			if !yield(c) {
				return
			}
		}
	}
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// angle, and returns a point on the ellipse relative to its center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotateVec(Vec2{u, v}, xRotation)
}

// rotateVec rotates v about the origin by angle radians.
func rotateVec(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
