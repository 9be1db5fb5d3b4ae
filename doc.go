// Package pathgeom is a geometry kernel for 2D paths made of lines and
// quadratic and cubic Béziers. It answers the questions that drawing and
// layout code asks of such paths: where is the point at a parameter, where do
// two curves cross, how long is a path and where is the point at a given
// distance along it, which point of a path is closest to a given point, and
// what polyline approximates a path within a tolerance.
//
// # Segments and paths
//
// [Line], [QuadBez] and [CubicBez] are the concrete curve types. [Segment]
// is a tagged union over the three that paths are made of. All segments are
// parametrized over [0, 1] and evaluated with de Casteljau's algorithm.
//
// A [Path] is a non-empty sequence of segments, each starting exactly where
// the previous one ends. Paths are built with a [Builder] and are immutable
// afterwards, so they can be shared freely. Points on a path are addressed by
// a [Location], a segment index together with a parameter.
//
// # Queries
//
//   - [FindIntersections] and [PathIntersections] find crossings by recursive
//     subdivision.
//   - [Length], [LengthAt] and [LocationAtLength] convert between locations
//     and arc length, using adaptive Gauss–Kronrod quadrature or subdivision.
//   - [NearestLocation] finds the closest point of a path.
//   - [Polyline] and [ToPolyline] flatten a path.
//
// Adaptive algorithms take a tolerance in the units of the path's
// coordinates. They are bounded by fixed recursion limits and interval
// budgets, so every query terminates. When an algorithm runs out of budget
// before reaching the requested accuracy, it returns its best estimate along
// with a [*PrecisionNotAchievedError]. Debug output about such events can be
// enabled with [SetLogger].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - Wang's formula for the subdivision depth needed to flatten a Bézier
//   - QUADPACK's 15 point Gauss–Kronrod rule, by Piessens et al.
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package pathgeom
