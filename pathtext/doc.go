// Package pathtext reads and writes paths in a compact text format modeled
// after SVG path data.
//
// The supported commands are M (move), L (line), H and V (horizontal and
// vertical lines), Q (quadratic Bézier), C (cubic Bézier), A (elliptical
// arc) and Z (close). Lowercase variants take coordinates relative to the
// current point. Numbers are separated by whitespace or commas, and a
// command letter may be omitted when it repeats the previous one; numbers
// following M are implicit lines.
//
//	M0,0 C0,100 100,100 100,0 l0,-50 z
package pathtext
