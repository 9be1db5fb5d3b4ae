package pathgeom

import (
	"math"
)

// Gauss–Kronrod 7/15 point rule, from QUADPACK's qk15. Nodes are the
// positive abscissae in decreasing order; the Gauss nodes are the odd
// indices of xgk15.
var xgk15 = [8]float64{
	0.991455371120812639206854697526329,
	0.949107912342758524526189684047851,
	0.864864423359769072789712788640926,
	0.741531185599394439863864773280788,
	0.586087235467691130294144845693013,
	0.405845151377397166906606412076961,
	0.207784955007898467600689403773245,
	0.000000000000000000000000000000000,
}

var wgk15 = [8]float64{
	0.022935322010529224963732008058970,
	0.063092092629978553290700663189204,
	0.104790010322250183839876322541518,
	0.140653259715525918745189590510238,
	0.169004726639267902826583426598550,
	0.190350578064785409913256402421014,
	0.204432940075298892414161999234649,
	0.209482141084727828012999174891714,
}

var wg7 = [4]float64{
	0.129484966168869693270611432679082,
	0.279705391489276667901467771423780,
	0.381830050505118944950369775488975,
	0.417959183673469387755102040816327,
}

// qk15 integrates f over [a, b] with the 15 point Kronrod rule and returns
// the estimate and an estimate of its absolute error.
func qk15(f func(float64) float64, a, b float64) (result, abserr float64) {
	const epmach = 2.220446049250313e-16
	const uflow = 2.2250738585072014e-308

	center := 0.5 * (a + b)
	half := 0.5 * (b - a)
	fc := f(center)
	resg := fc * wg7[3]
	resk := fc * wgk15[7]
	resabs := math.Abs(resk)

	var fv1, fv2 [7]float64
	for j := range 3 {
		jtw := 2*j + 1
		absc := half * xgk15[jtw]
		f1 := f(center - absc)
		f2 := f(center + absc)
		fv1[jtw], fv2[jtw] = f1, f2
		resg += wg7[j] * (f1 + f2)
		resk += wgk15[jtw] * (f1 + f2)
		resabs += wgk15[jtw] * (math.Abs(f1) + math.Abs(f2))
	}
	for j := range 4 {
		jtwm1 := 2 * j
		absc := half * xgk15[jtwm1]
		f1 := f(center - absc)
		f2 := f(center + absc)
		fv1[jtwm1], fv2[jtwm1] = f1, f2
		resk += wgk15[jtwm1] * (f1 + f2)
		resabs += wgk15[jtwm1] * (math.Abs(f1) + math.Abs(f2))
	}

	reskh := 0.5 * resk
	resasc := wgk15[7] * math.Abs(fc-reskh)
	for j := range 7 {
		resasc += wgk15[j] * (math.Abs(fv1[j]-reskh) + math.Abs(fv2[j]-reskh))
	}

	result = resk * half
	resabs *= math.Abs(half)
	resasc *= math.Abs(half)
	abserr = math.Abs((resk - resg) * half)
	if resasc != 0 && abserr != 0 {
		abserr = resasc * min(1, math.Pow(200*abserr/resasc, 1.5))
	}
	if resabs > uflow/(50*epmach) {
		abserr = max(epmach*50*resabs, abserr)
	}
	return result, abserr
}

// DefaultMaxIntervals is the default interval budget of the adaptive
// integrator.
const DefaultMaxIntervals = 200

type quadInterval struct {
	a, b   float64
	result float64
	err    float64
}

// integrate adaptively integrates f over [a, b]. The interval with the
// largest error estimate is bisected until the total error drops below
// max(absTol, relTol·|result|) or limit intervals are in use. ok reports
// whether the requested accuracy was reached.
func integrate(f func(float64) float64, a, b, absTol, relTol float64, limit int) (result, abserr float64, ok bool) {
	if limit <= 0 {
		limit = DefaultMaxIntervals
	}
	r, e := qk15(f, a, b)
	ivs := make([]quadInterval, 1, min(limit, 64))
	ivs[0] = quadInterval{a, b, r, e}
	result, abserr = r, e

	for {
		if abserr <= max(absTol, relTol*math.Abs(result)) {
			return result, abserr, true
		}
		if len(ivs) >= limit {
			return result, abserr, false
		}

		worst := 0
		for i := range ivs {
			if ivs[i].err > ivs[worst].err {
				worst = i
			}
		}
		iv := ivs[worst]
		mid := 0.5 * (iv.a + iv.b)
		if mid <= iv.a || mid >= iv.b {
			// Interval no longer divisible in floating point.
			return result, abserr, false
		}
		r1, e1 := qk15(f, iv.a, mid)
		r2, e2 := qk15(f, mid, iv.b)
		ivs[worst] = quadInterval{iv.a, mid, r1, e1}
		ivs = append(ivs, quadInterval{mid, iv.b, r2, e2})

		// Resum instead of updating incrementally to avoid drift.
		result, abserr = 0, 0
		for _, iv := range ivs {
			result += iv.result
			abserr += iv.err
		}
	}
}
