package canon

import "math"

// Attempts per curve sample before a spline is declared unfittable.
const maxBiarcAttempts = 16

func unitize(x, y float64) (float64, float64) {
	h := math.Hypot(x, y)
	if h != 0 {
		return x / h, y / h
	}
	return x, y
}

// arcTo cuts a single arc from (x0,y0) to (x1,y1), leaving (x0,y0)
// along the tangent (dx,dy). Coordinates are XY program units; the
// remaining axes hold their current position. When the tangent is
// collinear with the chord the arc degenerates into a straight cut.
func (m *Machine) arcTo(line int, x0, y0, x1, y1, dx, dy float64) {
	const small = 1e-6

	rest := m.toProgram(m.unoffsetAndUnrotate(m.endPoint))

	x := x1 - x0
	y := y1 - y0
	den := 2 * (y*dx - x*dy)
	if math.Abs(den) > small {
		r := -(x*x + y*y) / den
		cx := x0 + dy*r
		cy := y0 - dx*r
		rot := -1
		if r < 0 {
			rot = 1
		}
		m.ArcFeed(line, x1, y1, cx, cy, rot, rest.Z,
			rest.A, rest.B, rest.C, rest.U, rest.V, rest.W)
	} else {
		rest.X = x1
		rest.Y = y1
		m.StraightFeed(line, rest)
	}
}

// biarc joins (p0x,p0y) to (p4x,p4y) with two tangent-continuous arcs,
// leaving along (tsx,tsy) and arriving along (tex,tey). r biases how
// the total turning is split between the two arcs. It reports false
// when no arc pair satisfies the tangents.
func (m *Machine) biarc(line int, p0x, p0y, tsx, tsy, p4x, p4y, tex, tey, r float64) bool {
	tsx, tsy = unitize(tsx, tsy)
	tex, tey = unitize(tex, tey)

	vx := p0x - p4x
	vy := p0y - p4y
	c := vx*vx + vy*vy
	b := 2 * (vx*(r*tsx+tex) + vy*(r*tsy+tey))
	a := 2 * r * (tsx*tex + tsy*tey - 1)

	discr := b*b - 4*a*c
	if discr < 0 {
		return false
	}

	disq := math.Sqrt(discr)
	beta1 := (-b - disq) / 2 / a
	beta2 := (-b + disq) / 2 / a
	if beta1 > 0 && beta2 > 0 {
		return false
	}
	beta := math.Max(beta1, beta2)
	if !(beta > 0) || math.IsInf(beta, 0) {
		return false
	}

	alpha := beta * r
	ab := alpha + beta
	p1x := p0x + alpha*tsx
	p1y := p0y + alpha*tsy
	p3x := p4x - beta*tex
	p3y := p4y - beta*tey
	p2x := (p1x*beta + p3x*alpha) / ab
	p2y := (p1y*beta + p3y*alpha) / ab
	tmx, tmy := unitize(p3x-p2x, p3y-p2y)

	m.arcTo(line, p0x, p0y, p2x, p2y, tsx, tsy)
	m.arcTo(line, p2x, p2y, p4x, p4y, tmx, tmy)
	return true
}

// splineFeed walks a parametric curve from t=0 to t=1 in the given
// number of steps, fitting a biarc between consecutive samples. When a
// sample pair admits no biarc the step is halved and the sample moved
// closer; a bounded number of attempts keeps degenerate tangent data
// from stalling the walk.
func (m *Machine) splineFeed(line, steps int, point, tangent func(t float64) (x, y float64)) {
	ox, oy := point(0)
	odx, ody := tangent(0)

	t := 0.0
	step := 1.0 / float64(steps)
	attempts := 0
	for t < 1 {
		tn := t + step
		if tn > 1 {
			tn = 1
		}
		x, y := point(tn)
		dx, dy := tangent(tn)
		if !m.biarc(line, ox, oy, odx, ody, x, y, dx, dy, 1) {
			attempts++
			if attempts > maxBiarcAttempts {
				m.ReportError(geometryError("spline", "no biarc fit for curve segment"))
				return
			}
			step /= 2
			continue
		}
		attempts = 0
		t = tn
		step = math.Min(step*2, 1.0/float64(steps))
		ox, oy = x, y
		odx, ody = dx, dy
	}
}

// SplineFeedQuadratic cuts a quadratic Bezier curve in the XY plane
// from the current position through control point (x1,y1) to (x2,y2),
// in program units, approximated by biarcs.
func (m *Machine) SplineFeedQuadratic(line int, x1, y1, x2, y2 float64) {
	m.flushSegments()

	start := m.toProgram(m.unoffsetAndUnrotate(m.endPoint))
	x0, y0 := start.X, start.Y
	xx0, xx1 := 2*(x1-x0), 2*(x2-x1)
	yy0, yy1 := 2*(y1-y0), 2*(y2-y1)

	point := func(t float64) (float64, float64) {
		t0 := (1 - t) * (1 - t)
		t1 := 2 * t * (1 - t)
		t2 := t * t
		return x0*t0 + x1*t1 + x2*t2, y0*t0 + y1*t1 + y2*t2
	}
	tangent := func(t float64) (float64, float64) {
		return xx0*(1-t) + xx1*t, yy0*(1-t) + yy1*t
	}
	m.splineFeed(line, 2, point, tangent)
}

// SplineFeedCubic cuts a cubic Bezier curve in the XY plane from the
// current position through control points (x1,y1) and (x2,y2) to
// (x3,y3), in program units, approximated by biarcs.
func (m *Machine) SplineFeedCubic(line int, x1, y1, x2, y2, x3, y3 float64) {
	m.flushSegments()

	start := m.toProgram(m.unoffsetAndUnrotate(m.endPoint))
	x0, y0 := start.X, start.Y
	xx0, xx1, xx2 := 3*(x1-x0), 3*(x2-x1), 3*(x3-x2)
	yy0, yy1, yy2 := 3*(y1-y0), 3*(y2-y1), 3*(y3-y2)

	point := func(t float64) (float64, float64) {
		t0 := (1 - t) * (1 - t) * (1 - t)
		t1 := 3 * t * (1 - t) * (1 - t)
		t2 := 3 * t * t * (1 - t)
		t3 := t * t * t
		return x0*t0 + x1*t1 + x2*t2 + x3*t3, y0*t0 + y1*t1 + y2*t2 + y3*t3
	}
	tangent := func(t float64) (float64, float64) {
		q0 := (1 - t) * (1 - t)
		q1 := 2 * t * (1 - t)
		q2 := t * t
		return xx0*q0 + xx1*q1 + xx2*q2, yy0*q0 + yy1*q1 + yy2*q2
	}
	m.splineFeed(line, 4, point, tangent)
}
