package canon

import "math"

import "github.com/joushou/gocanon/vector"

// ControlPoint is one weighted control point of a rational B-spline.
// Feed, when not -1, overrides the feed rate from this point onward
// for curves streamed to the planner.
type ControlPoint struct {
	Pose   vector.Pose
	Weight float64
	Feed   float64
}

// knotVector builds the uniform clamped integer knot vector for n+1
// control points of order k.
func knotVector(n, k int) []int {
	kv := make([]int, 0, n+k+1)
	for i := 0; i <= n+k; i++ {
		switch {
		case i < k:
			kv = append(kv, 0)
		case i <= n:
			kv = append(kv, i-k+1)
		default:
			kv = append(kv, n-k+2)
		}
	}
	return kv
}

// basis is the Cox-de Boor recursion over an integer knot vector.
func basis(i, k int, u float64, kv []int) float64 {
	if k == 1 {
		if u >= float64(kv[i]) && u <= float64(kv[i+1]) {
			return 1
		}
		return 0
	}
	d1 := float64(kv[i+k-1] - kv[i])
	d2 := float64(kv[i+k] - kv[i+1])
	switch {
	case d1 == 0 && d2 == 0:
		return 0
	case d1 == 0:
		return (float64(kv[i+k]) - u) * basis(i+1, k-1, u, kv) / d2
	case d2 == 0:
		return (u - float64(kv[i])) * basis(i, k-1, u, kv) / d1
	default:
		return (u-float64(kv[i]))*basis(i, k-1, u, kv)/d1 +
			(float64(kv[i+k])-u)*basis(i+1, k-1, u, kv)/d2
	}
}

// nurbsPoint evaluates the planar rational B-spline at parameter u.
func nurbsPoint(u float64, k int, cps []ControlPoint, kv []int) (x, y float64) {
	var den float64
	for i := range cps {
		b := basis(i, k, u, kv) * cps[i].Weight
		den += b
		x += cps[i].Pose.X * b
		y += cps[i].Pose.Y * b
	}
	if den != 0 {
		x /= den
		y /= den
	}
	return x, y
}

// NurbsFeed cuts a planar rational B-spline of order k through the
// given control points, in XY program units, approximating the curve
// with biarcs. The knot vector is uniform and clamped; the curve is
// sampled four times per control point.
func (m *Machine) NurbsFeed(line int, controlPoints []ControlPoint, k int) {
	if k < 2 || len(controlPoints) < k {
		m.ReportError(argumentError("nurbs", "need at least k control points of order k"))
		return
	}
	n := len(controlPoints) - 1
	umax := float64(n - k + 2)
	du := umax / float64(len(controlPoints)*4)
	kv := knotVector(n, k)

	p0x, p0y := nurbsPoint(0, k, controlPoints, kv)
	p1x, p1y := nurbsPoint(du, k, controlPoints, kv)
	dxs, dys := unitize(
		controlPoints[1].Pose.X-controlPoints[0].Pose.X,
		controlPoints[1].Pose.Y-controlPoints[0].Pose.Y)

	for u := du; u+du <= umax; u += du {
		p2x, p2y := nurbsPoint(u+du, k, controlPoints, kv)
		alpha1 := math.Atan2(p1y-p0y, p1x-p0x)
		alpha2 := math.Atan2(p2y-p1y, p2x-p1x)
		alpha3 := math.Atan2(p2y-p0y, p2x-p0x)

		// Tangent at the sample is approximated by the mean of the
		// incoming and outgoing chord directions. On a quadrant
		// crossing the mean points backward, contrary to the overall
		// chord, so flip it.
		alphaM := (alpha1 + alpha2) / 2
		if math.Abs(math.Abs(alpha3)-math.Abs(alphaM)) > math.Pi/4 {
			alphaM += math.Pi
		}
		dxe := math.Cos(alphaM)
		dye := math.Sin(alphaM)
		if !m.biarc(line, p0x, p0y, dxs, dys, p1x, p1y, dxe, dye, 1) {
			m.ReportError(geometryError("nurbs", "no biarc fit for curve segment"))
			return
		}
		dxs, dys = dxe, dye
		p0x, p0y = p1x, p1y
		p1x, p1y = p2x, p2y
	}

	last := controlPoints[n].Pose
	dxe, dye := unitize(
		last.X-controlPoints[n-1].Pose.X,
		last.Y-controlPoints[n-1].Pose.Y)
	if !m.biarc(line, p0x, p0y, dxs, dys, last.X, last.Y, dxe, dye, 1) {
		m.ReportError(geometryError("nurbs", "no biarc fit for curve segment"))
	}
}

// nurbsBounds derives the velocity, acceleration and jerk caps for a
// streamed curve from the per-axis travel summed over the control
// polygon. Rotary travel turns the whole curve into an angular move:
// the rotary caps are folded in through the arc length they sweep at
// the control polygon's distance from the A axis.
func (m *Machine) nurbsBounds(d deltas, radius float64) (vel, acc, jerk float64) {
	lin := func(limit func(int) float64) float64 {
		out := huge
		for _, set := range [][]int{linearAxes, secondaryAxes} {
			for _, n := range set {
				if d[n] == 0 {
					continue
				}
				out = math.Min(out, m.fromExtLen(limit(n)))
			}
		}
		return out
	}

	vel = lin(m.status.MaxVelocity)
	acc = lin(m.status.MaxAcceleration)
	jerk = lin(m.status.MaxJerk)

	if m.angularMove {
		angToLin := 2 * math.Pi * radius / 360
		rot := func(limit func(int) float64) float64 {
			out := huge
			if d[vector.AxisA] != 0 {
				out = math.Min(out, m.fromExtLen(limit(vector.AxisA)*angToLin))
			}
			if d[vector.AxisB] != 0 {
				out = math.Min(out, m.fromExtLen(limit(vector.AxisB)))
			}
			if d[vector.AxisC] != 0 {
				out = math.Min(out, m.fromExtLen(limit(vector.AxisC)))
			}
			return out
		}
		vel = math.Min(vel, rot(m.status.MaxVelocity))
		acc = math.Min(acc, rot(m.status.MaxAcceleration))
		jerk = math.Min(jerk, rot(m.status.MaxJerk))
	}
	return vel, acc, jerk
}

// NurbsFeed3D streams a full nine-axis rational B-spline to the
// planner, one command per control point; the planner interpolates the
// curve itself. Trailing knots beyond the control polygon are sent as
// zero-weight padding commands so the planner sees the complete knot
// vector. axisMask marks which axes the curve drives.
func (m *Machine) NurbsFeed3D(line int, controlPoints []ControlPoint, knots []float64,
	k int, curveLength float64, axisMask int) {

	m.flushSegments()

	if len(controlPoints) < 2 {
		m.ReportError(argumentError("nurbs", "need at least two control points"))
		return
	}
	if len(knots) < len(controlPoints) {
		m.ReportError(argumentError("nurbs", "knot vector shorter than control polygon"))
		return
	}

	var d deltas
	for i := 0; i < len(controlPoints)-1; i++ {
		for n := 0; n < vector.AxisCount; n++ {
			d[n] += math.Abs(controlPoints[i+1].Pose.Axis(n) - controlPoints[i].Pose.Axis(n))
		}
	}
	for n := 0; n < vector.AxisCount; n++ {
		if !m.axisValid(n) || d[n] < tiny {
			d[n] = 0
		}
	}

	cartesian := d[vector.AxisX] != 0 || d[vector.AxisY] != 0 || d[vector.AxisZ] != 0 ||
		d[vector.AxisU] != 0 || d[vector.AxisV] != 0 || d[vector.AxisW] != 0
	angular := d[vector.AxisA] != 0 || d[vector.AxisB] != 0 || d[vector.AxisC] != 0
	if !cartesian && !angular {
		m.ReportError(argumentError("nurbs", "curve does not move any axis"))
		return
	}
	// A curve with any rotary travel is rate-limited as an angular
	// move even when linear axes move too.
	m.cartesianMove = cartesian && !angular
	m.angularMove = !m.cartesianMove

	lastCP := controlPoints[len(controlPoints)-1].Pose
	iniMaxVel, acc, jerk := m.nurbsBounds(d, math.Hypot(lastCP.Y, lastCP.Z))
	if iniMaxVel <= 0 || acc <= 0 || jerk <= 0 {
		m.ReportError(configError("nurbs", "", "axis limit is not positive for a moving axis"))
		return
	}

	vel := m.clampFeed(iniMaxVel)

	nb := Nurbs{
		Order:         k,
		ControlPoints: len(controlPoints),
		Knots:         len(knots),
		CurveLength:   curveLength,
		AxisMask:      axisMask,
	}

	for i, cp := range controlPoints {
		end := m.rotateAndOffset(m.fromProgram(cp.Pose)).Scale(cp.Weight)
		if cp.Feed != -1 {
			vel = m.fromProgramLen(cp.Feed) / 60
		}
		nb.Knot = knots[i]
		nb.Weight = cp.Weight
		m.emit(Command{
			Type:      CmdNurbsSegment,
			Line:      line,
			End:       m.toExtPose(end),
			Vel:       m.toExtVel(vel),
			IniMaxVel: m.toExtVel(iniMaxVel),
			Acc:       m.toExtAcc(acc),
			Jerk:      m.toExtLen(jerk),
			Nurbs:     nb,
		})
		m.updateEndPoint(end)
	}

	for i := len(controlPoints); i < len(knots); i++ {
		nb.Knot = knots[i]
		nb.Weight = 0
		m.emit(Command{
			Type:      CmdNurbsSegment,
			Line:      line,
			End:       m.toExtPose(m.endPoint),
			Vel:       m.toExtVel(m.linearFeedRate),
			IniMaxVel: m.toExtVel(iniMaxVel),
			Acc:       m.toExtAcc(acc),
			Jerk:      m.toExtLen(jerk),
			Nurbs:     nb,
		})
	}
}
