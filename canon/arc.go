package canon

import "math"

import "github.com/joushou/gocanon/vector"

// chordDeviation computes the sagitta of the arc from (sx,sy) to
// (ex,ey) about (cx,cy), plus the arc midpoint. rotation < 0 means a
// clockwise arc. The angle normalization runs twice: when atan2 lands
// on -pi and pi a single pass can leave the angles in the wrong order.
func chordDeviation(sx, sy, ex, ey, cx, cy float64, rotation int) (dev, mx, my float64) {
	th1 := math.Atan2(sy-cy, sx-cx)
	th2 := math.Atan2(ey-cy, ex-cx)
	r := math.Hypot(sy-cy, sx-cx)

	if rotation < 0 {
		if th2-th1 >= -1e-5 {
			th2 -= 2 * math.Pi
		}
		if th2-th1 >= -1e-5 {
			th2 -= 2 * math.Pi
		}
	} else {
		if th2-th1 <= 1e-5 {
			th2 += 2 * math.Pi
		}
		if th2-th1 <= 1e-5 {
			th2 += 2 * math.Pi
		}
	}

	included := math.Abs(th2 - th1)
	mid := (th2 + th1) / 2
	mx = cx + r*math.Cos(mid)
	my = cy + r*math.Sin(mid)
	dev = r * (1 - math.Cos(included/2))
	return dev, mx, my
}

// ArcFeed compiles a circular or helical cut. firstEnd/secondEnd are
// the in-plane end coordinates and firstAxis/secondAxis the in-plane
// center, all in program units. A positive rotation of n means n-1
// extra full turns counterclockwise; negative is clockwise. axisEnd is
// the end coordinate along the axis perpendicular to the active plane.
func (m *Machine) ArcFeed(line int, firstEnd, secondEnd, firstAxis, secondAxis float64,
	rotation int, axisEnd float64, a, b, c, u, v, w float64) {

	// Shallow arcs in the blending plane collapse into two straight
	// segments through the merge buffer when the sagitta stays under
	// the naive-cam tolerance.
	if m.activePlane == PlaneXY && m.motionMode == Continuous {
		end := vector.Pose{
			X: m.fromProgramLen(firstEnd),
			Y: m.fromProgramLen(secondEnd),
			Z: m.fromProgramLen(axisEnd),
			A: m.fromProgramAng(a), B: m.fromProgramAng(b), C: m.fromProgramAng(c),
			U: m.fromProgramLen(u), V: m.fromProgramLen(v), W: m.fromProgramLen(w),
		}
		end = m.rotateAndOffset(end)

		cx, cy := rotate(m.fromProgramLen(firstAxis), m.fromProgramLen(secondAxis), m.xyRotation)
		cx = m.offsetAxis(vector.AxisX, cx)
		cy = m.offsetAxis(vector.AxisY, cy)

		last := m.lastPos()
		dev, mx, my := chordDeviation(last.X, last.Y, end.X, end.Y, cx, cy, rotation)
		if dev < m.naivecamTolerance {
			mid := vector.Pose{
				X: mx, Y: my, Z: (last.Z + end.Z) / 2,
				A: (m.endPoint.A + end.A) / 2,
				B: (m.endPoint.B + end.B) / 2,
				C: (m.endPoint.C + end.C) / 2,
				U: (m.endPoint.U + end.U) / 2,
				V: (m.endPoint.V + end.V) / 2,
				W: (m.endPoint.W + end.W) / 2,
			}
			m.seeSegment(line, mid)
			m.seeSegment(line, end)
			return
		}
	}

	m.flushSegments()

	a = m.offsetAxis(vector.AxisA, m.fromProgramAng(a))
	b = m.offsetAxis(vector.AxisB, m.fromProgramAng(b))
	c = m.offsetAxis(vector.AxisC, m.fromProgramAng(c))
	u = m.offsetAxis(vector.AxisU, m.fromProgramLen(u))
	v = m.offsetAxis(vector.AxisV, m.fromProgramLen(v))
	w = m.offsetAxis(vector.AxisW, m.fromProgramLen(w))

	da := math.Abs(m.endPoint.A - a)
	db := math.Abs(m.endPoint.B - b)
	dc := math.Abs(m.endPoint.C - c)
	du := math.Abs(m.endPoint.U - u)
	dv := math.Abs(m.endPoint.V - v)
	dw := math.Abs(m.endPoint.W - w)

	firstEnd = m.fromProgramLen(firstEnd)
	secondEnd = m.fromProgramLen(secondEnd)
	firstAxis = m.fromProgramLen(firstAxis)
	secondAxis = m.fromProgramLen(secondAxis)
	axisEnd = m.fromProgramLen(axisEnd)

	rotOff := func(x, y, z float64) (float64, float64, float64) {
		x, y = rotate(x, y, m.xyRotation)
		return m.offsetAxis(vector.AxisX, x), m.offsetAxis(vector.AxisY, y), m.offsetAxis(vector.AxisZ, z)
	}

	var end, center vector.Vector
	var normal vector.Vector
	var inPlane [2]int
	var offAxis int
	var axisLen float64

	switch m.activePlane {
	default:
		fallthrough
	case PlaneXY:
		end.X, end.Y, end.Z = rotOff(firstEnd, secondEnd, axisEnd)
		center.X, center.Y, center.Z = rotOff(firstAxis, secondAxis, axisEnd)
		center.Z = end.Z
		normal = vector.Vector{Z: 1}
		inPlane = [2]int{vector.AxisX, vector.AxisY}
		offAxis = vector.AxisZ
		axisLen = math.Abs(end.Z - m.endPoint.Z)

	case PlaneYZ:
		end.X, end.Y, end.Z = rotOff(axisEnd, firstEnd, secondEnd)
		center.X, center.Y, center.Z = rotOff(axisEnd, firstAxis, secondAxis)
		center.X = end.X
		normal = vector.Vector{X: 1}
		normal.X, normal.Y = rotate(normal.X, normal.Y, m.xyRotation)
		inPlane = [2]int{vector.AxisY, vector.AxisZ}
		offAxis = vector.AxisX
		axisLen = math.Abs(end.X - m.endPoint.X)

	case PlaneXZ:
		end.X, end.Y, end.Z = rotOff(secondEnd, axisEnd, firstEnd)
		center.X, center.Y, center.Z = rotOff(secondAxis, axisEnd, firstAxis)
		center.Y = end.Y
		normal = vector.Vector{Y: 1}
		normal.X, normal.Y = rotate(normal.X, normal.Y, m.xyRotation)
		inPlane = [2]int{vector.AxisZ, vector.AxisX}
		offAxis = vector.AxisY
		axisLen = math.Abs(end.Y - m.endPoint.Y)
	}

	iniMaxVel := math.Min(m.fromExtLen(m.status.MaxVelocity(inPlane[0])), m.fromExtLen(m.status.MaxVelocity(inPlane[1])))
	acc := math.Min(m.fromExtLen(m.status.MaxAcceleration(inPlane[0])), m.fromExtLen(m.status.MaxAcceleration(inPlane[1])))
	iniMaxJerk := math.Min(m.fromExtLen(m.status.MaxJerk(inPlane[0])), m.fromExtLen(m.status.MaxJerk(inPlane[1])))

	// The out-of-plane axis only constrains genuinely helical moves.
	if m.axisValid(offAxis) && axisLen > 0.001 {
		iniMaxVel = math.Min(iniMaxVel, m.fromExtLen(m.status.MaxVelocity(offAxis)))
		acc = math.Min(acc, m.fromExtLen(m.status.MaxAcceleration(offAxis)))
		iniMaxJerk = math.Min(iniMaxJerk, m.fromExtLen(m.status.MaxJerk(offAxis)))
	}

	zeroTiny := func(d float64, axis int) float64 {
		if !m.axisValid(axis) || d < tiny {
			return 0
		}
		return d
	}
	da = zeroTiny(da, vector.AxisA)
	db = zeroTiny(db, vector.AxisB)
	dc = zeroTiny(dc, vector.AxisC)
	du = zeroTiny(du, vector.AxisU)
	dv = zeroTiny(dv, vector.AxisV)
	dw = zeroTiny(dw, vector.AxisW)

	m.cartesianMove = true
	m.angularMove = false

	movingMin := func(limit func(int) float64, axes []int, ds [3]float64) float64 {
		out := huge
		for i, n := range axes {
			if ds[i] == 0 {
				continue
			}
			if l := limit(n); l < out {
				out = l
			}
		}
		return out
	}
	duvw := [3]float64{du, dv, dw}
	dabc := [3]float64{da, db, dc}

	iniMaxJerk = math.Min(iniMaxJerk, m.fromExtLen(movingMin(m.status.MaxJerk, secondaryAxes, duvw)))
	iniMaxJerk = math.Min(iniMaxJerk, m.fromExtAng(movingMin(m.status.MaxJerk, rotaryAxes, dabc)))
	acc = math.Min(acc, m.fromExtLen(movingMin(m.status.MaxAcceleration, secondaryAxes, duvw)))
	acc = math.Min(acc, m.fromExtAng(movingMin(m.status.MaxAcceleration, rotaryAxes, dabc)))
	iniMaxVel = math.Min(iniMaxVel, m.fromExtLen(movingMin(m.status.MaxVelocity, secondaryAxes, duvw)))
	iniMaxVel = math.Min(iniMaxVel, m.fromExtAng(movingMin(m.status.MaxVelocity, rotaryAxes, dabc)))

	if iniMaxVel <= 0 || acc <= 0 || iniMaxJerk <= 0 {
		m.ReportError(configError("arc", "", "axis limit is not positive for a moving axis"))
		return
	}

	iniMaxVel = math.Min(iniMaxVel, m.linearFeedRate)
	vel := iniMaxVel

	endPose := vector.Pose{
		X: end.X, Y: end.Y, Z: end.Z,
		A: a, B: b, C: c, U: u, V: v, W: w,
	}

	if rotation == 0 {
		// Degenerate arc: a straight move to the end point.
		if vel != 0 && acc != 0 {
			m.emit(Command{
				Type:      CmdLinearFeed,
				Line:      line,
				End:       m.toExtPose(endPose),
				Vel:       m.toExtVel(vel),
				IniMaxVel: m.toExtVel(iniMaxVel),
				Acc:       m.toExtAcc(acc),
				Jerk:      m.toExtLen(iniMaxJerk),
			})
		}
	} else {
		turn := rotation
		if rotation > 0 {
			turn = rotation - 1
		}
		if vel != 0 && acc != 0 {
			m.emit(Command{
				Type:      CmdCircularArc,
				Line:      line,
				End:       m.toExtPose(endPose),
				Center:    vector.Vector{X: m.toExtLen(center.X), Y: m.toExtLen(center.Y), Z: m.toExtLen(center.Z)},
				Normal:    normal,
				Turn:      turn,
				Vel:       m.toExtVel(vel),
				IniMaxVel: m.toExtVel(iniMaxVel),
				Acc:       m.toExtAcc(acc),
				Jerk:      m.toExtLen(iniMaxJerk),
			})
		}
	}
	m.updateEndPoint(endPose)
}
