package canon

import "math"

import "github.com/joushou/gocanon/vector"

const (
	// Axis travel below tiny is treated as no motion at all.
	tiny = 1e-7
	// Stand-in limit for axes that do not move.
	huge = 1e9
)

var (
	linearAxes    = []int{vector.AxisX, vector.AxisY, vector.AxisZ}
	rotaryAxes    = []int{vector.AxisA, vector.AxisB, vector.AxisC}
	secondaryAxes = []int{vector.AxisU, vector.AxisV, vector.AxisW}
)

func (m *Machine) axisValid(n int) bool {
	return m.status.AxisMask()&(1<<uint(n)) != 0
}

type deltas [vector.AxisCount]float64

// classifyMove computes the absolute per-axis travel from the current
// end point to target, dropping disabled axes and travel below tiny,
// and records the move classification on the machine. The recorded
// flags are what the following emit step uses to pick unit conversions.
func (m *Machine) classifyMove(target vector.Pose) deltas {
	var d deltas
	for n := 0; n < vector.AxisCount; n++ {
		dv := math.Abs(target.Axis(n) - m.endPoint.Axis(n))
		if !m.axisValid(n) || dv < tiny {
			dv = 0
		}
		d[n] = dv
	}

	m.cartesianMove = d[vector.AxisX] != 0 || d[vector.AxisY] != 0 || d[vector.AxisZ] != 0 ||
		d[vector.AxisU] != 0 || d[vector.AxisV] != 0 || d[vector.AxisW] != 0
	m.angularMove = d[vector.AxisA] != 0 || d[vector.AxisB] != 0 || d[vector.AxisC] != 0

	return d
}

// minMoving takes the smallest limit among the given axes that
// actually move; axes standing still do not constrain the move.
func minMoving(d deltas, axes []int, limit func(int) float64) (float64, int) {
	out, worst := huge, -1
	for _, n := range axes {
		if d[n] == 0 {
			continue
		}
		if l := limit(n); l < out {
			out, worst = l, n
		}
	}
	return out, worst
}

// straightBound derives one kinematic bound (velocity, acceleration or
// jerk, depending on limit) for a straight move with the given per-axis
// travel, in internal units. A non-positive limit on a moving axis is a
// configuration error, not a panic.
func (m *Machine) straightBound(d deltas, limit func(int) float64, op string) (float64, error) {
	lin, linAxis := minMoving(d, linearAxes, limit)
	sec, secAxis := minMoving(d, secondaryAxes, limit)
	if sec < lin {
		lin, linAxis = sec, secAxis
	}
	lin = m.fromExtLen(lin)

	ang, angAxis := minMoving(d, rotaryAxes, limit)
	ang = m.fromExtAng(ang)

	var bound float64
	var axis int
	switch {
	case m.cartesianMove && !m.angularMove:
		bound, axis = lin, linAxis
	case m.angularMove && !m.cartesianMove:
		bound, axis = ang, angAxis
	case m.cartesianMove && m.angularMove:
		bound, axis = lin, linAxis
		if ang < bound {
			bound, axis = ang, angAxis
		}
	default:
		// A move to nowhere has no bound; callers skip emission.
		return 0, nil
	}

	if bound <= 0 {
		name := ""
		if axis >= 0 {
			name = vector.AxisName(axis)
		}
		return 0, configError(op, name, "axis limit is not positive for a moving axis")
	}
	return bound, nil
}

func (m *Machine) straightVelocity(d deltas) (float64, error) {
	return m.straightBound(d, m.status.MaxVelocity, "velocity")
}

func (m *Machine) straightAcceleration(d deltas) (float64, error) {
	return m.straightBound(d, m.status.MaxAcceleration, "acceleration")
}

func (m *Machine) straightJerk(d deltas) (float64, error) {
	return m.straightBound(d, m.status.MaxJerk, "jerk")
}

// clampFeed caps a velocity bound at the active feed rate. Pure
// angular moves are ruled by the angular feed rate, everything else by
// the linear one.
func (m *Machine) clampFeed(vel float64) float64 {
	if m.angularMove && !m.cartesianMove {
		if vel > m.angularFeedRate {
			return m.angularFeedRate
		}
		return vel
	}
	if vel > m.linearFeedRate {
		return m.linearFeedRate
	}
	return vel
}

// straightBounds computes all bounds for a straight move to target.
// The returned velocity is the raw axis-limit bound; feed clamping is
// the caller's choice since traverses ignore the feed rate.
func (m *Machine) straightBounds(target vector.Pose) (vel, acc, jerk float64, err error) {
	d := m.classifyMove(target)
	if vel, err = m.straightVelocity(d); err != nil {
		return 0, 0, 0, err
	}
	if acc, err = m.straightAcceleration(d); err != nil {
		return 0, 0, 0, err
	}
	if jerk, err = m.straightJerk(d); err != nil {
		return 0, 0, 0, err
	}
	return vel, acc, jerk, nil
}
