package canon

import "fmt"

import "github.com/joushou/gocanon/vector"

// ExternalPosition reports where the machine actually is, in program
// units. Any buffered merge candidates are discarded: the caller is
// resynchronizing against reality, and the stale segments no longer
// describe a path from the true position.
func (m *Machine) ExternalPosition() vector.Pose {
	m.chained = nil
	m.endPoint = m.fromExtPose(m.status.Position())
	return m.toProgram(m.unoffsetAndUnrotate(m.endPoint))
}

// ExternalProbePosition reports the position latched by the last probe
// trip, in program units. When a probe file is open each new result is
// appended to it; repeated queries of the same trip write nothing.
func (m *Machine) ExternalProbePosition() vector.Pose {
	m.flushSegments()

	pos := m.fromExtPose(m.status.ProbedPosition())
	result := m.toProgram(m.unoffsetAndUnrotate(pos))

	if m.probeFile != nil {
		if !m.haveProbed || result != m.lastProbed {
			fmt.Fprintf(m.probeFile, "%f %f %f %f %f %f %f %f %f\n",
				result.X, result.Y, result.Z,
				result.A, result.B, result.C,
				result.U, result.V, result.W)
			m.lastProbed = result
			m.haveProbed = true
		}
	}
	return result
}

// ProbeTripped reports whether the probe has tripped since the last
// clear.
func (m *Machine) ProbeTripped() bool {
	return m.status.ProbeTripped()
}

// ProbeValue is the reading of an analog non-contact probe; only
// contact probes are supported, so it is always zero.
func (m *Machine) ProbeValue() float64 {
	return 0
}

// IsQueueEmpty reports whether the planner has consumed everything
// emitted so far. Buffered merge candidates are flushed first so the
// answer covers them too.
func (m *Machine) IsQueueEmpty() bool {
	m.flushSegments()
	return m.status.QueueEmpty()
}

// FeedRate returns the active feed rate in program units per minute.
func (m *Machine) FeedRate() float64 {
	return m.toProgramLen(m.linearFeedRate) * 60
}

// DigitalInputValue reads a digital input. Out-of-range indexes and
// timed-out inputs read as -1.
func (m *Machine) DigitalInputValue(index int) int {
	if index < 0 || index >= m.status.DigitalInputs() {
		return -1
	}
	if m.status.InputTimedOut() {
		return -1
	}
	if m.status.DigitalInput(index) {
		return 1
	}
	return 0
}

// AnalogInputValue reads an analog input. Out-of-range indexes and
// timed-out inputs read as -1.
func (m *Machine) AnalogInputValue(index int) float64 {
	if index < 0 || index >= m.status.AnalogInputs() {
		return -1
	}
	if m.status.InputTimedOut() {
		return -1
	}
	return m.status.AnalogInput(index)
}

// LengthUnits returns the detected program length units.
func (m *Machine) LengthUnits() LengthUnits {
	return m.lengthUnits
}

// ActivePlane returns the circular interpolation plane.
func (m *Machine) ActivePlane() Plane {
	return m.activePlane
}

// MotionMode returns the path-following mode.
func (m *Machine) MotionMode() MotionMode {
	return m.motionMode
}

// MotionTolerance returns the blend tolerance in internal units.
func (m *Machine) MotionTolerance() float64 {
	return m.motionTolerance
}

// NaivecamTolerance returns the segment merge tolerance in internal
// units.
func (m *Machine) NaivecamTolerance() float64 {
	return m.naivecamTolerance
}

// ProgramOrigin returns the active origin offsets in internal units.
func (m *Machine) ProgramOrigin() vector.Pose {
	return m.programOrigin
}

// XYRotation returns the frame rotation in degrees.
func (m *Machine) XYRotation() float64 {
	return m.xyRotation
}

// ActivePocket returns the pocket staged by the last SelectPocket.
func (m *Machine) ActivePocket() int {
	return m.activePocket
}
