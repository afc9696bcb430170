package canon

import "github.com/joushou/gocanon/vector"

// StraightTraverse compiles a rapid move to p (program units).
func (m *Machine) StraightTraverse(line int, p vector.Pose) {
	m.flushSegments()

	target := m.rotateAndOffset(m.fromProgram(p))
	vel, acc, jerk, err := m.straightBounds(target)
	if err != nil {
		m.ReportError(err)
		return
	}

	cmd := Command{
		Type:      CmdTraverse,
		Line:      line,
		End:       m.toExtPose(target),
		Vel:       m.toExtVel(vel),
		IniMaxVel: m.toExtVel(vel),
		Acc:       m.toExtAcc(acc),
		Jerk:      m.toExtLen(jerk),
	}

	// Rapids are never spindle-synchronized; suspend synch around the
	// move and restore it afterwards.
	wasPerRev := m.feedPerRev
	if wasPerRev {
		m.StopSpeedFeedSynch()
	}
	if vel != 0 && acc != 0 {
		m.emit(cmd)
	}
	if wasPerRev {
		m.StartSpeedFeedSynch(m.linearFeedRate, true)
	}

	m.updateEndPoint(target)
}

// StraightFeed compiles a cutting move to p (program units), possibly
// merging it with neighbouring segments.
func (m *Machine) StraightFeed(line int, p vector.Pose) {
	target := m.rotateAndOffset(m.fromProgram(p))
	m.seeSegment(line, target)
}

// RigidTap compiles a synchronized tapping cycle to the given primary
// linear position (program units). The cycle returns to its start, so
// the end point is left alone.
func (m *Machine) RigidTap(line int, x, y, z float64) {
	target := m.endPoint
	target.X, target.Y, target.Z = m.fromProgramLen(x), m.fromProgramLen(y), m.fromProgramLen(z)
	target.X, target.Y = rotate(target.X, target.Y, m.xyRotation)
	target.X = m.offsetAxis(vector.AxisX, target.X)
	target.Y = m.offsetAxis(vector.AxisY, target.Y)
	target.Z = m.offsetAxis(vector.AxisZ, target.Z)

	m.flushSegments()

	vel, acc, _, err := m.straightBounds(target)
	if err != nil {
		m.ReportError(err)
		return
	}

	if vel != 0 && acc != 0 {
		m.emit(Command{
			Type:      CmdRigidTap,
			Line:      line,
			End:       m.toExtPose(target),
			Vel:       m.toExtVel(vel),
			IniMaxVel: m.toExtVel(vel),
			Acc:       m.toExtAcc(acc),
		})
	}
}

// StraightProbe is StraightFeed with a probe command instead of a
// linear move; it never merges.
func (m *Machine) StraightProbe(line int, p vector.Pose, probeType int) {
	target := m.rotateAndOffset(m.fromProgram(p))

	m.flushSegments()

	vel, acc, jerk, err := m.straightBounds(target)
	if err != nil {
		m.ReportError(err)
		return
	}
	iniMaxVel := vel
	vel = m.clampFeed(vel)

	if vel != 0 && acc != 0 {
		m.emit(Command{
			Type:      CmdProbe,
			Line:      line,
			End:       m.toExtPose(target),
			Vel:       m.toExtVel(vel),
			IniMaxVel: m.toExtVel(iniMaxVel),
			Acc:       m.toExtAcc(acc),
			Jerk:      m.toExtLen(jerk),
			ProbeType: probeType,
		})
	}
	m.updateEndPoint(target)
}

// Dwell holds all axis motion for the given duration.
func (m *Machine) Dwell(seconds float64) {
	m.flushSegments()
	m.emit(Command{Type: CmdDwell, Seconds: seconds})
}

// SetOriginOffsets replaces the program origin (program units in).
func (m *Machine) SetOriginOffsets(p vector.Pose) {
	m.flushSegments()
	m.programOrigin = m.fromProgram(p)
	// Constant surface speed tracks the spindle's distance from the
	// origin, so a new origin needs a fresh speed command.
	m.emitCSSUpdate()
	m.emit(Command{Type: CmdOrigin, Offset: m.toExtPose(m.programOrigin)})
}

// SetXYRotation sets the frame rotation in degrees.
func (m *Machine) SetXYRotation(deg float64) {
	m.flushSegments()
	m.xyRotation = deg
	m.emit(Command{Type: CmdRotation, Rotation: deg})
}

// SelectPlane chooses the circular interpolation plane.
func (m *Machine) SelectPlane(p Plane) {
	m.flushSegments()
	m.activePlane = p
}

// SetMotionControlMode switches between exact stop and blended motion.
// The tolerance is in program units and only meaningful when blending.
func (m *Machine) SetMotionControlMode(mode MotionMode, tolerance float64) {
	m.flushSegments()
	m.motionMode = mode
	m.motionTolerance = m.fromProgramLen(tolerance)

	cmd := Command{Type: CmdMotionMode}
	if mode == Continuous {
		cmd.Blend = true
		cmd.Tolerance = m.toExtLen(m.motionTolerance)
	}
	m.emit(cmd)
}

// SetNaivecamTolerance sets the segment merging tolerance in program
// units; zero disables merging entirely.
func (m *Machine) SetNaivecamTolerance(tolerance float64) {
	m.flushSegments()
	m.naivecamTolerance = m.fromProgramLen(tolerance)
}

// SetFeedMode switches between units-per-minute and units-per-rev
// feeds. Leaving per-rev mode drops spindle synchronization.
func (m *Machine) SetFeedMode(perRev bool) {
	m.flushSegments()
	m.feedPerRev = perRev
	if !perRev {
		m.StopSpeedFeedSynch()
	}
}

// SetFeedRate sets the programmed feed. In per-rev mode the rate is
// units per spindle revolution and motion becomes synchronized; in
// time mode it is program units per minute.
func (m *Machine) SetFeedRate(rate float64) {
	if m.feedPerRev {
		m.StartSpeedFeedSynch(rate, true)
		m.linearFeedRate = rate
		return
	}

	rate /= 60.0
	newLinear := m.fromProgramLen(rate)
	newAngular := m.fromProgramAng(rate)
	if newLinear != m.linearFeedRate || newAngular != m.angularFeedRate {
		m.flushSegments()
	}
	m.linearFeedRate = newLinear
	m.angularFeedRate = newAngular
}

// StartSpeedFeedSynch ties feed to spindle rotation at the given feed
// per revolution (program units).
func (m *Machine) StartSpeedFeedSynch(feedPerRev float64, velocityMode bool) {
	m.flushSegments()
	m.emit(Command{
		Type:         CmdSpindleSync,
		FeedPerRev:   m.toExtLen(m.fromProgramLen(feedPerRev)),
		VelocityMode: velocityMode,
	})
	m.synched = true
}

// StopSpeedFeedSynch releases spindle-synchronized motion.
func (m *Machine) StopSpeedFeedSynch() {
	m.flushSegments()
	m.emit(Command{Type: CmdSpindleSync})
	m.synched = false
}

// UseLengthUnits sets the program's length units. Angles are degrees
// in any unit system.
func (m *Machine) UseLengthUnits(u LengthUnits) {
	m.lengthUnits = u
}

// SetTraverseRate is accepted for interface completeness; traverse
// speed comes from the axis limits alone.
func (m *Machine) SetTraverseRate(rate float64) {
}
