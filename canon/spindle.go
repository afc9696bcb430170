package canon

import "math"

// cssXOffset is the spindle's reference distance from machine zero
// along X, used by the planner to derive RPM from surface speed.
func (m *Machine) cssXOffset() float64 {
	return m.toExtLen(m.programOrigin.X + m.toolOffset.X)
}

// cssNumeratorFor converts a commanded surface speed into the factor
// the planner divides by the working radius. Surface speed is
// feet/minute in inch mode and meters/minute otherwise.
func (m *Machine) cssNumeratorFor(speed float64) float64 {
	if m.lengthUnits == UnitsInch {
		return 12 / (2 * math.Pi) * speed * m.toExtLen(25.4)
	}
	return 1000 / (2 * math.Pi) * speed * m.toExtLen(1)
}

// emitCSSUpdate re-sends the spindle speed command when constant
// surface speed is active, so offset changes take effect in the
// planner at execution time rather than read-ahead time.
func (m *Machine) emitCSSUpdate() {
	if m.cssMaximum == 0 {
		return
	}
	m.emit(Command{
		Type:      CmdSpindleSpeed,
		Speed:     m.cssMaximum,
		CSSFactor: m.cssNumerator,
		XOffset:   m.cssXOffset(),
	})
}

// SetSpindleMode sets the RPM cap for constant surface speed mode;
// zero returns the spindle to plain RPM control.
func (m *Machine) SetSpindleMode(cssMax float64) {
	m.cssMaximum = cssMax
}

func (m *Machine) startSpindle(direction float64) {
	m.flushSegments()

	cmd := Command{Type: CmdSpindleOn}
	if m.cssMaximum != 0 {
		m.cssNumerator = direction * m.cssNumeratorFor(m.spindleSpeed)
		cmd.Speed = m.cssMaximum
		cmd.CSSFactor = m.cssNumerator
		cmd.XOffset = m.cssXOffset()
	} else {
		m.cssNumerator = 0
		cmd.Speed = direction * m.spindleSpeed
	}
	m.emit(cmd)
}

// StartSpindleClockwise turns the spindle on in the clockwise
// direction at the current speed setting.
func (m *Machine) StartSpindleClockwise() {
	m.startSpindle(1)
}

// StartSpindleCounterclockwise turns the spindle on in the
// counterclockwise direction at the current speed setting.
func (m *Machine) StartSpindleCounterclockwise() {
	m.startSpindle(-1)
}

// SetSpindleSpeed sets the spindle speed. In constant surface speed
// mode the value is a surface speed, otherwise RPM.
func (m *Machine) SetSpindleSpeed(r float64) {
	m.spindleSpeed = r

	m.flushSegments()

	cmd := Command{Type: CmdSpindleSpeed}
	if m.cssMaximum != 0 {
		m.cssNumerator = m.cssNumeratorFor(r)
		cmd.Speed = m.cssMaximum
		cmd.CSSFactor = m.cssNumerator
		cmd.XOffset = m.cssXOffset()
	} else {
		m.cssNumerator = 0
		cmd.Speed = r
	}
	m.emit(cmd)
}

// StopSpindleTurning turns the spindle off.
func (m *Machine) StopSpindleTurning() {
	m.flushSegments()
	m.emit(Command{Type: CmdSpindleOff})
}

// SpindleSpeed returns the commanded spindle speed.
func (m *Machine) SpindleSpeed() float64 {
	return m.spindleSpeed
}
