package canon

// ProgramStop pauses execution until the operator resumes.
func (m *Machine) ProgramStop() {
	m.flushSegments()
	m.emit(Command{Type: CmdPause})
}

// OptionalProgramStop pauses execution if the optional stop switch is
// on.
func (m *Machine) OptionalProgramStop() {
	m.flushSegments()
	m.emit(Command{Type: CmdOptionalStop})
}

// ProgramEnd marks the end of the program.
func (m *Machine) ProgramEnd() {
	m.flushSegments()
	m.emit(Command{Type: CmdEnd})
}

// SetOptionalProgramStop switches whether OptionalProgramStop pauses.
func (m *Machine) SetOptionalProgramStop(state bool) {
	m.optionalProgramStop = state
}

// GetOptionalProgramStop reports the optional stop switch.
func (m *Machine) GetOptionalProgramStop() bool {
	return m.optionalProgramStop
}

// SetBlockDelete switches whether slash-prefixed lines are skipped.
func (m *Machine) SetBlockDelete(state bool) {
	m.blockDelete = state
}

// GetBlockDelete reports the block delete switch.
func (m *Machine) GetBlockDelete() bool {
	return m.blockDelete
}

// MistOn turns on mist coolant.
func (m *Machine) MistOn() {
	m.flushSegments()
	m.emit(Command{Type: CmdMistOn})
}

// MistOff turns off mist coolant.
func (m *Machine) MistOff() {
	m.flushSegments()
	m.emit(Command{Type: CmdMistOff})
}

// FloodOn turns on flood coolant.
func (m *Machine) FloodOn() {
	m.flushSegments()
	m.emit(Command{Type: CmdFloodOn})
}

// FloodOff turns off flood coolant.
func (m *Machine) FloodOff() {
	m.flushSegments()
	m.emit(Command{Type: CmdFloodOff})
}

// EnableFeedOverride lets the operator scale feed rates.
func (m *Machine) EnableFeedOverride() {
	m.flushSegments()
	m.emit(Command{Type: CmdFeedOverride, Enable: true})
}

// DisableFeedOverride pins feed rates to their programmed values.
func (m *Machine) DisableFeedOverride() {
	m.flushSegments()
	m.emit(Command{Type: CmdFeedOverride, Enable: false})
}

// EnableSpeedOverride lets the operator scale the spindle speed.
func (m *Machine) EnableSpeedOverride() {
	m.flushSegments()
	m.emit(Command{Type: CmdSpeedOverride, Enable: true})
}

// DisableSpeedOverride pins the spindle speed to its programmed value.
func (m *Machine) DisableSpeedOverride() {
	m.flushSegments()
	m.emit(Command{Type: CmdSpeedOverride, Enable: false})
}

// EnableAdaptiveFeed lets an external input scale feed rates.
func (m *Machine) EnableAdaptiveFeed() {
	m.flushSegments()
	m.emit(Command{Type: CmdAdaptiveFeed, Enable: true})
}

// DisableAdaptiveFeed stops external feed scaling.
func (m *Machine) DisableAdaptiveFeed() {
	m.flushSegments()
	m.emit(Command{Type: CmdAdaptiveFeed, Enable: false})
}

// EnableFeedHold honors the feed hold input.
func (m *Machine) EnableFeedHold() {
	m.flushSegments()
	m.emit(Command{Type: CmdFeedHold, Enable: true})
}

// DisableFeedHold ignores the feed hold input.
func (m *Machine) DisableFeedHold() {
	m.flushSegments()
	m.emit(Command{Type: CmdFeedHold, Enable: false})
}

// TurnProbeOn clears the probe tripped flag so a new probe move can
// latch a result.
func (m *Machine) TurnProbeOn() {
	m.emit(Command{Type: CmdClearProbeTripped})
}

// TurnProbeOff is a no-op; the probe input needs no disarming.
func (m *Machine) TurnProbeOff() {
}
