package canon

// Wait conditions for WaitForInput.
const (
	WaitRise = iota
	WaitFall
	WaitHigh
	WaitLow
)

func (m *Machine) setDigitalOut(index int, value float64, now bool) {
	m.flushSegments()
	m.emit(Command{
		Type:   CmdDigitalOut,
		Index:  index,
		Start:  value,
		Finish: value,
		Now:    now,
	})
}

// SetMotionOutputBit sets a digital output when the next motion
// starts. Only one pending motion-synchronized output survives per
// segment; use the aux variant for immediate, unlimited writes.
func (m *Machine) SetMotionOutputBit(index int) {
	m.setDigitalOut(index, 1, false)
}

// ClearMotionOutputBit clears a digital output when the next motion
// starts.
func (m *Machine) ClearMotionOutputBit(index int) {
	m.setDigitalOut(index, 0, false)
}

// SetAuxOutputBit sets a digital output immediately.
func (m *Machine) SetAuxOutputBit(index int) {
	m.setDigitalOut(index, 1, true)
}

// ClearAuxOutputBit clears a digital output immediately.
func (m *Machine) ClearAuxOutputBit(index int) {
	m.setDigitalOut(index, 0, true)
}

func (m *Machine) setAnalogOut(index int, value float64, now bool) {
	m.flushSegments()
	m.emit(Command{
		Type:   CmdAnalogOut,
		Index:  index,
		Start:  value,
		Finish: value,
		Now:    now,
	})
}

// SetMotionOutputValue sets an analog output when the next motion
// starts.
func (m *Machine) SetMotionOutputValue(index int, value float64) {
	m.setAnalogOut(index, value, false)
}

// SetAuxOutputValue sets an analog output immediately.
func (m *Machine) SetAuxOutputValue(index int, value float64) {
	m.setAnalogOut(index, value, true)
}

// WaitForInput stops execution until the input reaches the wanted
// condition or the timeout, in seconds, passes.
func (m *Machine) WaitForInput(index, inputType, waitType int, timeout float64) error {
	switch inputType {
	case DigitalInput:
		if index < 0 || index >= m.status.DigitalInputs() {
			return argumentError("wait-input", "digital input index out of range")
		}
	case AnalogInput:
		if index < 0 || index >= m.status.AnalogInputs() {
			return argumentError("wait-input", "analog input index out of range")
		}
	default:
		return argumentError("wait-input", "unknown input type")
	}

	m.flushSegments()
	m.emit(Command{
		Type:     CmdWaitInput,
		Index:    index,
		InType:   inputType,
		WaitType: waitType,
		Timeout:  timeout,
	})
	return nil
}
