package canon

import "github.com/joushou/gocanon/vector"

// SetToolChangePosition configures a fixed position, in external
// units, to move to before every tool change.
func (m *Machine) SetToolChangePosition(p vector.Pose) {
	m.toolChangePosition = m.fromExtPose(p)
	m.haveToolChangePosition = true
}

// ClearToolChangePosition removes the configured tool change position.
func (m *Machine) ClearToolChangePosition() {
	m.haveToolChangePosition = false
}

// SetToolTableEntry records a tool in the given pocket and emits the
// entry so downstream consumers see it at execution time. The offset is
// in program units.
func (m *Machine) SetToolTableEntry(pocket, toolno int, offset vector.Pose,
	diameter, frontAngle, backAngle float64, orientation int) {

	m.flushSegments()

	tool := Tool{
		Number:      toolno,
		Offset:      m.fromProgram(offset),
		Diameter:    m.fromProgramLen(diameter),
		FrontAngle:  frontAngle,
		BackAngle:   backAngle,
		Orientation: orientation,
	}
	m.toolTable[pocket] = tool
	m.emit(Command{Type: CmdToolTableEntry, Pocket: pocket, Tool: tool})
}

// UseToolLengthOffset applies a tool offset, in program units, to all
// subsequent coordinates.
func (m *Machine) UseToolLengthOffset(offset vector.Pose) {
	m.flushSegments()

	m.toolOffset = m.fromProgram(offset)

	// Constant surface speed depends on the X offset, so the planner
	// needs a fresh speed command alongside the new offset.
	m.emitCSSUpdate()
	m.emit(Command{Type: CmdToolOffset, Offset: m.toExtPose(m.toolOffset)})
}

// SelectPocket asks the tool changer to stage the tool in the given
// pocket.
func (m *Machine) SelectPocket(pocket int) {
	m.activePocket = pocket
	m.emit(Command{Type: CmdToolPrepare, Pocket: pocket})
}

// ChangeTool loads the staged tool. When a tool change position is
// configured the machine moves there first, with any per-revolution
// feed synchronization suspended for the move.
func (m *Machine) ChangeTool(pocket int) {
	m.flushSegments()

	if m.haveToolChangePosition {
		target := m.toolChangePosition
		vel, acc, _, err := m.straightBounds(target)
		if err != nil {
			m.ReportError(err)
			return
		}

		wasPerRev := m.feedPerRev
		if wasPerRev {
			m.StopSpeedFeedSynch()
		}
		if vel != 0 && acc != 0 {
			m.emit(Command{
				Type:      CmdLinearFeed,
				End:       m.toExtPose(target),
				Vel:       m.toExtVel(vel),
				IniMaxVel: m.toExtVel(vel),
				Acc:       m.toExtAcc(acc),
			})
		}
		if wasPerRev {
			m.StartSpeedFeedSynch(m.linearFeedRate, true)
		}
		m.updateEndPoint(target)
	}

	m.emit(Command{Type: CmdToolLoad, Pocket: pocket})
}

// ChangeToolNumber changes the recorded number of the loaded tool
// without a tool change.
func (m *Machine) ChangeToolNumber(number int) {
	m.emit(Command{Type: CmdToolNumber, Pocket: number})
}

// ToolOffset returns the active tool offset in internal units.
func (m *Machine) ToolOffset() vector.Pose {
	return m.toolOffset
}

// ToolTableEntry returns the recorded tool in the given pocket.
func (m *Machine) ToolTableEntry(pocket int) (Tool, bool) {
	t, ok := m.toolTable[pocket]
	return t, ok
}
