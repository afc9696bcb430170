package canon

import "github.com/joushou/gocanon/vector"

// Cap on the pending buffer; a run longer than this is flushed even if
// it still fits the tolerance.
const maxChainedPoints = 100

// lastPos is the position the next candidate segment starts from: the
// last buffered point, or the end point when nothing is buffered.
func (m *Machine) lastPos() vector.Pose {
	if len(m.chained) == 0 {
		return m.endPoint
	}
	return m.chained[len(m.chained)-1].pos
}

// linkable decides whether cand may join the buffered run. Only X/Y/Z
// may vary across a merge; every buffered point must stay within the
// naive-cam tolerance of the chord from the pre-buffer end point to
// cand.
func (m *Machine) linkable(cand vector.Pose) bool {
	if m.motionMode != Continuous || m.naivecamTolerance == 0 {
		return false
	}
	if len(m.chained) > maxChainedPoints {
		return false
	}

	pos := m.chained[len(m.chained)-1].pos
	if cand.A != pos.A || cand.B != pos.B || cand.C != pos.C {
		return false
	}
	if cand.U != pos.U || cand.V != pos.V || cand.W != pos.W {
		return false
	}

	if cand.X == m.endPoint.X && cand.Y == m.endPoint.Y && cand.Z == m.endPoint.Z {
		return false
	}

	chord := cand.Tran().Diff(m.endPoint.Tran())
	base := m.endPoint.Tran()
	for _, pt := range m.chained {
		p := pt.pos.Tran()
		t0 := chord.Dot(p.Diff(base)) / chord.Dot(chord)
		if t0 < 0 {
			t0 = 0
		}
		if t0 > 1 {
			t0 = 1
		}
		if p.Diff(base.Sum(chord.Scale(t0))).Norm() > m.naivecamTolerance {
			return false
		}
	}
	return true
}

// flushSegments collapses the buffered run into a single feed command
// ending at the last buffered point, with bounds computed against the
// pre-buffer end point. No-op on an empty buffer.
func (m *Machine) flushSegments() {
	if len(m.chained) == 0 {
		return
	}
	last := m.chained[len(m.chained)-1]
	m.chained = m.chained[:0]

	vel, acc, jerk, err := m.straightBounds(last.pos)
	if err != nil {
		m.ReportError(err)
		return
	}
	iniMaxVel := vel
	vel = m.clampFeed(vel)

	if (vel != 0 && acc != 0) || m.synched {
		m.emit(Command{
			Type:      CmdLinearFeed,
			Line:      last.line,
			End:       m.toExtPose(last.pos),
			Vel:       m.toExtVel(vel),
			IniMaxVel: m.toExtVel(iniMaxVel),
			Acc:       m.toExtAcc(acc),
			Jerk:      m.toExtLen(jerk),
		})
	}
	m.updateEndPoint(last.pos)
}

// seeSegment queues one linear feed end point (internal units, already
// rotated and offset). Rotary or secondary axis motion cannot merge,
// so those runs flush immediately.
func (m *Machine) seeSegment(line int, p vector.Pose) {
	changedABC := p.A != m.endPoint.A || p.B != m.endPoint.B || p.C != m.endPoint.C
	changedUVW := p.U != m.endPoint.U || p.V != m.endPoint.V || p.W != m.endPoint.W

	if len(m.chained) > 0 && !m.linkable(p) {
		m.flushSegments()
	}
	m.chained = append(m.chained, chainPoint{pos: p, line: line})
	if changedABC || changedUVW {
		m.flushSegments()
	}
}

// PendingSegments reports how many linear feed points are buffered but
// not yet committed to the command stream.
func (m *Machine) PendingSegments() int {
	return len(m.chained)
}
