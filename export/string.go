package export

import "fmt"

import "github.com/joushou/gocanon/canon"
import "github.com/joushou/gocanon/vector"

// StringGenerator renders a command stream human-readably, one line
// per command: the command name, the source line it came from, and the
// fields that matter for its type.
type StringGenerator struct {
	Precision int
	Lines     []string
}

func (s *StringGenerator) Init() {
	s.Lines = nil
}

func (s *StringGenerator) Flush() {
}

func (s *StringGenerator) put(x string) {
	s.Lines = append(s.Lines, x)
}

// Fetch the rendered command stream.
func (s *StringGenerator) Retrieve() string {
	z := ""
	for _, x := range s.Lines {
		z += fmt.Sprintf("%s\n", x)
	}
	return z
}

func (s *StringGenerator) num(f float64) string {
	return floatToString(f, s.Precision)
}

// pose renders X, Y and Z always; the remaining axes only when they
// are nonzero.
func (s *StringGenerator) pose(p vector.Pose) string {
	x := ""
	for n := 0; n < vector.AxisCount; n++ {
		v := p.Axis(n)
		if n > vector.AxisZ && v == 0 {
			continue
		}
		x += vector.AxisName(n) + s.num(v)
	}
	return x
}

func (s *StringGenerator) vec(v vector.Vector) string {
	return "X" + s.num(v.X) + "Y" + s.num(v.Y) + "Z" + s.num(v.Z)
}

func (s *StringGenerator) bounds(cmd canon.Command) string {
	return fmt.Sprintf(" vel%s acc%s jerk%s", s.num(cmd.Vel), s.num(cmd.Acc), s.num(cmd.Jerk))
}

func (s *StringGenerator) Handle(cmd canon.Command) {
	x := fmt.Sprintf("%s N%d", cmd.Type, cmd.Line)

	switch cmd.Type {
	case canon.CmdTraverse, canon.CmdLinearFeed, canon.CmdRigidTap:
		x += " " + s.pose(cmd.End) + s.bounds(cmd)
	case canon.CmdCircularArc:
		x += fmt.Sprintf(" %s center %s normal %s turn %d%s",
			s.pose(cmd.End), s.vec(cmd.Center), s.vec(cmd.Normal), cmd.Turn, s.bounds(cmd))
	case canon.CmdProbe:
		x += fmt.Sprintf(" %s type %d%s", s.pose(cmd.End), cmd.ProbeType, s.bounds(cmd))
	case canon.CmdDwell:
		x += " " + s.num(cmd.Seconds) + "s"
	case canon.CmdNurbsSegment:
		x += fmt.Sprintf(" %s order %d knot %s weight %s%s",
			s.pose(cmd.End), cmd.Nurbs.Order, s.num(cmd.Nurbs.Knot),
			s.num(cmd.Nurbs.Weight), s.bounds(cmd))
	case canon.CmdMotionMode:
		if cmd.Blend {
			x += " blend tolerance " + s.num(cmd.Tolerance)
		} else {
			x += " exact tolerance " + s.num(cmd.Tolerance)
		}
	case canon.CmdOrigin, canon.CmdToolOffset:
		x += " " + s.pose(cmd.Offset)
	case canon.CmdRotation:
		x += " " + s.num(cmd.Rotation) + "deg"
	case canon.CmdSpindleSync:
		if cmd.FeedPerRev != 0 {
			x += " on " + s.num(cmd.FeedPerRev)
		} else {
			x += " off"
		}
	case canon.CmdSpindleOn, canon.CmdSpindleSpeed:
		x += " S" + s.num(cmd.Speed)
		if cmd.CSSFactor != 0 {
			x += fmt.Sprintf(" css %s xoffset %s", s.num(cmd.CSSFactor), s.num(cmd.XOffset))
		}
	case canon.CmdToolTableEntry:
		x += fmt.Sprintf(" pocket %d tool %d offset %s diameter %s",
			cmd.Pocket, cmd.Tool.Number, s.pose(cmd.Tool.Offset), s.num(cmd.Tool.Diameter))
	case canon.CmdToolPrepare, canon.CmdToolLoad, canon.CmdToolNumber:
		x += fmt.Sprintf(" pocket %d", cmd.Pocket)
	case canon.CmdFeedOverride, canon.CmdSpeedOverride, canon.CmdAdaptiveFeed, canon.CmdFeedHold:
		if cmd.Enable {
			x += " on"
		} else {
			x += " off"
		}
	case canon.CmdDigitalOut, canon.CmdAnalogOut:
		x += fmt.Sprintf(" index %d value %s", cmd.Index, s.num(cmd.Finish))
		if cmd.Now {
			x += " now"
		}
	case canon.CmdWaitInput:
		x += fmt.Sprintf(" index %d type %d wait %d timeout %s",
			cmd.Index, cmd.InType, cmd.WaitType, s.num(cmd.Timeout))
	case canon.CmdOperatorMessage:
		x += fmt.Sprintf(" %q", cmd.Text)
	}

	s.put(x)
}
