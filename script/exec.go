package script

import "fmt"

import "github.com/joushou/gocanon/canon"
import "github.com/joushou/gocanon/vector"

// decoder pulls typed arguments out of a call, remembering the first
// failure so a handler can decode everything up front and check once.
type decoder struct {
	c   Call
	err error
}

func (d *decoder) float(i int) float64 {
	if d.err != nil {
		return 0
	}
	f, err := d.c.Float(i)
	if err != nil {
		d.err = err
	}
	return f
}

func (d *decoder) int(i int) int {
	if d.err != nil {
		return 0
	}
	n, err := d.c.Int(i)
	if err != nil {
		d.err = err
	}
	return n
}

func (d *decoder) str(i int) string {
	if d.err != nil {
		return ""
	}
	s, err := d.c.String(i)
	if err != nil {
		d.err = err
	}
	return s
}

func (d *decoder) bool(i int) bool {
	return d.int(i) != 0
}

// pose reads nine floats: x y z a b c u v w.
func (d *decoder) pose(i int) vector.Pose {
	var p vector.Pose
	for n := 0; n < vector.AxisCount; n++ {
		p.SetAxis(n, d.float(i+n))
	}
	return p
}

func (d *decoder) plane(i int) canon.Plane {
	switch s := d.str(i); s {
	case "XY":
		return canon.PlaneXY
	case "YZ":
		return canon.PlaneYZ
	case "XZ":
		return canon.PlaneXZ
	default:
		if d.err == nil {
			d.err = fmt.Errorf("argument %d: expected XY, YZ or XZ, got %q", i+1, s)
		}
		return canon.PlaneXY
	}
}

func (d *decoder) motionMode(i int) canon.MotionMode {
	switch s := d.str(i); s {
	case "EXACT_STOP":
		return canon.ExactStop
	case "EXACT_PATH":
		return canon.ExactPath
	case "CONTINUOUS":
		return canon.Continuous
	default:
		if d.err == nil {
			d.err = fmt.Errorf("argument %d: expected EXACT_STOP, EXACT_PATH or CONTINUOUS, got %q", i+1, s)
		}
		return canon.ExactStop
	}
}

func (d *decoder) lengthUnits(i int) canon.LengthUnits {
	switch s := d.str(i); s {
	case "MM":
		return canon.UnitsMM
	case "INCH":
		return canon.UnitsInch
	case "CM":
		return canon.UnitsCM
	default:
		if d.err == nil {
			d.err = fmt.Errorf("argument %d: expected MM, INCH or CM, got %q", i+1, s)
		}
		return canon.UnitsMM
	}
}

// controlPoints reads x y weight triplets to the end of the call.
func (d *decoder) controlPoints(i int) []canon.ControlPoint {
	var cps []canon.ControlPoint
	if (len(d.c.Args)-i)%3 != 0 {
		if d.err == nil {
			d.err = fmt.Errorf("control points are x y weight triplets")
		}
		return nil
	}
	for ; i < len(d.c.Args); i += 3 {
		cps = append(cps, canon.ControlPoint{
			Pose:   vector.Pose{X: d.float(i), Y: d.float(i + 1)},
			Weight: d.float(i + 2),
			Feed:   -1,
		})
	}
	return cps
}

// Run executes a parsed script against a machine, line by line, and
// flushes the machine when the script ends.
func Run(doc *Document, m *canon.Machine) error {
	for _, c := range doc.Calls {
		if err := run(c, m); err != nil {
			return fmt.Errorf("line %d: %s: %s", c.Line, c.Name, err)
		}
	}
	m.Finish()
	return nil
}

func run(c Call, m *canon.Machine) error {
	d := decoder{c: c}
	switch c.Name {
	case "STRAIGHT_TRAVERSE":
		p := d.pose(0)
		if d.err == nil {
			m.StraightTraverse(c.Line, p)
		}
	case "STRAIGHT_FEED":
		p := d.pose(0)
		if d.err == nil {
			m.StraightFeed(c.Line, p)
		}
	case "STRAIGHT_PROBE":
		p := d.pose(0)
		probeType := d.int(9)
		if d.err == nil {
			m.StraightProbe(c.Line, p, probeType)
		}
	case "ARC_FEED":
		firstEnd, secondEnd := d.float(0), d.float(1)
		firstAxis, secondAxis := d.float(2), d.float(3)
		rotation := d.int(4)
		axisEnd := d.float(5)
		a, b, cc := d.float(6), d.float(7), d.float(8)
		u, v, w := d.float(9), d.float(10), d.float(11)
		if d.err == nil {
			m.ArcFeed(c.Line, firstEnd, secondEnd, firstAxis, secondAxis,
				rotation, axisEnd, a, b, cc, u, v, w)
		}
	case "RIGID_TAP":
		x, y, z := d.float(0), d.float(1), d.float(2)
		if d.err == nil {
			m.RigidTap(c.Line, x, y, z)
		}
	case "SPLINE_FEED":
		switch len(c.Args) {
		case 4:
			x1, y1, x2, y2 := d.float(0), d.float(1), d.float(2), d.float(3)
			if d.err == nil {
				m.SplineFeedQuadratic(c.Line, x1, y1, x2, y2)
			}
		case 6:
			x1, y1, x2, y2 := d.float(0), d.float(1), d.float(2), d.float(3)
			x3, y3 := d.float(4), d.float(5)
			if d.err == nil {
				m.SplineFeedCubic(c.Line, x1, y1, x2, y2, x3, y3)
			}
		default:
			return fmt.Errorf("expected 4 or 6 arguments, got %d", len(c.Args))
		}
	case "NURBS_FEED":
		k := d.int(0)
		cps := d.controlPoints(1)
		if d.err == nil {
			m.NurbsFeed(c.Line, cps, k)
		}
	case "DWELL":
		s := d.float(0)
		if d.err == nil {
			m.Dwell(s)
		}
	case "SET_ORIGIN_OFFSETS":
		p := d.pose(0)
		if d.err == nil {
			m.SetOriginOffsets(p)
		}
	case "SET_XY_ROTATION":
		deg := d.float(0)
		if d.err == nil {
			m.SetXYRotation(deg)
		}
	case "SELECT_PLANE":
		p := d.plane(0)
		if d.err == nil {
			m.SelectPlane(p)
		}
	case "SET_MOTION_CONTROL_MODE":
		mode := d.motionMode(0)
		tolerance := d.float(1)
		if d.err == nil {
			m.SetMotionControlMode(mode, tolerance)
		}
	case "SET_NAIVECAM_TOLERANCE":
		tolerance := d.float(0)
		if d.err == nil {
			m.SetNaivecamTolerance(tolerance)
		}
	case "USE_LENGTH_UNITS":
		u := d.lengthUnits(0)
		if d.err == nil {
			m.UseLengthUnits(u)
		}
	case "SET_FEED_MODE":
		perRev := d.bool(0)
		if d.err == nil {
			m.SetFeedMode(perRev)
		}
	case "SET_FEED_RATE":
		rate := d.float(0)
		if d.err == nil {
			m.SetFeedRate(rate)
		}
	case "SET_TRAVERSE_RATE":
		rate := d.float(0)
		if d.err == nil {
			m.SetTraverseRate(rate)
		}
	case "START_SPEED_FEED_SYNCH":
		feedPerRev := d.float(0)
		velocityMode := d.bool(1)
		if d.err == nil {
			m.StartSpeedFeedSynch(feedPerRev, velocityMode)
		}
	case "STOP_SPEED_FEED_SYNCH":
		m.StopSpeedFeedSynch()
	case "SET_SPINDLE_MODE":
		cssMax := d.float(0)
		if d.err == nil {
			m.SetSpindleMode(cssMax)
		}
	case "SET_SPINDLE_SPEED":
		r := d.float(0)
		if d.err == nil {
			m.SetSpindleSpeed(r)
		}
	case "START_SPINDLE_CLOCKWISE":
		m.StartSpindleClockwise()
	case "START_SPINDLE_COUNTERCLOCKWISE":
		m.StartSpindleCounterclockwise()
	case "STOP_SPINDLE_TURNING":
		m.StopSpindleTurning()
	case "SET_TOOL_TABLE_ENTRY":
		pocket, toolno := d.int(0), d.int(1)
		offset := d.pose(2)
		diameter := d.float(11)
		frontAngle, backAngle := d.float(12), d.float(13)
		orientation := d.int(14)
		if d.err == nil {
			m.SetToolTableEntry(pocket, toolno, offset, diameter, frontAngle, backAngle, orientation)
		}
	case "USE_TOOL_LENGTH_OFFSET":
		p := d.pose(0)
		if d.err == nil {
			m.UseToolLengthOffset(p)
		}
	case "SELECT_POCKET":
		pocket := d.int(0)
		if d.err == nil {
			m.SelectPocket(pocket)
		}
	case "CHANGE_TOOL":
		pocket := d.int(0)
		if d.err == nil {
			m.ChangeTool(pocket)
		}
	case "CHANGE_TOOL_NUMBER":
		number := d.int(0)
		if d.err == nil {
			m.ChangeToolNumber(number)
		}
	case "SET_TOOL_CHANGE_POSITION":
		p := d.pose(0)
		if d.err == nil {
			m.SetToolChangePosition(p)
		}
	case "MIST_ON":
		m.MistOn()
	case "MIST_OFF":
		m.MistOff()
	case "FLOOD_ON":
		m.FloodOn()
	case "FLOOD_OFF":
		m.FloodOff()
	case "ENABLE_FEED_OVERRIDE":
		m.EnableFeedOverride()
	case "DISABLE_FEED_OVERRIDE":
		m.DisableFeedOverride()
	case "ENABLE_SPEED_OVERRIDE":
		m.EnableSpeedOverride()
	case "DISABLE_SPEED_OVERRIDE":
		m.DisableSpeedOverride()
	case "ENABLE_ADAPTIVE_FEED":
		m.EnableAdaptiveFeed()
	case "DISABLE_ADAPTIVE_FEED":
		m.DisableAdaptiveFeed()
	case "ENABLE_FEED_HOLD":
		m.EnableFeedHold()
	case "DISABLE_FEED_HOLD":
		m.DisableFeedHold()
	case "SET_MOTION_OUTPUT_BIT":
		i := d.int(0)
		if d.err == nil {
			m.SetMotionOutputBit(i)
		}
	case "CLEAR_MOTION_OUTPUT_BIT":
		i := d.int(0)
		if d.err == nil {
			m.ClearMotionOutputBit(i)
		}
	case "SET_AUX_OUTPUT_BIT":
		i := d.int(0)
		if d.err == nil {
			m.SetAuxOutputBit(i)
		}
	case "CLEAR_AUX_OUTPUT_BIT":
		i := d.int(0)
		if d.err == nil {
			m.ClearAuxOutputBit(i)
		}
	case "SET_MOTION_OUTPUT_VALUE":
		i, v := d.int(0), d.float(1)
		if d.err == nil {
			m.SetMotionOutputValue(i, v)
		}
	case "SET_AUX_OUTPUT_VALUE":
		i, v := d.int(0), d.float(1)
		if d.err == nil {
			m.SetAuxOutputValue(i, v)
		}
	case "WAIT":
		index, inputType, waitType := d.int(0), d.int(1), d.int(2)
		timeout := d.float(3)
		if d.err == nil {
			return m.WaitForInput(index, inputType, waitType, timeout)
		}
	case "TURN_PROBE_ON":
		m.TurnProbeOn()
	case "TURN_PROBE_OFF":
		m.TurnProbeOff()
	case "COMMENT":
		text := d.str(0)
		if d.err == nil {
			m.Comment(text)
		}
	case "MESSAGE":
		text := d.str(0)
		if d.err == nil {
			m.Message(text)
		}
	case "LOG":
		text := d.str(0)
		if d.err == nil {
			m.Log(text)
		}
	case "LOGOPEN":
		name := d.str(0)
		if d.err == nil {
			m.LogOpen(name)
		}
	case "LOGCLOSE":
		m.LogClose()
	case "SET_BLOCK_DELETE":
		state := d.bool(0)
		if d.err == nil {
			m.SetBlockDelete(state)
		}
	case "SET_OPTIONAL_PROGRAM_STOP":
		state := d.bool(0)
		if d.err == nil {
			m.SetOptionalProgramStop(state)
		}
	case "PROGRAM_STOP":
		m.ProgramStop()
	case "OPTIONAL_PROGRAM_STOP":
		m.OptionalProgramStop()
	case "PROGRAM_END":
		m.ProgramEnd()
	default:
		return fmt.Errorf("unknown operation")
	}
	return d.err
}
