package canon

import "github.com/joushou/gocanon/vector"

// Command types, in rough order of how often they show up in a stream.
type CommandType int

const (
	CmdTraverse CommandType = iota
	CmdLinearFeed
	CmdCircularArc
	CmdRigidTap
	CmdProbe
	CmdDwell
	CmdNurbsSegment
	CmdMotionMode
	CmdOrigin
	CmdRotation
	CmdSpindleSync
	CmdSpindleOn
	CmdSpindleOff
	CmdSpindleSpeed
	CmdToolOffset
	CmdToolTableEntry
	CmdToolPrepare
	CmdToolLoad
	CmdToolNumber
	CmdMistOn
	CmdMistOff
	CmdFloodOn
	CmdFloodOff
	CmdFeedOverride
	CmdSpeedOverride
	CmdAdaptiveFeed
	CmdFeedHold
	CmdDigitalOut
	CmdAnalogOut
	CmdWaitInput
	CmdClearProbeTripped
	CmdOperatorMessage
	CmdPause
	CmdOptionalStop
	CmdEnd
)

func (t CommandType) String() string {
	names := [...]string{
		"traverse", "linear-feed", "circular-arc", "rigid-tap", "probe",
		"dwell", "nurbs-segment", "motion-mode", "origin", "rotation",
		"spindle-sync", "spindle-on", "spindle-off", "spindle-speed",
		"tool-offset", "tool-table-entry", "tool-prepare", "tool-load",
		"tool-number", "mist-on", "mist-off", "flood-on", "flood-off",
		"feed-override", "speed-override", "adaptive-feed", "feed-hold",
		"digital-out", "analog-out", "wait-input", "clear-probe-tripped",
		"operator-message", "pause", "optional-stop", "end",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Nurbs carries the per-segment curve metadata the planner needs to
// interpolate a full NURBS itself.
type Nurbs struct {
	Order         int
	ControlPoints int
	Knots         int
	Knot          float64
	Weight        float64
	CurveLength   float64
	AxisMask      int
}

// A Command is one fully resolved instruction for the trajectory
// planner. All coordinates and kinematic bounds are in external units.
// Which fields are meaningful depends on Type.
type Command struct {
	Type CommandType
	Line int

	End       vector.Pose
	Vel       float64
	IniMaxVel float64
	Acc       float64
	Jerk      float64

	// circular-arc
	Center vector.Vector
	Normal vector.Vector
	Turn   int

	// probe
	ProbeType int

	// dwell
	Seconds float64

	// spindle
	Speed     float64
	CSSFactor float64
	XOffset   float64

	// spindle-sync
	FeedPerRev   float64
	VelocityMode bool

	// motion-mode
	Blend     bool
	Tolerance float64

	// origin / rotation / tool-offset
	Offset   vector.Pose
	Rotation float64

	// tool-table-entry / tool-prepare / tool-load / tool-number
	Pocket int
	Tool   Tool

	// digital-out / analog-out / wait-input
	Index    int
	Start    float64
	Finish   float64
	Now      bool
	InType   int
	WaitType int
	Timeout  float64

	// feed-override / speed-override / adaptive-feed / feed-hold
	Enable bool

	// operator-message
	Text string

	// feed mode active when the command was issued
	FeedPerRevMode bool

	// nurbs-segment
	Nurbs Nurbs
}

// Emitter is the ordered sink for resolved commands. Implementations
// must preserve append order; the planner depends on it for positional
// continuity.
type Emitter interface {
	Emit(cmd Command)
}

// Stream is an Emitter that collects commands in memory.
type Stream struct {
	Commands []Command
}

func (s *Stream) Emit(cmd Command) {
	s.Commands = append(s.Commands, cmd)
}
