package canon

import "fmt"
import "math"
import "os"

import "github.com/joushou/gocanon/vector"

//
// Modal enumerations
//

type LengthUnits int

const (
	UnitsInch LengthUnits = iota
	UnitsMM
	UnitsCM
)

type Plane int

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

type MotionMode int

const (
	ExactStop MotionMode = iota
	ExactPath
	Continuous
)

// Input kinds understood by WaitForInput.
const (
	DigitalInput = iota
	AnalogInput
)

// Tool is one tool table entry. Offsets are stored in internal units.
type Tool struct {
	Number      int
	Offset      vector.Pose
	Diameter    float64
	FrontAngle  float64
	BackAngle   float64
	Orientation int
}

// Status is the live machine snapshot and axis limit oracle. It is
// queried, never mutated; all values are in external units.
type Status interface {
	AxisMask() int
	MaxVelocity(axis int) float64
	MaxAcceleration(axis int) float64
	MaxJerk(axis int) float64

	// LengthUnits is external length units per millimeter, AngleUnits
	// external angle units per degree. Zero values are a configuration
	// error; the compiler substitutes 1.0.
	LengthUnits() float64
	AngleUnits() float64

	Position() vector.Pose
	ProbedPosition() vector.Pose
	ProbeTripped() bool
	QueueEmpty() bool

	DigitalInputs() int
	AnalogInputs() int
	DigitalInput(index int) bool
	AnalogInput(index int) float64
	InputTimedOut() bool
}

type chainPoint struct {
	pos  vector.Pose
	line int
}

// Machine compiles canonical calls from an interpreter into resolved
// motion commands for a trajectory planner. All mutable state lives
// here; a Machine must only be driven from a single call stream.
type Machine struct {
	status  Status
	emitter Emitter

	// Reporter receives non-fatal operator errors. The segment buffer
	// is always flushed before it runs.
	Reporter func(error)

	lengthUnits       LengthUnits
	activePlane       Plane
	motionMode        MotionMode
	motionTolerance   float64
	naivecamTolerance float64

	feedPerRev      bool
	linearFeedRate  float64
	angularFeedRate float64
	synched         bool

	spindleSpeed float64
	cssMaximum   float64
	cssNumerator float64

	programOrigin vector.Pose
	toolOffset    vector.Pose
	xyRotation    float64

	cartesianMove bool
	angularMove   bool

	// endPoint is where the planner will be once everything emitted so
	// far has run. Internal units. Updated only after a command is
	// appended, never speculatively.
	endPoint vector.Pose

	chained []chainPoint

	blockDelete         bool
	optionalProgramStop bool

	toolTable    map[int]Tool
	activePocket int

	toolChangePosition     vector.Pose
	haveToolChangePosition bool

	probeFile   *os.File
	lastProbed  vector.Pose
	haveProbed  bool
	logFile     *os.File
	orientation [3]float64
}

// New returns a Machine reading limits and live state from status and
// appending commands to emitter. The machine starts out in the same
// state Init establishes.
func New(status Status, emitter Emitter) *Machine {
	m := &Machine{
		status:  status,
		emitter: emitter,
		Reporter: func(err error) {
			fmt.Fprintf(os.Stderr, "canon: %s\n", err)
		},
		toolTable: make(map[int]Tool),
	}
	m.Init()
	return m
}

// Init resets all modal state to its power-on defaults. Length units
// are detected from the external unit factor: a factor close to 1/25.4
// means the surrounding system works in inches.
func (m *Machine) Init() {
	m.chained = nil

	m.xyRotation = 0
	m.cssMaximum = 0
	m.cssNumerator = 0
	m.feedPerRev = false
	m.synched = false
	m.programOrigin = vector.Pose{}
	m.toolOffset = vector.Pose{}
	m.activePlane = PlaneXY
	m.endPoint = vector.Pose{}
	m.naivecamTolerance = 0
	m.spindleSpeed = 0
	m.optionalProgramStop = true
	m.blockDelete = true
	m.cartesianMove = false
	m.angularMove = false
	m.linearFeedRate = 0
	m.angularFeedRate = 0

	units := m.lengthFactor()
	if math.Abs(units-1.0/25.4) < 1e-3 {
		m.lengthUnits = UnitsInch
	} else if math.Abs(units-1.0) < 1e-3 {
		m.lengthUnits = UnitsMM
	} else {
		m.ReportError(configError("init", "", "non-standard length units, defaulting to mm"))
		m.lengthUnits = UnitsMM
	}

	// The planner needs the default terminating condition announced, so
	// the mode goes through the regular path instead of the fields.
	m.SetMotionControlMode(Continuous, 0)
}

// ReportError flushes buffered motion and hands err to the reporter,
// so error reporting never races ahead of the moves that provoked it.
func (m *Machine) ReportError(err error) {
	m.flushSegments()
	if m.Reporter != nil {
		m.Reporter(err)
	}
}

func (m *Machine) emit(cmd Command) {
	cmd.FeedPerRevMode = m.feedPerRev
	m.emitter.Emit(cmd)
}

func (m *Machine) updateEndPoint(p vector.Pose) {
	m.endPoint = p
}

// UpdateEndPoint resets the assumed planner position without emitting
// anything. The pose is in program units. Used when execution resumes
// from the middle of a program and the skipped commands were never
// compiled.
func (m *Machine) UpdateEndPoint(p vector.Pose) {
	m.updateEndPoint(m.fromProgram(p))
}

// EndPoint returns the current resolved end point in internal units.
func (m *Machine) EndPoint() vector.Pose {
	return m.endPoint
}

// Finish flushes any pending buffered segments.
func (m *Machine) Finish() {
	m.flushSegments()
}
