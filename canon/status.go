package canon

import "github.com/joushou/gocanon/vector"

// BasicStatus is a fixed-configuration Status for hosts without live
// machine feedback: static limits, a static position, and inputs that
// never change. Offline compilation and tests drive the Machine with
// one of these.
type BasicStatus struct {
	AxisBits int

	Vel  [vector.AxisCount]float64
	Acc  [vector.AxisCount]float64
	Jerk [vector.AxisCount]float64

	// External units per millimeter and per degree.
	LengthFactor float64
	AngleFactor  float64

	Pos     vector.Pose
	Probed  vector.Pose
	Tripped bool
	Empty   bool

	Digital  []bool
	Analog   []float64
	TimedOut bool
}

func (s *BasicStatus) AxisMask() int { return s.AxisBits }
func (s *BasicStatus) MaxVelocity(axis int) float64 { return s.Vel[axis] }
func (s *BasicStatus) MaxAcceleration(axis int) float64 { return s.Acc[axis] }
func (s *BasicStatus) MaxJerk(axis int) float64 { return s.Jerk[axis] }
func (s *BasicStatus) LengthUnits() float64 { return s.LengthFactor }
func (s *BasicStatus) AngleUnits() float64 { return s.AngleFactor }
func (s *BasicStatus) Position() vector.Pose { return s.Pos }
func (s *BasicStatus) ProbedPosition() vector.Pose { return s.Probed }
func (s *BasicStatus) ProbeTripped() bool { return s.Tripped }
func (s *BasicStatus) QueueEmpty() bool { return s.Empty }
func (s *BasicStatus) DigitalInputs() int { return len(s.Digital) }
func (s *BasicStatus) AnalogInputs() int { return len(s.Analog) }
func (s *BasicStatus) DigitalInput(index int) bool { return s.Digital[index] }
func (s *BasicStatus) AnalogInput(index int) float64 { return s.Analog[index] }
func (s *BasicStatus) InputTimedOut() bool { return s.TimedOut }
