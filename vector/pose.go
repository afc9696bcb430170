package vector

import "fmt"

// Axis indices for Pose.Axis and the per-axis limit tables.
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisA
	AxisB
	AxisC
	AxisU
	AxisV
	AxisW
	AxisCount
)

// A Pose is a full machine position: three linear axes, three rotary
// axes in degrees, and three secondary linear axes.
type Pose struct {
	X, Y, Z float64
	A, B, C float64
	U, V, W float64
}

func (p Pose) Axis(n int) float64 {
	switch n {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	case AxisA:
		return p.A
	case AxisB:
		return p.B
	case AxisC:
		return p.C
	case AxisU:
		return p.U
	case AxisV:
		return p.V
	case AxisW:
		return p.W
	}
	panic(fmt.Sprintf("no such axis: %d", n))
}

func (p *Pose) SetAxis(n int, v float64) {
	switch n {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	case AxisZ:
		p.Z = v
	case AxisA:
		p.A = v
	case AxisB:
		p.B = v
	case AxisC:
		p.C = v
	case AxisU:
		p.U = v
	case AxisV:
		p.V = v
	case AxisW:
		p.W = v
	default:
		panic(fmt.Sprintf("no such axis: %d", n))
	}
}

// Tran is the primary linear component of the pose.
func (p Pose) Tran() Vector {
	return Vector{p.X, p.Y, p.Z}
}

// Scale multiplies every axis by f.
func (p Pose) Scale(f float64) Pose {
	for n := 0; n < AxisCount; n++ {
		p.SetAxis(n, p.Axis(n)*f)
	}
	return p
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{X: %g, Y: %g, Z: %g, A: %g, B: %g, C: %g, U: %g, V: %g, W: %g}",
		p.X, p.Y, p.Z, p.A, p.B, p.C, p.U, p.V, p.W)
}

// AxisName returns the conventional letter for an axis index.
func AxisName(n int) string {
	return [...]string{"X", "Y", "Z", "A", "B", "C", "U", "V", "W"}[n]
}

// Angular reports whether the axis is one of the rotary axes.
func Angular(n int) bool {
	return n >= AxisA && n <= AxisC
}
