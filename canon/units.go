package canon

import "math"

import "github.com/joushou/gocanon/vector"

//
// Unit and frame transforms. Internal units are millimeters and
// degrees; program units are whatever the part program was written in;
// external units are whatever the planner is configured for.
//

func (m *Machine) fromProgramLen(v float64) float64 {
	switch m.lengthUnits {
	case UnitsInch:
		return v * 25.4
	case UnitsCM:
		return v * 10.0
	default:
		return v
	}
}

func (m *Machine) toProgramLen(v float64) float64 {
	switch m.lengthUnits {
	case UnitsInch:
		return v / 25.4
	case UnitsCM:
		return v / 10.0
	default:
		return v
	}
}

// Angles are degrees in every unit system.
func (m *Machine) fromProgramAng(v float64) float64 { return v }
func (m *Machine) toProgramAng(v float64) float64   { return v }

func (m *Machine) lengthFactor() float64 {
	u := m.status.LengthUnits()
	if u == 0 {
		m.ReportError(configError("units", "", "external length units are zero"))
		return 1.0
	}
	return u
}

func (m *Machine) angleFactor() float64 {
	u := m.status.AngleUnits()
	if u == 0 {
		m.ReportError(configError("units", "", "external angle units are zero"))
		return 1.0
	}
	return u
}

func (m *Machine) toExtLen(v float64) float64   { return v * m.lengthFactor() }
func (m *Machine) toExtAng(v float64) float64   { return v * m.angleFactor() }
func (m *Machine) fromExtLen(v float64) float64 { return v / m.lengthFactor() }
func (m *Machine) fromExtAng(v float64) float64 { return v / m.angleFactor() }

func rotate(x, y, theta float64) (float64, float64) {
	t := theta * math.Pi / 180.0
	return x*math.Cos(t) - y*math.Sin(t), x*math.Sin(t) + y*math.Cos(t)
}

func (m *Machine) offsetAxis(n int, v float64) float64 {
	return v + m.programOrigin.Axis(n) + m.toolOffset.Axis(n)
}

func (m *Machine) unoffsetAxis(n int, v float64) float64 {
	return v - m.programOrigin.Axis(n) - m.toolOffset.Axis(n)
}

// rotateAndOffset maps a pose from program-origin coordinates to
// machine coordinates: rotate X/Y first, then add the offsets.
func (m *Machine) rotateAndOffset(p vector.Pose) vector.Pose {
	p.X, p.Y = rotate(p.X, p.Y, m.xyRotation)
	for n := 0; n < vector.AxisCount; n++ {
		p.SetAxis(n, m.offsetAxis(n, p.Axis(n)))
	}
	return p
}

// unoffsetAndUnrotate is the exact inverse: remove the offsets, then
// rotate X/Y back.
func (m *Machine) unoffsetAndUnrotate(p vector.Pose) vector.Pose {
	for n := 0; n < vector.AxisCount; n++ {
		p.SetAxis(n, m.unoffsetAxis(n, p.Axis(n)))
	}
	p.X, p.Y = rotate(p.X, p.Y, -m.xyRotation)
	return p
}

func (m *Machine) fromProgram(p vector.Pose) vector.Pose {
	p.X = m.fromProgramLen(p.X)
	p.Y = m.fromProgramLen(p.Y)
	p.Z = m.fromProgramLen(p.Z)
	p.A = m.fromProgramAng(p.A)
	p.B = m.fromProgramAng(p.B)
	p.C = m.fromProgramAng(p.C)
	p.U = m.fromProgramLen(p.U)
	p.V = m.fromProgramLen(p.V)
	p.W = m.fromProgramLen(p.W)
	return p
}

func (m *Machine) toProgram(p vector.Pose) vector.Pose {
	p.X = m.toProgramLen(p.X)
	p.Y = m.toProgramLen(p.Y)
	p.Z = m.toProgramLen(p.Z)
	p.A = m.toProgramAng(p.A)
	p.B = m.toProgramAng(p.B)
	p.C = m.toProgramAng(p.C)
	p.U = m.toProgramLen(p.U)
	p.V = m.toProgramLen(p.V)
	p.W = m.toProgramLen(p.W)
	return p
}

func (m *Machine) toExtPose(p vector.Pose) vector.Pose {
	p.X = m.toExtLen(p.X)
	p.Y = m.toExtLen(p.Y)
	p.Z = m.toExtLen(p.Z)
	p.A = m.toExtAng(p.A)
	p.B = m.toExtAng(p.B)
	p.C = m.toExtAng(p.C)
	p.U = m.toExtLen(p.U)
	p.V = m.toExtLen(p.V)
	p.W = m.toExtLen(p.W)
	return p
}

func (m *Machine) fromExtPose(p vector.Pose) vector.Pose {
	p.X = m.fromExtLen(p.X)
	p.Y = m.fromExtLen(p.Y)
	p.Z = m.fromExtLen(p.Z)
	p.A = m.fromExtAng(p.A)
	p.B = m.fromExtAng(p.B)
	p.C = m.fromExtAng(p.C)
	p.U = m.fromExtLen(p.U)
	p.V = m.fromExtLen(p.V)
	p.W = m.fromExtLen(p.W)
	return p
}

// toExtVel converts a velocity or acceleration bound to external
// units, picking length or angle scaling from the classification of
// the move it was computed for.
func (m *Machine) toExtVel(v float64) float64 {
	if m.angularMove && !m.cartesianMove {
		return m.toExtAng(v)
	}
	return m.toExtLen(v)
}

func (m *Machine) toExtAcc(a float64) float64 { return m.toExtVel(a) }
