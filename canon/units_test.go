package canon

import (
	"math"
	"testing"

	"github.com/joushou/gocanon/vector"
)

func TestProgramLengthRoundTrip(t *testing.T) {
	m, _ := testMachine()

	cases := []struct {
		units LengthUnits
		in    float64
		mm    float64
	}{
		{UnitsInch, 1, 25.4},
		{UnitsMM, 1, 1},
		{UnitsCM, 1, 10},
		{UnitsInch, -0.5, -12.7},
	}
	for _, c := range cases {
		m.UseLengthUnits(c.units)
		got := m.fromProgramLen(c.in)
		if got != c.mm {
			t.Errorf("units %v: fromProgramLen(%v) = %v, want %v", c.units, c.in, got, c.mm)
		}
		back := m.toProgramLen(got)
		if math.Abs(back-c.in) > 1e-12 {
			t.Errorf("units %v: round trip of %v gave %v", c.units, c.in, back)
		}
	}
}

func TestInchTraverseConvertsEnd(t *testing.T) {
	s := testStatus()
	s.LengthFactor = 1 / 25.4
	s.Vel[vector.AxisX] = 10
	out := &Stream{}
	m := New(s, out)
	out.Commands = nil
	m.SetFeedRate(60)

	m.StraightTraverse(1, vector.Pose{X: 2})

	if len(out.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(out.Commands))
	}
	// 2 inches is 50.8 mm internally and 2 units again externally.
	if math.Abs(out.Commands[0].End.X-2) > 1e-9 {
		t.Errorf("expected external end X 2, got %v", out.Commands[0].End.X)
	}
	if math.Abs(m.EndPoint().X-50.8) > 1e-9 {
		t.Errorf("expected internal end 50.8mm, got %v", m.EndPoint().X)
	}
}

func TestRotateAndOffsetInverse(t *testing.T) {
	m, _ := testMachine()
	m.SetOriginOffsets(vector.Pose{X: 3, Y: -2, Z: 1, A: 10, U: 0.5})
	m.UseToolLengthOffset(vector.Pose{Z: -4})
	m.SetXYRotation(33)

	in := vector.Pose{X: 1.25, Y: -7, Z: 2, A: 45, B: 5, C: -5, U: 1, V: 2, W: 3}
	got := m.unoffsetAndUnrotate(m.rotateAndOffset(in))

	for n := 0; n < vector.AxisCount; n++ {
		if math.Abs(got.Axis(n)-in.Axis(n)) > 1e-9 {
			t.Errorf("axis %s: got %v, want %v", vector.AxisName(n), got.Axis(n), in.Axis(n))
		}
	}
}

func TestRotationAppliesToXYOnly(t *testing.T) {
	m, _ := testMachine()
	m.SetXYRotation(90)

	got := m.rotateAndOffset(vector.Pose{X: 1, Z: 2})

	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("expected (0,1) after 90 degree rotation, got (%v,%v)", got.X, got.Y)
	}
	if got.Z != 2 {
		t.Errorf("rotation must not touch Z, got %v", got.Z)
	}
}

func TestOffsetsApplyToAllAxes(t *testing.T) {
	m, _ := testMachine()
	m.SetOriginOffsets(vector.Pose{X: 1, A: 2, W: 3})
	m.UseToolLengthOffset(vector.Pose{X: 0.5})

	got := m.rotateAndOffset(vector.Pose{})

	if got.X != 1.5 {
		t.Errorf("expected X offset 1.5, got %v", got.X)
	}
	if got.A != 2 {
		t.Errorf("expected A offset 2, got %v", got.A)
	}
	if got.W != 3 {
		t.Errorf("expected W offset 3, got %v", got.W)
	}
}

func TestZeroExternalUnitsReported(t *testing.T) {
	m, _ := testMachine()
	s := m.status.(*BasicStatus)
	s.LengthFactor = 0

	var reported error
	m.Reporter = func(err error) { reported = err }

	if got := m.toExtLen(5); got != 5 {
		t.Errorf("zero unit factor should substitute 1.0, got %v", got)
	}
	cerr, ok := reported.(*Error)
	if !ok || cerr.Kind != KindConfig {
		t.Errorf("expected a configuration error, got %v", reported)
	}
}
