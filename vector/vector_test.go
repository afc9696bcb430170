package vector

import (
	"testing"
)

func TestPoseAxisRoundTrip(t *testing.T) {
	var p Pose
	for n := 0; n < AxisCount; n++ {
		p.SetAxis(n, float64(n)+1)
	}
	for n := 0; n < AxisCount; n++ {
		if p.Axis(n) != float64(n)+1 {
			t.Errorf("axis %s: expected %v, got %v", AxisName(n), float64(n)+1, p.Axis(n))
		}
	}
}

func TestPoseScale(t *testing.T) {
	p := Pose{X: 1, A: 2, W: 3}.Scale(2)
	if p.X != 2 || p.A != 4 || p.W != 6 || p.Y != 0 {
		t.Errorf("unexpected scaled pose: %v", p)
	}
}

func TestTran(t *testing.T) {
	v := Pose{X: 1, Y: 2, Z: 3, A: 90}.Tran()
	if v != (Vector{1, 2, 3}) {
		t.Errorf("expected {1 2 3}, got %v", v)
	}
}

func TestVectorOps(t *testing.T) {
	a := Vector{1, 0, 0}
	b := Vector{0, 1, 0}
	if a.Dot(b) != 0 {
		t.Error("orthogonal vectors should have zero dot product")
	}
	if a.Cross(b) != (Vector{0, 0, 1}) {
		t.Errorf("expected {0 0 1}, got %v", a.Cross(b))
	}
	if (Vector{3, 4, 0}).Norm() != 5 {
		t.Error("expected norm 5")
	}
	if a.Sum(b).Diff(b) != a {
		t.Error("sum then diff should be identity")
	}
	if a.Scale(4).Divide(2) != (Vector{2, 0, 0}) {
		t.Error("expected {2 0 0}")
	}
}

func TestAngular(t *testing.T) {
	for n := 0; n < AxisCount; n++ {
		want := n >= AxisA && n <= AxisC
		if Angular(n) != want {
			t.Errorf("Angular(%s) = %v", AxisName(n), Angular(n))
		}
	}
}
