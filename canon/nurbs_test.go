package canon

import (
	"math"
	"testing"

	"github.com/joushou/gocanon/vector"
)

func TestKnotVector(t *testing.T) {
	got := knotVector(3, 3)
	want := []int{0, 0, 0, 1, 2, 2, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %d knots, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("knot %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func archControlPoints() []ControlPoint {
	return []ControlPoint{
		{Pose: vector.Pose{X: 0, Y: 0}, Weight: 1, Feed: -1},
		{Pose: vector.Pose{X: 1, Y: 2}, Weight: 1, Feed: -1},
		{Pose: vector.Pose{X: 3, Y: 2}, Weight: 1, Feed: -1},
		{Pose: vector.Pose{X: 4, Y: 0}, Weight: 1, Feed: -1},
	}
}

func TestNurbsPointInterpolatesEndpoints(t *testing.T) {
	cps := archControlPoints()
	kv := knotVector(len(cps)-1, 3)

	x, y := nurbsPoint(0, 3, cps, kv)
	if x != 0 || y != 0 {
		t.Errorf("expected curve start (0,0), got (%v,%v)", x, y)
	}
	x, y = nurbsPoint(2, 3, cps, kv)
	if x != 4 || y != 0 {
		t.Errorf("expected curve end (4,0), got (%v,%v)", x, y)
	}
}

func TestNurbsFeedReachesLastControlPoint(t *testing.T) {
	m, out := testMachine()
	errs := captureErrors(m)
	m.SetFeedRate(60)

	m.NurbsFeed(1, archControlPoints(), 3)

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %v", *errs)
	}
	if len(out.Commands) == 0 {
		t.Fatal("expected motion commands")
	}
	end := m.EndPoint()
	if math.Abs(end.X-4) > 1e-9 || math.Abs(end.Y) > 1e-9 {
		t.Errorf("expected end point (4,0), got (%v,%v)", end.X, end.Y)
	}
}

func TestNurbsFeedRejectsShortPolygon(t *testing.T) {
	m, out := testMachine()
	errs := captureErrors(m)
	m.SetFeedRate(60)

	m.NurbsFeed(1, archControlPoints()[:2], 3)

	if len(*errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(*errs))
	}
	if cerr, ok := (*errs)[0].(*Error); !ok || cerr.Kind != KindArgument {
		t.Errorf("expected argument error, got %v", (*errs)[0])
	}
	if len(out.Commands) != 0 {
		t.Errorf("expected no motion, got %d commands", len(out.Commands))
	}
}

func TestNurbsFeed3D(t *testing.T) {
	m, out := testMachine()
	errs := captureErrors(m)
	m.SetFeedRate(60)

	cps := []ControlPoint{
		{Pose: vector.Pose{}, Weight: 1, Feed: -1},
		{Pose: vector.Pose{X: 10}, Weight: 1, Feed: -1},
	}
	knots := []float64{0, 0, 1, 1}
	m.NurbsFeed3D(1, cps, knots, 2, 10, 1)

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %v", *errs)
	}
	segs := ofType(out.Commands, CmdNurbsSegment)
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}
	for i, s := range segs {
		if s.Nurbs.Knot != knots[i] {
			t.Errorf("segment %d: expected knot %v, got %v", i, knots[i], s.Nurbs.Knot)
		}
		if s.Nurbs.Order != 2 || s.Nurbs.ControlPoints != 2 || s.Nurbs.Knots != 4 {
			t.Errorf("segment %d: wrong curve header %+v", i, s.Nurbs)
		}
	}
	if segs[0].Nurbs.Weight != 1 || segs[1].Nurbs.Weight != 1 {
		t.Error("control point segments should carry their weight")
	}
	if segs[2].Nurbs.Weight != 0 || segs[3].Nurbs.Weight != 0 {
		t.Error("knot padding segments should carry zero weight")
	}
	if segs[1].End.X != 10 || segs[2].End.X != 10 || segs[3].End.X != 10 {
		t.Error("padding segments should hold the final position")
	}
	if segs[0].Vel != 1 || segs[1].Vel != 1 {
		t.Errorf("expected feed-clamped vel 1, got %v and %v", segs[0].Vel, segs[1].Vel)
	}
	if segs[0].IniMaxVel != 10 {
		t.Errorf("expected axis-limit vel 10, got %v", segs[0].IniMaxVel)
	}
	if m.EndPoint().X != 10 {
		t.Errorf("expected end point x 10, got %v", m.EndPoint().X)
	}
}

func TestNurbsFeed3DFeedOverride(t *testing.T) {
	m, out := testMachine()
	m.SetFeedRate(60)

	cps := []ControlPoint{
		{Pose: vector.Pose{}, Weight: 1, Feed: -1},
		{Pose: vector.Pose{X: 10}, Weight: 1, Feed: 120},
	}
	m.NurbsFeed3D(1, cps, []float64{0, 1}, 2, 10, 1)

	segs := ofType(out.Commands, CmdNurbsSegment)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Vel != 1 {
		t.Errorf("expected vel 1 before override, got %v", segs[0].Vel)
	}
	if segs[1].Vel != 2 {
		t.Errorf("expected vel 2 after override, got %v", segs[1].Vel)
	}
}

func TestNurbsFeed3DValidation(t *testing.T) {
	m, out := testMachine()
	errs := captureErrors(m)
	m.SetFeedRate(60)

	one := []ControlPoint{{Pose: vector.Pose{X: 1}, Weight: 1, Feed: -1}}
	m.NurbsFeed3D(1, one, []float64{0}, 2, 1, 1)

	two := []ControlPoint{
		{Pose: vector.Pose{}, Weight: 1, Feed: -1},
		{Pose: vector.Pose{X: 1}, Weight: 1, Feed: -1},
	}
	m.NurbsFeed3D(1, two, []float64{0}, 2, 1, 1)

	still := []ControlPoint{
		{Pose: vector.Pose{X: 1}, Weight: 1, Feed: -1},
		{Pose: vector.Pose{X: 1}, Weight: 1, Feed: -1},
	}
	m.NurbsFeed3D(1, still, []float64{0, 1}, 2, 1, 1)

	if len(*errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(*errs))
	}
	for i, err := range *errs {
		if cerr, ok := err.(*Error); !ok || cerr.Kind != KindArgument {
			t.Errorf("error %d: expected argument error, got %v", i, err)
		}
	}
	if len(out.Commands) != 0 {
		t.Errorf("expected no motion, got %d commands", len(out.Commands))
	}
}
