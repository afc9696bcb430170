package canon

import (
	"math"
	"testing"

	"github.com/joushou/gocanon/vector"
)

func captureErrors(m *Machine) *[]error {
	var errs []error
	m.Reporter = func(err error) {
		errs = append(errs, err)
	}
	return &errs
}

func TestArcToStraightFallback(t *testing.T) {
	m, out := testMachine()
	m.SetFeedRate(60)

	// Tangent along the chord: no arc exists, so a straight cut is
	// taken instead. It lands in the merge buffer like any other feed.
	m.arcTo(1, 0, 0, 2, 0, 1, 0)

	if m.PendingSegments() != 1 {
		t.Fatalf("expected 1 buffered segment, got %d", m.PendingSegments())
	}
	m.Finish()

	if len(ofType(out.Commands, CmdCircularArc)) != 0 {
		t.Error("collinear tangent should not produce an arc")
	}
	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 1 {
		t.Fatalf("expected 1 linear feed, got %d", len(feeds))
	}
	if feeds[0].End.X != 2 || feeds[0].End.Y != 0 {
		t.Errorf("expected end (2,0), got (%v,%v)", feeds[0].End.X, feeds[0].End.Y)
	}
}

func TestArcToEmitsArc(t *testing.T) {
	m, out := testMachine()
	m.SetFeedRate(60)

	// Leaving (0,0) straight up and arriving at (2,0) traces a
	// semicircle about (1,0).
	m.arcTo(1, 0, 0, 2, 0, 0, 1)

	arcs := ofType(out.Commands, CmdCircularArc)
	if len(arcs) != 1 {
		t.Fatalf("expected 1 arc, got %d", len(arcs))
	}
	if math.Abs(arcs[0].Center.X-1) > 1e-9 || math.Abs(arcs[0].Center.Y) > 1e-9 {
		t.Errorf("expected center (1,0), got (%v,%v)", arcs[0].Center.X, arcs[0].Center.Y)
	}
	if arcs[0].End.X != 2 || arcs[0].End.Y != 0 {
		t.Errorf("expected end (2,0), got (%v,%v)", arcs[0].End.X, arcs[0].End.Y)
	}
}

func TestSplineFeedQuadratic(t *testing.T) {
	m, out := testMachine()
	errs := captureErrors(m)
	m.SetFeedRate(60)

	m.SplineFeedQuadratic(1, 1, 1, 2, 0)

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %v", *errs)
	}
	if len(ofType(out.Commands, CmdCircularArc)) == 0 {
		t.Error("expected arc approximation of the curve")
	}
	end := m.EndPoint()
	if math.Abs(end.X-2) > 1e-6 || math.Abs(end.Y) > 1e-6 {
		t.Errorf("expected end point (2,0), got (%v,%v)", end.X, end.Y)
	}
}

func TestSplineFeedCubic(t *testing.T) {
	m, out := testMachine()
	errs := captureErrors(m)
	m.SetFeedRate(60)

	m.SplineFeedCubic(1, 1, 0.75, 2, 0.75, 3, 0)

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %v", *errs)
	}
	if len(out.Commands) == 0 {
		t.Fatal("expected motion commands")
	}
	end := m.EndPoint()
	if math.Abs(end.X-3) > 1e-6 || math.Abs(end.Y) > 1e-6 {
		t.Errorf("expected end point (3,0), got (%v,%v)", end.X, end.Y)
	}
}

func TestSplineDegenerateTangentsReported(t *testing.T) {
	m, out := testMachine()
	errs := captureErrors(m)
	m.SetFeedRate(60)

	// All control points on a line: no biarc satisfies the tangents,
	// and refinement cannot help.
	m.SplineFeedQuadratic(1, 1, 0, 2, 0)

	if len(*errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(*errs))
	}
	cerr, ok := (*errs)[0].(*Error)
	if !ok || cerr.Kind != KindGeometry {
		t.Errorf("expected geometry error, got %v", (*errs)[0])
	}
	if len(out.Commands) != 0 {
		t.Errorf("expected no motion, got %d commands", len(out.Commands))
	}
	if m.EndPoint() != (vector.Pose{}) {
		t.Errorf("end point should be unchanged, got %v", m.EndPoint())
	}
}
