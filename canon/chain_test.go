package canon

import (
	"testing"

	"github.com/joushou/gocanon/vector"
)

func feedReady(m *Machine, tolerance float64) {
	m.SetNaivecamTolerance(tolerance)
	m.SetFeedRate(60)
}

func TestCollinearFeedsMerge(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0.1)

	m.StraightFeed(1, vector.Pose{X: 1})
	m.StraightFeed(2, vector.Pose{X: 2})
	m.StraightFeed(3, vector.Pose{X: 5})
	m.Finish()

	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 1 {
		t.Fatalf("expected collinear feeds to merge into 1 command, got %d", len(feeds))
	}
	if feeds[0].End.X != 5 {
		t.Errorf("merged feed should end at X 5, got %v", feeds[0].End.X)
	}
	if feeds[0].Line != 3 {
		t.Errorf("merged feed should carry the last line number, got %d", feeds[0].Line)
	}
	if m.EndPoint().X != 5 {
		t.Errorf("end point should be the merged end, got %v", m.EndPoint())
	}
}

func TestToleranceBreaksMerge(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0.1)

	m.StraightFeed(1, vector.Pose{X: 1})
	m.StraightFeed(2, vector.Pose{X: 2, Y: 0.5})
	m.Finish()

	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 2 {
		t.Fatalf("expected the out-of-tolerance point to break the merge, got %d feeds", len(feeds))
	}
	if feeds[0].End.X != 1 || feeds[1].End.Y != 0.5 {
		t.Errorf("wrong flush order: %v then %v", feeds[0].End, feeds[1].End)
	}
}

func TestSmallDetourWithinToleranceMerges(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0.1)

	m.StraightFeed(1, vector.Pose{X: 1, Y: 0.05})
	m.StraightFeed(2, vector.Pose{X: 2})
	m.Finish()

	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 1 {
		t.Fatalf("expected detour within tolerance to merge, got %d feeds", len(feeds))
	}
	if feeds[0].End.X != 2 || feeds[0].End.Y != 0 {
		t.Errorf("merged feed should end at (2,0), got %v", feeds[0].End)
	}
}

func TestRotaryMotionFlushesImmediately(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0.1)

	m.StraightFeed(1, vector.Pose{X: 1, A: 90})

	if m.PendingSegments() != 0 {
		t.Error("rotary motion must flush immediately")
	}
	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 1 {
		t.Fatalf("expected 1 feed, got %d", len(feeds))
	}
	if feeds[0].End.A != 90 {
		t.Errorf("expected end A 90, got %v", feeds[0].End.A)
	}
}

func TestExactStopNeverMerges(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0.1)
	m.SetMotionControlMode(ExactStop, 0)

	m.StraightFeed(1, vector.Pose{X: 1})
	m.StraightFeed(2, vector.Pose{X: 2})
	m.Finish()

	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 2 {
		t.Fatalf("exact stop mode must not merge, got %d feeds", len(feeds))
	}
}

func TestZeroToleranceNeverMerges(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0)

	m.StraightFeed(1, vector.Pose{X: 1})
	m.StraightFeed(2, vector.Pose{X: 2})
	m.Finish()

	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 2 {
		t.Fatalf("zero tolerance must disable merging, got %d feeds", len(feeds))
	}
}

func TestChainCapForcesFlush(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0.1)

	for i := 1; i <= maxChainedPoints+3; i++ {
		m.StraightFeed(i, vector.Pose{X: float64(i)})
	}
	m.Finish()

	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 2 {
		t.Fatalf("expected the cap to split the run in 2 feeds, got %d", len(feeds))
	}
	if m.EndPoint().X != float64(maxChainedPoints+3) {
		t.Errorf("end point should be the final feed, got %v", m.EndPoint())
	}
}

func TestBacktrackBreaksMerge(t *testing.T) {
	m, out := testMachine()
	feedReady(m, 0.1)

	m.StraightFeed(1, vector.Pose{X: 5})
	m.StraightFeed(2, vector.Pose{X: 2})
	m.Finish()

	// The first point is outside the segment from start to the
	// backtracked candidate, so the merge must break.
	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 2 {
		t.Fatalf("expected backtracking to break the merge, got %d feeds", len(feeds))
	}
}

func TestSynchedFlushEmitsWithoutFeedRate(t *testing.T) {
	m, out := testMachine()
	m.SetNaivecamTolerance(0.1)

	// Synchronized motion with no feed rate programmed: the clamp
	// zeroes the velocity, but the move must still reach the planner.
	m.StartSpeedFeedSynch(0.5, true)

	m.StraightFeed(1, vector.Pose{X: 1})
	m.Finish()

	feeds := ofType(out.Commands, CmdLinearFeed)
	if len(feeds) != 1 {
		t.Fatalf("synchronized motion must emit even with a zero feed clamp, got %d feeds", len(feeds))
	}
	if feeds[0].Vel != 0 {
		t.Errorf("expected zero clamped velocity, got %v", feeds[0].Vel)
	}
}
