package script

import (
	"strings"
	"testing"

	"github.com/joushou/gocanon/canon"
	"github.com/joushou/gocanon/vector"
)

func TestParse(t *testing.T) {
	src := `# header comment
SET_FEED_RATE 60
STRAIGHT_FEED 1 2 3 0 0 0 0 0 0  # trailing comment

MESSAGE "hello there"
`
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}
	if doc.Length() != 3 {
		t.Fatalf("expected 3 calls, got %d", doc.Length())
	}
	if doc.Calls[0].Name != "SET_FEED_RATE" || doc.Calls[0].Line != 2 {
		t.Errorf("unexpected first call: %+v", doc.Calls[0])
	}
	if len(doc.Calls[1].Args) != 9 {
		t.Errorf("expected 9 arguments, got %d", len(doc.Calls[1].Args))
	}
	if s, _ := doc.Calls[2].String(0); s != "hello there" {
		t.Errorf("expected quoted string to survive, got %q", s)
	}
}

func TestParseRejectsLowerCase(t *testing.T) {
	if _, err := Parse("straight_feed 1 0 0 0 0 0 0 0 0"); err == nil {
		t.Error("expected parse error for lower-case operation")
	}
}

func TestCallArguments(t *testing.T) {
	c := Call{Line: 1, Name: "X", Args: []string{"1.5", "2", "abc"}}
	if f, err := c.Float(0); err != nil || f != 1.5 {
		t.Errorf("Float(0) = %v, %v", f, err)
	}
	if n, err := c.Int(1); err != nil || n != 2 {
		t.Errorf("Int(1) = %v, %v", n, err)
	}
	if _, err := c.Float(2); err == nil {
		t.Error("expected error for non-numeric float")
	}
	if _, err := c.Int(3); err == nil {
		t.Error("expected error for missing argument")
	}
}

func testStatus() *canon.BasicStatus {
	s := &canon.BasicStatus{
		AxisBits:     0x1FF,
		LengthFactor: 1,
		AngleFactor:  1,
	}
	for i := 0; i < vector.AxisCount; i++ {
		s.Vel[i] = 10
		s.Acc[i] = 100
		s.Jerk[i] = 1000
	}
	return s
}

func TestRun(t *testing.T) {
	src := `SET_FEED_RATE 60
STRAIGHT_FEED 5 0 0 0 0 0 0 0 0
DWELL 0.5
PROGRAM_END
`
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}
	out := &canon.Stream{}
	m := canon.New(testStatus(), out)
	if err := Run(doc, m); err != nil {
		t.Fatalf("run failed: %s", err)
	}
	if m.EndPoint().X != 5 {
		t.Errorf("expected end point x 5, got %v", m.EndPoint().X)
	}
	var types []canon.CommandType
	for _, cmd := range out.Commands {
		types = append(types, cmd.Type)
	}
	// The stream opens with the machine's motion-mode prelude.
	want := []canon.CommandType{canon.CmdMotionMode, canon.CmdLinearFeed, canon.CmdDwell, canon.CmdEnd}
	if len(types) != len(want) {
		t.Fatalf("expected %d commands, got %v", len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("command %d: expected %v, got %v", i, want[i], types[i])
		}
	}
}

func TestRunReportsBadCall(t *testing.T) {
	doc, err := Parse("STRAIGHT_FEED 1 2")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}
	m := canon.New(testStatus(), &canon.Stream{})
	err = Run(doc, m)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected line-tagged error, got %v", err)
	}
}

func TestRunRejectsUnknownOperation(t *testing.T) {
	doc, _ := Parse("FROBNICATE 1")
	m := canon.New(testStatus(), &canon.Stream{})
	if err := Run(doc, m); err == nil {
		t.Error("expected error for unknown operation")
	}
}
