package streaming

import (
	"bufio"
	"strings"
	"testing"
)

func TestParseResult(t *testing.T) {
	cases := []struct {
		in      string
		level   string
		message string
	}{
		{"ok\r\n", "ok", ""},
		{"ok\n", "ok", ""},
		{"error: bad line\r\n", "error", "bad line"},
		{"alarm: hard limit\r\n", "alarm", "hard limit"},
		{"spindle at speed\r\n", "info", "spindle at speed"},
	}
	for _, c := range cases {
		res := parseResult(c.in)
		if res.level != c.level || res.message != c.message {
			t.Errorf("parseResult(%q) = %+v, expected %s %q", c.in, res, c.level, c.message)
		}
	}
}

func TestSerialReaderEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("ok\r\nok"))
	if res := serialReader(r); res.level != "ok" {
		t.Errorf("expected ok, got %+v", res)
	}
	if res := serialReader(r); res.level != "serial-error" {
		t.Errorf("expected serial-error on truncated line, got %+v", res)
	}
}
