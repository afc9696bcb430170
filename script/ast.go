package script

import "fmt"
import "strconv"

// A Call is one canonical operation: an upper-case name followed by
// its arguments, as written on a single script line.
type Call struct {
	Line int
	Name string
	Args []string
}

func (c Call) arg(i int) (string, error) {
	if i < 0 || i >= len(c.Args) {
		return "", fmt.Errorf("missing argument %d", i+1)
	}
	return c.Args[i], nil
}

func (c Call) Float(i int) (float64, error) {
	s, err := c.arg(i)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d: expected number, got %q", i+1, s)
	}
	return f, nil
}

func (c Call) Int(i int) (int, error) {
	s, err := c.arg(i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("argument %d: expected integer, got %q", i+1, s)
	}
	return n, nil
}

func (c Call) String(i int) (string, error) {
	return c.arg(i)
}

type Document struct {
	Calls []Call
}

func (d *Document) AppendCall(c Call) {
	d.Calls = append(d.Calls, c)
}

func (d *Document) Length() int {
	return len(d.Calls)
}
