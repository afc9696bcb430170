package streaming

import "bufio"
import "errors"
import "fmt"
import "io"
import "strings"

import "github.com/joushou/goserial"

// The controller acknowledges every line with "ok", or rejects it with
// "error: ..."; "alarm: ..." means it halted on its own. Anything else
// is informational chatter.
type Result struct {
	level   string
	message string
}

func parseResult(b string) Result {
	b = strings.TrimRight(b, "\r\n")
	switch {
	case b == "ok":
		return Result{"ok", ""}
	case strings.HasPrefix(b, "error:"):
		return Result{"error", strings.TrimSpace(b[6:])}
	case strings.HasPrefix(b, "alarm:"):
		return Result{"alarm", strings.TrimSpace(b[6:])}
	default:
		return Result{"info", b}
	}
}

// SerialStreamer drives a controller over a serial line, keeping its
// receive buffer full without overrunning it.
type SerialStreamer struct {
	serialPort io.ReadWriteCloser
	reader     *bufio.Reader
	writer     *bufio.Writer
}

// How many unacknowledged bytes the controller's receive buffer holds.
const receiveWindow = 127

func serialReader(reader *bufio.Reader) Result {
	c, err := reader.ReadBytes('\n')
	if err != nil {
		return Result{"serial-error", fmt.Sprintf("%s", err)}
	}
	return parseResult(string(c))
}

func (s *SerialStreamer) Connect(name string) error {
	c := &serial.Config{Name: name, Baud: 115200}
	var err error
	s.serialPort, err = serial.OpenPort(c)
	if err != nil {
		return err
	}

	s.reader = bufio.NewReader(s.serialPort)
	s.writer = bufio.NewWriter(s.serialPort)

	for {
		c, err := s.reader.ReadBytes('\n')
		m := strings.TrimRight(string(c), "\r\n")
		if strings.HasSuffix(m, "ready") {
			fmt.Printf("Controller initialized: %s\n", m)
			break
		} else if m == "" && err == nil {
			continue
		}

		if err != nil {
			return errors.New("unable to detect initialized controller")
		}
	}

	return nil
}

// Stop aborts the controller and closes the port.
func (s *SerialStreamer) Stop() {
	_, _ = s.serialPort.Write([]byte("\x18\n"))
	s.serialPort.Close()
}

// Pause asks the controller to hold feed at the next opportunity.
func (s *SerialStreamer) Pause() {
	_, _ = s.serialPort.Write([]byte("!"))
}

// Resume releases a feed hold.
func (s *SerialStreamer) Resume() {
	_, _ = s.serialPort.Write([]byte("~"))
}

// Send streams the lines, sending okCnt over progress after each
// acknowledgement. It keeps at most receiveWindow bytes in flight.
func (s *SerialStreamer) Send(lines []string, progress chan int) (err error) {
	defer func() {
		close(progress)
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprintf("%s", r))
		}
	}()

	var length, okCnt int
	list := make([]string, 0)

	handleRes := func(res Result) {
		switch res.level {
		case "error":
			panic("received error from controller: " + res.message)
		case "alarm":
			panic("received alarm from controller: " + res.message)
		case "serial-error":
			panic("serial failure: " + res.message)
		case "info":
			fmt.Printf("\nReceived info from controller: %s\n", res.message)
		default:
			x := list[0]
			list = list[1:]
			length -= len(x)
			progress <- okCnt
			okCnt++
		}
	}

	for _, line := range lines {
		x := line + "\n"
		length += len(x)
		list = append(list, x)

		for length > receiveWindow {
			handleRes(serialReader(s.reader))
		}

		_, err := s.writer.WriteString(x)
		if err != nil {
			return errors.New("error while sending data: " + fmt.Sprintf("%s", err))
		}
		if err := s.writer.Flush(); err != nil {
			return errors.New("error while flushing writer: " + fmt.Sprintf("%s", err))
		}
	}

	for okCnt < len(lines) {
		handleRes(serialReader(s.reader))
	}

	return nil
}
