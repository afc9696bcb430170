package canon

import "fmt"
import "os"
import "strconv"
import "strings"

// Comment handles a program comment. Most comments are ignored, but a
// few "hot" prefixes carry directives:
//
//	RPY <r> <p> <y>    set the tool orientation for subsequent moves
//	PROBEOPEN <file>   start recording probe results to file
//	PROBECLOSE         stop recording probe results
func (m *Machine) Comment(text string) {
	switch {
	case strings.HasPrefix(text, "RPY"):
		fields := strings.Fields(text)
		if len(fields) == 4 {
			var rpy [3]float64
			ok := true
			for i, f := range fields[1:] {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					ok = false
					break
				}
				rpy[i] = v
			}
			if ok {
				m.orientation = rpy
			}
		}

	case strings.HasPrefix(text, "PROBEOPEN"):
		name := strings.TrimLeft(text[len("PROBEOPEN"):], " \t")
		m.probeClose()
		f, err := os.Create(name)
		if err != nil {
			m.Message("can't open probe file " + name)
			return
		}
		m.probeFile = f
		m.haveProbed = false

	case strings.HasPrefix(text, "PROBECLOSE"):
		m.probeClose()
	}
}

func (m *Machine) probeClose() {
	if m.probeFile != nil {
		m.probeFile.Close()
		m.probeFile = nil
	}
}

// Orientation returns the RPY tool orientation set through comments.
func (m *Machine) Orientation() (r, p, y float64) {
	return m.orientation[0], m.orientation[1], m.orientation[2]
}

// Message queues a text display for the operator.
func (m *Machine) Message(text string) {
	m.flushSegments()
	m.emit(Command{Type: CmdOperatorMessage, Text: text})
}

// Log writes a line to the open log file. Lines are flushed
// immediately so a crash loses nothing.
func (m *Machine) Log(text string) {
	m.flushSegments()
	if m.logFile != nil {
		fmt.Fprintf(m.logFile, "%s\n", text)
		m.logFile.Sync()
	}
}

// LogOpen opens (or replaces) the log file written by Log.
func (m *Machine) LogOpen(name string) {
	m.LogClose()
	f, err := os.Create(name)
	if err != nil {
		m.ReportError(&Error{Kind: KindFile, Op: "log-open", Detail: err.Error()})
		return
	}
	m.logFile = f
}

// LogClose closes the log file.
func (m *Machine) LogClose() {
	if m.logFile != nil {
		m.logFile.Close()
		m.logFile = nil
	}
}
