package export

import "strconv"
import "strings"

import "github.com/joushou/gocanon/canon"

func floatToString(f float64, p int) string {
	x := strconv.FormatFloat(f, 'f', p, 64)

	// Hacky way to remove silly zeroes
	if strings.IndexRune(x, '.') != -1 {
		for x[len(x)-1] == '0' {
			x = x[:len(x)-1]
		}
		if x[len(x)-1] == '.' {
			x = x[:len(x)-1]
		}
	}

	return x
}

type Generator interface {
	Handle(canon.Command)
	Init()
	Flush()
}

func HandleCommand(g Generator, cmd canon.Command) {
	g.Handle(cmd)
	g.Flush()
}

func HandleAllCommands(g Generator, cmds []canon.Command) {
	for _, cmd := range cmds {
		HandleCommand(g, cmd)
	}
}
