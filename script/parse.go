package script

import "fmt"
import "strings"

import "github.com/google/shlex"

// Parse reads a canonical-call script and returns an AST. Each line
// holds one operation name followed by its arguments; words follow
// shell splitting rules, so strings with spaces can be quoted. A #
// starts a comment running to the end of the line.
func Parse(input string) (*Document, error) {
	var doc Document
	for n, line := range strings.Split(input, "\n") {
		fields, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", n+1, err)
		}
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if name != strings.ToUpper(name) {
			return nil, fmt.Errorf("line %d: operation names are upper-case, got %q", n+1, name)
		}
		doc.AppendCall(Call{Line: n + 1, Name: name, Args: fields[1:]})
	}
	return &doc, nil
}
