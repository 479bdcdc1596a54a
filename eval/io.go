/*
File   : flow/eval/io.go
Package: eval
*/

package eval

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/flow/parser"
	"github.com/akashmaji946/flow/value"
)

// evalInput implements both `input` and `input_num`: an optional string
// prompt is written to the writer without a trailing newline, then one
// full line is read from the reader with its terminator stripped. `input`
// yields the line as a string; `input_num` additionally parses it as a
// double, degrading to a diagnostic plus zero on a parse failure.
func (e *Evaluator) evalInput(node *parser.Node, numeric bool) value.Value {
	if len(node.Children) == 1 {
		prompt := e.evalExpr(node.Children[0])
		fmt.Fprint(e.Writer, prompt.Display())
	}

	line, err := e.Reader.ReadString('\n')
	if err != nil && err != io.EOF {
		e.addDiagnostic(node.Line, "failed to read input: %v", err)
		return value.Zero
	}
	line = strings.TrimRight(line, "\r\n")

	if !numeric {
		return value.String(line)
	}

	n, err := strconv.ParseFloat(line, 64)
	if err != nil {
		e.addDiagnostic(node.Line, "could not parse %q as a number", line)
		return value.Zero
	}
	return value.Number(n)
}
