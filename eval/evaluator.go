/*
File   : flow/eval/evaluator.go
Package: eval
*/

// Package eval walks a Flow Program tree and executes it against a flat
// variable environment, producing side effects on an io.Writer and
// consuming an io.Reader for `input`/`input_num`.
//
// Execution is two passes. The first indexes every top-level Label node
// into a label table; the second runs the Program's top-level children in
// order, repositioning its cursor whenever a pending jump resolves. Both
// passes and every statement/expression evaluator here degrade runtime
// faults to a diagnostic plus a safe zero value rather than aborting —
// only the driver's host-level errors (bad CLI arg, unreadable file) are
// fatal.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/akashmaji946/flow/env"
	"github.com/akashmaji946/flow/parser"
	"github.com/akashmaji946/flow/value"
)

// Evaluator holds the mutable state of one interpreter run: the variable
// environment, the label index, the pending-jump state, the I/O streams,
// and the random source for `random(...)`.
type Evaluator struct {
	Env    *env.Environment
	Writer io.Writer
	Reader *bufio.Reader
	Rand   *rand.Rand

	labels map[string]int

	jumpPending bool
	jumpTarget  string

	// Diagnostics collects every semantic-runtime fault (undefined
	// identifier, type mismatch, unknown goto target, bad input parse) in
	// the order they occurred. The evaluator never aborts because of them.
	Diagnostics []string
}

// NewEvaluator creates an Evaluator wired to stdout/stdin, seeded from
// wall-clock time — the production default.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithSeed(time.Now().UnixNano())
}

// NewEvaluatorWithSeed creates an Evaluator with an injectable random seed,
// so tests exercising `random(...)` can be deterministic.
func NewEvaluatorWithSeed(seed int64) *Evaluator {
	return &Evaluator{
		Env:    env.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
		Rand:   rand.New(rand.NewSource(seed)),
		labels: make(map[string]int),
	}
}

// SetWriter redirects standard output, e.g. to a buffer under test.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects standard input, e.g. to a fixed string under test.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// HasErrors reports whether any runtime diagnostic was recorded.
func (e *Evaluator) HasErrors() bool {
	return len(e.Diagnostics) > 0
}

// GetErrors returns every runtime diagnostic recorded during Run, in
// execution order.
func (e *Evaluator) GetErrors() []string {
	return e.Diagnostics
}

func (e *Evaluator) addDiagnostic(line int, format string, args ...interface{}) {
	msg := fmt.Sprintf("line %d: "+format, append([]interface{}{line}, args...)...)
	e.Diagnostics = append(e.Diagnostics, msg)
}

// Run executes program: first pass indexes top-level labels, second pass
// walks the top-level statements, resolving jumps as they bubble up.
func (e *Evaluator) Run(program *parser.Node) {
	e.collectLabels(program)
	e.dispatch(program)
}

// collectLabels walks only Program's direct children — nested labels
// inside a Block, Repeat, LoopWhile, or LoopFor body are never indexed, so
// a goto can never target them. A duplicate label name is resolved by
// last-write-wins, since later entries simply overwrite earlier ones.
func (e *Evaluator) collectLabels(program *parser.Node) {
	for i, child := range program.Children {
		if child.Kind == parser.Label {
			e.labels[child.Value] = i
		}
	}
}

// dispatch is the top-level cursor loop: the only place a pending jump is
// ever resolved. A hit repositions the cursor to the label's index; a miss
// reports a diagnostic and falls through to the next statement.
func (e *Evaluator) dispatch(program *parser.Node) {
	i := 0
	for i < len(program.Children) {
		stmt := program.Children[i]
		e.execStatement(stmt)

		if e.jumpPending {
			e.jumpPending = false
			if idx, ok := e.labels[e.jumpTarget]; ok {
				i = idx
				continue
			}
			e.addDiagnostic(stmt.Line, "unknown label %q", e.jumpTarget)
		}
		i++
	}
}

// execStatement executes one statement node. Block, Repeat, LoopWhile, and
// LoopFor bodies all check e.jumpPending after every child statement and
// return immediately when it is set, letting a pending jump bubble up
// through any nesting depth to the top-level dispatcher.
func (e *Evaluator) execStatement(node *parser.Node) {
	switch node.Kind {
	case parser.Let:
		e.execLet(node)
	case parser.Print:
		e.execPrint(node)
	case parser.When:
		e.execWhen(node)
	case parser.Repeat:
		e.execRepeat(node)
	case parser.LoopWhile:
		e.execLoopWhile(node)
	case parser.LoopFor:
		e.execLoopFor(node)
	case parser.Label:
		// no-op at run time; indexed in pass one.
	case parser.Goto:
		e.jumpPending = true
		e.jumpTarget = node.Value
	case parser.Block:
		e.execBlock(node)
	}
}

func (e *Evaluator) execLet(node *parser.Node) {
	v := e.evalExpr(node.Children[0])
	e.Env.Set(node.Value, v)
}

func (e *Evaluator) execPrint(node *parser.Node) {
	v := e.evalExpr(node.Children[0])
	fmt.Fprintln(e.Writer, v.Display())
}

func (e *Evaluator) execWhen(node *parser.Node) {
	cond := e.evalExpr(node.Children[0])
	if cond.Truthy() {
		e.execStatement(node.Children[1])
		return
	}
	if len(node.Children) == 3 {
		e.execStatement(node.Children[2])
	}
}

// execRepeat truncates the count to a signed integer and runs the body
// that many times; zero or negative counts run it zero times.
func (e *Evaluator) execRepeat(node *parser.Node) {
	count := e.evalExpr(node.Children[0])
	n := int(count.NumericComponent())
	body := node.Children[1]

	for i := 0; i < n; i++ {
		e.execStatement(body)
		if e.jumpPending {
			return
		}
	}
}

// execLoopWhile re-evaluates the condition before each iteration and
// inspects only its numeric component — a string condition is always
// falsy here, matching the narrower rule the original reference used
// (see DESIGN.md), unlike When's uniform truthiness.
func (e *Evaluator) execLoopWhile(node *parser.Node) {
	cond, body := node.Children[0], node.Children[1]
	for {
		v := e.evalExpr(cond)
		if v.NumericComponent() == 0 {
			return
		}
		e.execStatement(body)
		if e.jumpPending {
			return
		}
	}
}

// execLoopFor evaluates start and end once, then iterates a floating
// counter from start up to and including end, binding the loop variable
// before every body execution. The variable stays bound in the flat
// environment after the loop ends (no block scoping).
func (e *Evaluator) execLoopFor(node *parser.Node) {
	start := e.evalExpr(node.Children[0])
	end := e.evalExpr(node.Children[1])
	body := node.Children[2]

	from := start.NumericComponent()
	to := end.NumericComponent()

	for counter := from; counter <= to; counter += 1.0 {
		e.Env.Set(node.Value, value.Number(counter))
		e.execStatement(body)
		if e.jumpPending {
			return
		}
	}
}

func (e *Evaluator) execBlock(node *parser.Node) {
	for _, stmt := range node.Children {
		e.execStatement(stmt)
		if e.jumpPending {
			return
		}
	}
}

// evalExpr evaluates an expression node to a Value. Every fault here —
// undefined identifier, type mismatch, bad parse — writes one diagnostic
// and yields value.Zero instead of propagating an error.
func (e *Evaluator) evalExpr(node *parser.Node) value.Value {
	switch node.Kind {
	case parser.Number:
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			e.addDiagnostic(node.Line, "malformed number literal %q", node.Value)
			return value.Zero
		}
		return value.Number(n)

	case parser.String:
		return value.String(node.Value)

	case parser.Ident:
		v, ok := e.Env.Get(node.Value)
		if !ok {
			e.addDiagnostic(node.Line, "undefined variable %q", node.Value)
			return value.Zero
		}
		return v

	case parser.Unary:
		return e.evalUnary(node)

	case parser.BinOp:
		return e.evalBinOp(node)

	case parser.Input:
		return e.evalInput(node, false)

	case parser.InputNum:
		return e.evalInput(node, true)

	case parser.Call:
		return e.evalCall(node)
	}

	e.addDiagnostic(node.Line, "cannot evaluate node kind %s as an expression", node.Kind)
	return value.Zero
}

func (e *Evaluator) evalUnary(node *parser.Node) value.Value {
	operand := e.evalExpr(node.Children[0])
	if operand.IsString() {
		e.addDiagnostic(node.Line, "unary '-' on string value")
		return value.Zero
	}
	return value.Number(-operand.Num)
}
