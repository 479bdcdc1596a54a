/*
File   : flow/eval/builtins.go
Package: eval
*/

package eval

import (
	"math"

	"github.com/akashmaji946/flow/parser"
	"github.com/akashmaji946/flow/value"
)

// evalCall dispatches a Call node to its builtin by name. The parser fixes
// the arity for each builtin, but a malformed program can still produce a
// Call node with too few arguments (a missing '(' skips argument parsing
// entirely) — every builtin below re-checks its own arity and degrades to
// a diagnostic plus zero rather than indexing out of range.
func (e *Evaluator) evalCall(node *parser.Node) value.Value {
	switch node.Value {
	case "random":
		return e.evalRandom(node)
	case "sqrt":
		return e.evalUnaryMath(node, "sqrt", math.Sqrt)
	case "pow":
		return e.evalPow(node)
	case "abs":
		return e.evalUnaryMath(node, "abs", math.Abs)
	case "floor":
		return e.evalUnaryMath(node, "floor", math.Floor)
	case "ceil":
		return e.evalUnaryMath(node, "ceil", math.Ceil)
	}
	e.addDiagnostic(node.Line, "unknown builtin %q", node.Value)
	return value.Zero
}

// evalUnaryMath handles sqrt/abs/floor/ceil: a single numeric argument
// passed through the corresponding math function; a string argument is a
// type mismatch.
func (e *Evaluator) evalUnaryMath(node *parser.Node, name string, fn func(float64) float64) value.Value {
	if len(node.Children) != 1 {
		e.addDiagnostic(node.Line, "%s expects 1 argument, got %d", name, len(node.Children))
		return value.Zero
	}
	arg := e.evalExpr(node.Children[0])
	if arg.IsString() {
		e.addDiagnostic(node.Line, "%s expects a number, got a string", name)
		return value.Zero
	}
	return value.Number(fn(arg.Num))
}

// evalPow handles `pow(b, e)`: numeric b raised to numeric e.
func (e *Evaluator) evalPow(node *parser.Node) value.Value {
	if len(node.Children) != 2 {
		e.addDiagnostic(node.Line, "pow expects 2 arguments, got %d", len(node.Children))
		return value.Zero
	}
	base := e.evalExpr(node.Children[0])
	exp := e.evalExpr(node.Children[1])
	if base.IsString() || exp.IsString() {
		e.addDiagnostic(node.Line, "pow expects two numbers, got a string")
		return value.Zero
	}
	return value.Number(math.Pow(base.Num, exp.Num))
}

// evalRandom handles `random(lo, hi)`: both bounds truncated to integers,
// result uniformly distributed in [lo, hi] inclusive. The interpreter's
// random source is seeded once at Evaluator construction (NewEvaluator
// seeds from wall-clock time; NewEvaluatorWithSeed takes an injected seed
// for deterministic tests).
func (e *Evaluator) evalRandom(node *parser.Node) value.Value {
	if len(node.Children) != 2 {
		e.addDiagnostic(node.Line, "random expects 2 arguments, got %d", len(node.Children))
		return value.Zero
	}
	loVal := e.evalExpr(node.Children[0])
	hiVal := e.evalExpr(node.Children[1])
	if loVal.IsString() || hiVal.IsString() {
		e.addDiagnostic(node.Line, "random expects two numbers, got a string")
		return value.Zero
	}

	lo := int64(loVal.Num)
	hi := int64(hiVal.Num)
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	return value.Number(float64(lo + e.Rand.Int63n(span)))
}
