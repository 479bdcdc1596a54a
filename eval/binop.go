/*
File   : flow/eval/binop.go
Package: eval
*/

package eval

import (
	"github.com/akashmaji946/flow/parser"
	"github.com/akashmaji946/flow/value"
)

// evalBinOp applies the coercion matrix for binary operators: `+` always
// concatenates when either side is a string; two strings only support
// `==`/`!=`; two numbers support the full arithmetic and comparison set;
// any other string/number mix is a type mismatch.
func (e *Evaluator) evalBinOp(node *parser.Node) value.Value {
	left := e.evalExpr(node.Children[0])
	right := e.evalExpr(node.Children[1])
	op := node.Value

	if op == "+" && (left.IsString() || right.IsString()) {
		return value.String(left.ConcatText() + right.ConcatText())
	}

	if left.IsString() && right.IsString() {
		switch op {
		case "==":
			return boolValue(left.Str == right.Str)
		case "!=":
			return boolValue(left.Str != right.Str)
		default:
			e.addDiagnostic(node.Line, "operator %q is not defined on two strings", op)
			return value.Zero
		}
	}

	if left.IsNumber() && right.IsNumber() {
		return e.evalNumericBinOp(node.Line, op, left.Num, right.Num)
	}

	e.addDiagnostic(node.Line, "operator %q requires two numbers or two strings, got a mix", op)
	return value.Zero
}

func (e *Evaluator) evalNumericBinOp(line int, op string, a, b float64) value.Value {
	switch op {
	case "+":
		return value.Number(a + b)
	case "-":
		return value.Number(a - b)
	case "*":
		return value.Number(a * b)
	case "/":
		return value.Number(a / b) // IEEE-754 default: division by zero yields +/-Inf or NaN, never panics.
	case "%":
		bi := int64(b)
		if bi == 0 {
			e.addDiagnostic(line, "modulus by zero")
			return value.Zero
		}
		return value.Number(float64(int64(a) % bi))
	case "==":
		return boolValue(a == b)
	case "!=":
		return boolValue(a != b)
	case "<":
		return boolValue(a < b)
	case ">":
		return boolValue(a > b)
	case "<=":
		return boolValue(a <= b)
	case ">=":
		return boolValue(a >= b)
	}
	e.addDiagnostic(line, "unrecognized operator %q", op)
	return value.Zero
}

func boolValue(b bool) value.Value {
	if b {
		return value.Number(1)
	}
	return value.Number(0)
}
