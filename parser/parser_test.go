/*
File   : flow/parser/parser_test.go
Package: parser
*/

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Parse_OneNumberExpression(t *testing.T) {
	src := "print 12"
	par := NewParser(src)
	root := par.Parse()

	assert.NotNil(t, root)
	assert.Equal(t, 1, len(root.Children))

	printNode := root.Children[0]
	assert.Equal(t, Print, printNode.Kind)
	assert.Equal(t, 1, len(printNode.Children))
	assert.Equal(t, Number, printNode.Children[0].Kind)
	assert.Equal(t, "12", printNode.Children[0].Value)
}

func TestParser_Parse_AddExpression(t *testing.T) {
	src := "print 12 + 13"
	par := NewParser(src)
	root := par.Parse()

	assert.NotNil(t, root)
	exp := root.Children[0].Children[0]

	assert.Equal(t, BinOp, exp.Kind)
	assert.Equal(t, "+", exp.Value)
	assert.Equal(t, Number, exp.Children[0].Kind)
	assert.Equal(t, "12", exp.Children[0].Value)
	assert.Equal(t, Number, exp.Children[1].Kind)
	assert.Equal(t, "13", exp.Children[1].Value)
}

func TestParser_Parse_PrecedenceMulBeforeAdd(t *testing.T) {
	src := "print 2 + 3 * 4"
	par := NewParser(src)
	root := par.Parse()

	exp := root.Children[0].Children[0]
	assert.Equal(t, BinOp, exp.Kind)
	assert.Equal(t, "+", exp.Value)

	left := exp.Children[0]
	assert.Equal(t, Number, left.Kind)
	assert.Equal(t, "2", left.Value)

	right := exp.Children[1]
	assert.Equal(t, BinOp, right.Kind)
	assert.Equal(t, "*", right.Value)
	assert.Equal(t, "3", right.Children[0].Value)
	assert.Equal(t, "4", right.Children[1].Value)
}

func TestParser_Parse_UnaryBindsToOperandOnly(t *testing.T) {
	src := "print -2 + 3"
	par := NewParser(src)
	root := par.Parse()

	exp := root.Children[0].Children[0]
	assert.Equal(t, BinOp, exp.Kind)
	assert.Equal(t, "+", exp.Value)

	left := exp.Children[0]
	assert.Equal(t, Unary, left.Kind)
	assert.Equal(t, "-", left.Value)
	assert.Equal(t, "2", left.Children[0].Value)

	assert.Equal(t, "3", exp.Children[1].Value)
}

func TestParser_Parse_ParenthesesOverridePrecedence(t *testing.T) {
	src := "print (2 + 3) * 4"
	par := NewParser(src)
	root := par.Parse()

	exp := root.Children[0].Children[0]
	assert.Equal(t, BinOp, exp.Kind)
	assert.Equal(t, "*", exp.Value)
	assert.Equal(t, BinOp, exp.Children[0].Kind)
	assert.Equal(t, "+", exp.Children[0].Value)
	assert.Equal(t, "4", exp.Children[1].Value)
}

func TestParser_Parse_ComparisonTier(t *testing.T) {
	cases := []struct {
		src string
		op  string
	}{
		{"print 1 == 2", "=="},
		{"print 1 != 2", "!="},
		{"print 1 < 2", "<"},
		{"print 1 > 2", ">"},
		{"print 1 <= 2", "<="},
		{"print 1 >= 2", ">="},
	}
	for _, c := range cases {
		par := NewParser(c.src)
		root := par.Parse()
		exp := root.Children[0].Children[0]
		assert.Equal(t, BinOp, exp.Kind)
		assert.Equal(t, c.op, exp.Value)
	}
}

func TestParser_Parse_Let(t *testing.T) {
	src := `let x = 5`
	par := NewParser(src)
	root := par.Parse()

	assert.Equal(t, 1, len(root.Children))
	letNode := root.Children[0]
	assert.Equal(t, Let, letNode.Kind)
	assert.Equal(t, "x", letNode.Value)
	assert.Equal(t, "5", letNode.Children[0].Value)
}

func TestParser_Parse_StringConcatLet(t *testing.T) {
	src := `let s = "hi" + 1`
	par := NewParser(src)
	root := par.Parse()

	letNode := root.Children[0]
	assert.Equal(t, Let, letNode.Kind)
	exp := letNode.Children[0]
	assert.Equal(t, BinOp, exp.Kind)
	assert.Equal(t, String, exp.Children[0].Kind)
	assert.Equal(t, "hi", exp.Children[0].Value)
	assert.Equal(t, Number, exp.Children[1].Kind)
}

func TestParser_Parse_WhenOtherwise(t *testing.T) {
	src := `
when 0 ->
	print "a"
<-
otherwise ->
	print "b"
<-
`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	assert.Equal(t, 1, len(root.Children))
	whenNode := root.Children[0]
	assert.Equal(t, When, whenNode.Kind)
	assert.Equal(t, 3, len(whenNode.Children))

	cond := whenNode.Children[0]
	assert.Equal(t, Number, cond.Kind)
	assert.Equal(t, "0", cond.Value)

	thenBlock := whenNode.Children[1]
	assert.Equal(t, Block, thenBlock.Kind)
	assert.Equal(t, 1, len(thenBlock.Children))
	assert.Equal(t, Print, thenBlock.Children[0].Kind)

	elseBlock := whenNode.Children[2]
	assert.Equal(t, Block, elseBlock.Kind)
	assert.Equal(t, 1, len(elseBlock.Children))
}

func TestParser_Parse_WhenWithoutOtherwise(t *testing.T) {
	src := "when 1 ->\n print 1\n<-\n"
	par := NewParser(src)
	root := par.Parse()

	whenNode := root.Children[0]
	assert.Equal(t, 2, len(whenNode.Children))
}

func TestParser_Parse_RepeatTimes(t *testing.T) {
	src := "repeat 3 times ->\n print 1\n<-\n"
	par := NewParser(src)
	root := par.Parse()

	repeatNode := root.Children[0]
	assert.Equal(t, Repeat, repeatNode.Kind)
	assert.Equal(t, 2, len(repeatNode.Children))
	assert.Equal(t, Number, repeatNode.Children[0].Kind)
	assert.Equal(t, Block, repeatNode.Children[1].Kind)
}

func TestParser_Parse_LoopWhile(t *testing.T) {
	src := "loop while n > 0 ->\n print n\n<-\n"
	par := NewParser(src)
	root := par.Parse()

	loopNode := root.Children[0]
	assert.Equal(t, LoopWhile, loopNode.Kind)
	assert.Equal(t, 2, len(loopNode.Children))
	assert.Equal(t, BinOp, loopNode.Children[0].Kind)
	assert.Equal(t, Block, loopNode.Children[1].Kind)
}

func TestParser_Parse_LoopFor(t *testing.T) {
	src := "loop from i = 1 to 3 ->\n print i\n<-\n"
	par := NewParser(src)
	root := par.Parse()

	loopNode := root.Children[0]
	assert.Equal(t, LoopFor, loopNode.Kind)
	assert.Equal(t, "i", loopNode.Value)
	assert.Equal(t, 3, len(loopNode.Children))
	assert.Equal(t, "1", loopNode.Children[0].Value)
	assert.Equal(t, "3", loopNode.Children[1].Value)
	assert.Equal(t, Block, loopNode.Children[2].Kind)
}

func TestParser_Parse_LabelAndGoto(t *testing.T) {
	src := "label start\ngoto start\n"
	par := NewParser(src)
	root := par.Parse()

	assert.Equal(t, 2, len(root.Children))
	assert.Equal(t, Label, root.Children[0].Kind)
	assert.Equal(t, "start", root.Children[0].Value)
	assert.Equal(t, Goto, root.Children[1].Kind)
	assert.Equal(t, "start", root.Children[1].Value)
}

func TestParser_Parse_BuiltinCalls(t *testing.T) {
	cases := []struct {
		src      string
		name     string
		numArgs  int
	}{
		{"print random(1, 6)", "random", 2},
		{"print sqrt(9)", "sqrt", 1},
		{"print pow(2, 10)", "pow", 2},
		{"print abs(-3)", "abs", 1},
		{"print floor(1.9)", "floor", 1},
		{"print ceil(1.1)", "ceil", 1},
	}
	for _, c := range cases {
		par := NewParser(c.src)
		root := par.Parse()
		call := root.Children[0].Children[0]
		assert.Equal(t, Call, call.Kind)
		assert.Equal(t, c.name, call.Value)
		assert.Equal(t, c.numArgs, len(call.Children))
	}
}

func TestParser_Parse_InputForms(t *testing.T) {
	src := `let a = input("name: ")
let b = input_num()
let c = input
`
	par := NewParser(src)
	root := par.Parse()

	a := root.Children[0].Children[0]
	assert.Equal(t, Input, a.Kind)
	assert.Equal(t, 1, len(a.Children))
	assert.Equal(t, String, a.Children[0].Kind)

	b := root.Children[1].Children[0]
	assert.Equal(t, InputNum, b.Kind)
	assert.Equal(t, 0, len(b.Children))

	c := root.Children[2].Children[0]
	assert.Equal(t, Input, c.Kind)
	assert.Equal(t, 0, len(c.Children))
}

func TestParser_Parse_BlockTerminatesSilentlyAtEOF(t *testing.T) {
	src := "when 1 ->\n print 1\n"
	par := NewParser(src)
	root := par.Parse()

	assert.NotNil(t, root)
	whenNode := root.Children[0]
	thenBlock := whenNode.Children[1]
	assert.Equal(t, 1, len(thenBlock.Children))
}

func TestParser_Parse_MalformedLetRecordsErrorButContinues(t *testing.T) {
	src := "let x 5\nprint x\n"
	par := NewParser(src)
	root := par.Parse()

	assert.NotNil(t, root)
	assert.True(t, par.HasErrors())
	assert.Equal(t, 2, len(root.Children))
	assert.Equal(t, Print, root.Children[1].Kind)
}

func TestParser_Parse_NewlinesInsignificantBetweenStatements(t *testing.T) {
	src := "\n\nlet x = 1\n\n\nprint x\n\n"
	par := NewParser(src)
	root := par.Parse()

	assert.Equal(t, 2, len(root.Children))
}

func TestParser_Parse_EndToEndScenarioSix(t *testing.T) {
	src := `label start
let i = 0
label again
print i
let i = i + 1
when i < 3 ->
	goto again
<-
`
	par := NewParser(src)
	root := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 6, len(root.Children))
	assert.Equal(t, Label, root.Children[0].Kind)
	assert.Equal(t, Let, root.Children[1].Kind)
	assert.Equal(t, Label, root.Children[2].Kind)
	assert.Equal(t, Print, root.Children[3].Kind)
	assert.Equal(t, Let, root.Children[4].Kind)
	assert.Equal(t, When, root.Children[5].Kind)

	innerGoto := root.Children[5].Children[1].Children[0]
	assert.Equal(t, Goto, innerGoto.Kind)
	assert.Equal(t, "again", innerGoto.Value)
}
