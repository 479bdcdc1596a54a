/*
File   : flow/parser/parser.go
Package: parser
*/

// Package parser implements a recursive-descent parser for Flow. It
// consumes the lexer's token stream and builds a Program tree whose
// grammar and precedence tiers are fixed by the language's statement and
// expression forms.
//
// Like the reference Pratt parser this codebase grew from, it never panics
// on a malformed program: every mismatch is recorded in Errors and the
// parser makes a best-effort advance, so Parse always returns a tree
// (possibly partial) rather than aborting.
package parser

import (
	"fmt"

	"github.com/akashmaji946/flow/lexer"
)

// comparisonOps and additiveOps/multiplicativeOps are the three strictly
// separated precedence tiers in the expression grammar.
var comparisonOps = map[lexer.TokenType]bool{
	lexer.EQ: true, lexer.NEQ: true,
	lexer.LT: true, lexer.GT: true,
	lexer.LE: true, lexer.GE: true,
}

var additiveOps = map[lexer.TokenType]bool{
	lexer.PLUS: true, lexer.MINUS: true,
}

var multiplicativeOps = map[lexer.TokenType]bool{
	lexer.STAR: true, lexer.SLASH: true, lexer.PERCENT: true,
}

// Parser holds the two-token lookahead state and the collected diagnostics.
// It never aborts: GetErrors/HasErrors let the driver report syntax faults
// after the fact.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	Errors []string
}

// NewParser creates a Parser over src and primes its two-token lookahead.
func NewParser(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) addError(format string, args ...interface{}) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any syntax diagnostics were collected.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns every syntax diagnostic collected during Parse, in
// source order. It also includes any lexical diagnostics the underlying
// Lexer recorded while scanning, since both are reported on the same
// stream.
func (p *Parser) GetErrors() []string {
	all := make([]string, 0, len(p.lex.Diagnostics)+len(p.Errors))
	all = append(all, p.lex.Diagnostics...)
	all = append(all, p.Errors...)
	return all
}

func (p *Parser) skipNewlines() {
	for p.cur.Type == lexer.NEWLINE {
		p.advance()
	}
}

// expectArrowIn requires '->' next, consuming it if present, or recording a
// diagnostic and continuing in place otherwise.
func (p *Parser) expectArrowIn(context string) {
	if p.cur.Type == lexer.ARROW_IN {
		p.advance()
		return
	}
	p.addError("line %d: expected '->' %s, got %q", p.cur.Line, context, p.cur.Literal)
}

// Parse consumes the whole token stream and returns the Program node:
// program := { statement } EOF.
func (p *Parser) Parse() *Node {
	root := newNode(Program, "", 0)
	p.skipNewlines()
	for p.cur.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			root.Children = append(root.Children, stmt)
		}
		p.skipNewlines()
	}
	return root
}

// parseStatement dispatches on the leading keyword of a statement:
// statement := let | print | when | repeat | loop | label | goto.
func (p *Parser) parseStatement() *Node {
	switch p.cur.Type {
	case lexer.LET:
		return p.parseLet()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.WHEN:
		return p.parseWhen()
	case lexer.REPEAT:
		return p.parseRepeat()
	case lexer.LOOP:
		return p.parseLoop()
	case lexer.LABEL:
		return p.parseLabel()
	case lexer.GOTO:
		return p.parseGoto()
	default:
		p.addError("line %d: unexpected token %q", p.cur.Line, p.cur.Literal)
		p.advance()
		return nil
	}
}

// parseLet handles: 'let' IDENT '=' expression.
func (p *Parser) parseLet() *Node {
	line := p.cur.Line
	p.advance() // 'let'

	name := p.cur.Literal
	p.advance() // variable name

	if p.cur.Type != lexer.ASSIGN {
		p.addError("line %d: expected '=' after variable name %q, got %q", p.cur.Line, name, p.cur.Literal)
	} else {
		p.advance()
	}

	expr := p.parseExpression()
	return newNode(Let, name, line, expr)
}

// parsePrint handles: 'print' expression.
func (p *Parser) parsePrint() *Node {
	line := p.cur.Line
	p.advance() // 'print'
	expr := p.parseExpression()
	return newNode(Print, "", line, expr)
}

// parseWhen handles: 'when' expression '->' block [ 'otherwise' '->' block ].
func (p *Parser) parseWhen() *Node {
	line := p.cur.Line
	p.advance() // 'when'

	cond := p.parseExpression()
	p.skipNewlines()
	p.expectArrowIn("after 'when' condition")
	p.skipNewlines()
	thenBlock := p.parseBlock()

	children := []*Node{cond, thenBlock}

	p.skipNewlines()
	if p.cur.Type == lexer.OTHERWISE {
		p.advance()
		p.skipNewlines()
		if p.cur.Type == lexer.ARROW_IN {
			p.advance()
			p.skipNewlines()
			children = append(children, p.parseBlock())
		} else {
			p.addError("line %d: expected '->' after 'otherwise', got %q", p.cur.Line, p.cur.Literal)
		}
	}

	return newNode(When, "", line, children...)
}

// parseRepeat handles: 'repeat' expression [ 'times' ] '->' block.
func (p *Parser) parseRepeat() *Node {
	line := p.cur.Line
	p.advance() // 'repeat'

	count := p.parseExpression()
	if p.cur.Type == lexer.TIMES {
		p.advance()
	}
	p.skipNewlines()
	p.expectArrowIn("after repeat count")
	p.skipNewlines()
	body := p.parseBlock()

	return newNode(Repeat, "", line, count, body)
}

// parseLoop handles: 'loop' ( while_form | for_form ).
func (p *Parser) parseLoop() *Node {
	line := p.cur.Line
	p.advance() // 'loop'

	switch p.cur.Type {
	case lexer.WHILE:
		return p.parseLoopWhile(line)
	case lexer.FROM:
		return p.parseLoopFor(line)
	default:
		p.addError("line %d: expected 'while' or 'from' after 'loop', got %q", p.cur.Line, p.cur.Literal)
		return nil
	}
}

// parseLoopWhile handles: 'while' expression '->' block.
func (p *Parser) parseLoopWhile(line int) *Node {
	p.advance() // 'while'
	cond := p.parseExpression()
	p.skipNewlines()
	p.expectArrowIn("after while condition")
	p.skipNewlines()
	body := p.parseBlock()
	return newNode(LoopWhile, "", line, cond, body)
}

// parseLoopFor handles: 'from' IDENT '=' expression 'to' expression '->'
// block.
func (p *Parser) parseLoopFor(line int) *Node {
	p.advance() // 'from'

	varname := p.cur.Literal
	p.advance() // loop variable name

	if p.cur.Type != lexer.ASSIGN {
		p.addError("line %d: expected '=' in 'loop from', got %q", p.cur.Line, p.cur.Literal)
	} else {
		p.advance()
	}
	start := p.parseExpression()

	if p.cur.Type != lexer.TO {
		p.addError("line %d: expected 'to' in 'loop from', got %q", p.cur.Line, p.cur.Literal)
	} else {
		p.advance()
	}
	end := p.parseExpression()

	p.skipNewlines()
	p.expectArrowIn("after 'loop from' range")
	p.skipNewlines()
	body := p.parseBlock()

	return newNode(LoopFor, varname, line, start, end, body)
}

// parseLabel handles: 'label' IDENT.
func (p *Parser) parseLabel() *Node {
	line := p.cur.Line
	p.advance() // 'label'
	name := p.cur.Literal
	p.advance()
	return newNode(Label, name, line)
}

// parseGoto handles: 'goto' IDENT.
func (p *Parser) parseGoto() *Node {
	line := p.cur.Line
	p.advance() // 'goto'
	name := p.cur.Literal
	p.advance()
	return newNode(Goto, name, line)
}

// parseBlock handles: { statement } '<-'. Reaching EOF before '<-'
// terminates the block silently.
func (p *Parser) parseBlock() *Node {
	line := p.cur.Line
	block := newNode(Block, "", line)

	for p.cur.Type != lexer.ARROW_OUT && p.cur.Type != lexer.EOF {
		p.skipNewlines()
		if p.cur.Type == lexer.ARROW_OUT || p.cur.Type == lexer.EOF {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Children = append(block.Children, stmt)
		}
	}

	if p.cur.Type == lexer.ARROW_OUT {
		p.advance()
	}

	return block
}

// parseExpression is the entry point into the three precedence tiers:
// expression := comparison. No newline skipping happens anywhere inside
// expression parsing.
func (p *Parser) parseExpression() *Node {
	return p.parseComparison()
}

// parseComparison handles the comparison tier: term { (==|!=|<|>|<=|>=)
// term }, left-associative.
func (p *Parser) parseComparison() *Node {
	left := p.parseTerm()
	for comparisonOps[p.cur.Type] {
		op := p.cur
		p.advance()
		right := p.parseTerm()
		left = newNode(BinOp, op.Literal, op.Line, left, right)
	}
	return left
}

// parseTerm handles the additive tier: factor { (+|-) factor },
// left-associative.
func (p *Parser) parseTerm() *Node {
	left := p.parseFactor()
	for additiveOps[p.cur.Type] {
		op := p.cur
		p.advance()
		right := p.parseFactor()
		left = newNode(BinOp, op.Literal, op.Line, left, right)
	}
	return left
}

// parseFactor handles the multiplicative tier: primary { (*|/|%) primary },
// left-associative.
func (p *Parser) parseFactor() *Node {
	left := p.parsePrimary()
	for multiplicativeOps[p.cur.Type] {
		op := p.cur
		p.advance()
		right := p.parsePrimary()
		left = newNode(BinOp, op.Literal, op.Line, left, right)
	}
	return left
}

// parsePrimary handles the primary production, including unary
// minus (binding tighter than any binary operator — it recurses into
// parsePrimary, not parseExpression), literals, identifiers, input forms,
// builtin calls, and parenthesized expressions.
func (p *Parser) parsePrimary() *Node {
	line := p.cur.Line

	switch p.cur.Type {
	case lexer.MINUS:
		p.advance()
		operand := p.parsePrimary()
		return newNode(Unary, "-", line, operand)

	case lexer.NUMBER:
		lit := p.cur.Literal
		p.advance()
		return newNode(Number, lit, line)

	case lexer.STRING:
		lit := p.cur.Literal
		p.advance()
		return newNode(String, lit, line)

	case lexer.IDENT:
		lit := p.cur.Literal
		p.advance()
		return newNode(Ident, lit, line)

	case lexer.INPUT:
		return p.parseInputForm(Input, line)

	case lexer.INPUT_NUM:
		return p.parseInputForm(InputNum, line)

	case lexer.RANDOM:
		return p.parseBuiltinCall("random", 2, line)
	case lexer.SQRT:
		return p.parseBuiltinCall("sqrt", 1, line)
	case lexer.POW:
		return p.parseBuiltinCall("pow", 2, line)
	case lexer.ABS:
		return p.parseBuiltinCall("abs", 1, line)
	case lexer.FLOOR:
		return p.parseBuiltinCall("floor", 1, line)
	case lexer.CEIL:
		return p.parseBuiltinCall("ceil", 1, line)

	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		if p.cur.Type == lexer.RPAREN {
			p.advance()
		} else {
			p.addError("line %d: expected ')', got %q", p.cur.Line, p.cur.Literal)
		}
		return expr

	default:
		p.addError("line %d: unexpected token in expression: %q", p.cur.Line, p.cur.Literal)
		p.advance()
		return newNode(Number, "0", line)
	}
}

// parseInputForm handles 'input'/'input_num' [ '(' [expression] ')' ].
func (p *Parser) parseInputForm(kind Kind, line int) *Node {
	p.advance() // 'input' or 'input_num'

	var args []*Node
	if p.cur.Type == lexer.LPAREN {
		p.advance()
		if p.cur.Type != lexer.RPAREN {
			args = append(args, p.parseExpression())
		}
		if p.cur.Type == lexer.RPAREN {
			p.advance()
		} else {
			p.addError("line %d: expected ')' to close %s(...)", p.cur.Line, kind)
		}
	}
	return newNode(kind, "", line, args...)
}

// parseBuiltinCall handles a fixed-arity builtin call such as
// 'sqrt' '(' expression ')' or 'random' '(' expression ',' expression ')'.
// Missing parentheses are tolerated — the parser does not backtrack, so an
// omitted '(' simply yields a Call node with fewer children than the
// builtin expects; the evaluator degrades such arity mismatches to a
// diagnostic and zero.
func (p *Parser) parseBuiltinCall(name string, arity int, line int) *Node {
	p.advance() // builtin keyword

	var args []*Node
	if p.cur.Type == lexer.LPAREN {
		p.advance()
		for i := 0; i < arity; i++ {
			if i > 0 {
				if p.cur.Type == lexer.COMMA {
					p.advance()
				} else {
					p.addError("line %d: expected ',' in %s(...) argument list", p.cur.Line, name)
				}
			}
			args = append(args, p.parseExpression())
		}
		if p.cur.Type == lexer.RPAREN {
			p.advance()
		} else {
			p.addError("line %d: expected ')' to close %s(...)", p.cur.Line, name)
		}
	}
	return newNode(Call, name, line, args...)
}
