/*
File   : flow/parser/ast.go
Package: parser
*/

package parser

// Kind tags the syntactic role of a Node. Like lexer.TokenType, it is a
// string so tree-printing and diagnostics read naturally without a separate
// String() method.
type Kind string

const (
	Program   Kind = "Program"
	Let       Kind = "Let"
	Print     Kind = "Print"
	Input     Kind = "Input"
	InputNum  Kind = "InputNum"
	When      Kind = "When"
	Repeat    Kind = "Repeat"
	LoopWhile Kind = "LoopWhile"
	LoopFor   Kind = "LoopFor"
	Label     Kind = "Label"
	Goto      Kind = "Goto"
	Block     Kind = "Block"
	BinOp     Kind = "BinOp"
	Unary     Kind = "Unary"
	Number    Kind = "Number"
	String    Kind = "String"
	Ident     Kind = "Ident"
	Call      Kind = "Call"
)

// Node is Flow's single AST node shape: a kind tag, an auxiliary string
// value whose meaning is fixed per kind (variable name, label name, literal
// text, operator symbol, or builtin function name), and an ordered,
// positional list of children. The child count and meaning per kind is
// fixed by the grammar that builds each kind; neither this type nor newNode
// enforces it (a single node shape keeps recursive construction simple). On
// a malformed program the parser can build a Call node with fewer children
// than its builtin takes (see parseBuiltinCall).
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
	Line     int
}

func newNode(kind Kind, value string, line int, children ...*Node) *Node {
	return &Node{Kind: kind, Value: value, Line: line, Children: children}
}
