// Package instrument decides where a logger call may be inserted into a
// syntax tree, what it is called, which logger method it uses and which
// arguments it receives.
//
// The package never parses or prints code. Hosts drive it by implementing
// Location, Block, Program and Factory over their own syntax trees and by
// calling ProgramEnter and FunctionOrCatchEnter while they walk a file.
package instrument

// Node is a host syntax node produced by a Factory.
type Node any

// Position is a line/column pair as reported by the host.
type Position struct {
	Line   int
	Column int
}

// Param is one entry of a function's parameter list.
type Param struct {
	Name string
	// Identifier is false for destructured, defaulted or otherwise
	// non-plain parameters.
	Identifier bool
}

// Location is a handle on one position of a syntax tree.
//
// The name accessors each describe one structural shape; a false second
// result means the location does not have that shape.
type Location interface {
	// IsCatchClause reports whether this is an exception-handler clause.
	IsCatchClause() bool
	IsArrowFunction() bool
	IsGenerated() bool

	// OwnIdentifier is the id of the node itself (function foo() {}).
	OwnIdentifier() (string, bool)
	// ContainerIdentifier is the id of the declaration holding the node
	// (const foo = function () {}).
	ContainerIdentifier() (string, bool)
	// AssignmentPropertyName is the property of a member assignment target
	// (obj.foo = function () {}).
	AssignmentPropertyName() (string, bool)
	// AssignmentIdentifierName is a bare identifier assignment target
	// (foo = function () {}).
	AssignmentIdentifierName() (string, bool)
	// OwnKeyName is the key of a method node ({ foo() {} }).
	OwnKeyName() (string, bool)
	// ParentKeyName is the key of the property holding the node
	// ({ foo: () => {} }).
	ParentKeyName() (string, bool)
	// ParentCalleeProperty is the accessed property of the call the node is
	// an argument of (p.catch(() => {})).
	ParentCalleeProperty() (string, bool)
	// ListIndex is the node's index when it is a list element.
	ListIndex() (int, bool)

	// Get returns the named child.
	Get(member string) (Location, bool)
	// AsBlock returns the location as a statement block, if it is one.
	AsBlock() (Block, bool)
	Position() (Position, bool)

	// CatchParam is the exception bound by a catch clause.
	CatchParam() (string, bool)
	Params() []Param
}

// Block is a sequence of statements that can receive a new first statement.
type Block interface {
	Location
	Statements() []Statement
	InsertStatementAtFront(stmt Node)
}

// Statement is an existing statement inside a Block.
type Statement interface {
	// MemberCallObject returns x when the statement is the bare call
	// expression x.method(...), with x an identifier.
	MemberCallObject() (string, bool)
}

// Program is the root of a compilation unit.
type Program interface {
	IsGenerated() bool
	// HasBinding reports whether name is already declared in the unit's
	// top-level scope.
	HasBinding(name string) bool
	InsertStatementAtFront(stmt Node)
}

// Factory builds host syntax nodes.
type Factory interface {
	StringLiteral(value string) Node
	Identifier(name string) Node
	MemberExpression(object, property Node) Node
	CallExpression(callee Node, args []Node) Node
	ExpressionStatement(expr Node) Node
	ImportDeclaration(specifiers []Node, source Node) Node
	ImportDefaultSpecifier(local Node) Node
}
