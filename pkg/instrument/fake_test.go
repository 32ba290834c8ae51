package instrument

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smith-xyz/autologger/pkg/settings"
)

// fakeLoc is a Location/Block whose shape is spelled out field by field.
type fakeLoc struct {
	catch     bool
	arrow     bool
	generated bool

	own         string
	container   string
	assignProp  string
	assignIdent string
	ownKey      string
	parentKey   string
	callee      string
	index       int
	inList      bool

	body  *fakeLoc
	block bool
	stmts []Statement
	pos   *Position

	catchParam string
	params     []Param
}

func opt(s string) (string, bool) { return s, s != "" }

func (l *fakeLoc) IsCatchClause() bool                      { return l.catch }
func (l *fakeLoc) IsArrowFunction() bool                    { return l.arrow }
func (l *fakeLoc) IsGenerated() bool                        { return l.generated }
func (l *fakeLoc) OwnIdentifier() (string, bool)            { return opt(l.own) }
func (l *fakeLoc) ContainerIdentifier() (string, bool)      { return opt(l.container) }
func (l *fakeLoc) AssignmentPropertyName() (string, bool)   { return opt(l.assignProp) }
func (l *fakeLoc) AssignmentIdentifierName() (string, bool) { return opt(l.assignIdent) }
func (l *fakeLoc) OwnKeyName() (string, bool)               { return opt(l.ownKey) }
func (l *fakeLoc) ParentKeyName() (string, bool)            { return opt(l.parentKey) }
func (l *fakeLoc) ParentCalleeProperty() (string, bool)     { return opt(l.callee) }
func (l *fakeLoc) ListIndex() (int, bool)                   { return l.index, l.inList }
func (l *fakeLoc) CatchParam() (string, bool)               { return opt(l.catchParam) }
func (l *fakeLoc) Params() []Param                          { return l.params }

func (l *fakeLoc) Get(member string) (Location, bool) {
	if member != "body" || l.body == nil {
		return nil, false
	}
	return l.body, true
}

func (l *fakeLoc) AsBlock() (Block, bool) {
	if !l.block {
		return nil, false
	}
	return l, true
}

func (l *fakeLoc) Position() (Position, bool) {
	if l.pos == nil {
		return Position{}, false
	}
	return *l.pos, true
}

func (l *fakeLoc) Statements() []Statement { return l.stmts }

func (l *fakeLoc) InsertStatementAtFront(stmt Node) {
	l.stmts = append([]Statement{stmt.(Statement)}, l.stmts...)
}

func (l *fakeLoc) rendered() []string {
	out := make([]string, 0, len(l.stmts))
	for _, s := range l.stmts {
		out = append(out, render(s))
	}
	return out
}

func block(line, column int, stmts ...Statement) *fakeLoc {
	return &fakeLoc{block: true, pos: &Position{Line: line, Column: column}, stmts: stmts}
}

// fake syntax nodes

type lit string
type ident string
type member struct{ object, property Node }
type call struct {
	callee Node
	args   []Node
}
type exprStmt struct{ expr Node }
type importDecl struct {
	specifiers []Node
	source     Node
}
type defaultSpec struct{ local Node }

// otherStmt is any statement that is not a member call.
type otherStmt string

func (otherStmt) MemberCallObject() (string, bool) { return "", false }

func (s exprStmt) MemberCallObject() (string, bool) {
	c, ok := s.expr.(call)
	if !ok {
		return "", false
	}
	m, ok := c.callee.(member)
	if !ok {
		return "", false
	}
	id, ok := m.object.(ident)
	if !ok {
		return "", false
	}
	return string(id), true
}

func render(n Node) string {
	switch v := n.(type) {
	case lit:
		return strconv.Quote(string(v))
	case ident:
		return string(v)
	case member:
		return render(v.object) + "." + render(v.property)
	case call:
		args := make([]string, 0, len(v.args))
		for _, a := range v.args {
			args = append(args, render(a))
		}
		return render(v.callee) + "(" + strings.Join(args, ", ") + ")"
	case exprStmt:
		return render(v.expr)
	case importDecl:
		specs := make([]string, 0, len(v.specifiers))
		for _, s := range v.specifiers {
			specs = append(specs, render(s))
		}
		return "import " + strings.Join(specs, ", ") + " from " + render(v.source)
	case defaultSpec:
		return render(v.local)
	case otherStmt:
		return string(v)
	}
	return "?"
}

type fakeFactory struct{}

func (fakeFactory) StringLiteral(value string) Node           { return lit(value) }
func (fakeFactory) Identifier(name string) Node               { return ident(name) }
func (fakeFactory) MemberExpression(object, prop Node) Node   { return member{object, prop} }
func (fakeFactory) CallExpression(c Node, args []Node) Node   { return call{c, args} }
func (fakeFactory) ExpressionStatement(expr Node) Node        { return exprStmt{expr} }
func (fakeFactory) ImportDefaultSpecifier(local Node) Node    { return defaultSpec{local} }
func (fakeFactory) ImportDeclaration(s []Node, src Node) Node { return importDecl{s, src} }

type fakeProgram struct {
	generated bool
	bindings  map[string]bool
	stmts     []Node
}

func (p *fakeProgram) IsGenerated() bool                { return p.generated }
func (p *fakeProgram) HasBinding(name string) bool      { return p.bindings[name] }
func (p *fakeProgram) InsertStatementAtFront(stmt Node) { p.stmts = append([]Node{stmt}, p.stmts...) }

func newUnit(t *testing.T, filename string, opts settings.Options) *Unit {
	t.Helper()
	s, err := settings.Prepare(opts, settings.JavaScript)
	require.NoError(t, err)
	return NewUnit(filename, "", s, fakeFactory{})
}
