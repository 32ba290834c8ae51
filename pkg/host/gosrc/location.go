package gosrc

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/smith-xyz/autologger/pkg/instrument"
)

// location is a node as seen by an astutil cursor.
type location struct {
	fset   *token.FileSet
	node   ast.Node
	parent ast.Node
	// field is the parent's field holding node
	field string
	// index is the position in parent.field, or -1
	index int
}

// errCheck matches `if <err> != nil` where <err> is named err or ends in
// Err, and returns the checked identifier.
func errCheck(n ast.Node) (string, bool) {
	stmt, ok := n.(*ast.IfStmt)
	if !ok {
		return "", false
	}
	cond, ok := stmt.Cond.(*ast.BinaryExpr)
	if !ok || cond.Op != token.NEQ {
		return "", false
	}
	x, ok := cond.X.(*ast.Ident)
	if !ok {
		return "", false
	}
	y, ok := cond.Y.(*ast.Ident)
	if !ok || y.Name != "nil" {
		return "", false
	}
	if x.Name != "err" && !strings.HasSuffix(x.Name, "Err") {
		return "", false
	}
	return x.Name, true
}

func (l *location) IsCatchClause() bool {
	_, ok := errCheck(l.node)
	return ok
}

// IsArrowFunction is false: function literals always have a block body.
func (l *location) IsArrowFunction() bool {
	return false
}

func (l *location) IsGenerated() bool {
	return l.node.Pos() == token.NoPos
}

// OwnIdentifier names declared functions, and methods as Type.Method.
func (l *location) OwnIdentifier() (string, bool) {
	decl, ok := l.node.(*ast.FuncDecl)
	if !ok || decl.Name == nil {
		return "", false
	}
	if decl.Recv != nil && len(decl.Recv.List) > 0 {
		if recv := extractReceiverType(decl.Recv.List[0].Type); recv != "" {
			return recv + "." + decl.Name.Name, true
		}
	}
	return decl.Name.Name, true
}

// ContainerIdentifier covers `x := func...` and `var x = func...`.
func (l *location) ContainerIdentifier() (string, bool) {
	switch p := l.parent.(type) {
	case *ast.AssignStmt:
		if p.Tok != token.DEFINE || l.field != "Rhs" {
			return "", false
		}
		return identAt(p.Lhs, l.index)
	case *ast.ValueSpec:
		if l.field != "Values" || l.index < 0 || l.index >= len(p.Names) {
			return "", false
		}
		return usable(p.Names[l.index].Name)
	}
	return "", false
}

func (l *location) assignmentTarget() (ast.Expr, bool) {
	p, ok := l.parent.(*ast.AssignStmt)
	if !ok || p.Tok != token.ASSIGN || l.field != "Rhs" {
		return nil, false
	}
	if l.index < 0 || l.index >= len(p.Lhs) {
		return nil, false
	}
	return p.Lhs[l.index], true
}

// AssignmentPropertyName covers `s.field = func...`. Index targets such as
// `m["a"] = func...` have no name.
func (l *location) AssignmentPropertyName() (string, bool) {
	target, ok := l.assignmentTarget()
	if !ok {
		return "", false
	}
	sel, ok := target.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}
	return usable(sel.Sel.Name)
}

// AssignmentIdentifierName covers `x = func...`.
func (l *location) AssignmentIdentifierName() (string, bool) {
	target, ok := l.assignmentTarget()
	if !ok {
		return "", false
	}
	ident, ok := target.(*ast.Ident)
	if !ok {
		return "", false
	}
	return usable(ident.Name)
}

// OwnKeyName is never set: Go has no keyed function members.
func (l *location) OwnKeyName() (string, bool) {
	return "", false
}

// ParentKeyName covers composite literal entries such as
// `Handler: func...` or `"name": func...`.
func (l *location) ParentKeyName() (string, bool) {
	kv, ok := l.parent.(*ast.KeyValueExpr)
	if !ok || l.field != "Value" {
		return "", false
	}
	switch key := kv.Key.(type) {
	case *ast.Ident:
		return usable(key.Name)
	case *ast.BasicLit:
		if key.Kind != token.STRING {
			return "", false
		}
		value, err := strconv.Unquote(key.Value)
		if err != nil {
			return "", false
		}
		return usable(value)
	}
	return "", false
}

func (l *location) ParentCalleeProperty() (string, bool) {
	call, ok := l.parent.(*ast.CallExpr)
	if !ok || l.field != "Args" {
		return "", false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}
	return sel.Sel.Name, true
}

// ListIndex covers slice literal elements and call arguments. Assignment
// right-hand sides and return values are not list items.
func (l *location) ListIndex() (int, bool) {
	if l.index < 0 {
		return 0, false
	}
	switch l.parent.(type) {
	case *ast.CompositeLit:
		if l.field == "Elts" {
			return l.index, true
		}
	case *ast.CallExpr:
		if l.field == "Args" {
			return l.index, true
		}
	}
	return 0, false
}

func (l *location) Get(member string) (instrument.Location, bool) {
	if member != "body" {
		return nil, false
	}

	var body *ast.BlockStmt
	switch n := l.node.(type) {
	case *ast.FuncDecl:
		body = n.Body
	case *ast.FuncLit:
		body = n.Body
	case *ast.IfStmt:
		body = n.Body
	}
	if body == nil {
		return nil, false
	}

	return &location{fset: l.fset, node: body, parent: l.node, field: "Body", index: -1}, true
}

func (l *location) AsBlock() (instrument.Block, bool) {
	block, ok := l.node.(*ast.BlockStmt)
	if !ok {
		return nil, false
	}
	return &blockLocation{location: l, block: block}, true
}

func (l *location) Position() (instrument.Position, bool) {
	if !l.node.Pos().IsValid() {
		return instrument.Position{}, false
	}
	pos := l.fset.Position(l.node.Pos())
	return instrument.Position{Line: pos.Line, Column: pos.Column}, true
}

func (l *location) CatchParam() (string, bool) {
	return errCheck(l.node)
}

func (l *location) Params() []instrument.Param {
	var ft *ast.FuncType
	switch n := l.node.(type) {
	case *ast.FuncDecl:
		ft = n.Type
	case *ast.FuncLit:
		ft = n.Type
	}
	if ft == nil || ft.Params == nil {
		return nil
	}

	var params []instrument.Param
	for _, field := range ft.Params.List {
		if len(field.Names) == 0 {
			params = append(params, instrument.Param{})
			continue
		}
		for _, name := range field.Names {
			if name.Name == "_" {
				params = append(params, instrument.Param{})
				continue
			}
			params = append(params, instrument.Param{Name: name.Name, Identifier: true})
		}
	}
	return params
}

type blockLocation struct {
	*location
	block *ast.BlockStmt
}

func (b *blockLocation) Statements() []instrument.Statement {
	stmts := make([]instrument.Statement, 0, len(b.block.List))
	for _, s := range b.block.List {
		stmts = append(stmts, statement{s})
	}
	return stmts
}

func (b *blockLocation) InsertStatementAtFront(n instrument.Node) {
	stmt, ok := n.(ast.Stmt)
	if !ok {
		return
	}
	b.block.List = append([]ast.Stmt{stmt}, b.block.List...)
}

type statement struct {
	ast.Stmt
}

// MemberCallObject matches `pkg.Method(...)` expression statements.
func (s statement) MemberCallObject() (string, bool) {
	expr, ok := s.Stmt.(*ast.ExprStmt)
	if !ok {
		return "", false
	}
	call, ok := expr.X.(*ast.CallExpr)
	if !ok {
		return "", false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}
	object, ok := sel.X.(*ast.Ident)
	if !ok {
		return "", false
	}
	return object.Name, true
}

func identAt(exprs []ast.Expr, i int) (string, bool) {
	if i < 0 || i >= len(exprs) {
		return "", false
	}
	ident, ok := exprs[i].(*ast.Ident)
	if !ok {
		return "", false
	}
	return usable(ident.Name)
}

// usable drops the blank identifier.
func usable(name string) (string, bool) {
	if name == "" || name == "_" {
		return "", false
	}
	return name, true
}

func extractReceiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return extractReceiverType(t.X)
	case *ast.IndexExpr:
		return extractReceiverType(t.X)
	case *ast.IndexListExpr:
		return extractReceiverType(t.X)
	}
	return ""
}
