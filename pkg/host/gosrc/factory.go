package gosrc

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/smith-xyz/autologger/pkg/instrument"
)

// Factory builds go/ast nodes.
type Factory struct{}

func (Factory) StringLiteral(value string) instrument.Node {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(value)}
}

func (Factory) Identifier(name string) instrument.Node {
	return ast.NewIdent(name)
}

func (Factory) MemberExpression(object, property instrument.Node) instrument.Node {
	return &ast.SelectorExpr{
		X:   object.(ast.Expr),
		Sel: property.(*ast.Ident),
	}
}

func (Factory) CallExpression(callee instrument.Node, args []instrument.Node) instrument.Node {
	call := &ast.CallExpr{Fun: callee.(ast.Expr)}
	for _, arg := range args {
		call.Args = append(call.Args, arg.(ast.Expr))
	}
	return call
}

func (Factory) ExpressionStatement(expr instrument.Node) instrument.Node {
	return &ast.ExprStmt{X: expr.(ast.Expr)}
}

// ImportDeclaration returns an importSpec; Go imports live in the file's
// import block rather than among statements.
func (Factory) ImportDeclaration(specifiers []instrument.Node, source instrument.Node) instrument.Node {
	spec := importSpec{}
	if len(specifiers) > 0 {
		if ident, ok := specifiers[0].(*ast.Ident); ok {
			spec.name = ident.Name
		}
	}
	if lit, ok := source.(*ast.BasicLit); ok {
		if path, err := strconv.Unquote(lit.Value); err == nil {
			spec.path = path
		}
	}
	return spec
}

func (Factory) ImportDefaultSpecifier(local instrument.Node) instrument.Node {
	return local
}

type importSpec struct {
	name string
	path string
}
