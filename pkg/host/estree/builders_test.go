package estree

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smith-xyz/autologger/pkg/instrument"
	"github.com/smith-xyz/autologger/pkg/settings"
)

type node = map[string]any

func at(line, column int) node {
	return node{"start": node{"line": line, "column": column}}
}

func ident(name string) node {
	return node{"type": "Identifier", "name": name}
}

func block(line, column int, stmts ...any) node {
	if stmts == nil {
		stmts = []any{}
	}
	return node{"type": "BlockStatement", "body": stmts, "loc": at(line, column)}
}

func funcDecl(name string, params []any, body node) node {
	return node{"type": "FunctionDeclaration", "id": ident(name), "params": params, "body": body}
}

func funcExpr(name string, body node) node {
	var id any
	if name != "" {
		id = ident(name)
	}
	return node{"type": "FunctionExpression", "id": id, "params": []any{}, "body": body}
}

func arrow(params []any, body node) node {
	return node{"type": "ArrowFunctionExpression", "id": nil, "params": params, "body": body}
}

func constDecl(name string, init node) node {
	return node{
		"type": "VariableDeclaration",
		"kind": "const",
		"declarations": []any{
			node{"type": "VariableDeclarator", "id": ident(name), "init": init},
		},
	}
}

func exprStmt(expr node) node {
	return node{"type": "ExpressionStatement", "expression": expr}
}

func callMember(object, property string, args ...any) node {
	return node{
		"type":      "CallExpression",
		"callee":    node{"type": "MemberExpression", "object": ident(object), "property": ident(property), "computed": false},
		"arguments": args,
	}
}

func tryCatch(param string, handler node) node {
	return node{
		"type":    "TryStatement",
		"block":   block(1, 0),
		"handler": node{"type": "CatchClause", "param": ident(param), "body": handler},
	}
}

func babelFile(stmts ...any) *File {
	program := node{"type": "Program", "sourceType": "module", "body": stmts}
	return &File{root: node{"type": "File", "program": program}, program: program, dialect: Babel}
}

func newUnit(t *testing.T, filename string, opts settings.Options, f Factory) *instrument.Unit {
	t.Helper()
	s, err := settings.Prepare(opts, settings.JavaScript)
	require.NoError(t, err)
	return instrument.NewUnit(filename, "", s, f)
}

// describe renders expression statements and calls built from maps.
func describe(v any) string {
	n, ok := v.(map[string]any)
	if !ok {
		return fmt.Sprint(v)
	}
	switch nodeType(n) {
	case "ExpressionStatement":
		return describe(n["expression"])
	case "CallExpression":
		args, _ := n["arguments"].([]any)
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, describe(a))
		}
		return describe(n["callee"]) + "(" + strings.Join(parts, ", ") + ")"
	case "MemberExpression":
		return describe(n["object"]) + "." + describe(n["property"])
	case "Identifier":
		return n["name"].(string)
	case "StringLiteral", "Literal":
		return strconv.Quote(n["value"].(string))
	case "ImportDeclaration":
		specs, _ := n["specifiers"].([]any)
		spec := specs[0].(map[string]any)
		return "import " + describe(spec["local"]) + " from " + describe(n["source"])
	}
	return nodeType(n)
}

func first(b node) string {
	body := b["body"].([]any)
	if len(body) == 0 {
		return ""
	}
	return describe(body[0])
}
