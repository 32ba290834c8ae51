package estree

import (
	"strconv"

	"github.com/smith-xyz/autologger/pkg/instrument"
)

// Factory builds nodes as plain maps so they encode like decoded ones.
type Factory struct {
	Dialect Dialect
}

func (f Factory) StringLiteral(value string) instrument.Node {
	if f.Dialect == ESTree {
		return map[string]any{
			"type":  "Literal",
			"value": value,
			"raw":   strconv.Quote(value),
		}
	}
	return map[string]any{
		"type":  "StringLiteral",
		"value": value,
	}
}

func (f Factory) Identifier(name string) instrument.Node {
	return map[string]any{
		"type": "Identifier",
		"name": name,
	}
}

func (f Factory) MemberExpression(object, property instrument.Node) instrument.Node {
	n := map[string]any{
		"type":     "MemberExpression",
		"object":   object,
		"property": property,
		"computed": false,
	}
	if f.Dialect == ESTree {
		n["optional"] = false
	}
	return n
}

func (f Factory) CallExpression(callee instrument.Node, args []instrument.Node) instrument.Node {
	n := map[string]any{
		"type":      "CallExpression",
		"callee":    callee,
		"arguments": toList(args),
	}
	if f.Dialect == ESTree {
		n["optional"] = false
	}
	return n
}

func (f Factory) ExpressionStatement(expr instrument.Node) instrument.Node {
	return map[string]any{
		"type":       "ExpressionStatement",
		"expression": expr,
	}
}

func (f Factory) ImportDeclaration(specifiers []instrument.Node, source instrument.Node) instrument.Node {
	return map[string]any{
		"type":       "ImportDeclaration",
		"specifiers": toList(specifiers),
		"source":     source,
	}
}

func (f Factory) ImportDefaultSpecifier(local instrument.Node) instrument.Node {
	return map[string]any{
		"type":  "ImportDefaultSpecifier",
		"local": local,
	}
}

func toList(nodes []instrument.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}
