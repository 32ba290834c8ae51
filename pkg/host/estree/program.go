package estree

import "github.com/smith-xyz/autologger/pkg/instrument"

type program struct {
	node map[string]any
}

func (p *program) IsGenerated() bool {
	generated, _ := p.node["_generated"].(bool)
	return generated
}

// HasBinding looks at the declarations of the top-level scope: imports,
// variables, functions and classes, exported or not.
func (p *program) HasBinding(name string) bool {
	body, _ := p.node["body"].([]any)
	for _, item := range body {
		stmt, _ := item.(map[string]any)
		for _, bound := range declaredNames(stmt) {
			if bound == name {
				return true
			}
		}
	}
	return false
}

func (p *program) InsertStatementAtFront(stmt instrument.Node) {
	body, _ := p.node["body"].([]any)
	p.node["body"] = append([]any{stmt}, body...)
}

func declaredNames(stmt map[string]any) []string {
	var names []string

	switch nodeType(stmt) {
	case "ImportDeclaration":
		specifiers, _ := stmt["specifiers"].([]any)
		for _, s := range specifiers {
			spec, _ := s.(map[string]any)
			if name, ok := nameOf(spec["local"]); ok {
				names = append(names, name)
			}
		}
	case "VariableDeclaration":
		declarations, _ := stmt["declarations"].([]any)
		for _, d := range declarations {
			decl, _ := d.(map[string]any)
			names = patternNames(decl["id"], names)
		}
	case "FunctionDeclaration", "ClassDeclaration":
		if name, ok := nameOf(stmt["id"]); ok {
			names = append(names, name)
		}
	case "ExportNamedDeclaration", "ExportDefaultDeclaration":
		if decl, ok := stmt["declaration"].(map[string]any); ok {
			names = append(names, declaredNames(decl)...)
		}
	}

	return names
}

// patternNames collects the identifiers bound by a declaration pattern.
func patternNames(v any, names []string) []string {
	n, ok := v.(map[string]any)
	if !ok {
		return names
	}

	switch nodeType(n) {
	case "Identifier":
		if name, ok := nameOf(n); ok {
			names = append(names, name)
		}
	case "ObjectPattern":
		properties, _ := n["properties"].([]any)
		for _, prop := range properties {
			pn, _ := prop.(map[string]any)
			if nodeType(pn) == "RestElement" {
				names = patternNames(pn["argument"], names)
				continue
			}
			names = patternNames(pn["value"], names)
		}
	case "ArrayPattern":
		elements, _ := n["elements"].([]any)
		for _, el := range elements {
			names = patternNames(el, names)
		}
	case "RestElement":
		names = patternNames(n["argument"], names)
	case "AssignmentPattern":
		names = patternNames(n["left"], names)
	}

	return names
}
