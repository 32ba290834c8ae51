package estree

import (
	"encoding/json"

	"github.com/smith-xyz/autologger/pkg/instrument"
)

// path is a node together with where it hangs in the tree.
type path struct {
	node   map[string]any
	parent *path
	key    string
	// index is the position inside parent[key], or -1 when parent[key] is the node itself
	index int
}

func (p *path) IsCatchClause() bool {
	return nodeType(p.node) == "CatchClause"
}

func (p *path) IsArrowFunction() bool {
	return nodeType(p.node) == "ArrowFunctionExpression"
}

func (p *path) IsGenerated() bool {
	generated, _ := p.node["_generated"].(bool)
	return generated
}

func (p *path) OwnIdentifier() (string, bool) {
	return nameOf(p.node["id"])
}

// ContainerIdentifier only applies when the node is not a list element; a
// list has no id.
func (p *path) ContainerIdentifier() (string, bool) {
	if p.parent == nil || p.index >= 0 {
		return "", false
	}
	return nameOf(p.parent.node["id"])
}

func (p *path) AssignmentPropertyName() (string, bool) {
	left, ok := p.assignmentTarget()
	if !ok {
		return "", false
	}
	return nameOf(left["property"])
}

func (p *path) AssignmentIdentifierName() (string, bool) {
	left, ok := p.assignmentTarget()
	if !ok {
		return "", false
	}
	return nameOf(left)
}

func (p *path) assignmentTarget() (map[string]any, bool) {
	if p.parent == nil || p.key != "right" {
		return nil, false
	}
	switch nodeType(p.parent.node) {
	case "AssignmentExpression", "AssignmentPattern":
	default:
		return nil, false
	}
	left, ok := p.parent.node["left"].(map[string]any)
	return left, ok
}

func (p *path) OwnKeyName() (string, bool) {
	return nameOf(p.node["key"])
}

func (p *path) ParentKeyName() (string, bool) {
	if p.parent == nil {
		return "", false
	}
	return nameOf(p.parent.node["key"])
}

func (p *path) ParentCalleeProperty() (string, bool) {
	if p.parent == nil {
		return "", false
	}
	callee, ok := p.parent.node["callee"].(map[string]any)
	if !ok {
		return "", false
	}
	return nameOf(callee["property"])
}

func (p *path) ListIndex() (int, bool) {
	if p.index < 0 {
		return 0, false
	}
	return p.index, true
}

func (p *path) Get(member string) (instrument.Location, bool) {
	child, ok := p.node[member].(map[string]any)
	if !ok || !isNode(child) {
		return nil, false
	}
	return &path{node: child, parent: p, key: member, index: -1}, true
}

func (p *path) AsBlock() (instrument.Block, bool) {
	if nodeType(p.node) != "BlockStatement" {
		return nil, false
	}
	return p, true
}

func (p *path) Position() (instrument.Position, bool) {
	loc, ok := p.node["loc"].(map[string]any)
	if !ok {
		return instrument.Position{}, false
	}
	start, ok := loc["start"].(map[string]any)
	if !ok {
		return instrument.Position{}, false
	}
	line, ok := toInt(start["line"])
	if !ok {
		return instrument.Position{}, false
	}
	column, ok := toInt(start["column"])
	if !ok {
		return instrument.Position{}, false
	}
	return instrument.Position{Line: line, Column: column}, true
}

func (p *path) CatchParam() (string, bool) {
	return nameOf(p.node["param"])
}

func (p *path) Params() []instrument.Param {
	raw, _ := p.node["params"].([]any)
	params := make([]instrument.Param, 0, len(raw))
	for _, item := range raw {
		param, _ := item.(map[string]any)
		if nodeType(param) == "Identifier" {
			name, _ := param["name"].(string)
			params = append(params, instrument.Param{Name: name, Identifier: true})
			continue
		}
		params = append(params, instrument.Param{})
	}
	return params
}

func (p *path) Statements() []instrument.Statement {
	raw, _ := p.node["body"].([]any)
	stmts := make([]instrument.Statement, 0, len(raw))
	for _, item := range raw {
		n, _ := item.(map[string]any)
		stmts = append(stmts, statement(n))
	}
	return stmts
}

func (p *path) InsertStatementAtFront(stmt instrument.Node) {
	raw, _ := p.node["body"].([]any)
	p.node["body"] = append([]any{stmt}, raw...)
}

type statement map[string]any

func (s statement) MemberCallObject() (string, bool) {
	if nodeType(s) != "ExpressionStatement" {
		return "", false
	}
	expr, _ := s["expression"].(map[string]any)
	switch nodeType(expr) {
	case "CallExpression", "OptionalCallExpression":
	default:
		return "", false
	}
	callee, _ := expr["callee"].(map[string]any)
	switch nodeType(callee) {
	case "MemberExpression", "OptionalMemberExpression":
	default:
		return "", false
	}
	object, _ := callee["object"].(map[string]any)
	if nodeType(object) != "Identifier" {
		return "", false
	}
	return nameOf(object)
}

// nameOf returns the name field of an identifier-like node.
func nameOf(v any) (string, bool) {
	n, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	name, ok := n["name"].(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
