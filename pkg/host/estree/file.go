// Package estree drives the instrumentation engine over JavaScript syntax
// trees in Babel or ESTree JSON form, as produced by @babel/parser, acorn or
// espree. Trees are decoded into generic maps so that fields this package
// does not know about survive a decode/encode round trip unchanged.
package estree

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"github.com/smith-xyz/autologger/pkg/errors"
	"github.com/smith-xyz/autologger/pkg/instrument"
)

// Dialect selects the literal and call shapes the Factory emits.
type Dialect int

const (
	// Babel emits StringLiteral nodes.
	Babel Dialect = iota
	// ESTree emits Literal nodes.
	ESTree
)

var functionTypes = map[string]bool{
	"FunctionDeclaration":     true,
	"FunctionExpression":      true,
	"ArrowFunctionExpression": true,
	"ObjectMethod":            true,
	"ClassMethod":             true,
	"ClassPrivateMethod":      true,
}

// position and comment bookkeeping never holds child nodes
var skippedKeys = map[string]bool{
	"loc":              true,
	"start":            true,
	"end":              true,
	"range":            true,
	"extra":            true,
	"comments":         true,
	"leadingComments":  true,
	"trailingComments": true,
	"innerComments":    true,
	"tokens":           true,
	"errors":           true,
}

// File is a decoded syntax tree.
type File struct {
	root    map[string]any
	program map[string]any
	dialect Dialect
}

// Decode reads a File or Program node from JSON.
func Decode(content []byte) (*File, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "failed to decode syntax tree", err)
	}

	f := &File{root: root}
	switch nodeType(root) {
	case "File":
		program, ok := root["program"].(map[string]any)
		if !ok || nodeType(program) != "Program" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "File node without a Program")
		}
		f.program = program
		f.dialect = Babel
	case "Program":
		f.program = root
		f.dialect = ESTree
	default:
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "root node must be a File or a Program",
			map[string]any{"type": nodeType(root)})
	}

	return f, nil
}

// Dialect reports the flavour the tree was decoded as.
func (f *File) Dialect() Dialect {
	return f.dialect
}

// Factory returns a Factory matching the tree's dialect.
func (f *File) Factory() Factory {
	return Factory{Dialect: f.dialect}
}

// SourceFilename returns the filename recorded in the tree's locations, if any.
func (f *File) SourceFilename() string {
	for _, n := range []map[string]any{f.root, f.program} {
		if loc, ok := n["loc"].(map[string]any); ok {
			if name, ok := loc["filename"].(string); ok && name != "" {
				return name
			}
		}
	}
	return ""
}

// Encode writes the tree as JSON.
func (f *File) Encode(w io.Writer, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(f.root); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to encode syntax tree", err)
	}
	return nil
}

// Instrument walks the tree: the program first, then every function and
// catch clause in source order. It returns the number of logger calls added.
func (f *File) Instrument(u *instrument.Unit) int {
	before := u.Inserted
	instrument.ProgramEnter(&program{node: f.program}, u)
	walk(&path{node: f.program, index: -1}, u)
	return u.Inserted - before
}

func walk(p *path, u *instrument.Unit) {
	t := nodeType(p.node)
	if functionTypes[t] || t == "CatchClause" {
		instrument.FunctionOrCatchEnter(p, u)
	}

	for _, key := range childKeys(p.node) {
		switch v := p.node[key].(type) {
		case map[string]any:
			if isNode(v) {
				walk(&path{node: v, parent: p, key: key, index: -1}, u)
			}
		case []any:
			for i, item := range v {
				if child, ok := item.(map[string]any); ok && isNode(child) {
					walk(&path{node: child, parent: p, key: key, index: i}, u)
				}
			}
		}
	}
}

func childKeys(n map[string]any) []string {
	keys := make([]string, 0, len(n))
	for k := range n {
		if skippedKeys[k] || k == "type" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func nodeType(n map[string]any) string {
	t, _ := n["type"].(string)
	return t
}

func isNode(n map[string]any) bool {
	return nodeType(n) != ""
}
