// Package gosrc drives the instrumentation engine over Go source files.
//
// Functions, methods and function literals are treated as functions, and an
// `if err != nil { ... }` block is treated as the catch clause of the
// enclosing call.
//
// A function whose receiver, parameters or results are named like the logger
// is left alone together with everything nested in it. Local variables that
// shadow the logger are not detected.
package gosrc

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/smith-xyz/autologger/pkg/errors"
	"github.com/smith-xyz/autologger/pkg/instrument"
)

// File is a parsed Go source file.
type File struct {
	fset *token.FileSet
	file *ast.File
}

// Parse parses src, keeping comments.
func Parse(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "failed to parse file", err,
			map[string]any{"file": filename})
	}
	return &File{fset: fset, file: file}, nil
}

// Factory returns the node factory for f.
func (f *File) Factory() Factory {
	return Factory{}
}

// Instrument adds the logger import, then visits every function, method,
// function literal and error check in source order. It returns the number
// of logger calls added.
func (f *File) Instrument(u *instrument.Unit) int {
	before := u.Inserted
	prog := &program{fset: f.fset, file: f.file}
	if prog.IsGenerated() {
		return 0
	}

	instrument.ProgramEnter(prog, u)

	// functions binding the logger name, and everything nested in them,
	// cannot call the logger
	loggerName := u.Settings.Logging.LoggerName
	shadowed := 0

	astutil.Apply(f.file, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			if bindsName(n, loggerName) {
				shadowed++
			}
			if shadowed == 0 {
				instrument.FunctionOrCatchEnter(f.locate(c), u)
			}
		case *ast.IfStmt:
			if _, ok := errCheck(n); ok && shadowed == 0 {
				instrument.FunctionOrCatchEnter(f.locate(c), u)
			}
		}
		return true
	}, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			if bindsName(n, loggerName) {
				shadowed--
			}
		}
		return true
	})

	// an import nothing refers to does not compile
	if prog.importPath != "" && !astutil.UsesImport(f.file, prog.importPath) {
		astutil.DeleteNamedImport(f.fset, f.file, prog.importName, prog.importPath)
		u.Imported = false
	}

	return u.Inserted - before
}

// bindsName reports whether the receiver, type parameters, parameters or
// results of fn declare name.
func bindsName(fn ast.Node, name string) bool {
	var lists []*ast.FieldList
	switch n := fn.(type) {
	case *ast.FuncDecl:
		lists = append(lists, n.Recv, n.Type.TypeParams, n.Type.Params, n.Type.Results)
	case *ast.FuncLit:
		lists = append(lists, n.Type.Params, n.Type.Results)
	}
	for _, list := range lists {
		if list == nil {
			continue
		}
		for _, field := range list.List {
			for _, ident := range field.Names {
				if ident.Name == name {
					return true
				}
			}
		}
	}
	return false
}

func (f *File) locate(c *astutil.Cursor) *location {
	return &location{
		fset:   f.fset,
		node:   c.Node(),
		parent: c.Parent(),
		field:  c.Name(),
		index:  c.Index(),
	}
}

// Render formats the file and checks the result still parses.
func (f *File) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, f.fset, f.file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to format file", err)
	}

	name := f.fset.File(f.file.Pos()).Name()
	if _, err := parser.ParseFile(token.NewFileSet(), name, buf.Bytes(), parser.ParseComments); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "instrumented code is invalid Go", err)
	}

	return buf.Bytes(), nil
}
