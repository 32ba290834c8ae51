package gosrc

import (
	"go/ast"
	"go/token"
	"path"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/smith-xyz/autologger/pkg/instrument"
)

type program struct {
	fset *token.FileSet
	file *ast.File

	// set once the logger import was added
	importName string
	importPath string
}

func (p *program) IsGenerated() bool {
	return ast.IsGenerated(p.file)
}

// HasBinding looks at package-scope names declared in this file and at its
// imports.
func (p *program) HasBinding(name string) bool {
	for _, imp := range p.file.Imports {
		if importName(imp) == name {
			return true
		}
	}

	for _, decl := range p.file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil && d.Name.Name == name {
				return true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					for _, n := range s.Names {
						if n.Name == name {
							return true
						}
					}
				case *ast.TypeSpec:
					if s.Name.Name == name {
						return true
					}
				}
			}
		}
	}

	return false
}

func (p *program) InsertStatementAtFront(n instrument.Node) {
	spec, ok := n.(importSpec)
	if !ok || spec.path == "" {
		return
	}

	name := spec.name
	if name == path.Base(spec.path) {
		name = ""
	}
	if astutil.AddNamedImport(p.fset, p.file, name, spec.path) {
		p.importName = name
		p.importPath = spec.path
	}
}

// importName is the name an import is referred to by, assuming the package
// name matches the last path element.
func importName(imp *ast.ImportSpec) string {
	if imp.Name != nil {
		return imp.Name.Name
	}
	value, err := strconv.Unquote(imp.Path.Value)
	if err != nil {
		return ""
	}
	return path.Base(value)
}
